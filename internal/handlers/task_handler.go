package handlers

import (
	"errors"
	"log"
	"todo-backend/internal/api/middleware"
	"todo-backend/internal/models"
	"todo-backend/internal/repo"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TaskHandler struct {
	tasks repo.TaskRepoInterface
}

func NewTaskHandler(tasks repo.TaskRepoInterface) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ownerID, ok := middleware.Subject(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"detail": "Authentication required",
		})
	}

	var dto struct {
		Title       string  `json:"title"`
		Description *string `json:"description"`
		Completed   bool    `json:"completed"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if dto.Title == "" || utf8.RuneCountInString(dto.Title) > 255 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "title must be between 1 and 255 characters",
		})
	}

	task := &models.Task{
		UserID:      ownerID,
		Title:       dto.Title,
		Description: dto.Description,
		Completed:   dto.Completed,
	}
	if err := h.tasks.Create(task); err != nil {
		log.Println(err, "Error creating task")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create task",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(task)
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	ownerID, _ := middleware.Subject(c)

	tasks, err := h.tasks.ListByOwner(ownerID)
	if err != nil {
		log.Println(err, "Error listing tasks")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get tasks",
		})
	}
	return c.Status(fiber.StatusOK).JSON(tasks)
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ownerID, _ := middleware.Subject(c)

	taskID, err := uuid.Parse(c.Params("taskId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid task ID",
		})
	}

	task, err := h.tasks.GetByID(ownerID, taskID)
	if errors.Is(err, repo.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Task not found",
		})
	}
	if err != nil {
		log.Println(err, "Error getting task")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get task",
		})
	}

	return c.Status(fiber.StatusOK).JSON(task)
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ownerID, _ := middleware.Subject(c)

	taskID, err := uuid.Parse(c.Params("taskId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid task ID",
		})
	}

	var patch repo.TaskPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if patch.Title != nil && (*patch.Title == "" || utf8.RuneCountInString(*patch.Title) > 255) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "title must be between 1 and 255 characters",
		})
	}

	task, err := h.tasks.Update(ownerID, taskID, patch)
	if errors.Is(err, repo.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Task not found",
		})
	}
	if err != nil {
		log.Println(err, "Error updating task")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update task",
		})
	}

	return c.Status(fiber.StatusOK).JSON(task)
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ownerID, _ := middleware.Subject(c)

	taskID, err := uuid.Parse(c.Params("taskId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid task ID",
		})
	}

	deleted, err := h.tasks.Delete(ownerID, taskID)
	if err != nil {
		log.Println(err, "Error deleting task")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete task",
		})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Task not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Task deleted successfully",
	})
}
