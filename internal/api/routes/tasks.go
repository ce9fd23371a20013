package routes

import (
	"todo-backend/internal/handlers"
	"todo-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func registerTasks(owner fiber.Router, db *gorm.DB) {
	taskHandler := handlers.NewTaskHandler(repo.NewTaskRepository(db))

	owner.Post("/tasks", taskHandler.CreateTask)
	owner.Get("/tasks", taskHandler.ListTasks)
	owner.Get("/tasks/:taskId", taskHandler.GetTask)
	owner.Put("/tasks/:taskId", taskHandler.UpdateTask)
	owner.Delete("/tasks/:taskId", taskHandler.DeleteTask)
}
