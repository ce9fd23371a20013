package tools

import (
	"encoding/json"
	"errors"
	"todo-backend/internal/models"
	"todo-backend/internal/repo"

	"github.com/google/uuid"
)

type Name string

const (
	AddTask      Name = "add_task"
	ListTasks    Name = "list_tasks"
	CompleteTask Name = "complete_task"
	UpdateTask   Name = "update_task"
	DeleteTask   Name = "delete_task"
)

const (
	TaskNotFound  = "TASK_NOT_FOUND"
	InvalidInput  = "INVALID_INPUT"
	DatabaseError = "DATABASE_ERROR"
	UnknownTool   = "UNKNOWN_TOOL"
)

// Result is the uniform envelope returned to the calling agent.
type Result struct {
	Success   bool          `json:"success"`
	Message   string        `json:"message,omitempty"`
	TaskID    string        `json:"task_id,omitempty"`
	Tasks     []models.Task `json:"tasks,omitempty"`
	ErrorCode string        `json:"error_code,omitempty"`
}

type AddTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

type ListTasksRequest struct{}

type CompleteTaskRequest struct {
	TaskID string `json:"task_id"`
}

type UpdateTaskRequest struct {
	TaskID      string  `json:"task_id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

type DeleteTaskRequest struct {
	TaskID string `json:"task_id"`
}

type Executor struct {
	tasks repo.TaskRepoInterface
}

func NewExecutor(tasks repo.TaskRepoInterface) *Executor {
	return &Executor{tasks: tasks}
}

// Execute dispatches one tool call for the authenticated owner. The owner id
// always comes from the verified token, never from the request payload.
func (e *Executor) Execute(ownerID uuid.UUID, name Name, params json.RawMessage) Result {
	switch name {
	case AddTask:
		var req AddTaskRequest
		if err := unmarshalParams(params, &req); err != nil {
			return invalidInput("invalid parameters for add_task")
		}
		return e.addTask(ownerID, req)
	case ListTasks:
		return e.listTasks(ownerID)
	case CompleteTask:
		var req CompleteTaskRequest
		if err := unmarshalParams(params, &req); err != nil {
			return invalidInput("invalid parameters for complete_task")
		}
		return e.completeTask(ownerID, req)
	case UpdateTask:
		var req UpdateTaskRequest
		if err := unmarshalParams(params, &req); err != nil {
			return invalidInput("invalid parameters for update_task")
		}
		return e.updateTask(ownerID, req)
	case DeleteTask:
		var req DeleteTaskRequest
		if err := unmarshalParams(params, &req); err != nil {
			return invalidInput("invalid parameters for delete_task")
		}
		return e.deleteTask(ownerID, req)
	default:
		return Result{Success: false, ErrorCode: UnknownTool, Message: "unknown tool: " + string(name)}
	}
}

func (e *Executor) addTask(ownerID uuid.UUID, req AddTaskRequest) Result {
	if req.Title == "" || len(req.Title) > 255 {
		return invalidInput("title must be between 1 and 255 characters")
	}

	task := &models.Task{
		UserID:      ownerID,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := e.tasks.Create(task); err != nil {
		return databaseError()
	}
	return Result{
		Success: true,
		TaskID:  task.ID.String(),
		Message: "Task '" + task.Title + "' has been created",
	}
}

func (e *Executor) listTasks(ownerID uuid.UUID) Result {
	tasks, err := e.tasks.ListByOwner(ownerID)
	if err != nil {
		return databaseError()
	}
	return Result{Success: true, Tasks: tasks}
}

func (e *Executor) completeTask(ownerID uuid.UUID, req CompleteTaskRequest) Result {
	taskID, err := uuid.Parse(req.TaskID)
	if err != nil {
		return invalidInput("task_id must be a valid UUID")
	}

	completed := true
	task, err := e.tasks.Update(ownerID, taskID, repo.TaskPatch{Completed: &completed})
	if errors.Is(err, repo.ErrNotFound) {
		return Result{Success: false, ErrorCode: TaskNotFound, Message: "Task not found"}
	}
	if err != nil {
		return databaseError()
	}
	return Result{Success: true, Message: "Task '" + task.Title + "' has been marked as completed"}
}

func (e *Executor) updateTask(ownerID uuid.UUID, req UpdateTaskRequest) Result {
	taskID, err := uuid.Parse(req.TaskID)
	if err != nil {
		return invalidInput("task_id must be a valid UUID")
	}
	if req.Title != nil && (*req.Title == "" || len(*req.Title) > 255) {
		return invalidInput("title must be between 1 and 255 characters")
	}

	task, err := e.tasks.Update(ownerID, taskID, repo.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return Result{Success: false, ErrorCode: TaskNotFound, Message: "Task not found"}
	}
	if err != nil {
		return databaseError()
	}
	return Result{Success: true, TaskID: task.ID.String(), Message: "Task '" + task.Title + "' has been updated"}
}

func (e *Executor) deleteTask(ownerID uuid.UUID, req DeleteTaskRequest) Result {
	taskID, err := uuid.Parse(req.TaskID)
	if err != nil {
		return invalidInput("task_id must be a valid UUID")
	}

	deleted, err := e.tasks.Delete(ownerID, taskID)
	if err != nil {
		return databaseError()
	}
	if !deleted {
		return Result{Success: false, ErrorCode: TaskNotFound, Message: "Task not found"}
	}
	return Result{Success: true, Message: "Task has been deleted"}
}

func unmarshalParams(params json.RawMessage, out interface{}) error {
	if len(params) == 0 {
		return nil
	}
	return json.Unmarshal(params, out)
}

func invalidInput(message string) Result {
	return Result{Success: false, ErrorCode: InvalidInput, Message: message}
}

func databaseError() Result {
	return Result{Success: false, ErrorCode: DatabaseError, Message: "A database error occurred"}
}
