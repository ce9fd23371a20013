package routes

import (
	"todo-backend/internal/assistant/tools"
	"todo-backend/internal/handlers"
	"todo-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func registerTools(r fiber.Router, db *gorm.DB, requireAuth fiber.Handler) {
	executor := tools.NewExecutor(repo.NewTaskRepository(db))
	toolsHandler := handlers.NewToolsHandler(executor)

	r.Get("/tools", requireAuth, toolsHandler.ListTools)
	r.Post("/tools/execute", requireAuth, toolsHandler.ExecuteTool)
}
