package handlers

import (
	"encoding/json"
	"todo-backend/internal/api/middleware"
	"todo-backend/internal/assistant/tools"

	"github.com/gofiber/fiber/v2"
)

// ToolsHandler exposes the discrete task tools for direct invocation by an
// external agent. The chat flow never routes model output through here.
type ToolsHandler struct {
	executor *tools.Executor
}

func NewToolsHandler(executor *tools.Executor) *ToolsHandler {
	return &ToolsHandler{executor: executor}
}

func (h *ToolsHandler) ListTools(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"tools": tools.Definitions(),
	})
}

// ExecuteTool dispatches one tool call. The owner id comes exclusively from
// the verified token; a user_id inside the params is ignored.
func (h *ToolsHandler) ExecuteTool(c *fiber.Ctx) error {
	ownerID, ok := middleware.Subject(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"detail": "Authentication required",
		})
	}

	var dto struct {
		ToolName string          `json:"tool_name"`
		Params   json.RawMessage `json:"params"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if dto.ToolName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "tool_name is required",
		})
	}

	result := h.executor.Execute(ownerID, tools.Name(dto.ToolName), dto.Params)
	return c.Status(fiber.StatusOK).JSON(result)
}
