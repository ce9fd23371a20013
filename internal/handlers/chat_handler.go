package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"todo-backend/internal/api/middleware"
	"todo-backend/internal/assistant/workflow"
	"todo-backend/internal/models"
	"todo-backend/internal/repo"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChatHandler struct {
	conversations repo.ConversationRepoInterface
	workflow      *workflow.Workflow
}

func NewChatHandler(conversations repo.ConversationRepoInterface, wf *workflow.Workflow) *ChatHandler {
	return &ChatHandler{
		conversations: conversations,
		workflow:      wf,
	}
}

func (h *ChatHandler) CreateConversation(c *fiber.Ctx) error {
	ownerID, _ := middleware.Subject(c)

	var dto struct {
		Title string `json:"title"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if dto.Title == "" || utf8.RuneCountInString(dto.Title) > 200 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "title must be between 1 and 200 characters",
		})
	}

	conversation := &models.Conversation{
		UserID: ownerID,
		Title:  dto.Title,
	}
	if err := h.conversations.Create(conversation); err != nil {
		log.Println(err, "Error creating conversation")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create conversation",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(conversation)
}

func (h *ChatHandler) ListConversations(c *fiber.Ctx) error {
	ownerID, _ := middleware.Subject(c)

	conversations, err := h.conversations.ListByOwner(ownerID)
	if err != nil {
		log.Println(err, "Error listing conversations")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get conversations",
		})
	}
	return c.Status(fiber.StatusOK).JSON(conversations)
}

func (h *ChatHandler) GetConversation(c *fiber.Ctx) error {
	ownerID, _ := middleware.Subject(c)

	conversationID, err := uuid.Parse(c.Params("conversationId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid conversation ID",
		})
	}

	conversation, err := h.conversations.GetByID(ownerID, conversationID)
	if errors.Is(err, repo.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Conversation not found",
		})
	}
	if err != nil {
		log.Println(err, "Error getting conversation")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get conversation",
		})
	}

	return c.Status(fiber.StatusOK).JSON(conversation)
}

func (h *ChatHandler) AddMessage(c *fiber.Ctx) error {
	ownerID, _ := middleware.Subject(c)

	conversationID, err := uuid.Parse(c.Params("conversationId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid conversation ID",
		})
	}

	var dto struct {
		Role      models.Role     `json:"role"`
		Content   string          `json:"content"`
		ToolCalls json.RawMessage `json:"tool_calls"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if !models.ValidRole(dto.Role) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Role must be either 'user' or 'assistant'",
		})
	}
	if dto.Content == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "content must not be empty",
		})
	}

	// the conversation must belong to the caller before anything is attached
	if _, err := h.conversations.GetByID(ownerID, conversationID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Conversation not found",
			})
		}
		log.Println(err, "Error getting conversation")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add message",
		})
	}

	message := &models.Message{
		ConversationID: conversationID,
		Role:           dto.Role,
		Content:        dto.Content,
		ToolCalls:      datatypes.JSON(dto.ToolCalls),
	}
	if err := h.conversations.AddMessage(message); err != nil {
		log.Println(err, "Error adding message")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add message",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(message)
}

func (h *ChatHandler) ListMessages(c *fiber.Ctx) error {
	ownerID, _ := middleware.Subject(c)

	conversationID, err := uuid.Parse(c.Params("conversationId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid conversation ID",
		})
	}

	messages, err := h.conversations.ListMessages(ownerID, conversationID)
	if errors.Is(err, repo.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Conversation not found",
		})
	}
	if err != nil {
		log.Println(err, "Error listing messages")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get messages",
		})
	}

	return c.Status(fiber.StatusOK).JSON(messages)
}

// Chat runs one assistant turn: it creates or resolves the conversation,
// persists the exchange and returns the assistant message.
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	ownerID, _ := middleware.Subject(c)

	var dto struct {
		Content        string     `json:"content"`
		ConversationID *uuid.UUID `json:"conversation_id"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if dto.Content == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "content must not be empty",
		})
	}

	message, err := h.workflow.HandleChat(c.Context(), ownerID, dto.Content, dto.ConversationID)
	if errors.Is(err, repo.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Conversation not found",
		})
	}
	if err != nil {
		log.Println(err, "Error processing chat request")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error processing chat request",
		})
	}

	return c.Status(fiber.StatusOK).JSON(message)
}
