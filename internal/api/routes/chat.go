package routes

import (
	"context"
	"log"
	"todo-backend/internal/assistant/workflow"
	"todo-backend/internal/config"
	"todo-backend/internal/handlers"
	"todo-backend/internal/llm"
	"todo-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// unavailableClient stands in when no LLM provider could be configured; the
// chat workflow degrades to its apology reply.
type unavailableClient struct {
	err error
}

func (u unavailableClient) Chat(ctx context.Context, systemMessage string, messages []llm.Message) (string, error) {
	return "", u.err
}

func registerChat(owner fiber.Router, db *gorm.DB, cfg *config.Config) {
	conversationRepo := repo.NewConversationRepository(db)

	client, err := llm.New(context.Background(), llm.Config{
		Provider: llm.Provider(cfg.LLMProvider),
		Model:    cfg.LLMModel,
		BaseURL:  cfg.LLMBaseURL,
		APIKey:   cfg.LLMAPIKey,
	})
	if err != nil {
		log.Printf("Warning: LLM client unavailable: %v", err)
		client = unavailableClient{err: err}
	}

	wf := workflow.NewWorkflow(conversationRepo, client)
	chatHandler := handlers.NewChatHandler(conversationRepo, wf)

	owner.Post("/conversations", chatHandler.CreateConversation)
	owner.Get("/conversations", chatHandler.ListConversations)
	owner.Get("/conversations/:conversationId", chatHandler.GetConversation)
	owner.Post("/conversations/:conversationId/messages", chatHandler.AddMessage)
	owner.Get("/conversations/:conversationId/messages", chatHandler.ListMessages)
	owner.Post("/chat", chatHandler.Chat)
}
