package workflow

import (
	"context"
	"log"
	"todo-backend/internal/assistant/prompts"
	"todo-backend/internal/llm"
	"todo-backend/internal/models"
	"todo-backend/internal/repo"

	"github.com/google/uuid"
)

// historyWindow bounds the context sent to the language model.
const historyWindow = 15

const fallbackReply = "Sorry, I encountered an error processing your request. Please try again."

const titleLimit = 50

type Workflow struct {
	conversations repo.ConversationRepoInterface
	client        llm.Client
}

func NewWorkflow(conversations repo.ConversationRepoInterface, client llm.Client) *Workflow {
	return &Workflow{
		conversations: conversations,
		client:        client,
	}
}

// HandleChat runs one turn of the chat flow: resolve or create the
// conversation, persist the user message, call the model with the recent
// history, persist the assistant reply. A collaborator failure degrades to a
// fixed apology message instead of failing the request.
func (w *Workflow) HandleChat(ctx context.Context, ownerID uuid.UUID, content string, conversationID *uuid.UUID) (*models.Message, error) {
	var conversation *models.Conversation
	if conversationID == nil {
		conversation = &models.Conversation{
			UserID: ownerID,
			Title:  deriveTitle(content),
		}
		if err := w.conversations.Create(conversation); err != nil {
			return nil, err
		}
	} else {
		var err error
		conversation, err = w.conversations.GetByID(ownerID, *conversationID)
		if err != nil {
			return nil, err
		}
	}

	userMessage := &models.Message{
		ConversationID: conversation.ID,
		Role:           models.RoleUser,
		Content:        content,
	}
	if err := w.conversations.AddMessage(userMessage); err != nil {
		return nil, err
	}

	history, err := w.conversations.GetHistory(conversation.ID, historyWindow)
	if err != nil {
		return nil, err
	}

	reply, err := w.client.Chat(ctx, prompts.SystemInstruction(ownerID.String()), history)
	if err != nil || reply == "" {
		log.Printf("assistant error for user %s: %v", ownerID, err)
		reply = fallbackReply
	}

	assistantMessage := &models.Message{
		ConversationID: conversation.ID,
		Role:           models.RoleAssistant,
		Content:        reply,
	}
	if err := w.conversations.AddMessage(assistantMessage); err != nil {
		return nil, err
	}

	return assistantMessage, nil
}

// deriveTitle takes the first characters of the opening message as the
// conversation title.
func deriveTitle(content string) string {
	runes := []rune(content)
	if len(runes) <= titleLimit {
		return content
	}
	return string(runes[:titleLimit]) + "..."
}
