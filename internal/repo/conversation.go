package repo

import (
	"errors"
	"time"
	"todo-backend/internal/llm"
	"todo-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConversationRepo struct {
	db *gorm.DB
}

type ConversationRepoInterface interface {
	Create(conversation *models.Conversation) error
	ListByOwner(ownerID uuid.UUID) ([]models.Conversation, error)
	GetByID(ownerID, conversationID uuid.UUID) (*models.Conversation, error)
	AddMessage(message *models.Message) error
	ListMessages(ownerID, conversationID uuid.UUID) ([]models.Message, error)
	RecentMessages(conversationID uuid.UUID, limit int) ([]models.Message, error)
	GetHistory(conversationID uuid.UUID, size int) ([]llm.Message, error)
}

func NewConversationRepository(db *gorm.DB) ConversationRepoInterface {
	return &ConversationRepo{db: db}
}

func (r *ConversationRepo) Create(conversation *models.Conversation) error {
	conversation.ID = uuid.New()
	conversation.CreatedAt = time.Now()
	conversation.UpdatedAt = time.Now()
	return r.db.Create(conversation).Error
}

func (r *ConversationRepo) ListByOwner(ownerID uuid.UUID) ([]models.Conversation, error) {
	var conversations []models.Conversation
	err := r.db.Where("user_id = ?", ownerID).Order("created_at desc").Find(&conversations).Error
	return conversations, err
}

func (r *ConversationRepo) GetByID(ownerID, conversationID uuid.UUID) (*models.Conversation, error) {
	var conversation models.Conversation
	err := r.db.Where("id = ? AND user_id = ?", conversationID, ownerID).First(&conversation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

// AddMessage appends a message and refreshes the conversation's updated_at in
// a single transaction.
func (r *ConversationRepo) AddMessage(message *models.Message) error {
	message.ID = uuid.New()
	message.CreatedAt = time.Now()

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}
		return tx.Model(&models.Conversation{}).
			Where("id = ?", message.ConversationID).
			Update("updated_at", time.Now()).Error
	})
}

// ListMessages returns the full message sequence of a conversation, oldest
// first. The conversation must belong to ownerID.
func (r *ConversationRepo) ListMessages(ownerID, conversationID uuid.UUID) ([]models.Message, error) {
	if _, err := r.GetByID(ownerID, conversationID); err != nil {
		return nil, err
	}

	var messages []models.Message
	err := r.db.Where("conversation_id = ?", conversationID).
		Order("created_at asc").
		Find(&messages).Error
	return messages, err
}

// RecentMessages returns at most limit messages in chronological order,
// fetched newest-first and then reversed.
func (r *ConversationRepo) RecentMessages(conversationID uuid.UUID, limit int) ([]models.Message, error) {
	if limit <= 0 {
		limit = 15
	}
	if limit > 100 {
		limit = 100
	}

	var messages []models.Message
	err := r.db.Where("conversation_id = ?", conversationID).
		Order("created_at desc").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (r *ConversationRepo) GetHistory(conversationID uuid.UUID, size int) ([]llm.Message, error) {
	messages, err := r.RecentMessages(conversationID, size)
	if err != nil {
		return nil, err
	}

	history := []llm.Message{}
	for _, message := range messages {
		history = append(history, llm.Message{
			Role:    string(message.Role),
			Content: message.Content,
		})
	}
	return history, nil
}
