package workflow

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"todo-backend/internal/llm"
	"todo-backend/internal/models"
	"todo-backend/internal/repo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConversationRepo struct {
	conversations map[uuid.UUID]*models.Conversation
	messages      []*models.Message
}

func newFakeConversationRepo() *fakeConversationRepo {
	return &fakeConversationRepo{conversations: map[uuid.UUID]*models.Conversation{}}
}

func (f *fakeConversationRepo) Create(conversation *models.Conversation) error {
	conversation.ID = uuid.New()
	conversation.CreatedAt = time.Now()
	conversation.UpdatedAt = time.Now()
	f.conversations[conversation.ID] = conversation
	return nil
}

func (f *fakeConversationRepo) ListByOwner(ownerID uuid.UUID) ([]models.Conversation, error) {
	out := []models.Conversation{}
	for _, c := range f.conversations {
		if c.UserID == ownerID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeConversationRepo) GetByID(ownerID, conversationID uuid.UUID) (*models.Conversation, error) {
	c, ok := f.conversations[conversationID]
	if !ok || c.UserID != ownerID {
		return nil, repo.ErrNotFound
	}
	return c, nil
}

func (f *fakeConversationRepo) AddMessage(message *models.Message) error {
	message.ID = uuid.New()
	message.CreatedAt = time.Now()
	f.messages = append(f.messages, message)
	if c, ok := f.conversations[message.ConversationID]; ok {
		c.UpdatedAt = time.Now()
	}
	return nil
}

func (f *fakeConversationRepo) ListMessages(ownerID, conversationID uuid.UUID) ([]models.Message, error) {
	if _, err := f.GetByID(ownerID, conversationID); err != nil {
		return nil, err
	}
	out := []models.Message{}
	for _, m := range f.messages {
		if m.ConversationID == conversationID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeConversationRepo) RecentMessages(conversationID uuid.UUID, limit int) ([]models.Message, error) {
	all := []models.Message{}
	for _, m := range f.messages {
		if m.ConversationID == conversationID {
			all = append(all, *m)
		}
	}
	if len(all) > limit {
		all = all[len(all)-limit:]
	}
	return all, nil
}

func (f *fakeConversationRepo) GetHistory(conversationID uuid.UUID, size int) ([]llm.Message, error) {
	messages, err := f.RecentMessages(conversationID, size)
	if err != nil {
		return nil, err
	}
	history := []llm.Message{}
	for _, m := range messages {
		history = append(history, llm.Message{Role: string(m.Role), Content: m.Content})
	}
	return history, nil
}

type fakeClient struct {
	reply      string
	err        error
	gotSystem  string
	gotHistory []llm.Message
}

func (f *fakeClient) Chat(ctx context.Context, systemMessage string, messages []llm.Message) (string, error) {
	f.gotSystem = systemMessage
	f.gotHistory = messages
	return f.reply, f.err
}

func TestHandleChatCreatesConversation(t *testing.T) {
	conversations := newFakeConversationRepo()
	client := &fakeClient{reply: "hello there"}
	w := NewWorkflow(conversations, client)

	owner := uuid.New()
	reply, err := w.HandleChat(context.Background(), owner, "buy milk before friday", nil)
	require.NoError(t, err)

	require.Len(t, conversations.conversations, 1)
	var conversation *models.Conversation
	for _, c := range conversations.conversations {
		conversation = c
	}
	assert.Equal(t, owner, conversation.UserID)
	assert.Equal(t, "buy milk before friday", conversation.Title)

	// exactly one user message and one assistant message
	require.Len(t, conversations.messages, 2)
	assert.Equal(t, models.RoleUser, conversations.messages[0].Role)
	assert.Equal(t, "buy milk before friday", conversations.messages[0].Content)
	assert.Equal(t, models.RoleAssistant, conversations.messages[1].Role)
	assert.Equal(t, "hello there", conversations.messages[1].Content)
	assert.Equal(t, "hello there", reply.Content)

	assert.Contains(t, client.gotSystem, owner.String())
}

func TestHandleChatTruncatesTitle(t *testing.T) {
	conversations := newFakeConversationRepo()
	w := NewWorkflow(conversations, &fakeClient{reply: "ok"})

	long := strings.Repeat("a", 80)
	_, err := w.HandleChat(context.Background(), uuid.New(), long, nil)
	require.NoError(t, err)

	for _, c := range conversations.conversations {
		assert.Equal(t, strings.Repeat("a", 50)+"...", c.Title)
	}
}

func TestHandleChatUnknownConversation(t *testing.T) {
	conversations := newFakeConversationRepo()
	w := NewWorkflow(conversations, &fakeClient{reply: "ok"})

	missing := uuid.New()
	_, err := w.HandleChat(context.Background(), uuid.New(), "hi", &missing)
	assert.ErrorIs(t, err, repo.ErrNotFound)
	assert.Empty(t, conversations.messages)
}

func TestHandleChatForeignConversation(t *testing.T) {
	conversations := newFakeConversationRepo()
	w := NewWorkflow(conversations, &fakeClient{reply: "ok"})

	other := &models.Conversation{UserID: uuid.New(), Title: "theirs"}
	require.NoError(t, conversations.Create(other))

	_, err := w.HandleChat(context.Background(), uuid.New(), "hi", &other.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestHandleChatCollaboratorFailure(t *testing.T) {
	conversations := newFakeConversationRepo()
	w := NewWorkflow(conversations, &fakeClient{err: errors.New("upstream down")})

	reply, err := w.HandleChat(context.Background(), uuid.New(), "hi", nil)
	require.NoError(t, err)
	assert.Equal(t, fallbackReply, reply.Content)
	assert.Equal(t, models.RoleAssistant, reply.Role)
}

func TestHandleChatHistoryWindow(t *testing.T) {
	conversations := newFakeConversationRepo()
	client := &fakeClient{reply: "ok"}
	w := NewWorkflow(conversations, client)

	owner := uuid.New()
	conversation := &models.Conversation{UserID: owner, Title: "long chat"}
	require.NoError(t, conversations.Create(conversation))
	for i := 0; i < 30; i++ {
		require.NoError(t, conversations.AddMessage(&models.Message{
			ConversationID: conversation.ID,
			Role:           models.RoleUser,
			Content:        "old",
		}))
	}

	_, err := w.HandleChat(context.Background(), owner, "latest", &conversation.ID)
	require.NoError(t, err)

	require.Len(t, client.gotHistory, historyWindow)
	// the window ends with the just-appended user message
	assert.Equal(t, "latest", client.gotHistory[len(client.gotHistory)-1].Content)
}

func TestDeriveTitle(t *testing.T) {
	assert.Equal(t, "short", deriveTitle("short"))
	assert.Equal(t, strings.Repeat("x", 50), deriveTitle(strings.Repeat("x", 50)))
	assert.Equal(t, strings.Repeat("x", 50)+"...", deriveTitle(strings.Repeat("x", 51)))
}
