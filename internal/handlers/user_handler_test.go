package handlers

import (
	"encoding/json"
	"testing"
	"time"
	"todo-backend/internal/auth"
	"todo-backend/internal/models"
	"todo-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*models.User{}}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return repo.ErrDuplicateEmail
		}
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(id uuid.UUID) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) GetByUserName(userName string) (*models.User, error) {
	for _, u := range f.users {
		if u.UserName == userName {
			return u, nil
		}
	}
	return nil, repo.ErrNotFound
}

func newUserApp(users repo.UserRepoInterface) *fiber.App {
	app := fiber.New()
	h := NewUserHandler(users, testSecret, 30*time.Minute)

	app.Post("/api/users/register", h.Register)
	app.Post("/api/users/login", h.Login)
	app.Get("/api/users/:userId", h.GetUser)
	return app
}

func TestRegisterLoginFlow(t *testing.T) {
	users := newFakeUserRepo()
	app := newUserApp(users)

	_, code, raw := doJSON(t, app, "POST", "/api/users/register", "", fiber.Map{
		"user_name": "ana",
		"email":     "ana@x.com",
		"password":  "secret1",
	})
	require.Equal(t, fiber.StatusCreated, code)
	var created models.PublicUser
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, "ana", created.UserName)
	assert.NotContains(t, string(raw), "password")

	_, code, raw = doJSON(t, app, "POST", "/api/users/login", "", fiber.Map{
		"email":    "ana@x.com",
		"password": "secret1",
	})
	require.Equal(t, fiber.StatusOK, code)
	var login struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(raw, &login))
	assert.Equal(t, "bearer", login.TokenType)

	claims, err := auth.Decode(testSecret, login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, created.ID.String(), claims.Subject)
	assert.Equal(t, "ana@x.com", claims.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	app := newUserApp(users)

	body := fiber.Map{"user_name": "ana", "email": "ana@x.com", "password": "secret1"}
	_, code, _ := doJSON(t, app, "POST", "/api/users/register", "", body)
	require.Equal(t, fiber.StatusCreated, code)

	_, code, _ = doJSON(t, app, "POST", "/api/users/register", "", fiber.Map{
		"user_name": "other", "email": "ana@x.com", "password": "secret2",
	})
	assert.Equal(t, fiber.StatusConflict, code)

	// first record is unaffected
	require.Len(t, users.users, 1)
	for _, u := range users.users {
		assert.Equal(t, "ana", u.UserName)
	}
}

func TestLoginByUserName(t *testing.T) {
	users := newFakeUserRepo()
	app := newUserApp(users)

	_, code, _ := doJSON(t, app, "POST", "/api/users/register", "", fiber.Map{
		"user_name": "ana", "email": "ana@x.com", "password": "secret1",
	})
	require.Equal(t, fiber.StatusCreated, code)

	_, code, _ = doJSON(t, app, "POST", "/api/users/login", "", fiber.Map{
		"user_name": "ana", "password": "secret1",
	})
	assert.Equal(t, fiber.StatusOK, code)
}

func TestLoginWrongPassword(t *testing.T) {
	users := newFakeUserRepo()
	app := newUserApp(users)

	_, code, _ := doJSON(t, app, "POST", "/api/users/register", "", fiber.Map{
		"user_name": "ana", "email": "ana@x.com", "password": "secret1",
	})
	require.Equal(t, fiber.StatusCreated, code)

	_, code, _ = doJSON(t, app, "POST", "/api/users/login", "", fiber.Map{
		"email": "ana@x.com", "password": "wrong",
	})
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestRegisterValidation(t *testing.T) {
	app := newUserApp(newFakeUserRepo())

	cases := []struct {
		name string
		body fiber.Map
	}{
		{name: "missing user_name", body: fiber.Map{"email": "a@x.com", "password": "secret1"}},
		{name: "bad email", body: fiber.Map{"user_name": "ana", "email": "nope", "password": "secret1"}},
		{name: "short password", body: fiber.Map{"user_name": "ana", "email": "a@x.com", "password": "abc"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, code, _ := doJSON(t, app, "POST", "/api/users/register", "", tc.body)
			assert.Equal(t, fiber.StatusUnprocessableEntity, code)
		})
	}
}

func TestGetUserPublic(t *testing.T) {
	users := newFakeUserRepo()
	app := newUserApp(users)

	user := &models.User{UserName: "ana", Email: "ana@x.com", Password: "hash"}
	require.NoError(t, users.Create(user))

	_, code, raw := doJSON(t, app, "GET", "/api/users/"+user.ID.String(), "", nil)
	assert.Equal(t, fiber.StatusOK, code)
	assert.NotContains(t, string(raw), "hash")

	_, code, _ = doJSON(t, app, "GET", "/api/users/"+uuid.NewString(), "", nil)
	assert.Equal(t, fiber.StatusNotFound, code)

	_, code, _ = doJSON(t, app, "GET", "/api/users/not-a-uuid", "", nil)
	assert.Equal(t, fiber.StatusBadRequest, code)
}
