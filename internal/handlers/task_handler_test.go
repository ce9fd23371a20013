package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"todo-backend/internal/api/middleware"
	"todo-backend/internal/auth"
	"todo-backend/internal/models"
	"todo-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

type fakeTaskRepo struct {
	tasks map[uuid.UUID]*models.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[uuid.UUID]*models.Task{}}
}

func (f *fakeTaskRepo) Create(task *models.Task) error {
	task.ID = uuid.New()
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt
	f.tasks[task.ID] = task
	return nil
}

func (f *fakeTaskRepo) ListByOwner(ownerID uuid.UUID) ([]models.Task, error) {
	out := []models.Task{}
	for _, t := range f.tasks {
		if t.UserID == ownerID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) GetByID(ownerID, taskID uuid.UUID) (*models.Task, error) {
	t, ok := f.tasks[taskID]
	if !ok || t.UserID != ownerID {
		return nil, repo.ErrNotFound
	}
	return t, nil
}

func (f *fakeTaskRepo) Update(ownerID, taskID uuid.UUID, patch repo.TaskPatch) (*models.Task, error) {
	t, err := f.GetByID(ownerID, taskID)
	if err != nil {
		return nil, err
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = patch.Description
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	t.UpdatedAt = time.Now()
	return t, nil
}

func (f *fakeTaskRepo) Delete(ownerID, taskID uuid.UUID) (bool, error) {
	if _, err := f.GetByID(ownerID, taskID); err != nil {
		return false, nil
	}
	delete(f.tasks, taskID)
	return true, nil
}

func newTaskApp(tasks repo.TaskRepoInterface) *fiber.App {
	app := fiber.New()
	h := NewTaskHandler(tasks)

	owner := app.Group("/api/:userId", middleware.RequireAuth(testSecret), middleware.RequireOwner())
	owner.Post("/tasks", h.CreateTask)
	owner.Get("/tasks", h.ListTasks)
	owner.Get("/tasks/:taskId", h.GetTask)
	owner.Put("/tasks/:taskId", h.UpdateTask)
	owner.Delete("/tasks/:taskId", h.DeleteTask)
	return app
}

func bearerFor(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := auth.Issue(testSecret, userID.String(), "", "", time.Minute)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(t *testing.T, app *fiber.App, method, path, bearer string, body interface{}) (*fiber.App, int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return app, resp.StatusCode, raw
}

func TestCreateAndListTasks(t *testing.T) {
	app := newTaskApp(newFakeTaskRepo())
	owner := uuid.New()
	bearer := bearerFor(t, owner)
	base := "/api/" + owner.String() + "/tasks"

	_, code, raw := doJSON(t, app, "GET", base, bearer, nil)
	assert.Equal(t, fiber.StatusOK, code)
	assert.JSONEq(t, "[]", string(raw))

	_, code, raw = doJSON(t, app, "POST", base, bearer, fiber.Map{"title": "buy milk"})
	require.Equal(t, fiber.StatusCreated, code)
	var created models.Task
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, "buy milk", created.Title)
	assert.False(t, created.Completed)
	assert.Equal(t, owner, created.UserID)

	_, code, raw = doJSON(t, app, "GET", base, bearer, nil)
	assert.Equal(t, fiber.StatusOK, code)
	var listed []models.Task
	require.NoError(t, json.Unmarshal(raw, &listed))
	require.Len(t, listed, 1)
}

func TestCreateTaskValidation(t *testing.T) {
	app := newTaskApp(newFakeTaskRepo())
	owner := uuid.New()

	_, code, _ := doJSON(t, app, "POST", "/api/"+owner.String()+"/tasks", bearerFor(t, owner), fiber.Map{"title": ""})
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)

	// length bounds count characters, not bytes
	_, code, _ = doJSON(t, app, "POST", "/api/"+owner.String()+"/tasks", bearerFor(t, owner), fiber.Map{"title": strings.Repeat("ü", 255)})
	assert.Equal(t, fiber.StatusCreated, code)

	_, code, _ = doJSON(t, app, "POST", "/api/"+owner.String()+"/tasks", bearerFor(t, owner), fiber.Map{"title": strings.Repeat("ü", 256)})
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
}

func TestTaskOwnershipIsolation(t *testing.T) {
	tasks := newFakeTaskRepo()
	app := newTaskApp(tasks)

	ownerA := uuid.New()
	task := &models.Task{UserID: ownerA, Title: "secret"}
	require.NoError(t, tasks.Create(task))

	// user B asking for A's task id through B's own scope sees NotFound, with
	// no difference from a nonexistent id
	ownerB := uuid.New()
	bearerB := bearerFor(t, ownerB)

	_, code, rawExisting := doJSON(t, app, "GET", "/api/"+ownerB.String()+"/tasks/"+task.ID.String(), bearerB, nil)
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.NotContains(t, string(rawExisting), "secret")

	_, codeMissing, rawMissing := doJSON(t, app, "GET", "/api/"+ownerB.String()+"/tasks/"+uuid.NewString(), bearerB, nil)
	assert.Equal(t, code, codeMissing)
	assert.JSONEq(t, string(rawExisting), string(rawMissing))
}

func TestUpdateTaskEmptyPatch(t *testing.T) {
	tasks := newFakeTaskRepo()
	app := newTaskApp(tasks)

	owner := uuid.New()
	task := &models.Task{UserID: owner, Title: "unchanged"}
	require.NoError(t, tasks.Create(task))
	before := task.UpdatedAt

	time.Sleep(5 * time.Millisecond)
	_, code, raw := doJSON(t, app, "PUT", "/api/"+owner.String()+"/tasks/"+task.ID.String(), bearerFor(t, owner), fiber.Map{})
	require.Equal(t, fiber.StatusOK, code)

	var updated models.Task
	require.NoError(t, json.Unmarshal(raw, &updated))
	assert.Equal(t, "unchanged", updated.Title)
	assert.False(t, updated.Completed)
	assert.True(t, updated.UpdatedAt.After(before))
}

func TestDeleteTask(t *testing.T) {
	tasks := newFakeTaskRepo()
	app := newTaskApp(tasks)

	owner := uuid.New()
	task := &models.Task{UserID: owner, Title: "to delete"}
	require.NoError(t, tasks.Create(task))
	bearer := bearerFor(t, owner)

	_, code, _ := doJSON(t, app, "DELETE", "/api/"+owner.String()+"/tasks/"+task.ID.String(), bearer, nil)
	assert.Equal(t, fiber.StatusOK, code)

	// absent id and foreign id are observably identical
	_, codeAbsent, _ := doJSON(t, app, "DELETE", "/api/"+owner.String()+"/tasks/"+task.ID.String(), bearer, nil)
	assert.Equal(t, fiber.StatusNotFound, codeAbsent)

	other := &models.Task{UserID: uuid.New(), Title: "foreign"}
	require.NoError(t, tasks.Create(other))
	_, codeForeign, _ := doJSON(t, app, "DELETE", "/api/"+owner.String()+"/tasks/"+other.ID.String(), bearer, nil)
	assert.Equal(t, codeAbsent, codeForeign)
}

func TestTasksRequireToken(t *testing.T) {
	app := newTaskApp(newFakeTaskRepo())
	owner := uuid.New()

	_, code, _ := doJSON(t, app, "GET", "/api/"+owner.String()+"/tasks", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, code)
}
