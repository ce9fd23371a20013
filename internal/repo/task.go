package repo

import (
	"errors"
	"time"
	"todo-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskPatch carries the fields of a partial update; nil fields stay untouched.
type TaskPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

type TaskRepo struct {
	db *gorm.DB
}

type TaskRepoInterface interface {
	Create(task *models.Task) error
	ListByOwner(ownerID uuid.UUID) ([]models.Task, error)
	GetByID(ownerID, taskID uuid.UUID) (*models.Task, error)
	Update(ownerID, taskID uuid.UUID, patch TaskPatch) (*models.Task, error)
	Delete(ownerID, taskID uuid.UUID) (bool, error)
}

func NewTaskRepository(db *gorm.DB) TaskRepoInterface {
	return &TaskRepo{db: db}
}

func (r *TaskRepo) Create(task *models.Task) error {
	task.ID = uuid.New()
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	return r.db.Create(task).Error
}

func (r *TaskRepo) ListByOwner(ownerID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Where("user_id = ?", ownerID).Order("created_at desc").Find(&tasks).Error
	return tasks, err
}

// GetByID filters by both task id and owner id in a single query so a foreign
// task behaves exactly like a missing one.
func (r *TaskRepo) GetByID(ownerID, taskID uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.Where("id = ? AND user_id = ?", taskID, ownerID).First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepo) Update(ownerID, taskID uuid.UUID, patch TaskPatch) (*models.Task, error) {
	task, err := r.GetByID(ownerID, taskID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Completed != nil {
		updates["completed"] = *patch.Completed
	}

	if err := r.db.Model(task).Updates(updates).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// Delete reports false, not an error, when the row is absent or foreign.
func (r *TaskRepo) Delete(ownerID, taskID uuid.UUID) (bool, error) {
	res := r.db.Where("id = ? AND user_id = ?", taskID, ownerID).Delete(&models.Task{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
