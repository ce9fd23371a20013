package repo

import (
	"todo-backend/internal/models"

	"gorm.io/gorm"
)

type Stats struct {
	AllUsers       int64 `json:"all_users"`
	TotalTasks     int64 `json:"total_tasks"`
	CompletedTasks int64 `json:"completed_tasks"`
}

type StatsRepo struct {
	db *gorm.DB
}

type StatsRepoInterface interface {
	Counts() (*Stats, error)
}

func NewStatsRepository(db *gorm.DB) StatsRepoInterface {
	return &StatsRepo{db: db}
}

func (r *StatsRepo) Counts() (*Stats, error) {
	var stats Stats
	if err := r.db.Model(&models.User{}).Count(&stats.AllUsers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Task{}).Count(&stats.TotalTasks).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Task{}).Where("completed = ?", true).Count(&stats.CompletedTasks).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
