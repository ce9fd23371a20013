package routes

import (
	"todo-backend/internal/handlers"
	"todo-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func registerAnalytics(r fiber.Router, db *gorm.DB) {
	statsRepo := repo.NewStatsRepository(db)
	analyticsHandler := handlers.NewAnalyticsHandler(statsRepo)

	r.Get("/analytics/stats", analyticsHandler.GetStats)
}
