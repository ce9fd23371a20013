package handlers

import (
	"log"
	"todo-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
)

type AnalyticsHandler struct {
	stats repo.StatsRepoInterface
}

func NewAnalyticsHandler(stats repo.StatsRepoInterface) *AnalyticsHandler {
	return &AnalyticsHandler{stats: stats}
}

// GetStats returns aggregate counts across all users. No auth required.
func (h *AnalyticsHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.stats.Counts()
	if err != nil {
		log.Println(err, "Error fetching stats")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error fetching application statistics",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"all_users":       stats.AllUsers,
		"total_tasks":     stats.TotalTasks,
		"completed_tasks": stats.CompletedTasks,
		"server_status":   "online",
	})
}
