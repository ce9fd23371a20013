package routes

import (
	"todo-backend/internal/api/middleware"
	"todo-backend/internal/config"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Register wires all route groups. The owner guard sits on a /:userId group,
// which Fiber prefix-matches like Use middleware, so every static prefix
// (health, users, analytics, tools, public testimonials) must be registered
// before the group exists or the guard swallows it.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	api := app.Group("/api")
	requireAuth := middleware.RequireAuth([]byte(cfg.JWTSecret))

	registerHealth(api)
	registerUsers(api, db, cfg)
	registerAnalytics(api, db)
	registerTools(api, db, requireAuth)
	testimonialHandler := registerTestimonials(api, db, requireAuth)

	owner := api.Group("/:userId", requireAuth, middleware.RequireOwner())
	registerTasks(owner, db)
	registerOwnerTestimonials(owner, testimonialHandler)
	registerChat(owner, db, cfg)
}
