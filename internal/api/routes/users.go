package routes

import (
	"todo-backend/internal/config"
	"todo-backend/internal/handlers"
	"todo-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func registerUsers(r fiber.Router, db *gorm.DB, cfg *config.Config) {
	userRepo := repo.NewUserRepository(db)
	userHandler := handlers.NewUserHandler(userRepo, []byte(cfg.JWTSecret), cfg.TokenTTL)

	r.Post("/users/register", userHandler.Register)
	r.Post("/users/login", userHandler.Login)
	r.Get("/users/:userId", userHandler.GetUser)
}
