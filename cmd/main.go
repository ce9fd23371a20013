package main

import (
	"log"
	"todo-backend/internal/api"
	"todo-backend/internal/api/routes"
	"todo-backend/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	// Connect to database
	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer func() {
		if err := config.CloseDB(db); err != nil {
			log.Println("Error closing database:", err)
		}
	}()

	// Run migrations
	if err := config.MigrateAllModels(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Create and configure Fiber app
	app := api.NewServer(cfg)

	// Register routes
	routes.Register(app, db, cfg)

	// Start server
	if err := api.StartServer(app, cfg); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
