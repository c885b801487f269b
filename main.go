// File: /main.go
package main

import (
	"log"
	"time"

	"cleanworld-api/config"
	"cleanworld-api/database"
	"cleanworld-api/jobs"
	"cleanworld-api/middleware"
	"cleanworld-api/routes"
	"cleanworld-api/services"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed database with test data (optional - for development)
	if err := database.SeedData(db); err != nil {
		log.Printf("Warning: Failed to seed database: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	emailService := services.NewEmailService(cfg)

	// Create router
	router := gin.Default()

	// Setup CORS middleware
	router.Use(routes.SetupCORS())

	// Security headers + JSON content-type enforcement
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.ValidateJSON())

	// Rate limiting
	router.Use(middleware.RateLimit(120, 30))

	// Setup routes
	routes.SetupRoutes(router, db, cfg, emailService)

	// Past events get settled (completed + points credited) in the background
	settlementJob := jobs.NewEventSettlementJob(db, 5*time.Minute)
	settlementJob.Start()
	defer settlementJob.Stop()

	// Start server
	log.Printf("Starting CleanWorld API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
