// File: /routes/routes.go
package routes

import (
	"cleanworld-api/config"
	"cleanworld-api/controllers"
	"cleanworld-api/middleware"
	"cleanworld-api/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCORS allows the web client (Vite dev server or deployed origin) to
// talk to the API with credentials.
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService) {
	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, emailService)
	userController := controllers.NewUserController(db, cfg.UploadDir)
	zoneController := controllers.NewZoneController(db)
	eventController := controllers.NewEventController(db)
	rewardController := controllers.NewRewardController(db, emailService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Avatar uploads are served back as static files
	r.Static("/uploads", cfg.UploadDir)

	// Public routes; the web client fetches zones and events without a session
	r.POST("/users", authController.Register)
	r.POST("/users/login", authController.Login)
	r.GET("/users/check-email", authController.CheckEmail)
	r.GET("/users/check-user", authController.CheckUser)

	r.GET("/zones", zoneController.GetZones)
	r.GET("/zones/:id", zoneController.GetZone)

	r.GET("/events", eventController.GetEvents)
	r.GET("/events/:id", eventController.GetEvent)

	r.GET("/rewards", rewardController.GetRewards)

	// Protected routes
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		// Zone routes
		protected.POST("/zones", zoneController.CreateZone)
		protected.PATCH("/zones/:id", zoneController.UpdateZone)
		protected.DELETE("/zones/:id", zoneController.DeleteZone)

		// Event routes
		protected.POST("/events", eventController.CreateEvent)
		protected.POST("/events/:id/attend", eventController.Attend)
		protected.POST("/events/:id/unattend", eventController.Unattend)

		// Profile routes
		protected.GET("/users/:id", userController.GetUser)
		protected.PATCH("/users/:id", userController.UpdateUser)
		protected.PATCH("/users/:id/password", userController.UpdatePassword)
		protected.PATCH("/users/:id/avatar", userController.UpdateAvatar)

		// Reward routes
		protected.POST("/rewards/:id/redeem", rewardController.Redeem)
		protected.GET("/rewards/redemptions", rewardController.GetRedemptions)
	}
}
