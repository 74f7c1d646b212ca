// ~/Documents/CODING/devrally/main.go
package main

import (
	"log"
	"os"
	"time"

	"devrally/database"
	"devrally/handlers"
	"devrally/middleware"
	"devrally/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	// Validate critical environment variables
	validateEnvironment()

	// Initialize database
	database.InitDB()
	defer database.CloseDB()

	// Wire handlers against the database and broadcast hub
	handlers.InitHandlers()

	// Seed the challenge catalog on first boot
	services.SeedChallenges(database.GetDB())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    4 * 1024 * 1024, // 4MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	// Apply rate limiting to all routes
	app.Use(middleware.RateLimitMiddleware())

	// API Routes
	api := app.Group("/api")

	// Auth routes with stricter rate limiting
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.AuthRateLimitMiddleware())
	authGroup.Post("/guest", handlers.GuestLogin)
	authGroup.Post("/login", handlers.Login)
	authGroup.Post("/register", handlers.Register)

	// User routes
	api.Get("/users/:id", handlers.GetUser)
	api.Get("/users/:id/team", handlers.GetUserTeam)
	api.Get("/users/:id/attempts", handlers.GetUserAttempts)

	// Team routes (require authentication)
	teamGroup := api.Group("/teams")
	teamGroup.Use(middleware.AuthMiddleware)
	teamGroup.Post("/", handlers.CreateTeam)
	teamGroup.Get("/:id", handlers.GetTeam)
	teamGroup.Get("/:id/members", handlers.GetTeamMembers)
	teamGroup.Post("/:id/members", handlers.AddTeamMember)
	teamGroup.Delete("/:teamId/members/:userId", handlers.RemoveTeamMember)
	teamGroup.Get("/:id/attempts", handlers.GetTeamAttempts)
	teamGroup.Get("/:id/stats", handlers.GetTeamStats)

	// Challenge routes
	api.Get("/challenges", handlers.GetChallenges)
	api.Get("/challenges/:id", handlers.GetChallenge)
	api.Post("/challenges", middleware.AuthMiddleware, handlers.CreateChallenge)
	api.Patch("/challenges/:id/active", middleware.AuthMiddleware, handlers.SetChallengeActive)
	api.Post("/challenges/:id/attempts", middleware.AuthMiddleware, handlers.StartAttempt)

	// Attempt routes
	api.Patch("/attempts/:id", middleware.AuthMiddleware, handlers.UpdateAttempt)

	// Heuristic scoring endpoint (stateless, no auth required)
	api.Post("/score/solution", handlers.ScoreSolution)

	// Leaderboard
	api.Get("/leaderboard", handlers.GetLeaderboard)

	// Game room routes
	roomGroup := api.Group("/game-rooms")
	roomGroup.Use(middleware.AuthMiddleware)
	roomGroup.Post("/", handlers.CreateGameRoom)
	roomGroup.Get("/", handlers.GetActiveGameRooms)
	roomGroup.Get("/:id", handlers.GetGameRoom)
	roomGroup.Patch("/:id", handlers.UpdateGameRoom)

	// WebSocket endpoint. Guests are allowed, so auth is optional here.
	app.Get("/ws", middleware.OptionalAuthMiddleware, handlers.WebSocketUpgrade, handlers.WebSocketHandler)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("🚀 HTTP server starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))
	log.Printf("🔐 JWT Secret configured: %v", os.Getenv("JWT_SECRET") != "")
	log.Printf("🌐 WebSocket available at ws://localhost:%s/ws", port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// validateEnvironment checks for required environment variables
func validateEnvironment() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("FATAL: JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("FATAL: JWT_SECRET must be at least 32 characters long")
	}

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "production" {
		corsOrigins := os.Getenv("CORS_ORIGINS")
		if corsOrigins == "" || corsOrigins == "http://localhost:3000" {
			log.Println("WARNING: CORS_ORIGINS not properly configured for production")
		}
	}
}

// customErrorHandler keeps API error responses in a single shape
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	log.Printf("❌ Error %d on %s %s: %v", code, c.Method(), c.Path(), err)

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
