package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"fl-jobs/internal/config"
	"fl-jobs/internal/handler"
	"fl-jobs/internal/middleware"
	"fl-jobs/internal/repository"
	"fl-jobs/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (image upload will not work)", err)
	}

	repos := repository.NewRepositories(redis)
	services := service.NewServices(repos, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Client-ID",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, services *service.Services) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Post("/role", h.Auth.SelectRole)
	auth.Post("/otp", h.Auth.SendOTP)
	auth.Post("/login", h.Auth.Login)
	auth.Get("/session", h.Auth.Session)

	protected := v1.Group("", middleware.AuthRequired(services.Auth, services.Navigation))

	protected.Post("/auth/logout", h.Auth.Logout)

	nav := protected.Group("/navigation")
	nav.Get("/state", h.Navigation.State)
	nav.Post("/navigate", h.Navigation.Navigate)
	nav.Post("/select-store/:id", h.Navigation.SelectStore)
	nav.Post("/search-location", h.Navigation.SearchLocation)
	nav.Put("/filters", h.Navigation.ApplyFilters)

	protected.Get("/listings", h.Listing.List)
	protected.Get("/listings/:id", h.Listing.Get)
	protected.Get("/locations", h.Listing.Locations)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Post("/:id/read", h.Notification.MarkAsRead)
	notifications.Delete("/", h.Notification.ClearAll)

	users := protected.Group("/users")
	users.Get("/me", h.User.GetProfile)
	users.Put("/me", h.User.UpdateProfile)

	jobs := protected.Group("/jobs")
	jobs.Post("/", h.JobPost.Create)
	jobs.Get("/", h.JobPost.List)
	jobs.Delete("/last", h.JobPost.RemoveLast)
	jobs.Post("/:id/match/:candidateId", h.JobPost.MatchScore)

	protected.Get("/candidates", h.JobPost.Candidates)

	protected.Post("/media/store-image", h.Media.UploadStoreImage)
}
