package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ashwannasleep/UX-Job-Tracker/internal/config"
	"github.com/ashwannasleep/UX-Job-Tracker/internal/database"
	"github.com/ashwannasleep/UX-Job-Tracker/internal/handlers"
	"github.com/ashwannasleep/UX-Job-Tracker/internal/services"
	"github.com/ashwannasleep/UX-Job-Tracker/internal/store"
)

func main() {
	// 1. Environment & Config
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to create logger:", err)
	}
	defer logger.Sync()

	// 2. Storage Backend
	var storage store.Storage
	switch cfg.StorageBackend {
	case "memory":
		logger.Info("using in-memory storage")
		storage = store.NewMemory()
	default:
		db, err := database.Connect(cfg)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		logger.Info("database connection established")
		storage = store.NewGorm(db)
	}

	// 3. Core Services
	applicationService := services.NewApplicationService(storage)
	interviewService := services.NewInterviewService(storage)
	importService := services.NewImportService(applicationService, logger)

	// 4. Handlers
	applicationHandler := handlers.NewApplicationHandler(applicationService, logger)
	interviewHandler := handlers.NewInterviewHandler(interviewService, logger)
	linkedInHandler := handlers.NewLinkedInHandler(importService, logger)

	// 5. Router & CORS
	// The browser extension posts from linkedin.com pages, so origins stay open.
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 6. Routes
	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		api.GET("/applications", applicationHandler.GetAll)
		api.POST("/applications", applicationHandler.Create)
		api.GET("/applications/:id", applicationHandler.GetByID)
		api.PUT("/applications/:id", applicationHandler.Update)
		api.DELETE("/applications/:id", applicationHandler.Delete)
		api.GET("/applications/status/:status", applicationHandler.GetByStatus)
		api.GET("/applications/search/:query", applicationHandler.Search)
		api.GET("/applications/:id/interviews", interviewHandler.GetByApplication)

		api.GET("/stats", applicationHandler.Stats)

		api.POST("/interviews", interviewHandler.Create)
		api.GET("/interviews/upcoming", interviewHandler.GetUpcoming)
		api.PUT("/interviews/:id", interviewHandler.Update)
		api.DELETE("/interviews/:id", interviewHandler.Delete)

		api.POST("/linkedin/parse-job", linkedInHandler.ParseJob)
		api.POST("/linkedin/bulk-import", linkedInHandler.BulkImport)
		api.POST("/linkedin/create-application", linkedInHandler.CreateApplication)
	}

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server failed to start", zap.Error(err))
	}
}
