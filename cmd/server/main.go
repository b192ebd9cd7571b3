// @title TeamPulse Reports API
// @version 1.0
// @description Report aggregation and spreadsheet export backend for TeamPulse
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"log"

	"teampulse-be/config"
	"teampulse-be/internal/database"
	"teampulse-be/internal/handlers"
	"teampulse-be/internal/middleware"
	"teampulse-be/internal/repository"
	"teampulse-be/internal/services"

	"github.com/gin-gonic/gin"

	_ "teampulse-be/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to MongoDB (export audit history). Optional: without a URI the
	// service still serves reports, it just skips the audit trail.
	var exportRepo *repository.ExportRepository
	if cfg.MongoDBURI != "" {
		mongodb, err := database.NewMongoDB(cfg.MongoDBURI, cfg.MongoDBDatabase)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB:", err)
		}
		defer mongodb.Disconnect()
		exportRepo = repository.NewExportRepository(mongodb)
	} else {
		log.Println("MONGODB_URI not set, export history disabled")
	}

	// Initialize services
	hrAPI := services.NewHRAPIService(cfg)
	reportSvc := services.NewReportService(hrAPI, cfg.SnapshotTTL, cfg.RosterTTL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	services.StartSnapshotJanitor(ctx, cfg.JanitorInterval, reportSvc)

	// Initialize handlers
	reportsHandler := handlers.NewReportsHandler(reportSvc)
	exportHandler := handlers.NewExportHandler(reportSvc, exportRepo)
	employeesHandler := handlers.NewEmployeesHandler(reportSvc)

	// Initialize Gin
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// Public routes
	public := r.Group("/api")
	{
		// Health check
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"message": "TeamPulse Reports API is running",
			})
		})
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware(cfg))
	{
		protected.GET("/employees", employeesHandler.ListEmployees)

		protected.GET("/reports/projects", reportsHandler.GetProjectReport)
		protected.GET("/reports/users", reportsHandler.GetUserReport)
		protected.GET("/reports/tasks", reportsHandler.GetTaskReport)

		protected.GET("/reports/export", exportHandler.Export)
		protected.GET("/reports/exports", exportHandler.ListExports)
	}

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
