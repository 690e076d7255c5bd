package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/dustore/pos-admin-api/internal/application/service"
	"github.com/dustore/pos-admin-api/internal/config"
	"github.com/dustore/pos-admin-api/internal/infrastructure/database"
	"github.com/dustore/pos-admin-api/internal/infrastructure/repository"
	"github.com/dustore/pos-admin-api/internal/presentation/http/handler"
	"github.com/dustore/pos-admin-api/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	orderRepo := repository.NewOrderRepository(db)
	menuRepo := repository.NewMenuRepository(db)

	// Initialize services
	orderService := service.NewOrderService(orderRepo, menuRepo, cfg.Table.PageSize)
	receiptService := service.NewReceiptService(orderRepo, &cfg.Store)
	menuService := service.NewMenuService(menuRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Order:   handler.NewOrderHandler(orderService),
		Receipt: handler.NewReceiptHandler(receiptService),
		Menu:    handler.NewMenuHandler(menuService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
