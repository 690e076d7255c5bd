package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dustore/pos-admin-api/internal/config"
	"github.com/dustore/pos-admin-api/internal/presentation/http/handler"
	"github.com/dustore/pos-admin-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Order   *handler.OrderHandler
	Receipt *handler.ReceiptHandler
	Menu    *handler.MenuHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg.Auth.JWTSecret))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
			BurstSize:         cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Order history and checkout
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.POST("", h.Order.Create)
		orders.GET("/:id", h.Order.Get)

		// Receipt and notification pipeline
		orders.GET("/:id/receipt", h.Receipt.Content)
		orders.GET("/:id/receipt.pdf", h.Receipt.PDF)
		orders.POST("/:id/whatsapp", h.Receipt.WhatsApp)
		orders.GET("/:id/whatsapp/qr", h.Receipt.WhatsAppQR)
	}

	// Cashier menu feed
	protected.GET("/menus", h.Menu.List)
}
