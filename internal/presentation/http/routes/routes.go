package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/config"
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/presentation/http/handler"
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Catalog  *handler.CatalogHandler
	Cart     *handler.CartHandler
	Session  *handler.SessionHandler
	Checkout *handler.CheckoutHandler
	Receipt  *handler.ReceiptHandler
	Display  *handler.DisplayHandler
	Scanner  *handler.ScannerHandler
	Status   *handler.StatusHandler
	QRIS     *handler.QRISHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg         *config.Config
	Idempotency *middleware.IdempotencyStore
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerCatalogRoutes(v1, h)
		registerCartRoutes(v1, h)
		registerCheckoutRoutes(v1, h, deps)
		registerDisplayRoutes(v1, h)
		registerScannerRoutes(v1, h)

		v1.GET("/status", h.Status.Get)
		v1.POST("/qris/generate", h.QRIS.Generate)
		v1.GET("/history/today", h.Checkout.TodayTransactions)
	}

	return router
}

func registerCatalogRoutes(v1 *gin.RouterGroup, h *Handlers) {
	catalog := v1.Group("/catalog")
	{
		catalog.GET("/products", h.Catalog.ListProducts)
		catalog.GET("/categories", h.Catalog.ListCategories)
		catalog.POST("/reload", h.Catalog.Reload)
	}
}

func registerCartRoutes(v1 *gin.RouterGroup, h *Handlers) {
	cart := v1.Group("/cart")
	{
		cart.GET("", h.Cart.Get)
		cart.POST("/items", h.Cart.AddItem)
		cart.PUT("/items/:id", h.Cart.UpdateQuantity)
		cart.DELETE("/items/:id", h.Cart.RemoveLine)
		cart.DELETE("", h.Cart.Clear)
	}

	v1.PUT("/session/inputs", h.Session.SetInputs)
}

func registerCheckoutRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	checkout := v1.Group("/checkout")
	checkout.Use(middleware.Idempotency(deps.Idempotency))
	{
		checkout.POST("", h.Checkout.Checkout)
		checkout.POST("/new", h.Checkout.NewTransaction)
	}

	receipt := v1.Group("/receipt")
	{
		receipt.GET("", h.Receipt.Get)
		receipt.POST("/print", h.Receipt.Print)
	}
}

func registerDisplayRoutes(v1 *gin.RouterGroup, h *Handlers) {
	display := v1.Group("/display")
	{
		display.GET("", h.Display.State)
		display.GET("/stream", h.Display.Stream)
		display.POST("/close", h.Display.Close)
	}
}

func registerScannerRoutes(v1 *gin.RouterGroup, h *Handlers) {
	scanner := v1.Group("/scanner")
	{
		scanner.POST("/scan", h.Scanner.Scan)
		scanner.POST("/keys", h.Scanner.Keys)
	}

	v1.GET("/notifications", h.Scanner.Notifications)
}
