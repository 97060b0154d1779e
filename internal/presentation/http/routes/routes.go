package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/medbill-api/internal/config"
	"github.com/sangkips/medbill-api/internal/presentation/http/handler"
	"github.com/sangkips/medbill-api/internal/presentation/http/middleware"
	"github.com/sangkips/medbill-api/pkg/metrics"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Bill         *handler.BillHandler
	StoreDetails *handler.StoreDetailsHandler
	Printer      *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg     *config.Config
	Metrics *metrics.Registry
	// RateLimiter guards /api/v1. The caller owns it and stops it on
	// shutdown; nil disables rate limiting.
	RateLimiter *middleware.ClientRateLimiter
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
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	if deps.RateLimiter != nil {
		v1.Use(deps.RateLimiter.Middleware())
	}
	{
		registerStoreDetailsRoutes(v1, h)
		registerBillRoutes(v1, h)
		registerPrinterRoutes(v1, h)
	}

	return router
}

// NewRateLimiter builds the per-client limiter from config. Call Stop on it
// when the server shuts down.
func NewRateLimiter(cfg config.RateLimitConfig) *middleware.ClientRateLimiter {
	return middleware.NewClientRateLimiter(rateLimiterConfig(cfg))
}

func rateLimiterConfig(cfg config.RateLimitConfig) middleware.RateLimiterConfig {
	rlc := middleware.DefaultRateLimiterConfig()
	if cfg.Requests > 0 && cfg.Duration > 0 {
		rlc.RequestsPerSecond = float64(cfg.Requests) / float64(cfg.Duration)
		rlc.BurstSize = cfg.Requests
	}
	return rlc
}

func registerStoreDetailsRoutes(v1 *gin.RouterGroup, h *Handlers) {
	store := v1.Group("/store-details")
	{
		store.GET("", h.StoreDetails.Get)
		store.PUT("", h.StoreDetails.Update)
		store.POST("/save", h.StoreDetails.Save)
	}
}

func registerBillRoutes(v1 *gin.RouterGroup, h *Handlers) {
	bills := v1.Group("/bills")
	{
		bills.POST("", h.Bill.Create)
		bills.GET("/:id", h.Bill.Get)
		bills.PUT("/:id", h.Bill.Update)
		bills.DELETE("/:id", h.Bill.Delete)
		bills.POST("/:id/items", h.Bill.AddItem)
		bills.PATCH("/:id/items/:index", h.Bill.UpdateItem)
		bills.DELETE("/:id/items/:index", h.Bill.RemoveItem)
		bills.GET("/:id/preview", h.Bill.Preview)
		bills.POST("/:id/generate", h.Bill.Generate)
		bills.GET("/:id/print", h.Printer.PrintHTML)
		bills.POST("/:id/print/thermal", h.Printer.PrintThermal)
		bills.GET("/:id/export.xlsx", h.Printer.ExportXLSX)
	}
}

func registerPrinterRoutes(v1 *gin.RouterGroup, h *Handlers) {
	printerGroup := v1.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/test", h.Printer.TestPrint)
	}
}
