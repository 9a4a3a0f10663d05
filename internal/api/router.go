package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pizzatime/storefront/internal/api/handlers"
	"github.com/pizzatime/storefront/internal/api/middleware"
	"github.com/pizzatime/storefront/internal/catalog"
	"github.com/pizzatime/storefront/internal/config"
	"github.com/pizzatime/storefront/internal/metrics"
	"github.com/pizzatime/storefront/internal/session"
)

// NewRouter creates and configures the Gin router. prom may be nil when
// metrics are disabled.
func NewRouter(cfg *config.Config, cat *catalog.Catalog, store *session.Store, prom *metrics.Prometheus, logger *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))
	if len(cfg.HTTP.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.HTTP.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Type"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.Metrics.Enabled && prom != nil {
		router.GET("/metrics", gin.WrapH(prom.Handler()))
	}

	api := router.Group("/api")
	{
		api.GET("/catalog", handlers.HandleListCatalog(cfg, cat))

		// Session-scoped routes
		sessionRoutes := api.Group("")
		sessionRoutes.Use(middleware.SessionMiddleware(store, cfg, logger))
		{
			sessionRoutes.GET("/cart", handlers.HandleGetCart(cfg))
			sessionRoutes.DELETE("/cart", handlers.HandleClearCart(cfg))
			sessionRoutes.POST("/cart/items", handlers.HandleAddItem(cfg, logger))
			sessionRoutes.PATCH("/cart/items/:id", handlers.HandleAdjustQuantity(cfg))
			sessionRoutes.DELETE("/cart/items/:id", handlers.HandleRemoveItem(cfg))
			sessionRoutes.POST("/cart/drawer", handlers.HandleSetDrawer(cfg))

			sessionRoutes.GET("/order", handlers.HandleGetOrder(cfg))
			sessionRoutes.POST("/order/open", handlers.HandleOpenOrder(cfg, logger))
			sessionRoutes.PUT("/order/fields/:field", handlers.HandleSetField(cfg, logger))
			sessionRoutes.PUT("/order/delivery", handlers.HandleSetDelivery(cfg, logger))
			sessionRoutes.POST("/order/cancel", handlers.HandleCancelOrder(cfg))
			sessionRoutes.POST("/order/submit", handlers.HandleSubmitOrder(cfg, logger))

			sessionRoutes.GET("/notifications", handlers.HandleNotifications())
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
