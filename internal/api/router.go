package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/darazdesk/ledgerapi/internal/api/handlers"
	"github.com/darazdesk/ledgerapi/internal/api/middleware"
	"github.com/darazdesk/ledgerapi/internal/config"
	"github.com/darazdesk/ledgerapi/internal/repository"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(customRecovery(logger))
	router.Use(middleware.RequestID())
	router.Use(loggingMiddleware(logger))

	// Root: friendly response so GET / returns 200 instead of 404
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "Order Ledger API",
			"endpoints": []string{
				"GET /health",
				"GET /api/v1/orders",
				"POST /api/v1/orders",
				"PUT /api/v1/orders/:id",
				"DELETE /api/v1/orders/:id?confirm=true",
				"GET /api/v1/orders/export",
				"GET /api/v1/orders/summary",
			},
		})
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		orders := v1.Group("/orders")
		{
			orders.GET("", handlers.HandleListOrders(cfg, repos, logger))
			orders.POST("", handlers.HandleCreateOrder(cfg, repos, logger))
			orders.GET("/export", handlers.HandleExportOrders(cfg, repos, logger))
			orders.GET("/summary", handlers.HandleOrderSummary(cfg, repos, logger))
			orders.PUT("/:id", handlers.HandleUpdateOrder(cfg, repos, logger))
			orders.DELETE("/:id", handlers.HandleDeleteOrder(cfg, repos, logger))
		}
	}

	return router
}

// customRecovery is a custom recovery middleware that logs panics
func customRecovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered",
			zap.Any("error", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "internal server error",
		})
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.String("request_id", middleware.GetRequestID(c)),
		)
	}
}
