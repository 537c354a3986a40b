package server

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yungbote/crm-backend/internal/http/handlers"
	"github.com/yungbote/crm-backend/internal/http/middleware"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log             *logger.Logger
	CustomerHandler *handlers.CustomerHandler
	ProductHandler  *handlers.ProductHandler
	OrderHandler    *handlers.OrderHandler
	ReportHandler   *handlers.ReportHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("crm-backend"))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger(cfg.Log))

	router.GET("/healthcheck", handlers.NewHealthHandler().HealthCheck)

	api := router.Group("/api")
	{
		// Customers
		api.POST("/customers", cfg.CustomerHandler.Create)
		api.POST("/customers/bulk", cfg.CustomerHandler.BulkCreate)
		api.GET("/customers", cfg.CustomerHandler.List)
		api.GET("/customers/:id", cfg.CustomerHandler.Get)
		// Products
		api.POST("/products", cfg.ProductHandler.Create)
		api.GET("/products", cfg.ProductHandler.List)
		api.GET("/products/:id", cfg.ProductHandler.Get)
		// Orders
		api.POST("/orders", cfg.OrderHandler.Create)
		api.GET("/orders", cfg.OrderHandler.List)
		api.GET("/orders/:id", cfg.OrderHandler.Get)
		// Reports
		api.GET("/reports/summary", cfg.ReportHandler.Summary)
	}

	return router
}
