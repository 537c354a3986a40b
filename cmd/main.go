package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/yungbote/crm-backend/internal/data/db"
	"github.com/yungbote/crm-backend/internal/data/repos/customer"
	"github.com/yungbote/crm-backend/internal/data/repos/order"
	"github.com/yungbote/crm-backend/internal/data/repos/product"
	"github.com/yungbote/crm-backend/internal/http/handlers"
	"github.com/yungbote/crm-backend/internal/observability"
	"github.com/yungbote/crm-backend/internal/platform/envutil"
	"github.com/yungbote/crm-backend/internal/platform/logger"
	"github.com/yungbote/crm-backend/internal/server"
	"github.com/yungbote/crm-backend/internal/services"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Tracing
	shutdownTracing := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: envutil.Str("OTEL_SERVICE_NAME", "crm-backend"),
		Environment: envutil.Str("APP_ENV", "development"),
		Version:     envutil.Str("APP_VERSION", "dev"),
	})
	if shutdownTracing != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracing(ctx); err != nil {
				log.Warn("Tracing shutdown failed", "error", err)
			}
		}()
	}

	// Database
	dbService, err := db.New(log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		log.Error("Auto migration failed", "error", err)
		os.Exit(1)
	}
	gdb := dbService.DB()

	// Repos
	log.Info("Setting up repos from main...")
	customerRepo := customer.NewCustomerRepo(gdb, log)
	productRepo := product.NewProductRepo(gdb, log)
	orderRepo := order.NewOrderRepo(gdb, log)

	// Services
	log.Info("Setting up services from main...")
	customerService := services.NewCustomerService(gdb, log, customerRepo)
	productService := services.NewProductService(gdb, log, productRepo)
	orderService := services.NewOrderService(gdb, log, customerRepo, productRepo, orderRepo)
	reportService := services.NewReportService(gdb, log, customerRepo, orderRepo)

	// Handlers
	log.Info("Setting up handlers from main...")
	customerHandler := handlers.NewCustomerHandler(customerService)
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		Log:             log,
		CustomerHandler: customerHandler,
		ProductHandler:  productHandler,
		OrderHandler:    orderHandler,
		ReportHandler:   reportHandler,
	})

	port := envutil.Str("PORT", "8080")
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
