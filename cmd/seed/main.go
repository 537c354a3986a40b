package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/yungbote/crm-backend/internal/data/db"
	"github.com/yungbote/crm-backend/internal/data/filters"
	"github.com/yungbote/crm-backend/internal/data/repos/customer"
	"github.com/yungbote/crm-backend/internal/data/repos/order"
	"github.com/yungbote/crm-backend/internal/data/repos/product"
	"github.com/yungbote/crm-backend/internal/platform/logger"
	"github.com/yungbote/crm-backend/internal/services"
)

// Seed fixture file. Orders reference customers by email and products by
// name so the YAML stays self-contained.
type seedFile struct {
	Customers []seedCustomer `yaml:"customers"`
	Products  []seedProduct  `yaml:"products"`
	Orders    []seedOrder    `yaml:"orders"`
}

type seedCustomer struct {
	Name  string  `yaml:"name"`
	Email string  `yaml:"email"`
	Phone *string `yaml:"phone"`
}

type seedProduct struct {
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
	Stock *int   `yaml:"stock"`
}

type seedOrder struct {
	CustomerEmail string     `yaml:"customer_email"`
	ProductNames  []string   `yaml:"product_names"`
	OrderDate     *time.Time `yaml:"order_date"`
}

func main() {
	file := flag.String("file", "seed.yaml", "path to the seed fixture file")
	flag.Parse()

	log, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(context.Background(), log, *file); err != nil {
		log.Error("Seed failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var fixture seedFile
	if err := yaml.Unmarshal(raw, &fixture); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	dbService, err := db.New(log)
	if err != nil {
		return fmt.Errorf("database init: %w", err)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		return fmt.Errorf("auto migration: %w", err)
	}
	gdb := dbService.DB()

	customerRepo := customer.NewCustomerRepo(gdb, log)
	productRepo := product.NewProductRepo(gdb, log)
	orderRepo := order.NewOrderRepo(gdb, log)
	customerService := services.NewCustomerService(gdb, log, customerRepo)
	productService := services.NewProductService(gdb, log, productRepo)
	orderService := services.NewOrderService(gdb, log, customerRepo, productRepo, orderRepo)

	inputs := make([]services.CustomerInput, 0, len(fixture.Customers))
	for _, c := range fixture.Customers {
		inputs = append(inputs, services.CustomerInput{
			Name:  c.Name,
			Email: c.Email,
			Phone: c.Phone,
		})
	}
	if len(inputs) > 0 {
		result, err := customerService.BulkCreate(ctx, inputs)
		if err != nil {
			return fmt.Errorf("seed customers: %w", err)
		}
		for _, reason := range result.Errors {
			log.Warn("Customer row skipped", "reason", reason)
		}
		log.Info("Seeded customers", "created", len(result.Created), "skipped", len(result.Errors))
	}

	created := 0
	for _, p := range fixture.Products {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return fmt.Errorf("product %q: bad price %q: %w", p.Name, p.Price, err)
		}
		if _, err := productService.Create(ctx, services.ProductInput{
			Name:  p.Name,
			Price: price,
			Stock: p.Stock,
		}); err != nil {
			return fmt.Errorf("seed product %q: %w", p.Name, err)
		}
		created++
	}
	log.Info("Seeded products", "created", created)

	created = 0
	for i, o := range fixture.Orders {
		customerID, err := lookupCustomer(ctx, customerService, o.CustomerEmail)
		if err != nil {
			return fmt.Errorf("order %d: %w", i+1, err)
		}
		productIDs := make([]uuid.UUID, 0, len(o.ProductNames))
		for _, name := range o.ProductNames {
			id, err := lookupProduct(ctx, productService, name)
			if err != nil {
				return fmt.Errorf("order %d: %w", i+1, err)
			}
			productIDs = append(productIDs, id)
		}
		if _, err := orderService.Create(ctx, services.OrderInput{
			CustomerID: customerID,
			ProductIDs: productIDs,
			OrderDate:  o.OrderDate,
		}); err != nil {
			return fmt.Errorf("seed order %d: %w", i+1, err)
		}
		created++
	}
	log.Info("Seeded orders", "created", created)
	return nil
}

func lookupCustomer(ctx context.Context, svc services.CustomerService, email string) (uuid.UUID, error) {
	matches, err := svc.List(ctx, &filters.CustomerFilter{Email: filters.Exact(email)})
	if err != nil {
		return uuid.Nil, fmt.Errorf("lookup customer %q: %w", email, err)
	}
	if len(matches) == 0 {
		return uuid.Nil, fmt.Errorf("customer %q not found", email)
	}
	return matches[0].ID, nil
}

func lookupProduct(ctx context.Context, svc services.ProductService, name string) (uuid.UUID, error) {
	matches, err := svc.List(ctx, &filters.ProductFilter{Name: filters.Exact(name)})
	if err != nil {
		return uuid.Nil, fmt.Errorf("lookup product %q: %w", name, err)
	}
	if len(matches) == 0 {
		return uuid.Nil, fmt.Errorf("product %q not found", name)
	}
	return matches[0].ID, nil
}
