package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/data/filters"
	"github.com/yungbote/crm-backend/internal/data/repos/customer"
	"github.com/yungbote/crm-backend/internal/data/repos/order"
	"github.com/yungbote/crm-backend/internal/data/repos/product"
	"github.com/yungbote/crm-backend/internal/domain"
	"github.com/yungbote/crm-backend/internal/platform/apierr"
	"github.com/yungbote/crm-backend/internal/platform/logger"
	"github.com/yungbote/crm-backend/internal/validate"
)

type OrderInput struct {
	CustomerID uuid.UUID   `json:"customer_id"`
	ProductIDs []uuid.UUID `json:"product_ids"`
	// OrderDate left absent means now.
	OrderDate *time.Time `json:"order_date,omitempty"`
}

type OrderService interface {
	Create(ctx context.Context, in OrderInput) (*domain.Order, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	List(ctx context.Context, filter *filters.OrderFilter) ([]*domain.Order, error)
}

type orderService struct {
	db           *gorm.DB
	log          *logger.Logger
	customerRepo customer.CustomerRepo
	productRepo  product.ProductRepo
	orderRepo    order.OrderRepo
}

func NewOrderService(db *gorm.DB, log *logger.Logger, customerRepo customer.CustomerRepo, productRepo product.ProductRepo, orderRepo order.OrderRepo) OrderService {
	serviceLog := log.With("service", "OrderService")
	return &orderService{
		db:           db,
		log:          serviceLog,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
	}
}

// Create is all-or-nothing: a missing customer or product id fails the whole
// call, and a failed association write rolls the header back with it.
func (os *orderService) Create(ctx context.Context, in OrderInput) (*domain.Order, error) {
	productIDs := dedupeIDs(in.ProductIDs)
	if reasons := validate.Order(validate.OrderFields{ProductIDs: productIDs}); len(reasons) > 0 {
		return nil, apierr.Validation("invalid_order", reasons...)
	}

	var created *domain.Order
	if err := os.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		customers, err := os.customerRepo.GetByIDs(ctx, tx, []uuid.UUID{in.CustomerID})
		if err != nil {
			return apierr.Persistence(err)
		}
		if len(customers) == 0 {
			return apierr.NotFound("customer_not_found", fmt.Errorf("customer %s does not exist", in.CustomerID))
		}

		products, err := os.resolveProducts(ctx, tx, productIDs)
		if err != nil {
			return err
		}

		total := decimal.Zero
		for _, p := range products {
			total = total.Add(p.Price)
		}

		orderDate := time.Now().UTC()
		if in.OrderDate != nil {
			orderDate = *in.OrderDate
		}

		o := &domain.Order{
			ID:          uuid.New(),
			CustomerID:  in.CustomerID,
			TotalAmount: total,
			OrderDate:   orderDate,
		}
		created, err = os.orderRepo.Create(ctx, tx, o, products)
		if err != nil {
			return apierr.Persistence(err)
		}
		created.Customer = customers[0]
		return nil
	}); err != nil {
		os.log.Warn("Create order failed", "error", err)
		return nil, err
	}

	os.log.Info("Order created",
		"order_id", created.ID.String(),
		"customer_id", created.CustomerID.String(),
		"products", len(created.Products),
		"total_amount", created.TotalAmount.String(),
	)
	return created, nil
}

// resolveProducts loads every referenced product and fails with the first
// missing id, preserving input order in the result.
func (os *orderService) resolveProducts(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.Product, error) {
	found, err := os.productRepo.GetByIDs(ctx, tx, ids)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	byID := make(map[uuid.UUID]*domain.Product, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}
	resolved := make([]*domain.Product, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			return nil, apierr.NotFound("product_not_found", fmt.Errorf("product with ID %s does not exist", id))
		}
		resolved = append(resolved, p)
	}
	return resolved, nil
}

func (os *orderService) Get(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	found, err := os.orderRepo.GetByIDs(ctx, nil, []uuid.UUID{id})
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if len(found) == 0 {
		return nil, apierr.NotFound("order_not_found", fmt.Errorf("order %s does not exist", id))
	}
	return found[0], nil
}

func (os *orderService) List(ctx context.Context, filter *filters.OrderFilter) ([]*domain.Order, error) {
	found, err := os.orderRepo.List(ctx, nil, filter)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	return found, nil
}

// dedupeIDs keeps first occurrences: the product reference set has set
// semantics, so a repeated id neither doubles the association nor the total.
func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
