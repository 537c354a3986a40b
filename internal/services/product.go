package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/data/filters"
	"github.com/yungbote/crm-backend/internal/data/repos/product"
	"github.com/yungbote/crm-backend/internal/domain"
	"github.com/yungbote/crm-backend/internal/platform/apierr"
	"github.com/yungbote/crm-backend/internal/platform/logger"
	"github.com/yungbote/crm-backend/internal/validate"
)

type ProductInput struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	// Stock left absent means zero.
	Stock *int `json:"stock,omitempty"`
}

type ProductService interface {
	Create(ctx context.Context, in ProductInput) (*domain.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, filter *filters.ProductFilter) ([]*domain.Product, error)
}

type productService struct {
	db          *gorm.DB
	log         *logger.Logger
	productRepo product.ProductRepo
}

func NewProductService(db *gorm.DB, log *logger.Logger, productRepo product.ProductRepo) ProductService {
	serviceLog := log.With("service", "ProductService")
	return &productService{db: db, log: serviceLog, productRepo: productRepo}
}

func (ps *productService) Create(ctx context.Context, in ProductInput) (*domain.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	if reasons := validate.Product(validate.ProductFields(in)); len(reasons) > 0 {
		return nil, apierr.Validation("invalid_product", reasons...)
	}

	stock := 0
	if in.Stock != nil {
		stock = *in.Stock
	}

	var created *domain.Product
	if err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p := &domain.Product{
			ID:    uuid.New(),
			Name:  in.Name,
			Price: in.Price,
			Stock: stock,
		}
		out, err := ps.productRepo.Create(ctx, tx, []*domain.Product{p})
		if err != nil {
			return apierr.Persistence(err)
		}
		created = out[0]
		return nil
	}); err != nil {
		ps.log.Warn("Create product failed", "error", err)
		return nil, err
	}
	ps.log.Info("Product created", "product_id", created.ID.String(), "name", created.Name)
	return created, nil
}

func (ps *productService) Get(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	found, err := ps.productRepo.GetByIDs(ctx, nil, []uuid.UUID{id})
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if len(found) == 0 {
		return nil, apierr.NotFound("product_not_found", fmt.Errorf("product %s does not exist", id))
	}
	return found[0], nil
}

func (ps *productService) List(ctx context.Context, filter *filters.ProductFilter) ([]*domain.Product, error) {
	found, err := ps.productRepo.List(ctx, nil, filter)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	return found, nil
}
