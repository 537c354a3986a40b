package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/data/filters"
	"github.com/yungbote/crm-backend/internal/domain"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

type OrderRepo interface {
	// Create persists the order header and its product associations.
	// Callers are expected to run it inside a transaction so a failed
	// association write takes the header down with it.
	Create(ctx context.Context, tx *gorm.DB, o *domain.Order, products []*domain.Product) (*domain.Order, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.Order, error)
	List(ctx context.Context, tx *gorm.DB, filter *filters.OrderFilter) ([]*domain.Order, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	SumTotalAmounts(ctx context.Context, tx *gorm.DB) (decimal.Decimal, error)
}

type orderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrderRepo(db *gorm.DB, baseLog *logger.Logger) OrderRepo {
	repoLog := baseLog.With("repo", "OrderRepo")
	return &orderRepo{db: db, log: repoLog}
}

func (or *orderRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return or.db
}

func (or *orderRepo) Create(ctx context.Context, tx *gorm.DB, o *domain.Order, products []*domain.Product) (*domain.Order, error) {
	transaction := or.handle(tx)
	if err := transaction.WithContext(ctx).Omit("Products").Create(o).Error; err != nil {
		return nil, err
	}
	if err := transaction.WithContext(ctx).Model(o).Association("Products").Append(products); err != nil {
		return nil, err
	}
	o.Products = products
	return o, nil
}

func (or *orderRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.Order, error) {
	var results []*domain.Order
	if len(ids) == 0 {
		return results, nil
	}
	if err := or.handle(tx).WithContext(ctx).
		Preload("Customer").
		Preload("Products").
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (or *orderRepo) List(ctx context.Context, tx *gorm.DB, filter *filters.OrderFilter) ([]*domain.Order, error) {
	var results []*domain.Order
	if err := or.handle(tx).WithContext(ctx).
		Preload("Customer").
		Preload("Products").
		Scopes(filter.Scope()).
		Order("orders.created_at, orders.id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (or *orderRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	var count int64
	if err := or.handle(tx).WithContext(ctx).
		Model(&domain.Order{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumTotalAmounts adds the stored totals in Go so the result stays exact on
// every backend instead of going through the engine's float SUM.
func (or *orderRepo) SumTotalAmounts(ctx context.Context, tx *gorm.DB) (decimal.Decimal, error) {
	var totals []decimal.Decimal
	if err := or.handle(tx).WithContext(ctx).
		Model(&domain.Order{}).
		Pluck("total_amount", &totals).Error; err != nil {
		return decimal.Zero, err
	}
	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(t)
	}
	return sum, nil
}
