package customer

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/data/filters"
	"github.com/yungbote/crm-backend/internal/domain"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

type CustomerRepo interface {
	Create(ctx context.Context, tx *gorm.DB, customers []*domain.Customer) ([]*domain.Customer, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.Customer, error)
	EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error)
	List(ctx context.Context, tx *gorm.DB, filter *filters.CustomerFilter) ([]*domain.Customer, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type customerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCustomerRepo(db *gorm.DB, baseLog *logger.Logger) CustomerRepo {
	repoLog := baseLog.With("repo", "CustomerRepo")
	return &customerRepo{db: db, log: repoLog}
}

func (cr *customerRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return cr.db
}

func (cr *customerRepo) Create(ctx context.Context, tx *gorm.DB, customers []*domain.Customer) ([]*domain.Customer, error) {
	if len(customers) == 0 {
		return []*domain.Customer{}, nil
	}
	if err := cr.handle(tx).WithContext(ctx).Create(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (cr *customerRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*domain.Customer, error) {
	var results []*domain.Customer
	if len(ids) == 0 {
		return results, nil
	}
	if err := cr.handle(tx).WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *customerRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	var count int64
	if err := cr.handle(tx).WithContext(ctx).
		Model(&domain.Customer{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (cr *customerRepo) List(ctx context.Context, tx *gorm.DB, filter *filters.CustomerFilter) ([]*domain.Customer, error) {
	var results []*domain.Customer
	if err := cr.handle(tx).WithContext(ctx).
		Scopes(filter.Scope()).
		Order("customers.created_at, customers.id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *customerRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	var count int64
	if err := cr.handle(tx).WithContext(ctx).
		Model(&domain.Customer{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
