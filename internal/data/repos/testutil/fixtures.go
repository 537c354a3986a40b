package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/domain"
)

func SeedCustomer(tb testing.TB, ctx context.Context, tx *gorm.DB, name, email string, phone *string) *domain.Customer {
	tb.Helper()
	c := &domain.Customer{
		ID:    uuid.New(),
		Name:  name,
		Email: email,
		Phone: phone,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed customer: %v", err)
	}
	return c
}

func SeedProduct(tb testing.TB, ctx context.Context, tx *gorm.DB, name, price string, stock int) *domain.Product {
	tb.Helper()
	p := &domain.Product{
		ID:    uuid.New(),
		Name:  name,
		Price: decimal.RequireFromString(price),
		Stock: stock,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed product: %v", err)
	}
	return p
}

func SeedOrder(tb testing.TB, ctx context.Context, tx *gorm.DB, customerID uuid.UUID, products []*domain.Product, orderDate time.Time) *domain.Order {
	tb.Helper()
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price)
	}
	o := &domain.Order{
		ID:          uuid.New(),
		CustomerID:  customerID,
		TotalAmount: total,
		OrderDate:   orderDate,
	}
	if err := tx.WithContext(ctx).Omit("Products").Create(o).Error; err != nil {
		tb.Fatalf("seed order: %v", err)
	}
	if err := tx.WithContext(ctx).Model(o).Association("Products").Append(products); err != nil {
		tb.Fatalf("seed order products: %v", err)
	}
	o.Products = products
	return o
}

func StrPtr(v string) *string { return &v }

func IntPtr(v int) *int { return &v }

func TimePtr(v time.Time) *time.Time { return &v }

func DecPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}
