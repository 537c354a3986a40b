// Package filters defines the structured filter specifications accepted by
// the list operations and compiles them into GORM scopes. Every present
// field contributes one predicate; predicates AND together; absent fields
// impose nothing. Relation predicates compile to EXISTS subqueries so a
// row matching through several related rows still appears once.
package filters

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TextMatch int

const (
	MatchContains TextMatch = iota
	MatchExact
	MatchPrefix
)

// Text is a tagged text predicate: the comparator plus the value to
// compare against. Matching is case-insensitive for every comparator.
type Text struct {
	Value string
	Match TextMatch
}

func Contains(value string) *Text { return &Text{Value: value, Match: MatchContains} }
func Exact(value string) *Text    { return &Text{Value: value, Match: MatchExact} }
func Prefix(value string) *Text   { return &Text{Value: value, Match: MatchPrefix} }

type CustomerFilter struct {
	Name         *Text
	Email        *Text
	PhonePrefix  *string
	CreatedAtGTE *time.Time
	CreatedAtLTE *time.Time
}

type ProductFilter struct {
	Name     *Text
	PriceGTE *decimal.Decimal
	PriceLTE *decimal.Decimal
	StockGTE *int
	StockLTE *int
}

type OrderFilter struct {
	TotalAmountGTE *decimal.Decimal
	TotalAmountLTE *decimal.Decimal
	OrderDateGTE   *time.Time
	OrderDateLTE   *time.Time
	CustomerName   *Text
	ProductName    *Text
	ProductID      *uuid.UUID
}

func (f *CustomerFilter) Scope() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f == nil {
			return db
		}
		db = applyText(db, "customers.name", f.Name)
		db = applyText(db, "customers.email", f.Email)
		if f.PhonePrefix != nil {
			db = db.Where("customers.phone LIKE ? ESCAPE '\\'", escapeLike(*f.PhonePrefix)+"%")
		}
		if f.CreatedAtGTE != nil {
			db = db.Where("customers.created_at >= ?", *f.CreatedAtGTE)
		}
		if f.CreatedAtLTE != nil {
			db = db.Where("customers.created_at <= ?", *f.CreatedAtLTE)
		}
		return db
	}
}

func (f *ProductFilter) Scope() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f == nil {
			return db
		}
		db = applyText(db, "products.name", f.Name)
		if f.PriceGTE != nil {
			db = db.Where("products.price >= ?", *f.PriceGTE)
		}
		if f.PriceLTE != nil {
			db = db.Where("products.price <= ?", *f.PriceLTE)
		}
		if f.StockGTE != nil {
			db = db.Where("products.stock >= ?", *f.StockGTE)
		}
		if f.StockLTE != nil {
			db = db.Where("products.stock <= ?", *f.StockLTE)
		}
		return db
	}
}

func (f *OrderFilter) Scope() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f == nil {
			return db
		}
		if f.TotalAmountGTE != nil {
			db = db.Where("orders.total_amount >= ?", *f.TotalAmountGTE)
		}
		if f.TotalAmountLTE != nil {
			db = db.Where("orders.total_amount <= ?", *f.TotalAmountLTE)
		}
		if f.OrderDateGTE != nil {
			db = db.Where("orders.order_date >= ?", *f.OrderDateGTE)
		}
		if f.OrderDateLTE != nil {
			db = db.Where("orders.order_date <= ?", *f.OrderDateLTE)
		}
		if f.CustomerName != nil {
			expr, arg := textCondition("c.name", f.CustomerName)
			db = db.Where(
				"EXISTS (SELECT 1 FROM customers c WHERE c.id = orders.customer_id AND "+expr+")",
				arg,
			)
		}
		if f.ProductName != nil {
			expr, arg := textCondition("p.name", f.ProductName)
			db = db.Where(
				"EXISTS (SELECT 1 FROM order_products op JOIN products p ON p.id = op.product_id "+
					"WHERE op.order_id = orders.id AND "+expr+")",
				arg,
			)
		}
		if f.ProductID != nil {
			db = db.Where(
				"EXISTS (SELECT 1 FROM order_products op WHERE op.order_id = orders.id AND op.product_id = ?)",
				*f.ProductID,
			)
		}
		return db
	}
}

func applyText(db *gorm.DB, column string, t *Text) *gorm.DB {
	if t == nil {
		return db
	}
	expr, arg := textCondition(column, t)
	return db.Where(expr, arg)
}

func textCondition(column string, t *Text) (string, interface{}) {
	value := strings.ToLower(t.Value)
	switch t.Match {
	case MatchExact:
		return "LOWER(" + column + ") = ?", value
	case MatchPrefix:
		return "LOWER(" + column + ") LIKE ? ESCAPE '\\'", escapeLike(value) + "%"
	default:
		return "LOWER(" + column + ") LIKE ? ESCAPE '\\'", "%" + escapeLike(value) + "%"
	}
}

// escapeLike neutralizes LIKE wildcards in user-supplied values.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
