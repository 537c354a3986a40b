package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID uuid.UUID  `gorm:"type:uuid;not null;index" json:"customer_id"`
	Customer   *Customer  `gorm:"foreignKey:CustomerID;references:ID" json:"customer,omitempty"`
	Products   []*Product `gorm:"many2many:order_products" json:"products,omitempty"`
	// TotalAmount is a snapshot of the referenced product prices at
	// creation time. It is never recomputed when prices change later.
	TotalAmount decimal.Decimal `gorm:"column:total_amount;type:decimal(10,2);not null" json:"total_amount"`
	OrderDate   time.Time       `gorm:"column:order_date;not null;index" json:"order_date"`
	CreatedAt   time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

func (Order) TableName() string { return "orders" }
