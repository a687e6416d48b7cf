package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"not null;index" json:"order_id"`
	// Omitting Order from JSON to avoid recursive nesting
	Order     Order   `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ProductID uint    `gorm:"not null;index" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"product"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	// Captured from the product's unit price when the item is first saved
	// and frozen from then on. Catalog price changes never touch it.
	PriceAtTimeOfOrder decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_at_time_of_order"`
	// Not persisted; quantity x frozen price, recomputed on every read.
	TotalItemPrice decimal.Decimal `gorm:"-" json:"total_item_price"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`
}

// LineTotal returns quantity x frozen price, or zero while either side is
// still missing.
func (oi *OrderItem) LineTotal() decimal.Decimal {
	if oi.Quantity <= 0 || oi.PriceAtTimeOfOrder.IsZero() {
		return decimal.Zero
	}
	return oi.PriceAtTimeOfOrder.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}

// BeforeSave validates the item and freezes the price exactly once: on first
// save, or whenever the frozen field is still empty, it copies the referenced
// product's current unit price. Quantity edits never re-copy it.
func (oi *OrderItem) BeforeSave(tx *gorm.DB) error {
	if oi.Quantity <= 0 {
		return errors.New("quantity must be a positive integer")
	}
	if oi.OrderID == 0 {
		return errors.New("order reference is required")
	}
	if oi.ProductID == 0 {
		return errors.New("product reference is required")
	}

	if oi.ID == 0 || oi.PriceAtTimeOfOrder.IsZero() {
		var product Product
		if err := tx.First(&product, oi.ProductID).Error; err != nil {
			return err
		}
		oi.PriceAtTimeOfOrder = product.UnitPrice
	}
	return nil
}

func (oi *OrderItem) AfterSave(tx *gorm.DB) error {
	oi.TotalItemPrice = oi.LineTotal()
	return nil
}

func (oi *OrderItem) AfterFind(tx *gorm.DB) error {
	oi.TotalItemPrice = oi.LineTotal()
	return nil
}
