package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusInProgress OrderStatus = "InProgress"
	OrderStatusCompleted  OrderStatus = "Completed"
)

// ValidOrderStatus reports whether s is one of the known order states.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted:
		return true
	}
	return false
}

type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	OrderNumber  string      `gorm:"type:varchar(50);uniqueIndex" json:"order_number"`
	CreationDate time.Time   `gorm:"not null" json:"creation_date"`
	Status       OrderStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	// Both totals are maintained by services.TotalsRecalculator and are
	// never written through the regular save path.
	TotalFinalPrice    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_final_price"`
	TotalProductsCount uint            `gorm:"not null;default:0" json:"total_products_count"`
	UpdatedAt          time.Time       `gorm:"not null" json:"updated_at"`
	Items              []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.CreationDate.IsZero() {
		o.CreationDate = time.Now()
	}
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	return nil
}

// AfterCreate assigns the order number once the row has an id. The number
// embeds the id, so it cannot exist before the insert; writing it with
// UpdateColumn keeps the save pipeline out of the loop. gorm runs Create
// and its hooks in one transaction, so a failed number write rolls the
// whole creation back instead of leaving a numberless order behind.
func (o *Order) AfterCreate(tx *gorm.DB) error {
	o.OrderNumber = fmt.Sprintf("ORD-%05d", o.ID)
	return tx.Model(&Order{}).Where("id = ?", o.ID).
		UpdateColumn("order_number", o.OrderNumber).Error
}
