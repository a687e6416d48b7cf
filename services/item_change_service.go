package services

import (
	"gorm.io/gorm"

	"github.com/ordesk/store-backend/models"
)

// OrderItemChangeNotifier funnels every committed order-item mutation into
// a totals recompute on the owning order. It replaces the implicit signal
// wiring of trigger-style designs with an explicit call so the dependency
// is visible and testable. Construct it over the same transaction as the
// mutation: the recompute then commits or rolls back together with it.
type OrderItemChangeNotifier struct {
	recalc *TotalsRecalculator
}

func NewOrderItemChangeNotifier(db *gorm.DB) *OrderItemChangeNotifier {
	return &OrderItemChangeNotifier{recalc: NewTotalsRecalculator(db)}
}

// ItemSaved runs after an item was created or updated.
func (n *OrderItemChangeNotifier) ItemSaved(item *models.OrderItem) error {
	return n.recalc.Recalculate(item.OrderID)
}

// ItemDeleted runs after an item was removed. The order id must be the one
// captured from the item before deletion, since the row is already gone.
// If the order itself vanished in the same cascade the recompute is a no-op.
func (n *OrderItemChangeNotifier) ItemDeleted(orderID uint) error {
	return n.recalc.Recalculate(orderID)
}
