package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ordesk/store-backend/models"
	"github.com/ordesk/store-backend/utils"
)

// TotalsRecalculator keeps an order's denormalized aggregates consistent
// with the live set of its line items.
type TotalsRecalculator struct {
	DB *gorm.DB
}

func NewTotalsRecalculator(db *gorm.DB) *TotalsRecalculator {
	return &TotalsRecalculator{DB: db}
}

// Recalculate recomputes total_final_price and total_products_count for the
// given order from its current items and writes both columns directly,
// bypassing the save hooks. A missing order is a no-op: items are removed
// together with their order on cascade delete, and the recompute fired for
// those items must not fail the surrounding operation.
//
// The write targets the stored row; callers holding an Order struct should
// use RecalculateInto to see the fresh values.
func (s *TotalsRecalculator) Recalculate(orderID uint) error {
	return s.RecalculateInto(orderID, nil)
}

// RecalculateInto behaves like Recalculate and, when order is non-nil,
// reloads the stored row into it afterwards.
func (s *TotalsRecalculator) RecalculateInto(orderID uint, order *models.Order) error {
	var existing models.Order
	if err := s.DB.First(&existing, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if utils.InfoLogger != nil {
				utils.InfoLogger.Printf("totals recompute skipped, order %d no longer exists", orderID)
			}
			return nil
		}
		return err
	}

	var items []models.OrderItem
	if err := s.DB.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
		return err
	}

	totalPrice := decimal.Zero
	totalCount := uint(0)
	for i := range items {
		totalPrice = totalPrice.Add(items[i].LineTotal())
		totalCount += uint(items[i].Quantity)
	}

	err := s.DB.Model(&models.Order{}).Where("id = ?", orderID).
		UpdateColumns(map[string]interface{}{
			"total_final_price":    totalPrice,
			"total_products_count": totalCount,
		}).Error
	if err != nil {
		return err
	}

	if order != nil {
		return s.DB.Preload("Items").Preload("Items.Product").First(order, orderID).Error
	}
	return nil
}
