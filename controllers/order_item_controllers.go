package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ordesk/store-backend/models"
	"github.com/ordesk/store-backend/services"
	"github.com/ordesk/store-backend/utils"
)

type OrderItemController struct {
	DB *gorm.DB
}

func NewOrderItemController(db *gorm.DB) *OrderItemController {
	return &OrderItemController{DB: db}
}

// GetAllOrderItems -> every line item, with its product
func (ic *OrderItemController) GetAllOrderItems(c *gin.Context) {
	var items []models.OrderItem
	if err := ic.DB.Preload("Product").Find(&items).Error; err != nil {
		respondStorageError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of order items", items)
}

// GetOrderItemByID -> one line item
func (ic *OrderItemController) GetOrderItemByID(c *gin.Context) {
	var item models.OrderItem
	if err := ic.DB.Preload("Product").First(&item, c.Param("item_id")).Error; err != nil {
		respondStorageError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order item detail", item)
}

// CreateOrderItem adds a line item to an order. The price is frozen from
// the product inside the save hook; the parent order's totals are
// recomputed in the same transaction, so the insert and the new aggregates
// become visible together.
func (ic *OrderItemController) CreateOrderItem(c *gin.Context) {
	var body struct {
		OrderID   uint `json:"order_id" binding:"required"`
		ProductID uint `json:"product_id" binding:"required"`
		Quantity  int  `json:"quantity" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var order models.Order
	if err := ic.DB.First(&order, body.OrderID).Error; err != nil {
		respondStorageError(c, err)
		return
	}

	item := models.OrderItem{
		OrderID:   body.OrderID,
		ProductID: body.ProductID,
		Quantity:  body.Quantity,
	}

	err := ic.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		return services.NewOrderItemChangeNotifier(tx).ItemSaved(&item)
	})
	if err != nil {
		respondStorageError(c, err)
		return
	}

	if err := ic.DB.Preload("Product").First(&item, item.ID).Error; err != nil {
		respondStorageError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order item created", item)
}

// UpdateOrderItem changes the quantity of a line item. The frozen price
// stays untouched; totals are recomputed in the same transaction.
func (ic *OrderItemController) UpdateOrderItem(c *gin.Context) {
	var item models.OrderItem
	if err := ic.DB.First(&item, c.Param("item_id")).Error; err != nil {
		respondStorageError(c, err)
		return
	}

	var body struct {
		Quantity int `json:"quantity" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	item.Quantity = body.Quantity

	err := ic.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&item).Error; err != nil {
			return err
		}
		return services.NewOrderItemChangeNotifier(tx).ItemSaved(&item)
	})
	if err != nil {
		respondStorageError(c, err)
		return
	}

	if err := ic.DB.Preload("Product").First(&item, item.ID).Error; err != nil {
		respondStorageError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order item updated", item)
}

// DeleteOrderItem removes a line item and recomputes the parent order's
// totals in the same transaction. The order id is captured before the
// delete since the row is gone when the notifier runs.
func (ic *OrderItemController) DeleteOrderItem(c *gin.Context) {
	var item models.OrderItem
	if err := ic.DB.First(&item, c.Param("item_id")).Error; err != nil {
		respondStorageError(c, err)
		return
	}

	orderID := item.OrderID
	err := ic.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&item).Error; err != nil {
			return err
		}
		return services.NewOrderItemChangeNotifier(tx).ItemDeleted(orderID)
	})
	if err != nil {
		respondStorageError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order item deleted", nil)
}
