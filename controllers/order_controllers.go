package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ordesk/store-backend/models"
	"github.com/ordesk/store-backend/utils"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// GetAllOrders -> newest first; supports ?status= and ?search= (matched
// against the order number).
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	query := oc.DB.Preload("Items").Preload("Items.Product").Order("creation_date desc")

	if status := c.Query("status"); status != "" {
		if !models.ValidOrderStatus(models.OrderStatus(status)) {
			utils.RespondError(c, http.StatusBadRequest, ErrUnknownStatus)
			return
		}
		query = query.Where("status = ?", status)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("order_number LIKE ?", "%"+search+"%")
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		respondStorageError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID -> one order with its items
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	var order models.Order
	err := oc.DB.Preload("Items").Preload("Items.Product").
		First(&order, c.Param("order_id")).Error
	if err != nil {
		respondStorageError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// CreateOrder starts an empty order. Only the status may be supplied; the
// order number, creation date and totals are always server-assigned, so any
// client values for them are ignored.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var body struct {
		Status *models.OrderStatus `json:"status"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
	}

	order := models.Order{}
	if body.Status != nil {
		if !models.ValidOrderStatus(*body.Status) {
			utils.RespondError(c, http.StatusBadRequest, ErrUnknownStatus)
			return
		}
		order.Status = *body.Status
	}

	if err := oc.DB.Create(&order).Error; err != nil {
		respondStorageError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// UpdateOrder changes the order status. Everything else on an order is
// either immutable or derived.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	var order models.Order
	if err := oc.DB.First(&order, c.Param("order_id")).Error; err != nil {
		respondStorageError(c, err)
		return
	}

	var body struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !models.ValidOrderStatus(body.Status) {
		utils.RespondError(c, http.StatusBadRequest, ErrUnknownStatus)
		return
	}

	if err := oc.DB.Model(&order).Update("status", body.Status).Error; err != nil {
		respondStorageError(c, err)
		return
	}

	if err := oc.DB.Preload("Items").Preload("Items.Product").First(&order, order.ID).Error; err != nil {
		respondStorageError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order updated", order)
}

// DeleteOrder removes the order together with its items. The cascade is
// done explicitly so it holds even on drivers that do not enforce foreign
// keys; no totals recompute follows since the order itself is gone.
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	var order models.Order
	if err := oc.DB.First(&order, c.Param("order_id")).Error; err != nil {
		respondStorageError(c, err)
		return
	}

	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		respondStorageError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order deleted", nil)
}
