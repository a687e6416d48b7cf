package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ordesk/store-backend/controllers"
	"github.com/ordesk/store-backend/models"
)

func setupOrderRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	ctrl := controllers.NewOrderController(db)
	router.GET("/orders", ctrl.GetAllOrders)
	router.POST("/orders", ctrl.CreateOrder)
	router.GET("/orders/:order_id", ctrl.GetOrderByID)
	router.PUT("/orders/:order_id", ctrl.UpdateOrder)
	router.DELETE("/orders/:order_id", ctrl.DeleteOrder)
	return router
}

func TestCreateOrder(t *testing.T) {
	db := setupTestDB(t)
	router := setupOrderRouter(db)

	code, resp := doJSON(t, router, "POST", "/orders", nil)
	require.Equal(t, http.StatusCreated, code)

	data := dataOf(t, resp)
	assert.Equal(t, "ORD-00001", data["order_number"])
	assert.Equal(t, "Pending", data["status"])
	assert.Equal(t, "0", data["total_final_price"])
	assert.Equal(t, float64(0), data["total_products_count"])
	assert.NotEmpty(t, data["creation_date"])
}

func TestCreateOrderIgnoresDerivedFields(t *testing.T) {
	db := setupTestDB(t)
	router := setupOrderRouter(db)

	// order_number and the totals are server-owned; client values must
	// never reach the stored row.
	code, resp := doJSON(t, router, "POST", "/orders", map[string]interface{}{
		"order_number":         "ORD-99999",
		"total_final_price":    "100.00",
		"total_products_count": 42,
	})
	require.Equal(t, http.StatusCreated, code)

	data := dataOf(t, resp)
	assert.Equal(t, "ORD-00001", data["order_number"])
	assert.Equal(t, "0", data["total_final_price"])
	assert.Equal(t, float64(0), data["total_products_count"])
}

func TestUpdateOrderStatus(t *testing.T) {
	db := setupTestDB(t)
	router := setupOrderRouter(db)

	order := models.Order{}
	require.NoError(t, db.Create(&order).Error)

	code, resp := doJSON(t, router, "PUT", fmt.Sprintf("/orders/%d", order.ID), map[string]interface{}{
		"status": "InProgress",
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "InProgress", dataOf(t, resp)["status"])

	code, _ = doJSON(t, router, "PUT", fmt.Sprintf("/orders/%d", order.ID), map[string]interface{}{
		"status": "Shipped",
	})
	assert.Equal(t, http.StatusBadRequest, code, "unknown status value")
}

func TestListOrdersFilterAndSearch(t *testing.T) {
	db := setupTestDB(t)
	router := setupOrderRouter(db)

	first := models.Order{}
	require.NoError(t, db.Create(&first).Error)
	second := models.Order{Status: models.OrderStatusCompleted}
	require.NoError(t, db.Create(&second).Error)

	code, resp := doJSON(t, router, "GET", "/orders?status=Completed", nil)
	require.Equal(t, http.StatusOK, code)
	list := resp["data"].([]interface{})
	require.Len(t, list, 1)
	assert.Equal(t, "ORD-00002", list[0].(map[string]interface{})["order_number"])

	code, resp = doJSON(t, router, "GET", "/orders?search=00001", nil)
	require.Equal(t, http.StatusOK, code)
	list = resp["data"].([]interface{})
	require.Len(t, list, 1)
	assert.Equal(t, "ORD-00001", list[0].(map[string]interface{})["order_number"])

	code, _ = doJSON(t, router, "GET", "/orders?status=Bogus", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestDeleteOrderCascadesItems(t *testing.T) {
	db := setupTestDB(t)
	router := setupOrderRouter(db)

	product := models.Product{Name: "Widget", UnitPrice: decimal.RequireFromString("9.99")}
	require.NoError(t, db.Create(&product).Error)
	order := models.Order{}
	require.NoError(t, db.Create(&order).Error)
	require.NoError(t, db.Create(&models.OrderItem{OrderID: order.ID, ProductID: product.ID, Quantity: 2}).Error)

	code, _ := doJSON(t, router, "DELETE", fmt.Sprintf("/orders/%d", order.ID), nil)
	require.Equal(t, http.StatusOK, code)

	var orderCount, itemCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	db.Model(&models.OrderItem{}).Count(&itemCount)
	assert.Equal(t, int64(0), orderCount)
	assert.Equal(t, int64(0), itemCount)
}

func TestGetMissingOrder(t *testing.T) {
	db := setupTestDB(t)
	router := setupOrderRouter(db)

	code, _ := doJSON(t, router, "GET", "/orders/777", nil)
	assert.Equal(t, http.StatusNotFound, code)
}
