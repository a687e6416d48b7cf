package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ordesk/store-backend/models"
	"github.com/ordesk/store-backend/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GetDashboardStats summarizes the store for a management dashboard:
// order volume, revenue over the denormalized totals, and a per-status
// breakdown.
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	today := time.Now().Format("2006-01-02")

	var stats struct {
		TotalProducts int64   `json:"total_products"`
		TotalOrders   int64   `json:"total_orders"`
		TodayOrders   int64   `json:"today_orders"`
		TotalRevenue  float64 `json:"total_revenue"`
		OrderStats    struct {
			Pending    int64 `json:"pending"`
			InProgress int64 `json:"in_progress"`
			Completed  int64 `json:"completed"`
		} `json:"order_stats"`
	}

	ac.DB.Model(&models.Product{}).Count(&stats.TotalProducts)
	ac.DB.Model(&models.Order{}).Count(&stats.TotalOrders)
	ac.DB.Model(&models.Order{}).Where("DATE(creation_date) = ?", today).Count(&stats.TodayOrders)

	ac.DB.Model(&models.Order{}).
		Select("COALESCE(SUM(total_final_price), 0)").
		Row().Scan(&stats.TotalRevenue)

	ac.DB.Model(&models.Order{}).Where("status = ?", models.OrderStatusPending).Count(&stats.OrderStats.Pending)
	ac.DB.Model(&models.Order{}).Where("status = ?", models.OrderStatusInProgress).Count(&stats.OrderStats.InProgress)
	ac.DB.Model(&models.Order{}).Where("status = ?", models.OrderStatusCompleted).Count(&stats.OrderStats.Completed)

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
}
