package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ordesk/store-backend/controllers"
	"github.com/ordesk/store-backend/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Middleware must be attached before any route registration; gin
	// snapshots a route's handler chain when the route is added.
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	// Only image files may be fetched from the uploads tree.
	r.Use(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/uploads/") {
			ext := strings.ToLower(filepath.Ext(c.Request.URL.Path))
			switch ext {
			case ".jpg", ".jpeg", ".png", ".gif", ".webp":
			default:
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
		}
		c.Next()
	})

	// Serve uploaded product images.
	workDir, _ := os.Getwd()
	r.Static("/uploads", filepath.Join(workDir, "public", "uploads"))

	productCtrl := controllers.NewProductController(db)
	orderCtrl := controllers.NewOrderController(db)
	itemCtrl := controllers.NewOrderItemController(db)
	adminCtrl := controllers.NewAdminController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.GET("/products", productCtrl.GetAllProducts)
	r.POST("/products", productCtrl.CreateProduct)
	r.GET("/products/:product_id", productCtrl.GetProductByID)
	r.PUT("/products/:product_id", productCtrl.UpdateProduct)
	r.DELETE("/products/:product_id", productCtrl.DeleteProduct)

	r.GET("/orders", orderCtrl.GetAllOrders)
	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	r.PUT("/orders/:order_id", orderCtrl.UpdateOrder)
	r.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)

	r.GET("/order-items", itemCtrl.GetAllOrderItems)
	r.POST("/order-items", itemCtrl.CreateOrderItem)
	r.GET("/order-items/:item_id", itemCtrl.GetOrderItemByID)
	r.PUT("/order-items/:item_id", itemCtrl.UpdateOrderItem)
	r.DELETE("/order-items/:item_id", itemCtrl.DeleteOrderItem)

	r.GET("/admin/stats", adminCtrl.GetDashboardStats)

	return r
}
