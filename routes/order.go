package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devtalhaa/Outfitters/config"
	orderControllers "github.com/devtalhaa/Outfitters/controllers/order"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Create an order from the submitted cart snapshot
	r.POST("/checkout", orderControllers.Checkout(db, cfg))

	// websocket endpoint for real-time order updates
	r.GET("/orders/ws", orderControllers.OrderFeedHandler)
}
