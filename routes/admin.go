package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devtalhaa/Outfitters/auth"
	"github.com/devtalhaa/Outfitters/config"
	newsletterControllers "github.com/devtalhaa/Outfitters/controllers/newsletter"
	orderControllers "github.com/devtalhaa/Outfitters/controllers/order"
	productcontroller "github.com/devtalhaa/Outfitters/controllers/product"
	settingsControllers "github.com/devtalhaa/Outfitters/controllers/settings"
	sliderControllers "github.com/devtalhaa/Outfitters/controllers/slider"
	"github.com/devtalhaa/Outfitters/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints behind the
// session cookie middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin(cfg.JWTSecret))
	{
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db, cfg))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db, cfg))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
		}

		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("", productcontroller.ReorderCategories(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		sliderAdmin := adminGroup.Group("/slider")
		{
			sliderAdmin.GET("", sliderControllers.ListSlides(db))
			sliderAdmin.POST("", sliderControllers.UploadSlide(db, cfg))
			sliderAdmin.PUT("", sliderControllers.ReorderSlides(db))
			sliderAdmin.PUT("/:id", sliderControllers.UpdateSlide(db))
			sliderAdmin.DELETE("/:id", sliderControllers.DeleteSlide(db, cfg))
		}

		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrders(db))
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(db))
			orderAdmin.GET("/:id", orderControllers.GetOrderByID(db))
			orderAdmin.PUT("/:id/status", orderControllers.UpdateOrderStatus(db))
			orderAdmin.DELETE("/:id", orderControllers.DeleteOrder(db))
		}

		newsletterAdmin := adminGroup.Group("/newsletter")
		{
			newsletterAdmin.GET("", newsletterControllers.ListSubscribers(db))
			newsletterAdmin.DELETE("", newsletterControllers.RemoveSubscriber(db))
		}

		adminGroup.POST("/settings", settingsControllers.UpsertSetting(db))
		adminGroup.PUT("/settings/password", auth.ChangePassword(db))
	}
}
