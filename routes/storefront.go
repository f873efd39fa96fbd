package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devtalhaa/Outfitters/auth"
	"github.com/devtalhaa/Outfitters/config"
	newsletterControllers "github.com/devtalhaa/Outfitters/controllers/newsletter"
	productcontroller "github.com/devtalhaa/Outfitters/controllers/product"
	reviewControllers "github.com/devtalhaa/Outfitters/controllers/review"
	settingsControllers "github.com/devtalhaa/Outfitters/controllers/settings"
	sliderControllers "github.com/devtalhaa/Outfitters/controllers/slider"
	wishlistControllers "github.com/devtalhaa/Outfitters/controllers/wishlist"
)

// SetupStorefrontRoutes registers the public catalog, wishlist,
// newsletter, and admin auth endpoints.
func SetupStorefrontRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/:id", productcontroller.GetProductByID(db))
		products.GET("/slug/:slug", productcontroller.GetProductBySlug(db))
	}

	r.GET("/categories", productcontroller.GetAllCategories(db))
	r.GET("/slider", sliderControllers.GetActiveSlides(db))
	r.GET("/settings", settingsControllers.GetSettings(db, cfg))

	reviews := r.Group("/reviews")
	{
		reviews.GET("", reviewControllers.GetReviews(db))
		reviews.POST("", reviewControllers.CreateReview(db))
		reviews.PUT("/helpful", reviewControllers.MarkHelpful(db))
	}

	wishlist := r.Group("/wishlist")
	{
		wishlist.GET("", wishlistControllers.GetWishlist(db))
		wishlist.POST("/toggle", wishlistControllers.ToggleWishlist(db))
	}

	r.POST("/newsletter", newsletterControllers.Subscribe(db))

	r.POST("/admin/login", auth.Login(db, cfg))
	r.GET("/admin/check", auth.Check(cfg))
	r.POST("/admin/logout", auth.Logout())
}
