package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devtalhaa/Outfitters/config"
)

// SetupRoutes is the single entry-point that wires up the storefront,
// order, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	SetupStorefrontRoutes(r, db, cfg)
	SetupOrderRoutes(r, db, cfg)
	SetupAdminRoutes(r, db, cfg)
}
