package wishlistControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devtalhaa/Outfitters/models"
)

type ToggleRequest struct {
	GuestID   string `json:"guest_id" binding:"required"`
	ProductID uint   `json:"product_id" binding:"required"`
}

// GetWishlist returns the favorites for a guest id, lazily creating an
// empty record on first read.
// GET /wishlist?guest_id=
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := c.Query("guest_id")
		if guestID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
			return
		}

		wishlist, err := findOrCreateWishlist(db, guestID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		products, err := expandProducts(db, wishlist.Items)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"guest_id": guestID, "products": products})
	}
}

// ToggleWishlist is the only favorites mutator: present removes, absent
// appends. Calling it twice in a row restores the original set. The
// full resulting set is returned so the client can replace its view.
// The product id is stored as-is; ids that no longer resolve are
// omitted from the expanded view but remain toggleable.
// POST /wishlist/toggle
func ToggleWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ToggleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id and product_id are required"})
			return
		}

		wishlist, err := findOrCreateWishlist(db, req.GuestID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		var item models.WishlistItem
		err = db.Where("wishlist_id = ? AND product_id = ?", wishlist.ID, req.ProductID).First(&item).Error
		switch {
		case err == nil:
			if err := db.Delete(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		case err == gorm.ErrRecordNotFound:
			item = models.WishlistItem{
				WishlistID: wishlist.ID,
				ProductID:  req.ProductID,
				AddedAt:    time.Now(),
			}
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		var items []models.WishlistItem
		if err := db.Where("wishlist_id = ?", wishlist.ID).Order("id asc").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		products, err := expandProducts(db, items)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"guest_id": req.GuestID, "products": products})
	}
}

func findOrCreateWishlist(db *gorm.DB, guestID string) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	err := db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("wishlist_items.id asc")
	}).Where("guest_id = ?", guestID).First(&wishlist).Error
	if err == gorm.ErrRecordNotFound {
		wishlist = models.Wishlist{GuestID: guestID}
		if err := db.Create(&wishlist).Error; err != nil {
			return nil, err
		}
		return &wishlist, nil
	}
	if err != nil {
		return nil, err
	}
	return &wishlist, nil
}

// expandProducts resolves items to display-time product details,
// preserving insertion order.
func expandProducts(db *gorm.DB, items []models.WishlistItem) ([]models.Product, error) {
	products := []models.Product{}
	if len(items) == 0 {
		return products, nil
	}

	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	var found []models.Product
	err := db.Preload("Images").Preload("Colors").Preload("Sizes").
		Where("id IN ?", ids).Find(&found).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Product, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}
	for _, item := range items {
		if p, ok := byID[item.ProductID]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}
