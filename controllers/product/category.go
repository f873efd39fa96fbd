package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devtalhaa/Outfitters/models"
)

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type ReorderCategoriesRequest struct {
	Categories []struct {
		ID    uint `json:"id" binding:"required"`
		Order int  `json:"order"`
	} `json:"categories" binding:"required"`
}

// GetAllCategories returns categories in display order.
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("sort_order asc").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		if categories == nil {
			categories = []models.Category{}
		}
		c.JSON(http.StatusOK, categories)
	}
}

// CreateCategory appends a category at the end of the display order.
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
			return
		}

		slug := slugify(req.Name)

		var existing models.Category
		if err := db.Where("slug = ?", slug).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category already exists"})
			return
		} else if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		var maxOrder int
		db.Model(&models.Category{}).Select("COALESCE(MAX(sort_order), -1)").Scan(&maxOrder)

		category := models.Category{
			Name:  req.Name,
			Slug:  slug,
			Order: maxOrder + 1,
		}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// ReorderCategories applies a bulk display-order update.
func ReorderCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ReorderCategoriesRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
			return
		}

		for _, cat := range req.Categories {
			if err := db.Model(&models.Category{}).
				Where("id = ?", cat.ID).
				Update("sort_order", cat.Order).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order updated"})
	}
}

func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := db.First(&category, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		if err := db.Delete(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}
