package sliderControllers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devtalhaa/Outfitters/config"
	"github.com/devtalhaa/Outfitters/models"
)

const sliderPublicPath = "/uploads/slider"

type ReorderSlidesRequest struct {
	Slides []struct {
		ID    uint `json:"id" binding:"required"`
		Order int  `json:"order"`
	} `json:"slides" binding:"required"`
}

type UpdateSlideRequest struct {
	IsActive *bool `json:"is_active"`
}

// GetActiveSlides feeds the storefront carousel.
// GET /slider
func GetActiveSlides(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var slides []models.Slide
		if err := db.Where("is_active = ?", true).Order("sort_order asc").Find(&slides).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if slides == nil {
			slides = []models.Slide{}
		}
		c.JSON(http.StatusOK, slides)
	}
}

// ListSlides returns every slide for the dashboard, active or not.
// GET /admin/slider
func ListSlides(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var slides []models.Slide
		if err := db.Order("sort_order asc").Find(&slides).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if slides == nil {
			slides = []models.Slide{}
		}
		c.JSON(http.StatusOK, slides)
	}
}

// UploadSlide stores the image and appends the slide at the end of the
// carousel order.
// POST /admin/slider
func UploadSlide(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
			return
		}

		url, err := saveSlideImage(c, file, cfg)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		var maxOrder int
		db.Model(&models.Slide{}).Select("COALESCE(MAX(sort_order), -1)").Scan(&maxOrder)

		slide := models.Slide{
			ImageURL: url,
			Order:    maxOrder + 1,
			IsActive: true,
		}
		if err := db.Create(&slide).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, slide)
	}
}

// ReorderSlides applies a bulk carousel-order update.
// PUT /admin/slider
func ReorderSlides(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ReorderSlidesRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
			return
		}

		for _, s := range req.Slides {
			if err := db.Model(&models.Slide{}).
				Where("id = ?", s.ID).
				Update("sort_order", s.Order).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order updated"})
	}
}

// UpdateSlide toggles a slide's visibility.
// PUT /admin/slider/:id
func UpdateSlide(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateSlideRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "is_active is required"})
			return
		}

		var slide models.Slide
		if err := db.First(&slide, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Slide not found"})
			return
		}

		if err := db.Model(&slide).Update("is_active", *req.IsActive).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, slide)
	}
}

// DeleteSlide removes both the record and the stored file.
// DELETE /admin/slider/:id
func DeleteSlide(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var slide models.Slide
		if err := db.First(&slide, c.Param("id")).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Slide not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		if slide.ImageURL != "" {
			localPath := filepath.Join(cfg.UploadDir, "slider", filepath.Base(slide.ImageURL))
			if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
				return
			}
		}

		if err := db.Delete(&slide).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Slide deleted"})
	}
}
