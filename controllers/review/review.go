package reviewControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devtalhaa/Outfitters/models"
)

type CreateReviewRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	User      string `json:"user" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Content   string `json:"content" binding:"required"`
}

type MarkHelpfulRequest struct {
	ReviewID uint `json:"review_id" binding:"required"`
}

// GET /reviews?product_id=
func GetReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Query("product_id")
		if productID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		var reviews []models.Review
		if err := db.Where("product_id = ?", productID).Order("created_at desc").Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if reviews == nil {
			reviews = []models.Review{}
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// POST /reviews
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
			return
		}
		if req.Rating < 1 || req.Rating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
			return
		}

		review := models.Review{
			ProductID: req.ProductID,
			User:      req.User,
			Rating:    req.Rating,
			Content:   req.Content,
		}
		if err := db.Create(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}

// MarkHelpful bumps a review's helpful counter.
// PUT /reviews/helpful
func MarkHelpful(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MarkHelpfulRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Review ID is required"})
			return
		}

		var review models.Review
		if err := db.First(&review, req.ReviewID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		if err := db.Model(&review).UpdateColumn("helpful", gorm.Expr("helpful + 1")).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if err := db.First(&review, req.ReviewID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, review)
	}
}
