package newsletterControllers

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devtalhaa/Outfitters/models"
)

type SubscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe adds an email to the newsletter list. Subscribing twice is
// a no-op, not an error.
// POST /newsletter
func Subscribe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubscribeRequest
		if err := c.ShouldBindJSON(&req); err != nil || !strings.Contains(req.Email, "@") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a valid email address"})
			return
		}

		var existing models.NewsletterSubscriber
		err := db.Where("email = ?", req.Email).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusOK, gin.H{"message": "You are already subscribed!"})
			return
		}
		if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		subscriber := models.NewsletterSubscriber{Email: req.Email}
		if err := db.Create(&subscriber).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Subscription successful!", "subscriber": subscriber})
	}
}

// ListSubscribers pages through the list for the dashboard.
// GET /admin/newsletter?page=&limit=
func ListSubscribers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := parsePositiveInt(c.DefaultQuery("page", "1"), 1)
		limit := parsePositiveInt(c.DefaultQuery("limit", "10"), 10)

		var total int64
		if err := db.Model(&models.NewsletterSubscriber{}).Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		var subscribers []models.NewsletterSubscriber
		if err := db.Order("created_at desc").
			Offset((page - 1) * limit).
			Limit(limit).
			Find(&subscribers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if subscribers == nil {
			subscribers = []models.NewsletterSubscriber{}
		}

		c.JSON(http.StatusOK, gin.H{
			"subscribers": subscribers,
			"pagination": gin.H{
				"total":        total,
				"pages":        int(math.Ceil(float64(total) / float64(limit))),
				"current_page": page,
				"limit":        limit,
			},
		})
	}
}

// RemoveSubscriber deletes one subscription.
// DELETE /admin/newsletter?id=
func RemoveSubscriber(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Query("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Subscription ID is required"})
			return
		}

		result := db.Delete(&models.NewsletterSubscriber{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscriber not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Subscriber removed"})
	}
}

func parsePositiveInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
