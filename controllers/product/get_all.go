package productcontroller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devtalhaa/Outfitters/models"
)

const defaultPageSize = 8

// GetProducts lists products with catalog filters and pagination.
// Query params: category, size, color, min_price, max_price,
// sort (price-asc | price-desc | newest), page, limit.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).
			Preload("Images").
			Preload("Colors").
			Preload("Sizes")

		// "All Footwear" is the storefront's unfiltered tab
		if category := c.Query("category"); category != "" && category != "All Footwear" {
			query = query.Where("category = ?", category)
		}

		// subqueries rather than JOINs so duplicate variant rows
		// cannot multiply a product in the result
		if size := c.Query("size"); size != "" {
			query = query.Where("id IN (?)",
				db.Model(&models.ProductSize{}).Select("product_id").Where("value = ?", size))
		}

		if color := c.Query("color"); color != "" {
			query = query.Where("id IN (?)",
				db.Model(&models.ProductColor{}).Select("product_id").Where("name = ?", color))
		}

		if minPriceStr := c.Query("min_price"); minPriceStr != "" {
			mp, err := strconv.ParseFloat(minPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			query = query.Where("price >= ?", mp)
		}
		if maxPriceStr := c.Query("max_price"); maxPriceStr != "" {
			mp, err := strconv.ParseFloat(maxPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			query = query.Where("price <= ?", mp)
		}

		page := parsePositiveInt(c.DefaultQuery("page", "1"), 1)
		limit := parsePositiveInt(c.DefaultQuery("limit", ""), defaultPageSize)

		var total int64
		if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		switch c.DefaultQuery("sort", "newest") {
		case "price-asc":
			query = query.Order("price asc")
		case "price-desc":
			query = query.Order("price desc")
		default:
			query = query.Order("created_at desc")
		}

		var products []models.Product
		if err := query.Offset((page - 1) * limit).Limit(limit).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if products == nil {
			products = []models.Product{}
		}

		c.JSON(http.StatusOK, gin.H{
			"products": products,
			"pagination": gin.H{
				"total":        total,
				"pages":        int(math.Ceil(float64(total) / float64(limit))),
				"current_page": page,
				"limit":        limit,
			},
		})
	}
}

func parsePositiveInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
