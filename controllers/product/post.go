package productcontroller

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devtalhaa/Outfitters/config"
	"github.com/devtalhaa/Outfitters/models"
)

const productsPublicPath = "/uploads/products"
const sizeChartsPublicPath = "/uploads/size-charts"

// CreateProduct creates a product from a multipart form: name, price,
// category, article_code plus optional description, original_price,
// composition, care, colors/sizes as JSON arrays, image files and a
// size chart file.
func CreateProduct(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		category := c.PostForm("category")
		if name == "" || priceStr == "" || category == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, price, and category are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		var originalPrice float64
		if s := c.PostForm("original_price"); s != "" {
			if originalPrice, err = strconv.ParseFloat(s, 64); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid original_price"})
				return
			}
		}

		var colors []models.ProductColor
		if s := c.PostForm("colors"); s != "" {
			if err := json.Unmarshal([]byte(s), &colors); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid colors format"})
				return
			}
		}

		var sizes []models.ProductSize
		if s := c.PostForm("sizes"); s != "" {
			if err := json.Unmarshal([]byte(s), &sizes); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sizes format"})
				return
			}
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
			return
		}

		var images []models.ProductImage
		for i, file := range form.File["images"] {
			url, err := saveUpload(c, file, filepath.Join(cfg.UploadDir, "products"), productsPublicPath)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			images = append(images, models.ProductImage{URL: url, Position: i})
		}

		var sizeChart string
		if file, err := c.FormFile("size_chart"); err == nil {
			sizeChart, err = saveUpload(c, file, filepath.Join(cfg.UploadDir, "size-charts"), sizeChartsPublicPath)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		}

		product := models.Product{
			Name:          name,
			Slug:          slugify(name),
			Price:         price,
			OriginalPrice: originalPrice,
			Description:   c.PostForm("description"),
			Category:      category,
			ArticleCode:   c.PostForm("article_code"),
			Composition:   c.PostForm("composition"),
			Care:          c.PostForm("care"),
			SizeChart:     sizeChart,
			Images:        images,
			Colors:        colors,
			Sizes:         sizes,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
