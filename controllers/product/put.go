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

// UpdateProduct applies a partial multipart update. Only fields present
// in the form are touched. existing_images lists the image URLs to
// retain; files under new_images are uploaded and appended after them.
func UpdateProduct(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, c.Param("id")).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		if v, ok := c.GetPostForm("name"); ok {
			product.Name = v
			product.Slug = slugify(v)
		}
		if v, ok := c.GetPostForm("price"); ok {
			price, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			product.Price = price
		}
		if v, ok := c.GetPostForm("original_price"); ok {
			op, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid original_price"})
				return
			}
			product.OriginalPrice = op
		}
		if v, ok := c.GetPostForm("description"); ok {
			product.Description = v
		}
		if v, ok := c.GetPostForm("category"); ok {
			product.Category = v
		}
		if v, ok := c.GetPostForm("article_code"); ok {
			product.ArticleCode = v
		}
		if v, ok := c.GetPostForm("composition"); ok {
			product.Composition = v
		}
		if v, ok := c.GetPostForm("care"); ok {
			product.Care = v
		}

		var newColors []models.ProductColor
		replaceColors := false
		if v, ok := c.GetPostForm("colors"); ok {
			if err := json.Unmarshal([]byte(v), &newColors); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid colors format"})
				return
			}
			replaceColors = true
		}

		var newSizes []models.ProductSize
		replaceSizes := false
		if v, ok := c.GetPostForm("sizes"); ok {
			if err := json.Unmarshal([]byte(v), &newSizes); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sizes format"})
				return
			}
			replaceSizes = true
		}

		var imageURLs []string
		replaceImages := false
		if v, ok := c.GetPostForm("existing_images"); ok {
			if err := json.Unmarshal([]byte(v), &imageURLs); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid existing_images format"})
				return
			}
			replaceImages = true
		}
		if form, err := c.MultipartForm(); err == nil {
			for _, file := range form.File["new_images"] {
				url, err := saveUpload(c, file, filepath.Join(cfg.UploadDir, "products"), productsPublicPath)
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
					return
				}
				imageURLs = append(imageURLs, url)
				replaceImages = true
			}
		}

		if file, err := c.FormFile("size_chart"); err == nil {
			url, err := saveUpload(c, file, filepath.Join(cfg.UploadDir, "size-charts"), sizeChartsPublicPath)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			product.SizeChart = url
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if replaceColors {
				if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductColor{}).Error; err != nil {
					return err
				}
				product.Colors = newColors
			}
			if replaceSizes {
				if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductSize{}).Error; err != nil {
					return err
				}
				product.Sizes = newSizes
			}
			if replaceImages {
				if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
					return err
				}
				images := make([]models.ProductImage, 0, len(imageURLs))
				for i, url := range imageURLs {
					images = append(images, models.ProductImage{URL: url, Position: i})
				}
				product.Images = images
			}
			return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&product).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		var updated models.Product
		if err := preloadProduct(db).First(&updated, product.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
