package settingsControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devtalhaa/Outfitters/config"
	"github.com/devtalhaa/Outfitters/models"
)

// ShippingCostKey names the flat shipping charge setting.
const ShippingCostKey = "shippingCost"

type UpsertSettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

// GetSettings returns every stored setting as a key/value map.
// shippingCost falls back to the configured flat charge when unset.
// GET /settings
func GetSettings(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var settings []models.Setting
		if err := db.Find(&settings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		settingsMap := make(map[string]string, len(settings))
		for _, s := range settings {
			settingsMap[s.Key] = s.Value
		}
		if _, ok := settingsMap[ShippingCostKey]; !ok {
			settingsMap[ShippingCostKey] = strconv.FormatFloat(cfg.FlatShipping, 'f', -1, 64)
		}
		c.JSON(http.StatusOK, settingsMap)
	}
}

// UpsertSetting creates or overwrites one key (admin).
// POST /admin/settings
func UpsertSetting(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpsertSettingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Key is required"})
			return
		}

		var setting models.Setting
		err := db.Where("key = ?", req.Key).First(&setting).Error
		switch {
		case err == nil:
			setting.Value = req.Value
			if err := db.Save(&setting).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		case err == gorm.ErrRecordNotFound:
			setting = models.Setting{Key: req.Key, Value: req.Value}
			if err := db.Create(&setting).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, setting)
	}
}

// ShippingCost resolves the flat shipping charge from the settings
// store, falling back to the configured value when unset or
// unparsable.
func ShippingCost(db *gorm.DB, cfg *config.Config) float64 {
	var setting models.Setting
	if err := db.Where("key = ?", ShippingCostKey).First(&setting).Error; err != nil {
		return cfg.FlatShipping
	}
	v, err := strconv.ParseFloat(setting.Value, 64)
	if err != nil {
		return cfg.FlatShipping
	}
	return v
}
