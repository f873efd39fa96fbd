package settingsControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/devtalhaa/Outfitters/config"
	"github.com/devtalhaa/Outfitters/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Setting{}))
	return db
}

func setupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/settings", GetSettings(db, cfg))
	r.POST("/admin/settings", UpsertSetting(db))
	return r
}

func getSettings(t *testing.T, r *gin.Engine) map[string]string {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/settings", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func upsert(r *gin.Engine, body gin.H) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/settings", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestGetSettingsDefaultsShippingCost(t *testing.T) {
	r := setupRouter(setupTestDB(t), &config.Config{FlatShipping: 250})

	resp := getSettings(t, r)
	assert.Equal(t, "250", resp[ShippingCostKey])
}

func TestUpsertSettingCreatesAndOverwrites(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db, &config.Config{FlatShipping: 250})

	assert.Equal(t, http.StatusOK, upsert(r, gin.H{"key": "shippingCost", "value": "300"}).Code)
	assert.Equal(t, "300", getSettings(t, r)[ShippingCostKey])

	assert.Equal(t, http.StatusOK, upsert(r, gin.H{"key": "shippingCost", "value": "400"}).Code)
	assert.Equal(t, "400", getSettings(t, r)[ShippingCostKey])

	var count int64
	db.Model(&models.Setting{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestUpsertSettingRequiresKey(t *testing.T) {
	r := setupRouter(setupTestDB(t), &config.Config{})

	assert.Equal(t, http.StatusBadRequest, upsert(r, gin.H{"value": "300"}).Code)
}

func TestShippingCostFallsBackOnBadValue(t *testing.T) {
	db := setupTestDB(t)
	cfg := &config.Config{FlatShipping: 250}

	assert.Equal(t, 250.0, ShippingCost(db, cfg))

	require.NoError(t, db.Create(&models.Setting{Key: ShippingCostKey, Value: "free"}).Error)
	assert.Equal(t, 250.0, ShippingCost(db, cfg))

	require.NoError(t, db.Model(&models.Setting{}).Where("key = ?", ShippingCostKey).Update("value", "175").Error)
	assert.Equal(t, 175.0, ShippingCost(db, cfg))
}
