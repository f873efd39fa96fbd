package auth

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
	"github.com/devtalhaa/Outfitters/middleware"
	"github.com/devtalhaa/Outfitters/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Admin{}))
	return db
}

func setupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/admin/login", Login(db, cfg))
	r.GET("/admin/check", Check(cfg))
	r.POST("/admin/logout", Logout())

	protected := r.Group("/admin")
	protected.Use(middleware.RequireAdmin(cfg.JWTSecret))
	protected.PUT("/settings/password", ChangePassword(db))
	protected.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return r
}

func login(t *testing.T, r *gin.Engine, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(gin.H{"password": password})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.AdminCookie {
			return cookie
		}
	}
	t.Fatal("admin_token cookie not set")
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "test-secret",
		AdminPassword: "admin123",
	}
}

func TestLoginSeedsAdminAndSetsCookie(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db, testConfig())

	w := login(t, r, "admin123")
	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(t, w)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	var count int64
	db.Model(&models.Admin{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	r := setupRouter(setupTestDB(t), testConfig())

	w := login(t, r, "letmein")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckReportsSessionState(t *testing.T) {
	r := setupRouter(setupTestDB(t), testConfig())

	anon := httptest.NewRecorder()
	r.ServeHTTP(anon, httptest.NewRequest(http.MethodGet, "/admin/check", nil))
	assert.Equal(t, http.StatusUnauthorized, anon.Code)

	cookie := sessionCookie(t, login(t, r, "admin123"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/check", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "true")
}

func TestMiddlewareGatesProtectedRoutes(t *testing.T) {
	r := setupRouter(setupTestDB(t), testConfig())

	anon := httptest.NewRecorder()
	r.ServeHTTP(anon, httptest.NewRequest(http.MethodGet, "/admin/ping", nil))
	assert.Equal(t, http.StatusUnauthorized, anon.Code)

	forged := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.AddCookie(&http.Cookie{Name: middleware.AdminCookie, Value: "not-a-token"})
	r.ServeHTTP(forged, req)
	assert.Equal(t, http.StatusUnauthorized, forged.Code)

	cookie := sessionCookie(t, login(t, r, "admin123"))
	w := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestChangePassword(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db, testConfig())

	cookie := sessionCookie(t, login(t, r, "admin123"))

	change := func(current, next string) *httptest.ResponseRecorder {
		body, _ := json.Marshal(gin.H{"current_password": current, "new_password": next})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/admin/settings/password", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(cookie)
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusBadRequest, change("wrong", "newpass").Code)
	assert.Equal(t, http.StatusOK, change("admin123", "newpass").Code)

	assert.Equal(t, http.StatusUnauthorized, login(t, r, "admin123").Code)
	assert.Equal(t, http.StatusOK, login(t, r, "newpass").Code)
}
