package orderControllers

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/devtalhaa/Outfitters/cart"
	"github.com/devtalhaa/Outfitters/config"
	settingsControllers "github.com/devtalhaa/Outfitters/controllers/settings"
	"github.com/devtalhaa/Outfitters/models"
)

// -------- Request Structs --------

type CheckoutCustomer struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Address   string `json:"address" binding:"required"`
	City      string `json:"city" binding:"required"`
}

type CheckoutRequest struct {
	Customer      CheckoutCustomer `json:"customer" binding:"required"`
	Items         []cart.LineItem  `json:"items" binding:"required"`
	PaymentMethod string           `json:"payment_method" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Helpers --------

// parseOrderStatus maps a status string to the canonical enum value.
// Any valid status may follow any other; transitions are not
// constrained beyond enum membership.
func parseOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case "pending":
		return models.OrderStatusPending, nil
	case "processing":
		return models.OrderStatusProcessing, nil
	case "shipped":
		return models.OrderStatusShipped, nil
	case "delivered":
		return models.OrderStatusDelivered, nil
	case "cancelled":
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Handlers --------

// Checkout creates an order from the submitted cart snapshot. One shot,
// no retries, no idempotency key; totals are recomputed server-side
// from the submitted line items.
// POST /checkout
func Checkout(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if req.PaymentMethod != models.PaymentMethodCOD {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only Cash on Delivery is supported"})
			return
		}
		if len(req.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}
		for _, item := range req.Items {
			if item.Quantity < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "item quantity must be at least 1"})
				return
			}
		}

		totals := cart.ComputeTotals(req.Items, settingsControllers.ShippingCost(db, cfg))

		orderItems := make([]models.OrderItem, 0, len(req.Items))
		for _, item := range req.Items {
			orderItems = append(orderItems, models.OrderItem{
				ProductID: item.ProductID,
				Name:      item.Name,
				UnitPrice: item.UnitPrice,
				Image:     item.Image,
				Size:      item.Size,
				Color:     item.Color,
				Quantity:  item.Quantity,
			})
		}

		order := models.Order{
			OrderRef: generateOrderRef(),
			Customer: models.Customer{
				FirstName: req.Customer.FirstName,
				LastName:  req.Customer.LastName,
				Email:     req.Customer.Email,
				Phone:     req.Customer.Phone,
				Address:   req.Customer.Address,
				City:      req.Customer.City,
			},
			Items:         orderItems,
			Subtotal:      totals.Subtotal,
			ShippingCost:  totals.Shipping,
			TotalAmount:   totals.Total,
			PaymentMethod: models.PaymentMethodCOD,
			Status:        models.OrderStatusPending,
			CreatedAt:     time.Now(),
		}

		if err := db.Create(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		broadcastNewOrder(order)
		c.JSON(http.StatusCreated, order)
	}
}

// GetAllOrders lists orders newest first with pagination (admin).
// GET /admin/orders?page=&limit=
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := parsePositiveInt(c.DefaultQuery("page", "1"), 1)
		limit := parsePositiveInt(c.DefaultQuery("limit", "10"), 10)

		var total int64
		if err := db.Model(&models.Order{}).Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		var orders []models.Order
		if err := db.Preload("Items").
			Order("created_at desc").
			Offset((page - 1) * limit).
			Limit(limit).
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if orders == nil {
			orders = []models.Order{}
		}

		c.JSON(http.StatusOK, gin.H{
			"orders": orders,
			"pagination": gin.H{
				"total":        total,
				"pages":        int(math.Ceil(float64(total) / float64(limit))),
				"current_page": page,
				"limit":        limit,
			},
		})
	}
}

// GET /admin/orders/:id
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.Preload("Items").First(&order, c.Param("id")).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// UpdateOrderStatus sets the status field and nothing else.
// PUT /admin/orders/:id/status
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
			return
		}

		status, err := parseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, c.Param("id")).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		if err := db.Model(&order).Update("status", status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// DELETE /admin/orders/:id
func DeleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Order{}, c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
	}
}

func parsePositiveInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
