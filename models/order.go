package models

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// PaymentMethodCOD is the only payment method checkout accepts.
const PaymentMethodCOD = "COD"

// Order is an immutable snapshot of the cart at checkout time. Product
// changes after placement never affect historical orders; only the
// status field is mutated afterwards, by an administrator.
type Order struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	OrderRef      string      `gorm:"uniqueIndex" json:"order_ref"`
	Customer      Customer    `gorm:"embedded;embeddedPrefix:customer_" json:"customer"`
	Items         []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal      float64     `json:"subtotal"`
	ShippingCost  float64     `json:"shipping_cost"`
	TotalAmount   float64     `json:"total_amount"`
	PaymentMethod string      `gorm:"type:VARCHAR(10);default:'COD'" json:"payment_method"`
	Status        OrderStatus `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
}

// Customer is embedded in Order.
type Customer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	OrderID   uint    `gorm:"index" json:"-"`
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Image     string  `json:"image"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	Quantity  int     `json:"quantity"`
}
