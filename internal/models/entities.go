package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for all date columns.
const DateLayout = "2006-01-02"

// User represents a registered customer
type User struct {
	UserID     int64     `json:"user_id" db:"user_id"`
	FirstName  string    `json:"first_name" db:"first_name"`
	LastName   string    `json:"last_name" db:"last_name"`
	Email      string    `json:"email" db:"email"`
	SignupDate time.Time `json:"signup_date" db:"signup_date"`
	Country    string    `json:"country" db:"country"`
}

// Product represents an item in the catalog
type Product struct {
	ProductID int64           `json:"product_id" db:"product_id"`
	Name      string          `json:"name" db:"name"`
	Category  string          `json:"category" db:"category"`
	Price     decimal.Decimal `json:"price" db:"price"`
	Inventory int             `json:"inventory" db:"inventory"`
}

// Order represents a purchase made by a user. TotalAmount is derived
// from the order's items after item generation.
type Order struct {
	OrderID     int64           `json:"order_id" db:"order_id"`
	UserID      int64           `json:"user_id" db:"user_id"`
	OrderDate   time.Time       `json:"order_date" db:"order_date"`
	Status      string          `json:"status" db:"status"`
	TotalAmount decimal.Decimal `json:"total_amount" db:"total_amount"`
}

// OrderItem represents a single line of an order. UnitPrice is a
// snapshot of the product price at order time, not a live reference.
type OrderItem struct {
	OrderItemID int64           `json:"order_item_id" db:"order_item_id"`
	OrderID     int64           `json:"order_id" db:"order_id"`
	ProductID   int64           `json:"product_id" db:"product_id"`
	Quantity    int             `json:"quantity" db:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price" db:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total" db:"line_total"`
}

// Review represents a product review left by a user. The user is not
// required to have purchased the product.
type Review struct {
	ReviewID   int64     `json:"review_id" db:"review_id"`
	UserID     int64     `json:"user_id" db:"user_id"`
	ProductID  int64     `json:"product_id" db:"product_id"`
	Rating     int       `json:"rating" db:"rating"`
	ReviewDate time.Time `json:"review_date" db:"review_date"`
	Comment    string    `json:"comment" db:"comment"`
}

// Order statuses
const (
	OrderStatusPending   = "PENDING"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

// OrderStatuses lists every valid order status.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}
