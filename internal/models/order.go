package models

import (
	"time"
)

// Order statuses. Transitions are admin-triggered overwrites of the status
// field; delivered and cancelled are terminal.
const (
	OrderStatusPending        = "pending"
	OrderStatusPreparing      = "preparing"
	OrderStatusOutForDelivery = "out_for_delivery"
	OrderStatusDelivered      = "delivered"
	OrderStatusCancelled      = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusOutForDelivery,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is a line snapshot copied from the catalog at order time.
// It is a value, not a reference: later catalog edits must not change it.
type OrderItem struct {
	PizzaID  uint     `json:"pizzaId,omitempty"`
	Name     string   `json:"name"`
	Size     string   `json:"size"`
	Extras   []string `json:"extras"`
	Quantity int      `json:"quantity"`
	Price    float64  `json:"price"`
	Image    string   `json:"image"`
}

// Order represents a placed order with its embedded item snapshot and
// server-computed totals.
type Order struct {
	ID                  uint        `json:"id" gorm:"primaryKey"`
	Number              string      `json:"number" gorm:"uniqueIndex"`
	CustomerName        string      `json:"customerName" binding:"required" gorm:"not null"`
	CustomerPhone       string      `json:"customerPhone" binding:"required" gorm:"not null"`
	CustomerEmail       string      `json:"customerEmail"`
	Address             string      `json:"address" binding:"required" gorm:"not null"`
	Area                string      `json:"area"`
	Items               []OrderItem `json:"items" binding:"required,min=1" gorm:"serializer:json"`
	Subtotal            float64     `json:"subtotal"`
	DeliveryFee         float64     `json:"deliveryFee"`
	Tax                 float64     `json:"tax"`
	Total               float64     `json:"total"`
	Status              string      `json:"status" gorm:"default:'pending'"`
	PaymentMethod       string      `json:"paymentMethod" gorm:"default:'cash'"`
	OrderTime           string      `json:"orderTime"`
	EstimatedDelivery   string      `json:"estimatedDelivery"`
	SpecialInstructions string      `json:"specialInstructions"`
	CreatedAt           time.Time   `json:"createdAt"`
	UpdatedAt           time.Time   `json:"updatedAt"`
}
