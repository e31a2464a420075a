package models

import (
	"time"
)

// User roles mirror the admin panel's role picker.
const (
	RoleCustomer   = "customer"
	RoleStaff      = "staff"
	RoleManager    = "manager"
	RoleSuperAdmin = "super_admin"
)

// User statuses.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User represents a customer or staff account.
// Passwords are stored and compared in plaintext; this API issues no tokens.
type User struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" binding:"required" gorm:"not null"`
	Email       string     `json:"email" binding:"required,email" gorm:"uniqueIndex;not null"`
	Phone       string     `json:"phone"`
	Password    string     `json:"password"`
	Role        string     `json:"role" gorm:"default:'customer'"`
	Status      string     `json:"status" gorm:"default:'active'"`
	Permissions []string   `json:"permissions" gorm:"serializer:json"`
	JoinDate    time.Time  `json:"joinDate" gorm:"autoCreateTime"`
	LastLogin   *time.Time `json:"lastLogin"`
	TotalOrders int        `json:"totalOrders"`
	TotalSpent  float64    `json:"totalSpent"`
	LastOrder   *time.Time `json:"lastOrder"`
}
