package models

import "gorm.io/gorm"

// Area represents a delivery zone with its fee, ETA and coverage
type Area struct {
	ID           uint     `json:"id" gorm:"primaryKey"`
	Name         string   `json:"name" binding:"required" gorm:"not null"`
	DeliveryFee  float64  `json:"deliveryFee" binding:"required,gte=0" gorm:"not null"`
	DeliveryTime string   `json:"deliveryTime" binding:"required"`
	IsActive     *bool    `json:"isActive" gorm:"default:true"`
	PostalCodes  []string `json:"postalCodes" gorm:"serializer:json"`
	OrderCount   int      `json:"orderCount"`
}

// BeforeCreate defaults IsActive to true when the payload omitted it.
// The flag is a pointer so an explicit false survives the INSERT.
func (a *Area) BeforeCreate(tx *gorm.DB) error {
	if a.IsActive == nil {
		a.IsActive = Ptr(true)
	}
	return nil
}
