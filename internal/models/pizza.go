package models

import "gorm.io/gorm"

// Pizza represents a menu item with its storefront properties
type Pizza struct {
	ID          uint     `json:"id" gorm:"primaryKey"`
	Name        string   `json:"name" binding:"required" gorm:"not null"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required,gt=0" gorm:"not null"`
	Image       string   `json:"image"`
	Category    string   `json:"category" binding:"required"`
	IsVeg       bool     `json:"isVeg"`
	IsSpicy     bool     `json:"isSpicy"`
	IsAvailable *bool    `json:"isAvailable" gorm:"default:true"`
	Rating      float64  `json:"rating"`
	Ingredients []string `json:"ingredients" gorm:"serializer:json"`
	Featured    bool     `json:"featured"`
}

// BeforeCreate defaults IsAvailable to true when the payload omitted it.
// The flag is a pointer so an explicit false survives the INSERT.
func (p *Pizza) BeforeCreate(tx *gorm.DB) error {
	if p.IsAvailable == nil {
		p.IsAvailable = Ptr(true)
	}
	return nil
}
