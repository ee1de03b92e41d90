package model

import "github.com/google/uuid"

type Product struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Price       int64  `gorm:"not null" json:"price" validate:"required,gt=0"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `gorm:"type:varchar(512)" json:"image"`

	// Relasi
	SizeProducts []SizeProduct `json:"size_products,omitempty"`
}

// SizeProduct holds the stock for one size of a product
type SizeProduct struct {
	BaseModel
	Size      string    `gorm:"type:varchar(20);not null" json:"size" validate:"required"`
	Stock     int       `gorm:"default:0" json:"stock"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
}
