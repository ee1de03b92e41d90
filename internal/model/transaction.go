package model

import (
	"time"

	"github.com/google/uuid"
)

type TransactionStatus string

const (
	StatusUnpaid TransactionStatus = "Unpaid"
	StatusPaid   TransactionStatus = "Paid"
)

// Transaction is one order: payment status plus total
type Transaction struct {
	BaseModel
	Date       time.Time         `gorm:"not null" json:"date"`
	Status     TransactionStatus `gorm:"type:varchar(10);not null;default:'Unpaid'" json:"status"`
	TotalPrice int64             `gorm:"not null" json:"total_price"`
	UserID     uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`

	TransactionProducts []TransactionProduct `json:"transaction_products,omitempty"`
}

// TransactionProduct is one line item of an order.
// SizeProductID is serialized as "size" for wire compatibility with existing
// clients; it is a SizeProduct row id, not a size label.
type TransactionProduct struct {
	BaseModel
	SizeProductID uuid.UUID `gorm:"type:uuid;not null" json:"size"`
	Qty           int       `gorm:"not null" json:"qty"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null" json:"product_id"`
	TransactionID uuid.UUID `gorm:"type:uuid;not null;index" json:"transaction_id"`

	Product *Product `json:"product,omitempty"`
}
