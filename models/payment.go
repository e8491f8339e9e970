package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	PaymentPending = "pending"
	PaymentSuccess = "success"
	PaymentFailed  = "failed"
)

// Payment is a status placeholder; no gateway is wired to it.
type Payment struct {
	ID                   uint              `gorm:"primaryKey" json:"id"`
	Amount               float64           `gorm:"not null;default:0" json:"amount"`
	Date                 time.Time         `json:"date"`
	Status               string            `gorm:"size:10;default:pending" json:"status"`
	CustomerID           *uint             `gorm:"index" json:"customer_id"`
	Customer             *Customer         `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL" json:"-"`
	Description          datatypes.JSONMap `json:"description,omitempty"`
	TransactionID        *string           `gorm:"size:255;uniqueIndex" json:"transaction_id,omitempty"`
	TransactionReference *string           `gorm:"size:255;uniqueIndex" json:"transaction_reference,omitempty"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
}
