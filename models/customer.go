// models/customer.go
package models

import (
	"time"

	"hotel-reservations/utils"
)

// Customer holds the identity data captured with a reservation. A new row is
// written for every reservation; the booking flow never updates one.
type Customer struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FirstName    string    `gorm:"size:25;not null" json:"first_name"`
	LastName     string    `gorm:"size:25;not null" json:"last_name"`
	IDType       string    `gorm:"column:id_type;size:255;not null" json:"identification_type"`
	IDNumber     string    `gorm:"column:id_number;size:25;not null" json:"identification_number"`
	EmailAddress string    `gorm:"size:255;not null" json:"email_address"`
	PhoneNumber  string    `gorm:"size:12;not null" json:"phone_number"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

func (c Customer) SecureIDNumber() string {
	return utils.MaskIDNumber(c.IDNumber)
}

func (c Customer) SecureEmailAddress() string {
	return utils.MaskEmail(c.EmailAddress)
}

func (c Customer) SecurePhoneNumber() string {
	return utils.MaskPhone(c.PhoneNumber)
}

// Snapshot returns the customer bundle as stored in reservations.customer_raw.
func (c Customer) Snapshot() map[string]any {
	return map[string]any{
		"first_name":            c.FirstName,
		"last_name":             c.LastName,
		"identification_type":   c.IDType,
		"identification_number": c.IDNumber,
		"email_address":         c.EmailAddress,
		"phone_number":          c.PhoneNumber,
	}
}
