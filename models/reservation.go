package models

import (
	"time"

	"hotel-reservations/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ReservationTypeReservation = "reservation"
	ReservationTypeBooking     = "booking"
)

type Reservation struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	Viewed bool `gorm:"default:false" json:"viewed"`

	// CancelCode is issued by a cancellation request; empty until then.
	CancelCode string `gorm:"size:26" json:"cancel_code,omitempty"`

	RoomID uint `gorm:"not null;index" json:"room_id"`
	Room   Room `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"room"`

	CustomerID  *uint             `gorm:"index" json:"customer_id"`
	Customer    *Customer         `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL" json:"customer,omitempty"`
	CustomerRaw datatypes.JSONMap `json:"customer_raw,omitempty"`

	// Code is the guest-facing reference. Not unique at storage level.
	Code            string    `gorm:"size:7;index" json:"code"`
	ReservationType string    `gorm:"size:16;default:reservation" json:"reservation_type"`
	ArrivalDate     time.Time `gorm:"not null;index" json:"arrival_date"`
	DepartureDate   time.Time `gorm:"not null;index" json:"departure_date"`
	ReservatedOn    time.Time `json:"reservated_on"`

	Stay                 int                                 `gorm:"default:1" json:"stay"`
	GuestCount           int                                 `gorm:"default:1" json:"guest_count"`
	Guests               datatypes.JSONSlice[map[string]any] `json:"guests"`
	CustomizationRequest datatypes.JSONMap                   `json:"customization_request"`
	Requirement          string                              `gorm:"type:text" json:"requirement,omitempty"`

	Paid      bool     `gorm:"default:false" json:"paid"`
	PaymentID *uint    `gorm:"uniqueIndex" json:"payment_id,omitempty"`
	Payment   *Payment `gorm:"foreignKey:PaymentID;constraint:OnDelete:SET NULL" json:"payment,omitempty"`

	Cancelled   bool       `gorm:"default:false" json:"cancelled"`
	CancelledOn *time.Time `json:"cancelled_on,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate stamps a reference code when the caller did not supply one.
func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.Code == "" {
		r.Code = utils.GenerateReservationCode()
	}
	if r.ReservationType == "" {
		r.ReservationType = ReservationTypeReservation
	}
	return nil
}
