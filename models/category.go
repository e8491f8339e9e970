package models

import (
	"time"
)

// Category is a priced class of room (e.g. "Deluxe Double").
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Price       float64   `gorm:"not null;default:0" json:"price"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Cover       string    `gorm:"size:255" json:"cover"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Rooms  []Room  `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	AddOns []AddOn `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"addons,omitempty"`
}

// AddOn is an optional extra sold with rooms of a category.
type AddOn struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CategoryID  uint      `gorm:"not null;index" json:"category_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"not null;default:0" json:"price"`
	Render      *string   `gorm:"size:255" json:"render,omitempty"`
	Cover       string    `gorm:"size:255" json:"cover"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (AddOn) TableName() string { return "addons" }
