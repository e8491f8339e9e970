package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Number is the door label; it may be blank for unnumbered units.
	Number      string            `gorm:"size:14" json:"number"`
	CategoryID  uint              `gorm:"not null;index" json:"category_id"`
	Description *string           `gorm:"type:text" json:"description,omitempty"`
	Unique      bool              `gorm:"column:is_unique;default:false" json:"unique"`
	Addon       datatypes.JSONMap `json:"addon,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`

	Category Category `gorm:"foreignKey:CategoryID" json:"category"`
}

// Label renders the room for staff screens, falling back to the id when
// the room has no number.
func (r Room) Label() string {
	if n := strings.TrimSpace(r.Number); n != "" {
		return "Room " + n
	}
	return fmt.Sprintf("Room %d", r.ID)
}
