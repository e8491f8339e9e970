package controllers

import (
	"time"

	"hotel-reservations/models"
	"hotel-reservations/services"
	"hotel-reservations/utils"

	"github.com/jinzhu/copier"
)

// ---------------------------
// Payloads
// ---------------------------

type AvailabilityPayload struct {
	services.StayWindow
	CategoryID *uint `json:"category_id"`
}

type CreateReservationPayload struct {
	services.StayWindow
	services.CustomerInput
	CategoryID  uint             `json:"category_id" binding:"required_without=RoomID"`
	RoomID      *uint            `json:"room_id,omitempty"`
	Guests      []map[string]any `json:"guests"`
	Requirement map[string]any   `json:"customization_request"`
	Note        string           `json:"requirement"`
}

func (p CreateReservationPayload) toRequest() services.ReservationRequest {
	return services.ReservationRequest{
		StayWindow:  p.StayWindow,
		Customer:    p.CustomerInput,
		CategoryID:  p.CategoryID,
		RoomID:      p.RoomID,
		Guests:      p.Guests,
		Requirement: p.Requirement,
		Note:        p.Note,
	}
}

type CancelReservationPayload struct {
	Code                 string `json:"code" binding:"required"`
	EmailAddress         string `json:"email_address" binding:"required"`
	IdentificationNumber string `json:"identification_number" binding:"required"`
}

// ---------------------------
// Responses
// ---------------------------

type CategorySummary struct {
	ID    uint    `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Cover string  `json:"cover,omitempty"`
	Color string  `json:"color,omitempty"`
}

type RoomSummary struct {
	ID       uint            `json:"id"`
	Number   string          `json:"number"`
	Label    string          `json:"label"`
	Category CategorySummary `json:"category"`
}

type AvailabilityResponse struct {
	Rooms      []RoomSummary     `json:"rooms"`
	Categories []CategorySummary `json:"categories"`
}

// SecureCustomerResponse is the masked view handed to untrusted callers.
type SecureCustomerResponse struct {
	FirstName            string `json:"first_name"`
	LastName             string `json:"last_name"`
	IdentificationType   string `json:"identification_type"`
	IdentificationNumber string `json:"identification_number"`
	EmailAddress         string `json:"email_address"`
	PhoneNumber          string `json:"phone_number"`
}

type CustomerResponse struct {
	ID           uint      `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	IDType       string    `json:"identification_type"`
	IDNumber     string    `json:"identification_number"`
	EmailAddress string    `json:"email_address"`
	PhoneNumber  string    `json:"phone_number"`
	CreatedAt    time.Time `json:"created_at"`
}

type ReservationResponse struct {
	ID                   uint             `json:"id"`
	Code                 string           `json:"code"`
	ReservationType      string           `json:"reservation_type"`
	ArrivalDate          time.Time        `json:"arrival_date"`
	DepartureDate        time.Time        `json:"departure_date"`
	ReservatedOn         time.Time        `json:"reservated_on"`
	Stay                 int              `json:"stay"`
	GuestCount           int              `json:"guest_count"`
	Guests               []map[string]any `json:"guests"`
	CustomizationRequest map[string]any   `json:"customization_request"`
	Requirement          string           `json:"requirement,omitempty"`
	Paid                 bool             `json:"paid"`
	Cancelled            bool             `json:"cancelled"`
	Room                 RoomSummary      `json:"room"`
	Customer             any              `json:"customer"`

	// staff only
	Viewed        *bool  `json:"viewed,omitempty"`
	CancelCode    string `json:"cancel_code,omitempty"`
	PaymentStatus string `json:"payment_status,omitempty"`
}

func categorySummary(c models.Category, withColor bool) CategorySummary {
	s := CategorySummary{ID: c.ID, Title: c.Title, Price: c.Price, Cover: c.Cover}
	if withColor {
		s.Color = utils.CategoryColor(c.ID)
	}
	return s
}

func roomSummary(r models.Room, withColor bool) RoomSummary {
	cat := r.Category
	if cat.ID == 0 {
		cat.ID = r.CategoryID
	}
	return RoomSummary{
		ID:       r.ID,
		Number:   r.Number,
		Label:    r.Label(),
		Category: categorySummary(cat, withColor),
	}
}

func newAvailabilityResponse(rooms []models.Room, withColor bool) AvailabilityResponse {
	resp := AvailabilityResponse{
		Rooms:      make([]RoomSummary, 0, len(rooms)),
		Categories: []CategorySummary{},
	}
	for _, r := range rooms {
		resp.Rooms = append(resp.Rooms, roomSummary(r, withColor))
	}
	for _, c := range services.ExtractCategories(rooms) {
		resp.Categories = append(resp.Categories, categorySummary(c, withColor))
	}
	return resp
}

func secureCustomer(c *models.Customer) *SecureCustomerResponse {
	if c == nil {
		return nil
	}
	return &SecureCustomerResponse{
		FirstName:            c.FirstName,
		LastName:             c.LastName,
		IdentificationType:   c.IDType,
		IdentificationNumber: c.SecureIDNumber(),
		EmailAddress:         c.SecureEmailAddress(),
		PhoneNumber:          c.SecurePhoneNumber(),
	}
}

func fullCustomer(c *models.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	var out CustomerResponse
	if err := copier.Copy(&out, c); err != nil {
		return &CustomerResponse{ID: c.ID}
	}
	return &out
}

func baseReservation(r *models.Reservation) ReservationResponse {
	guests := []map[string]any(r.Guests)
	if guests == nil {
		guests = []map[string]any{}
	}
	custom := map[string]any(r.CustomizationRequest)
	if custom == nil {
		custom = map[string]any{}
	}
	return ReservationResponse{
		ID:                   r.ID,
		Code:                 r.Code,
		ReservationType:      r.ReservationType,
		ArrivalDate:          r.ArrivalDate,
		DepartureDate:        r.DepartureDate,
		ReservatedOn:         r.ReservatedOn,
		Stay:                 r.Stay,
		GuestCount:           r.GuestCount,
		Guests:               guests,
		CustomizationRequest: custom,
		Requirement:          r.Requirement,
		Paid:                 r.Paid,
		Cancelled:            r.Cancelled,
		Room:                 roomSummary(r.Room, false),
	}
}

// NewSecureReservationResponse masks the customer; used on public routes.
func NewSecureReservationResponse(r *models.Reservation) ReservationResponse {
	resp := baseReservation(r)
	resp.Customer = secureCustomer(r.Customer)
	return resp
}

// NewReservationResponse is the unmasked staff view.
func NewReservationResponse(r *models.Reservation) ReservationResponse {
	resp := baseReservation(r)
	resp.Customer = fullCustomer(r.Customer)
	viewed := r.Viewed
	resp.Viewed = &viewed
	resp.CancelCode = r.CancelCode
	if r.Payment != nil {
		resp.PaymentStatus = r.Payment.Status
	}
	return resp
}
