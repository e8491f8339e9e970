// services/reservation_service.go
package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"hotel-reservations/config"
	"hotel-reservations/models"
	"hotel-reservations/queue"
	"hotel-reservations/utils"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	dateLayout = "2006-01-02"
	day        = 24 * time.Hour
)

var timeLayouts = []string{"15:04", "15:04:05"}

// CustomerInput is the identity bundle captured with a reservation.
type CustomerInput struct {
	FirstName            string `json:"first_name" validate:"required,max=25"`
	LastName             string `json:"last_name" validate:"required,max=25"`
	EmailAddress         string `json:"email_address" validate:"required,email,max=255"`
	PhoneNumber          string `json:"phone_number" validate:"required,max=12"`
	IdentificationType   string `json:"identification_type" validate:"required,max=255"`
	IdentificationNumber string `json:"identification_number" validate:"required,max=25"`
}

func (c CustomerInput) normalized() CustomerInput {
	return CustomerInput{
		FirstName:            strings.TrimSpace(c.FirstName),
		LastName:             strings.TrimSpace(c.LastName),
		EmailAddress:         strings.TrimSpace(c.EmailAddress),
		PhoneNumber:          strings.TrimSpace(c.PhoneNumber),
		IdentificationType:   strings.TrimSpace(c.IdentificationType),
		IdentificationNumber: strings.TrimSpace(c.IdentificationNumber),
	}
}

// StayWindow is the arrival/departure pair as submitted by a form.
type StayWindow struct {
	ArrivalDate   string `json:"arrival_date"`
	ArrivalTime   string `json:"arrival_time"`
	DepartureDate string `json:"departure_date"`
	DepartureTime string `json:"departure_time"`
}

type ReservationRequest struct {
	StayWindow
	Customer   CustomerInput
	CategoryID uint
	// RoomID pins the booking to one room (staff flow). CategoryID may be
	// left zero; when set it must match the room's category.
	RoomID      *uint
	Guests      []map[string]any
	Requirement map[string]any
	Note        string
}

type ReservationService struct {
	DB        *gorm.DB
	clock     utils.Clock
	rules     config.BookingConfig
	publisher queue.Publisher
	log       *zap.Logger
}

func NewReservationService(db *gorm.DB, clock utils.Clock, rules config.BookingConfig, publisher queue.Publisher, log *zap.Logger) *ReservationService {
	if publisher == nil {
		publisher = queue.NopPublisher{}
	}
	return &ReservationService{
		DB:        db,
		clock:     clock,
		rules:     rules,
		publisher: publisher,
		log:       log.With(zap.String("service", "reservation")),
	}
}

func parseDateTime(date, clock string, loc *time.Location) (time.Time, bool) {
	date, clock = strings.TrimSpace(date), strings.TrimSpace(clock)
	if date == "" || clock == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(dateLayout+" "+layout, date+" "+clock, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseWindow parses both ends of w in loc.
func ParseWindow(w StayWindow, loc *time.Location) (time.Time, time.Time, error) {
	arrival, ok := parseDateTime(w.ArrivalDate, w.ArrivalTime, loc)
	if !ok {
		return time.Time{}, time.Time{}, newBookingError(KindMalformedInput, ReasonInvalidArrival,
			"arrival date and time are required (YYYY-MM-DD, HH:MM)")
	}
	departure, ok := parseDateTime(w.DepartureDate, w.DepartureTime, loc)
	if !ok {
		return time.Time{}, time.Time{}, newBookingError(KindMalformedInput, ReasonInvalidDeparture,
			"departure date and time are required (YYYY-MM-DD, HH:MM)")
	}
	return arrival, departure, nil
}

// checkTemporal applies the lead-time and minimum-stay guards.
func (s *ReservationService) checkTemporal(arrival, departure, now time.Time) error {
	if !arrival.After(now) {
		return newBookingError(KindTemporalConstraintViolation, ReasonArrivalInPast,
			"arrival must be in the future")
	}
	if !departure.After(arrival) {
		return newBookingError(KindTemporalConstraintViolation, ReasonDepartureBeforeArrival,
			"departure must be after arrival")
	}
	if arrival.Before(now.Add(s.rules.MinLead)) {
		return newBookingError(KindTemporalConstraintViolation, ReasonArrivalTooSoon,
			fmt.Sprintf("arrival must be at least %s from now", s.rules.MinLead))
	}
	if departure.Before(arrival.Add(s.rules.MinStay)) {
		return newBookingError(KindTemporalConstraintViolation, ReasonStayTooShort,
			fmt.Sprintf("stay must last at least %s", s.rules.MinStay))
	}
	return nil
}

// stayNights rounds a stay up to whole days, never below one.
func stayNights(arrival, departure time.Time) int {
	n := int(math.Ceil(float64(departure.Sub(arrival)) / float64(day)))
	if n < 1 {
		return 1
	}
	return n
}

func guestCount(guests []map[string]any) int {
	if len(guests) < 1 {
		return 1
	}
	return len(guests)
}

// MakeReservation validates req, re-checks availability inside a
// transaction and commits a new customer together with the reservation.
func (s *ReservationService) MakeReservation(ctx context.Context, req ReservationRequest) (*models.Reservation, error) {
	now := s.clock.Now()

	arrival, departure, err := ParseWindow(req.StayWindow, now.Location())
	if err != nil {
		return nil, err
	}
	if err := s.checkTemporal(arrival, departure, now); err != nil {
		return nil, err
	}

	customer := req.Customer.normalized()
	if fieldErrs := utils.ValidateStruct(customer); fieldErrs != nil {
		return nil, newValidationError(ReasonInvalidCustomer,
			"customer details are incomplete or invalid: "+utils.FormatValidationErrors(fieldErrs), fieldErrs)
	}

	db := s.DB.WithContext(ctx)

	categoryID := req.CategoryID
	if req.RoomID != nil {
		var room models.Room
		if err := db.First(&room, *req.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, newBookingError(KindNotFound, ReasonRoomNotFound, "room not found")
			}
			return nil, errors.Wrap(err, "load room")
		}
		if categoryID != 0 && categoryID != room.CategoryID {
			return nil, newBookingError(KindMalformedInput, ReasonRoomCategoryMismatch,
				"room does not belong to the requested category")
		}
		categoryID = room.CategoryID
	}

	var category models.Category
	if err := db.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newBookingError(KindNotFound, ReasonCategoryNotFound, "category not found")
		}
		return nil, errors.Wrap(err, "load category")
	}

	var reservationID uint
	txErr := db.Transaction(func(tx *gorm.DB) error {
		// serialise bookings of the same category until commit
		var locked []models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("category_id = ?", category.ID).
			Order("id").
			Find(&locked).Error; err != nil {
			return errors.Wrap(err, "lock category rooms")
		}

		rooms, err := availableRooms(tx, &category.ID, arrival, departure)
		if err != nil {
			return err
		}
		if req.RoomID != nil {
			rooms = pickRoom(rooms, *req.RoomID)
		}
		if len(rooms) == 0 {
			return newBookingError(KindUnavailable, ReasonSelectionUnavailable,
				"no room is available for the selected category and dates")
		}
		room := rooms[0]

		cust := models.Customer{
			FirstName:    customer.FirstName,
			LastName:     customer.LastName,
			IDType:       customer.IdentificationType,
			IDNumber:     customer.IdentificationNumber,
			EmailAddress: customer.EmailAddress,
			PhoneNumber:  customer.PhoneNumber,
		}
		if err := tx.Create(&cust).Error; err != nil {
			return errors.Wrap(err, "create customer")
		}

		guests := req.Guests
		if guests == nil {
			guests = []map[string]any{}
		}
		requirement := req.Requirement
		if requirement == nil {
			requirement = map[string]any{}
		}

		reservation := models.Reservation{
			RoomID:               room.ID,
			CustomerID:           &cust.ID,
			CustomerRaw:          datatypes.JSONMap(cust.Snapshot()),
			Code:                 utils.GenerateReservationCode(),
			ReservationType:      models.ReservationTypeReservation,
			ArrivalDate:          arrival.UTC(),
			DepartureDate:        departure.UTC(),
			ReservatedOn:         now.UTC(),
			Stay:                 stayNights(arrival, departure),
			GuestCount:           guestCount(req.Guests),
			Guests:               datatypes.JSONSlice[map[string]any](guests),
			CustomizationRequest: datatypes.JSONMap(requirement),
			Requirement:          strings.TrimSpace(req.Note),
			Paid:                 false,
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return errors.Wrap(err, "create reservation")
		}
		reservationID = reservation.ID
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	created, err := s.load(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	s.log.Info("reservation created",
		zap.Uint("reservation_id", created.ID),
		zap.String("code", created.Code),
		zap.Uint("room_id", created.RoomID),
	)
	s.publish(ctx, queue.RoutingReservationCreated, created)
	return created, nil
}

func pickRoom(rooms []models.Room, roomID uint) []models.Room {
	for _, r := range rooms {
		if r.ID == roomID {
			return []models.Room{r}
		}
	}
	return nil
}

func (s *ReservationService) publish(ctx context.Context, routingKey string, r *models.Reservation) {
	event := queue.ReservationEvent{
		Type:          routingKey,
		ReservationID: r.ID,
		Code:          r.Code,
		RoomID:        r.RoomID,
		CategoryID:    r.Room.CategoryID,
		ArrivalDate:   r.ArrivalDate,
		DepartureDate: r.DepartureDate,
		OccurredAt:    s.clock.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, routingKey, event); err != nil {
		s.log.Warn("publish event failed", zap.String("routing_key", routingKey), zap.Error(err))
	}
}

func (s *ReservationService) load(ctx context.Context, id uint) (*models.Reservation, error) {
	var r models.Reservation
	err := s.DB.WithContext(ctx).
		Preload("Room.Category").
		Preload("Customer").
		Preload("Payment").
		First(&r, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newBookingError(KindNotFound, ReasonReservationNotFound, "reservation not found")
		}
		return nil, errors.Wrap(err, "load reservation")
	}
	return &r, nil
}

// FindByCode returns the most recent reservation carrying code.
func (s *ReservationService) FindByCode(ctx context.Context, code string) (*models.Reservation, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, newBookingError(KindMalformedInput, ReasonInvalidPayload, "reservation code is required")
	}
	var r models.Reservation
	err := s.DB.WithContext(ctx).
		Preload("Room.Category").
		Preload("Customer").
		Where("code = ?", code).
		Order("id DESC").
		First(&r).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newBookingError(KindNotFound, ReasonReservationNotFound, "reservation not found")
		}
		return nil, errors.Wrap(err, "find reservation by code")
	}
	return &r, nil
}

// List returns every reservation, newest first.
func (s *ReservationService) List(ctx context.Context) ([]models.Reservation, error) {
	reservations := []models.Reservation{}
	err := s.DB.WithContext(ctx).
		Preload("Room.Category").
		Preload("Customer").
		Preload("Payment").
		Order("reservated_on DESC, id DESC").
		Find(&reservations).Error
	if err != nil {
		return nil, errors.Wrap(err, "list reservations")
	}
	return reservations, nil
}

// Get loads one reservation for staff and marks it viewed on first read.
func (s *ReservationService) Get(ctx context.Context, id uint) (*models.Reservation, error) {
	r, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !r.Viewed {
		if err := s.DB.WithContext(ctx).Model(&models.Reservation{}).
			Where("id = ?", r.ID).
			Update("viewed", true).Error; err != nil {
			return nil, errors.Wrap(err, "mark reservation viewed")
		}
		r.Viewed = true
	}
	return r, nil
}

func (s *ReservationService) Delete(ctx context.Context, id uint) error {
	result := s.DB.WithContext(ctx).Delete(&models.Reservation{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "delete reservation")
	}
	if result.RowsAffected == 0 {
		return newBookingError(KindNotFound, ReasonReservationNotFound, "reservation not found")
	}
	s.log.Info("reservation deleted", zap.Uint("reservation_id", id))
	return nil
}
