package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"hotel-reservations/config"
	"hotel-reservations/models"
	"hotel-reservations/queue"
	"hotel-reservations/utils"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// testNow is a Thursday; every temporal case is relative to it.
var testNow = time.Date(2030, 1, 10, 12, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	cfg := config.DBConfig{
		Driver: "sqlite",
		Name:   fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
	}
	db, err := config.OpenDatabase(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, title string, numbers ...string) (models.Category, []models.Room) {
	t.Helper()
	cat := models.Category{Title: title, Price: 100}
	require.NoError(t, db.Create(&cat).Error)
	rooms := make([]models.Room, 0, len(numbers))
	for _, n := range numbers {
		room := models.Room{Number: n, CategoryID: cat.ID}
		require.NoError(t, db.Create(&room).Error)
		rooms = append(rooms, room)
	}
	return cat, rooms
}

func seedReservation(t *testing.T, db *gorm.DB, roomID uint, arrival, departure time.Time) models.Reservation {
	t.Helper()
	r := models.Reservation{
		RoomID:        roomID,
		ArrivalDate:   arrival.UTC(),
		DepartureDate: departure.UTC(),
		ReservatedOn:  testNow,
		Stay:          stayNights(arrival, departure),
		GuestCount:    1,
	}
	require.NoError(t, db.Create(&r).Error)
	return r
}

type recordedEvent struct {
	RoutingKey string
	Event      queue.ReservationEvent
}

// recordingPublisher keeps every published event in memory.
type recordingPublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (p *recordingPublisher) Publish(_ context.Context, routingKey string, event queue.ReservationEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{RoutingKey: routingKey, Event: event})
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) Events() []recordedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]recordedEvent(nil), p.events...)
}

func newTestReservationService(t *testing.T, db *gorm.DB) (*ReservationService, *utils.MockClock, *recordingPublisher) {
	t.Helper()
	clock := utils.NewMockClock(testNow)
	pub := &recordingPublisher{}
	svc := NewReservationService(db, clock, config.DefaultBookingConfig(), pub, zap.NewNop())
	return svc, clock, pub
}

func validCustomer() CustomerInput {
	return CustomerInput{
		FirstName:            "Jane",
		LastName:             "Doe",
		EmailAddress:         "janedoe@example.com",
		PhoneNumber:          "254712345678",
		IdentificationType:   "passport",
		IdentificationNumber: "AB123456789",
	}
}

func window(arrival, departure time.Time) StayWindow {
	return StayWindow{
		ArrivalDate:   arrival.Format(dateLayout),
		ArrivalTime:   arrival.Format("15:04"),
		DepartureDate: departure.Format(dateLayout),
		DepartureTime: departure.Format("15:04"),
	}
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
