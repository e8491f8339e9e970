package services

import (
	"context"
	"testing"
	"time"

	"hotel-reservations/models"
	"hotel-reservations/queue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestCancellation(t *testing.T) {
	db := newTestDB(t)
	svc, _, pub := newTestReservationService(t, db)
	cat, _ := seedCategory(t, db, "Standard", "101")
	ctx := context.Background()

	r, err := svc.MakeReservation(ctx, ReservationRequest{
		StayWindow: window(testNow.Add(24*time.Hour), testNow.Add(48*time.Hour)),
		Customer:   validCustomer(),
		CategoryID: cat.ID,
	})
	require.NoError(t, err)

	t.Run("email is checked first", func(t *testing.T) {
		_, err := svc.RequestCancellation(ctx, r.Code, "someone@example.com", "WRONG")
		requireBookingError(t, err, ErrIdentityMismatch, ReasonEmailMismatch)
	})

	t.Run("identification number mismatch", func(t *testing.T) {
		_, err := svc.RequestCancellation(ctx, r.Code, "JaneDoe@Example.com", "AB000000000")
		requireBookingError(t, err, ErrIdentityMismatch, ReasonIdentityMismatch)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := svc.RequestCancellation(ctx, "QQQ0000", "janedoe@example.com", "AB123456789")
		requireBookingError(t, err, ErrNotFound, ReasonReservationNotFound)
	})

	var stored models.Reservation
	require.NoError(t, db.First(&stored, r.ID).Error)
	assert.Empty(t, stored.CancelCode, "failed attempts leave no cancel code")

	t.Run("matching identity issues a cancel code", func(t *testing.T) {
		code, err := svc.RequestCancellation(ctx, r.Code, " JANEDOE@example.com ", " AB123456789 ")
		require.NoError(t, err)
		assert.Regexp(t, `^[A-Z]{12}[0-9]{6}[A-Za-z0-9]{8}$`, code)

		var after models.Reservation
		require.NoError(t, db.First(&after, r.ID).Error)
		assert.Equal(t, code, after.CancelCode)
		assert.False(t, after.Cancelled, "cancellation is only requested")
		assert.Nil(t, after.CancelledOn)
		assert.Equal(t, r.RoomID, after.RoomID)

		events := pub.Events()
		require.NotEmpty(t, events)
		last := events[len(events)-1]
		assert.Equal(t, queue.RoutingReservationCancelRequested, last.RoutingKey)
		assert.Equal(t, r.ID, last.Event.ReservationID)
	})
}

func TestRequestCancellationFallsBackToSnapshot(t *testing.T) {
	db := newTestDB(t)
	svc, _, _ := newTestReservationService(t, db)
	cat, _ := seedCategory(t, db, "Standard", "101")
	ctx := context.Background()

	r, err := svc.MakeReservation(ctx, ReservationRequest{
		StayWindow: window(testNow.Add(24*time.Hour), testNow.Add(48*time.Hour)),
		Customer:   validCustomer(),
		CategoryID: cat.ID,
	})
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Reservation{}).Where("id = ?", r.ID).Update("customer_id", nil).Error)
	require.NoError(t, db.Delete(&models.Customer{}, *r.CustomerID).Error)

	_, err = svc.RequestCancellation(ctx, r.Code, "other@example.com", "AB123456789")
	requireBookingError(t, err, ErrIdentityMismatch, ReasonEmailMismatch)

	code, err := svc.RequestCancellation(ctx, r.Code, "janedoe@example.com", "AB123456789")
	require.NoError(t, err)
	assert.Len(t, code, 26)
}

func TestIdentityOf(t *testing.T) {
	email, id := identityOf(&models.Reservation{
		Customer: &models.Customer{EmailAddress: "a@b.c", IDNumber: "X1"},
	})
	assert.Equal(t, "a@b.c", email)
	assert.Equal(t, "X1", id)

	email, id = identityOf(&models.Reservation{})
	assert.Empty(t, email)
	assert.Empty(t, id)
}
