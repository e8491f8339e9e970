package services

import (
	"context"
	"fmt"
	"strings"

	"hotel-reservations/models"
	"hotel-reservations/queue"
	"hotel-reservations/utils"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// identityOf returns the email and id number a reservation was made with,
// falling back to the stored snapshot once the customer row is gone.
func identityOf(r *models.Reservation) (email, idNumber string) {
	if r.Customer != nil {
		return r.Customer.EmailAddress, r.Customer.IDNumber
	}
	if r.CustomerRaw != nil {
		email = fmt.Sprint(r.CustomerRaw["email_address"])
		idNumber = fmt.Sprint(r.CustomerRaw["identification_number"])
	}
	return email, idNumber
}

// RequestCancellation verifies the caller against the reservation's
// customer and issues a cancel code. The reservation itself is not
// cancelled; the code is the credential for finishing that elsewhere.
func (s *ReservationService) RequestCancellation(ctx context.Context, code, email, idNumber string) (string, error) {
	r, err := s.FindByCode(ctx, code)
	if err != nil {
		return "", err
	}

	storedEmail, storedID := identityOf(r)
	if !strings.EqualFold(strings.TrimSpace(storedEmail), strings.TrimSpace(email)) {
		return "", newBookingError(KindIdentityMismatch, ReasonEmailMismatch,
			"email address does not match the reservation")
	}
	if strings.TrimSpace(storedID) != strings.TrimSpace(idNumber) {
		return "", newBookingError(KindIdentityMismatch, ReasonIdentityMismatch,
			"identification number does not match the reservation")
	}

	cancelCode := utils.GenerateCancelCode()
	if err := s.DB.WithContext(ctx).Model(&models.Reservation{}).
		Where("id = ?", r.ID).
		Update("cancel_code", cancelCode).Error; err != nil {
		return "", errors.Wrap(err, "store cancel code")
	}
	r.CancelCode = cancelCode

	s.log.Info("cancellation requested", zap.Uint("reservation_id", r.ID), zap.String("code", r.Code))
	s.publish(ctx, queue.RoutingReservationCancelRequested, r)
	return cancelCode, nil
}
