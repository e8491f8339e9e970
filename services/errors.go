package services

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	mysql "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorKind classifies booking failures for callers.
type ErrorKind string

const (
	KindMalformedInput              ErrorKind = "malformed_input"
	KindTemporalConstraintViolation ErrorKind = "temporal_constraint_violation"
	KindNotFound                    ErrorKind = "not_found"
	KindUnavailable                 ErrorKind = "unavailable"
	KindIdentityMismatch            ErrorKind = "identity_mismatch"
)

// Sentinels every BookingError is marked with, so errors.Is works on kinds.
var (
	ErrMalformedInput              = errors.New("malformed input")
	ErrTemporalConstraintViolation = errors.New("temporal constraint violation")
	ErrNotFound                    = errors.New("not found")
	ErrUnavailable                 = errors.New("unavailable")
	ErrIdentityMismatch            = errors.New("identity mismatch")
)

// Failure reasons. Each is distinct so clients can branch on them.
const (
	ReasonInvalidArrival         = "invalid_arrival"
	ReasonInvalidDeparture       = "invalid_departure"
	ReasonArrivalInPast          = "arrival_in_past"
	ReasonDepartureBeforeArrival = "departure_before_arrival"
	ReasonArrivalTooSoon         = "arrival_too_soon"
	ReasonStayTooShort           = "stay_too_short"
	ReasonInvalidCustomer        = "invalid_customer"
	ReasonInvalidPayload         = "invalid_payload"
	ReasonCategoryNotFound       = "category_not_found"
	ReasonRoomNotFound           = "room_not_found"
	ReasonRoomCategoryMismatch   = "room_category_mismatch"
	ReasonReservationNotFound    = "reservation_not_found"
	ReasonAdminNotFound          = "admin_not_found"
	ReasonSelectionUnavailable   = "selection_unavailable"
	ReasonEmailMismatch          = "email_mismatch"
	ReasonIdentityMismatch       = "identification_mismatch"
	ReasonDuplicate              = "duplicate"
	ReasonInUse                  = "in_use"
)

type BookingError struct {
	Kind    ErrorKind
	Reason  string
	Message string
	Details map[string]string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

func sentinelFor(kind ErrorKind) error {
	switch kind {
	case KindMalformedInput:
		return ErrMalformedInput
	case KindTemporalConstraintViolation:
		return ErrTemporalConstraintViolation
	case KindNotFound:
		return ErrNotFound
	case KindUnavailable:
		return ErrUnavailable
	case KindIdentityMismatch:
		return ErrIdentityMismatch
	}
	return nil
}

func newBookingError(kind ErrorKind, reason, message string) error {
	return errors.Mark(&BookingError{Kind: kind, Reason: reason, Message: message}, sentinelFor(kind))
}

func newValidationError(reason, message string, details map[string]string) error {
	return errors.Mark(&BookingError{
		Kind:    KindMalformedInput,
		Reason:  reason,
		Message: message,
		Details: details,
	}, ErrMalformedInput)
}

// AsBookingError unwraps err to a *BookingError when it is one.
func AsBookingError(err error) (*BookingError, bool) {
	var be *BookingError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

// IsDuplicateKey reports unique-constraint violations across the supported drivers.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1062
	}
	var perr *pgconn.PgError
	if errors.As(err, &perr) {
		return perr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// IsForeignKeyViolation reports FK violations across the supported drivers.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1451 || merr.Number == 1452
	}
	var perr *pgconn.PgError
	if errors.As(err, &perr) {
		return perr.Code == "23503"
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
