package controllers

import (
	"context"
	"time"

	"hotel-reservations/models"
	"hotel-reservations/services"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/mock_services.go -package=mocks

type ReservationServicer interface {
	MakeReservation(ctx context.Context, req services.ReservationRequest) (*models.Reservation, error)
	RequestCancellation(ctx context.Context, code, email, idNumber string) (string, error)
	FindByCode(ctx context.Context, code string) (*models.Reservation, error)
	List(ctx context.Context) ([]models.Reservation, error)
	Get(ctx context.Context, id uint) (*models.Reservation, error)
	Delete(ctx context.Context, id uint) error
}

type AvailabilityServicer interface {
	AvailableRooms(ctx context.Context, categoryID *uint, start, end time.Time) ([]models.Room, error)
}
