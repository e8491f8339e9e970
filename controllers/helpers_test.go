package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"hotel-reservations/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func performRequest(t *testing.T, r *gin.Engine, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, data any) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	if data != nil && env.Success {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func sampleReservation() *models.Reservation {
	customerID := uint(9)
	arrival := time.Date(2030, 1, 11, 14, 0, 0, 0, time.UTC)
	customer := &models.Customer{
		ID:           customerID,
		FirstName:    "Jane",
		LastName:     "Doe",
		IDType:       "passport",
		IDNumber:     "AB123456789",
		EmailAddress: "janedoe@example.com",
		PhoneNumber:  "254712345678",
	}
	return &models.Reservation{
		ID:              3,
		Code:            "ABC1234",
		ReservationType: models.ReservationTypeReservation,
		RoomID:          7,
		Room: models.Room{
			ID:         7,
			Number:     "201",
			CategoryID: 2,
			Category:   models.Category{ID: 2, Title: "Deluxe", Price: 140},
		},
		CustomerID:    &customerID,
		Customer:      customer,
		CustomerRaw:   datatypes.JSONMap(customer.Snapshot()),
		ArrivalDate:   arrival,
		DepartureDate: arrival.Add(44 * time.Hour),
		ReservatedOn:  arrival.Add(-26 * time.Hour),
		Stay:          2,
		GuestCount:    1,
		CancelCode:    "ABCDEFGHIJKL123456abcd1234",
	}
}
