package controllers_test

import (
	"context"
	"net/http"
	"testing"

	"hotel-reservations/controllers"
	"hotel-reservations/middleware"
	"hotel-reservations/mocks"
	"hotel-reservations/models"
	"hotel-reservations/services"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type ReservationControllerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockSvc  *mocks.MockReservationServicer
}

func (s *ReservationControllerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSvc = mocks.NewMockReservationServicer(s.mockCtrl)
	ctrl := controllers.NewReservationController(s.mockSvc, zap.NewNop())

	s.router = gin.New()
	s.router.POST("/reservations", ctrl.CreateReservation)
	s.router.GET("/reservations/code/:code", ctrl.GetReservationByCode)
	s.router.POST("/reservations/cancel", ctrl.RequestCancellation)

	admin := s.router.Group("/admin", func(c *gin.Context) {
		c.Set(middleware.StaffIDKey, uint(1))
		c.Next()
	})
	admin.GET("/reservations", ctrl.GetReservations)
	admin.POST("/reservations", ctrl.CreateStaffReservation)
	admin.GET("/reservations/:id", ctrl.GetReservation)
	admin.DELETE("/reservations/:id", ctrl.DeleteReservation)
}

func (s *ReservationControllerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationControllerSuite(t *testing.T) {
	suite.Run(t, new(ReservationControllerTestSuite))
}

func reservationPayload() map[string]any {
	return map[string]any{
		"arrival_date":          "2030-01-11",
		"arrival_time":          "14:00",
		"departure_date":        "2030-01-13",
		"departure_time":        "10:00",
		"category_id":           2,
		"room_id":               7,
		"first_name":            "Jane",
		"last_name":             "Doe",
		"email_address":         "janedoe@example.com",
		"phone_number":          "254712345678",
		"identification_type":   "passport",
		"identification_number": "AB123456789",
		"guests":                []map[string]any{{"name": "Jane Doe"}},
		"customization_request": map[string]any{"extra_bed": true},
		"requirement":           "late arrival",
	}
}

func (s *ReservationControllerTestSuite) TestCreateReservation() {
	s.Run("success: masks customer and ignores room_id", func() {
		s.mockSvc.EXPECT().MakeReservation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req services.ReservationRequest) (*models.Reservation, error) {
				s.Nil(req.RoomID)
				s.Equal(uint(2), req.CategoryID)
				s.Equal("2030-01-11", req.ArrivalDate)
				s.Equal("AB123456789", req.Customer.IdentificationNumber)
				s.Equal("late arrival", req.Note)
				s.Equal(true, req.Requirement["extra_bed"])
				s.Len(req.Guests, 1)
				return sampleReservation(), nil
			}).Times(1)

		rec := performRequest(s.T(), s.router, http.MethodPost, "/reservations", reservationPayload())
		s.Equal(http.StatusCreated, rec.Code)

		var data map[string]any
		env := decode(s.T(), rec, &data)
		s.True(env.Success)
		s.Equal("ABC1234", data["code"])
		s.NotContains(data, "cancel_code")
		s.NotContains(data, "viewed")

		customer := data["customer"].(map[string]any)
		s.Equal("AB******789", customer["identification_number"])
		s.Equal("jane***@example.com", customer["email_address"])
		s.Equal("2547******78", customer["phone_number"])
		s.Equal("Jane", customer["first_name"])

		room := data["room"].(map[string]any)
		s.Equal("Room 201", room["label"])
	})

	s.Run("error: 400 when category_id is missing", func() {
		body := reservationPayload()
		delete(body, "category_id")
		rec := performRequest(s.T(), s.router, http.MethodPost, "/reservations", body)
		s.Equal(http.StatusBadRequest, rec.Code)
		env := decode(s.T(), rec, nil)
		s.False(env.Success)
		s.Equal(services.ReasonInvalidPayload, env.Error.Code)
	})

	s.Run("error: 400 on malformed json", func() {
		rec := performRequest(s.T(), s.router, http.MethodPost, "/reservations", "{")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "temporal violation maps to 422",
			err:        errors.Mark(&services.BookingError{Kind: services.KindTemporalConstraintViolation, Reason: services.ReasonArrivalTooSoon, Message: "too soon"}, services.ErrTemporalConstraintViolation),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   services.ReasonArrivalTooSoon,
		},
		{
			name:       "unknown category maps to 404",
			err:        &services.BookingError{Kind: services.KindNotFound, Reason: services.ReasonCategoryNotFound, Message: "category not found"},
			wantStatus: http.StatusNotFound,
			wantCode:   services.ReasonCategoryNotFound,
		},
		{
			name:       "full category maps to 409",
			err:        &services.BookingError{Kind: services.KindUnavailable, Reason: services.ReasonSelectionUnavailable, Message: "none left"},
			wantStatus: http.StatusConflict,
			wantCode:   services.ReasonSelectionUnavailable,
		},
		{
			name:       "unexpected failure maps to 500",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "internal_error",
		},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockSvc.EXPECT().MakeReservation(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
			rec := performRequest(s.T(), s.router, http.MethodPost, "/reservations", reservationPayload())
			s.Equal(tc.wantStatus, rec.Code)
			env := decode(s.T(), rec, nil)
			s.Equal(tc.wantCode, env.Error.Code)
			s.NotContains(rec.Body.String(), "connection reset")
		})
	}

	s.Run("error: 400 with field details for invalid customer", func() {
		s.mockSvc.EXPECT().MakeReservation(gomock.Any(), gomock.Any()).Return(nil, &services.BookingError{
			Kind:    services.KindMalformedInput,
			Reason:  services.ReasonInvalidCustomer,
			Message: "customer details are incomplete or invalid",
			Details: map[string]string{"email_address": "Invalid email format"},
		}).Times(1)
		rec := performRequest(s.T(), s.router, http.MethodPost, "/reservations", reservationPayload())
		s.Equal(http.StatusBadRequest, rec.Code)
		env := decode(s.T(), rec, nil)
		s.Equal(services.ReasonInvalidCustomer, env.Error.Code)
		s.Equal("Invalid email format", env.Error.Details["email_address"])
	})
}

func (s *ReservationControllerTestSuite) TestCreateStaffReservation() {
	s.mockSvc.EXPECT().MakeReservation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req services.ReservationRequest) (*models.Reservation, error) {
			s.Require().NotNil(req.RoomID)
			s.Equal(uint(7), *req.RoomID)
			return sampleReservation(), nil
		}).Times(1)

	rec := performRequest(s.T(), s.router, http.MethodPost, "/admin/reservations", reservationPayload())
	s.Equal(http.StatusCreated, rec.Code)

	var data map[string]any
	decode(s.T(), rec, &data)
	customer := data["customer"].(map[string]any)
	s.Equal("AB123456789", customer["identification_number"])
	s.Equal("janedoe@example.com", customer["email_address"])
	s.Equal(false, data["viewed"])
	s.Equal("ABCDEFGHIJKL123456abcd1234", data["cancel_code"])
}

func (s *ReservationControllerTestSuite) TestCategoryOptionalOnlyForPinnedRoom() {
	s.Run("staff: room without category reaches the service", func() {
		s.mockSvc.EXPECT().MakeReservation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req services.ReservationRequest) (*models.Reservation, error) {
				s.Zero(req.CategoryID)
				s.Require().NotNil(req.RoomID)
				return sampleReservation(), nil
			}).Times(1)
		body := reservationPayload()
		delete(body, "category_id")
		rec := performRequest(s.T(), s.router, http.MethodPost, "/admin/reservations", body)
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("staff: neither room nor category is rejected", func() {
		body := reservationPayload()
		delete(body, "category_id")
		delete(body, "room_id")
		rec := performRequest(s.T(), s.router, http.MethodPost, "/admin/reservations", body)
		s.Equal(http.StatusBadRequest, rec.Code)
		env := decode(s.T(), rec, nil)
		s.Equal(services.ReasonInvalidPayload, env.Error.Code)
	})

	s.Run("public: category is always required", func() {
		body := reservationPayload()
		delete(body, "category_id")
		rec := performRequest(s.T(), s.router, http.MethodPost, "/reservations", body)
		s.Equal(http.StatusBadRequest, rec.Code)
		env := decode(s.T(), rec, nil)
		s.Equal(services.ReasonInvalidPayload, env.Error.Code)
	})
}

func (s *ReservationControllerTestSuite) TestGetReservationByCode() {
	s.Run("success: masked", func() {
		s.mockSvc.EXPECT().FindByCode(gomock.Any(), "abc1234").Return(sampleReservation(), nil).Times(1)
		rec := performRequest(s.T(), s.router, http.MethodGet, "/reservations/code/abc1234", nil)
		s.Equal(http.StatusOK, rec.Code)
		var data controllers.ReservationResponse
		decode(s.T(), rec, &data)
		s.Equal("ABC1234", data.Code)
		s.Nil(data.Viewed)
		s.Empty(data.CancelCode)
	})

	s.Run("error: 404", func() {
		s.mockSvc.EXPECT().FindByCode(gomock.Any(), "ZZZ0000").Return(nil, &services.BookingError{
			Kind: services.KindNotFound, Reason: services.ReasonReservationNotFound, Message: "reservation not found",
		}).Times(1)
		rec := performRequest(s.T(), s.router, http.MethodGet, "/reservations/code/ZZZ0000", nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *ReservationControllerTestSuite) TestRequestCancellation() {
	body := map[string]any{
		"code":                  "ABC1234",
		"email_address":         "janedoe@example.com",
		"identification_number": "AB123456789",
	}

	s.Run("success: returns cancel code", func() {
		s.mockSvc.EXPECT().RequestCancellation(gomock.Any(), "ABC1234", "janedoe@example.com", "AB123456789").
			Return("ABCDEFGHIJKL123456abcd1234", nil).Times(1)
		rec := performRequest(s.T(), s.router, http.MethodPost, "/reservations/cancel", body)
		s.Equal(http.StatusOK, rec.Code)
		var data map[string]string
		decode(s.T(), rec, &data)
		s.Equal("ABCDEFGHIJKL123456abcd1234", data["cancel_code"])
	})

	s.Run("error: 403 on identity mismatch", func() {
		s.mockSvc.EXPECT().RequestCancellation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", &services.BookingError{Kind: services.KindIdentityMismatch, Reason: services.ReasonEmailMismatch, Message: "no"}).Times(1)
		rec := performRequest(s.T(), s.router, http.MethodPost, "/reservations/cancel", body)
		s.Equal(http.StatusForbidden, rec.Code)
		env := decode(s.T(), rec, nil)
		s.Equal(services.ReasonEmailMismatch, env.Error.Code)
	})

	s.Run("error: 400 when a credential is missing", func() {
		rec := performRequest(s.T(), s.router, http.MethodPost, "/reservations/cancel", map[string]any{"code": "ABC1234"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *ReservationControllerTestSuite) TestStaffReads() {
	s.Run("list", func() {
		s.mockSvc.EXPECT().List(gomock.Any()).Return([]models.Reservation{*sampleReservation()}, nil).Times(1)
		rec := performRequest(s.T(), s.router, http.MethodGet, "/admin/reservations", nil)
		s.Equal(http.StatusOK, rec.Code)
		var data []controllers.ReservationResponse
		decode(s.T(), rec, &data)
		s.Len(data, 1)
	})

	s.Run("get marks viewed", func() {
		r := sampleReservation()
		r.Viewed = true
		s.mockSvc.EXPECT().Get(gomock.Any(), uint(3)).Return(r, nil).Times(1)
		rec := performRequest(s.T(), s.router, http.MethodGet, "/admin/reservations/3", nil)
		s.Equal(http.StatusOK, rec.Code)
		var data controllers.ReservationResponse
		decode(s.T(), rec, &data)
		s.Require().NotNil(data.Viewed)
		s.True(*data.Viewed)
	})

	s.Run("get rejects a non-numeric id", func() {
		rec := performRequest(s.T(), s.router, http.MethodGet, "/admin/reservations/abc", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("delete missing", func() {
		s.mockSvc.EXPECT().Delete(gomock.Any(), uint(99)).Return(&services.BookingError{
			Kind: services.KindNotFound, Reason: services.ReasonReservationNotFound, Message: "reservation not found",
		}).Times(1)
		rec := performRequest(s.T(), s.router, http.MethodDelete, "/admin/reservations/99", nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("delete", func() {
		s.mockSvc.EXPECT().Delete(gomock.Any(), uint(3)).Return(nil).Times(1)
		rec := performRequest(s.T(), s.router, http.MethodDelete, "/admin/reservations/3", nil)
		s.Equal(http.StatusOK, rec.Code)
	})
}
