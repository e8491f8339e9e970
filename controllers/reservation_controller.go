package controllers

import (
	"net/http"

	"hotel-reservations/services"
	"hotel-reservations/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReservationController struct {
	ReservationSvc ReservationServicer
	log            *zap.Logger
}

func NewReservationController(svc ReservationServicer, log *zap.Logger) *ReservationController {
	return &ReservationController{ReservationSvc: svc, log: log.With(zap.String("controller", "reservation"))}
}

// ---------------------------
// Public
// ---------------------------

// CreateReservation (POST /api/reservations). Guests cannot pin a room.
func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	var payload CreateReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	if payload.CategoryID == 0 {
		utils.JSONError(c, http.StatusBadRequest, services.ReasonInvalidPayload, "category_id is required")
		return
	}
	req := payload.toRequest()
	req.RoomID = nil

	reservation, err := ctrl.ReservationSvc.MakeReservation(c.Request.Context(), req)
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, NewSecureReservationResponse(reservation))
}

// GetReservationByCode (GET /api/reservations/code/:code)
func (ctrl *ReservationController) GetReservationByCode(c *gin.Context) {
	reservation, err := ctrl.ReservationSvc.FindByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, NewSecureReservationResponse(reservation))
}

// RequestCancellation (POST /api/reservations/cancel)
func (ctrl *ReservationController) RequestCancellation(c *gin.Context) {
	var payload CancelReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	cancelCode, err := ctrl.ReservationSvc.RequestCancellation(
		c.Request.Context(), payload.Code, payload.EmailAddress, payload.IdentificationNumber,
	)
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"cancel_code": cancelCode})
}

// ---------------------------
// Staff
// ---------------------------

// CreateStaffReservation (POST /api/admin/reservations) may pin room_id.
func (ctrl *ReservationController) CreateStaffReservation(c *gin.Context) {
	var payload CreateReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	reservation, err := ctrl.ReservationSvc.MakeReservation(c.Request.Context(), payload.toRequest())
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, NewReservationResponse(reservation))
}

// GetReservations (GET /api/admin/reservations)
func (ctrl *ReservationController) GetReservations(c *gin.Context) {
	reservations, err := ctrl.ReservationSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	out := make([]ReservationResponse, 0, len(reservations))
	for i := range reservations {
		out = append(out, NewReservationResponse(&reservations[i]))
	}
	utils.JSONSuccess(c, http.StatusOK, out)
}

// GetReservation (GET /api/admin/reservations/:id) marks it viewed.
func (ctrl *ReservationController) GetReservation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	reservation, err := ctrl.ReservationSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, NewReservationResponse(reservation))
}

// DeleteReservation (DELETE /api/admin/reservations/:id)
func (ctrl *ReservationController) DeleteReservation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.ReservationSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id, "deleted": true})
}
