package controllers

import (
	"net/http"
	"time"

	"hotel-reservations/services"
	"hotel-reservations/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AvailabilityController struct {
	AvailabilitySvc AvailabilityServicer
	clock           utils.Clock
	log             *zap.Logger
}

func NewAvailabilityController(svc AvailabilityServicer, clock utils.Clock, log *zap.Logger) *AvailabilityController {
	return &AvailabilityController{
		AvailabilitySvc: svc,
		clock:           clock,
		log:             log.With(zap.String("controller", "availability")),
	}
}

func (ctrl *AvailabilityController) window(c *gin.Context) (AvailabilityPayload, time.Time, time.Time, bool) {
	var payload AvailabilityPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return payload, time.Time{}, time.Time{}, false
	}
	start, end, err := services.ParseWindow(payload.StayWindow, ctrl.clock.Now().Location())
	if err != nil {
		respondError(c, ctrl.log, err)
		return payload, time.Time{}, time.Time{}, false
	}
	if !end.After(start) {
		utils.JSONError(c, http.StatusUnprocessableEntity, services.ReasonDepartureBeforeArrival,
			"departure must be after arrival")
		return payload, time.Time{}, time.Time{}, false
	}
	return payload, start, end, true
}

// CheckAvailability (POST /api/availability)
func (ctrl *AvailabilityController) CheckAvailability(c *gin.Context) {
	ctrl.respond(c, false)
}

// CheckAvailabilityStaff (POST /api/admin/availability) adds palette colours.
func (ctrl *AvailabilityController) CheckAvailabilityStaff(c *gin.Context) {
	ctrl.respond(c, true)
}

func (ctrl *AvailabilityController) respond(c *gin.Context, withColor bool) {
	payload, start, end, ok := ctrl.window(c)
	if !ok {
		return
	}
	rooms, err := ctrl.AvailabilitySvc.AvailableRooms(c.Request.Context(), payload.CategoryID, start, end)
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, newAvailabilityResponse(rooms, withColor))
}
