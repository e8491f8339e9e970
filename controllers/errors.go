package controllers

import (
	"net/http"
	"strconv"

	"hotel-reservations/middleware"
	"hotel-reservations/services"
	"hotel-reservations/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func statusForKind(kind services.ErrorKind) int {
	switch kind {
	case services.KindMalformedInput:
		return http.StatusBadRequest
	case services.KindTemporalConstraintViolation:
		return http.StatusUnprocessableEntity
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindUnavailable:
		return http.StatusConflict
	case services.KindIdentityMismatch:
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

// respondError writes the error envelope for err. Unclassified errors are
// logged and hidden behind a 500.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	if be, ok := services.AsBookingError(err); ok {
		if be.Details != nil {
			utils.JSONErrorDetails(c, statusForKind(be.Kind), be.Reason, be.Message, be.Details)
			return
		}
		utils.JSONError(c, statusForKind(be.Kind), be.Reason, be.Message)
		return
	}
	log.Error("request failed",
		zap.String("request_id", c.GetString(middleware.RequestIDKey)),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	_ = c.Error(err)
	utils.JSONError(c, http.StatusInternalServerError, "internal_error", "internal server error")
}

func respondBindError(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, services.ReasonInvalidPayload, "invalid request payload: "+err.Error())
}

// parseID reads a positive numeric :id path parameter.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, services.ReasonInvalidPayload, "id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}
