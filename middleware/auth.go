package middleware

import (
	"net/http"
	"strings"

	"hotel-reservations/services"
	"hotel-reservations/utils"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

const (
	StaffIDKey       = "staff_id"
	StaffUsernameKey = "staff_username"
)

type TokenValidator interface {
	ValidateToken(token string) (*services.StaffClaims, error)
}

// RequireStaff rejects requests without a valid bearer token.
func RequireStaff(v TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(raw, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "missing bearer token")
			c.Abort()
			return
		}

		claims, err := v.ValidateToken(strings.TrimSpace(token))
		if err != nil {
			code := "invalid_token"
			if errors.Is(err, services.ErrExpiredToken) {
				code = "token_expired"
			}
			utils.JSONError(c, http.StatusUnauthorized, code, err.Error())
			c.Abort()
			return
		}

		c.Set(StaffIDKey, claims.AdminID())
		c.Set(StaffUsernameKey, claims.Username)
		c.Next()
	}
}
