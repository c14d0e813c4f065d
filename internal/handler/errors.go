package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alliance-hq/roster/internal/db"
	"github.com/alliance-hq/roster/internal/model"
	"github.com/alliance-hq/roster/internal/service"
)

// writeError maps service failures onto the JSON error envelope. Validation
// failures keep their per-field messages; everything else collapses to a
// single string so internals never leak.
func writeError(c *gin.Context, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, model.FieldErrorResponse{Error: verr.Fields})
		return
	}

	switch {
	case errors.Is(err, db.ErrDuplicateUsername):
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "username already exists"})
	case errors.Is(err, db.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "email already exists"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: "invalid username or password"})
	case errors.Is(err, service.ErrUnauthenticated),
		errors.Is(err, service.ErrTokenMalformed),
		errors.Is(err, service.ErrTokenExpired),
		errors.Is(err, service.ErrTokenRevoked):
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: "unauthorized"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, model.ErrorResponse{Error: "forbidden"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "not found"})
	default:
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "server error"})
	}
}
