package handlers

import (
	"errors"
	"net/http"

	"github.com/campushub/college-events/internal/models"
	"github.com/gin-gonic/gin"
)

// respondError translates workflow errors into user-facing responses. Known
// outcomes map to their status with the sentinel's message; anything else is
// handed to the ErrorHandler middleware as an internal error.
func respondError(c *gin.Context, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		return
	}
	c.JSON(status, models.ErrorResponse(err.Error()))
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrEventNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrAlreadyRegistered),
		errors.Is(err, models.ErrCapacityFull),
		errors.Is(err, models.ErrEmailTaken),
		errors.Is(err, models.ErrUsernameTaken):
		return http.StatusConflict
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
