package handlers

import (
	"net/http"

	"github.com/campushub/college-events/internal/models"
	"github.com/campushub/college-events/internal/services"
	"github.com/gin-gonic/gin"
)

// RegisterEventForm backs the GET side of the registration form: it returns
// the event the student is registering for, with the usual collapsed
// not-found for malformed or absent ids.
func RegisterEventForm(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, err := e.GetEvent(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(event, ""))
	}
}

// RegisterEvent submits a student registration. No authentication required.
func RegisterEvent(r *services.RegistrationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.RegistrationInput
		if err := c.ShouldBind(&in); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		registration, err := r.Submit(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(registration, "Event registered successfully!"))
	}
}
