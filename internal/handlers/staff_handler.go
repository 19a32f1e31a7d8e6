package handlers

import (
	"net/http"

	"github.com/campushub/college-events/internal/middleware"
	"github.com/campushub/college-events/internal/models"
	"github.com/campushub/college-events/internal/services"
	"github.com/gin-gonic/gin"
)

// StaffEvents serves both the dashboard and my-events views: the caller's
// events, most recent first, each with its registration count.
func StaffEvents(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.StaffClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		events, err := e.ListStaffEvents(c.Request.Context(), claims.StaffID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.ListResponse(events, int64(len(events))))
	}
}

// EventRegistrations lists the registrations of an event the caller owns.
func EventRegistrations(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.StaffClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		event, registrations, err := e.ListEventRegistrations(c.Request.Context(), claims.StaffID, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.ListResponse(gin.H{
			"event":         event,
			"registrations": registrations,
		}, int64(len(registrations))))
	}
}
