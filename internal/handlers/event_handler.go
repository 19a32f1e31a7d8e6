package handlers

import (
	"net/http"

	"github.com/campushub/college-events/internal/helpers"
	"github.com/campushub/college-events/internal/middleware"
	"github.com/campushub/college-events/internal/models"
	"github.com/campushub/college-events/internal/services"
	"github.com/gin-gonic/gin"
)

const homePageLimit = 6

// Home returns the most recent events for the landing page.
func Home(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := e.ListEvents(c.Request.Context(), "", "", homePageLimit)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.ListResponse(events, int64(len(events))))
	}
}

// ListEvents is public event discovery with optional category and free-text
// search filters.
func ListEvents(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Query("category")
		search := c.Query("search")

		events, err := e.ListEvents(c.Request.Context(), category, search, 0)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.ListResponse(events, int64(len(events))))
	}
}

func GetEvent(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, err := e.GetEvent(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(event, ""))
	}
}

func CreateEvent(e *services.EventService, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.StaffClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		var in services.EventInput
		if err := c.ShouldBind(&in); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		filename, ok := saveImageIfPresent(c, uploadDir)
		if !ok {
			return
		}
		in.Image = filename

		event, err := e.CreateEvent(c.Request.Context(), claims.StaffID, in)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(event, "Event created successfully!"))
	}
}

// EditEventForm returns the caller's event for edit-form prefill.
func EditEventForm(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.StaffClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		event, err := e.GetOwnedEvent(c.Request.Context(), claims.StaffID, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(event, ""))
	}
}

func EditEvent(e *services.EventService, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.StaffClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		var in services.EventInput
		if err := c.ShouldBind(&in); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		filename, ok := saveImageIfPresent(c, uploadDir)
		if !ok {
			return
		}
		in.Image = filename

		event, err := e.UpdateEvent(c.Request.Context(), claims.StaffID, c.Param("id"), in)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(event, "Event updated successfully!"))
	}
}

func DeleteEvent(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.StaffClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		if err := e.DeleteEvent(c.Request.Context(), claims.StaffID, c.Param("id")); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Event deleted successfully"))
	}
}

// saveImageIfPresent stores an optional multipart "image" upload and returns
// its generated filename. A missing file is not an error; a disallowed
// extension is reported to the client and aborts the request.
func saveImageIfPresent(c *gin.Context, uploadDir string) (string, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", true
	}
	if !helpers.AllowedImage(file.Filename) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid image format: allowed png, jpg, jpeg, gif"))
		return "", false
	}
	filename, err := helpers.SaveEventImage(file, uploadDir)
	if err != nil {
		_ = c.Error(err)
		return "", false
	}
	return filename, true
}
