package handlers

import (
	"net/http"
	"os"

	"github.com/campushub/college-events/internal/helpers"
	"github.com/campushub/college-events/internal/models"
	"github.com/campushub/college-events/internal/services"
	"github.com/gin-gonic/gin"
)

type loginForm struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

func StaffRegister(s *services.StaffService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.SignupInput
		if err := c.ShouldBind(&in); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		staff, err := s.Register(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(staff, "Registration successful! Please login."))
	}
}

// StaffLogin verifies credentials and establishes the session cookie.
func StaffLogin(s *services.StaffService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in loginForm
		if err := c.ShouldBind(&in); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		staff, token, err := s.Login(c.Request.Context(), in.Username, in.Password)
		if err != nil {
			respondError(c, err)
			return
		}

		isProduction := os.Getenv("GIN_MODE") == "production"
		c.SetCookie(
			helpers.SessionCookieName,
			token,
			int(s.SessionTTL().Seconds()),
			"/",
			"",
			isProduction,
			true,
		)

		c.JSON(http.StatusOK, models.SuccessResponse(staff, "Welcome "+staff.Name+"!"))
	}
}

func StaffLogout() gin.HandlerFunc {
	return func(c *gin.Context) {
		isProduction := os.Getenv("GIN_MODE") == "production"
		c.SetCookie(helpers.SessionCookieName, "", -1, "/", "", isProduction, true)

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Logged out successfully"))
	}
}
