package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/campushub/college-events/internal/helpers"
	"github.com/campushub/college-events/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const LoginPath = "/staff/login"

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// StructuredLogger provides structured logging middleware
func StructuredLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		clientIP := c.ClientIP()
		method := c.Request.Method
		statusCode := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		requestID, _ := c.Get("request_id")

		logger.Info("HTTP Request",
			"request_id", requestID,
			"method", method,
			"path", path,
			"status", statusCode,
			"latency", latency,
			"client_ip", clientIP,
		)
	}
}

// ErrorHandler recovers unanticipated errors at the boundary: log with the
// request id, surface a generic failure, never internal detail.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			requestID, _ := c.Get("request_id")

			logger.Error("Request error",
				"request_id", requestID,
				"error", err.Error(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)

			c.JSON(http.StatusInternalServerError, models.ErrorResponse("internal server error"))
		}
	}
}

// SessionGate guards staff-only routes. It validates the session cookie and
// stores the verified claims in the request context. Interactive (GET)
// requests without a session are redirected to the login page; everything
// else gets a 401 pointing there.
func SessionGate(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookieName)
		if err != nil {
			denySession(c)
			return
		}

		claims, err := helpers.ValidateSessionToken(secret, token)
		if err != nil {
			denySession(c)
			return
		}

		c.Set("staff", claims)
		c.Next()
	}
}

func denySession(c *gin.Context) {
	if c.Request.Method == http.MethodGet {
		c.Redirect(http.StatusSeeOther, LoginPath)
		c.Abort()
		return
	}
	c.JSON(http.StatusUnauthorized, models.RedirectResponse("authentication required", LoginPath))
	c.Abort()
}

// StaffClaims returns the verified session claims set by SessionGate.
func StaffClaims(c *gin.Context) (*helpers.SessionClaims, bool) {
	value, exists := c.Get("staff")
	if !exists {
		return nil, false
	}
	claims, ok := value.(*helpers.SessionClaims)
	return claims, ok
}
