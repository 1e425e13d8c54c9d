package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/englishlessons/classroom-api/internal/api/metrics"
)

// RequireRole rejects requests whose authenticated identity does not hold
// the required role. Must run after Auth.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := CurrentUser(c)
			if err != nil {
				return err
			}
			if user.Role != role {
				metrics.AuthFailuresTotal.WithLabelValues("role").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
