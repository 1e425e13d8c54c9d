package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/englishlessons/classroom-api/internal/api/metrics"
	"github.com/englishlessons/classroom-api/internal/core/domain"
)

// TeacherGate guards elevated teacher routes with two independent checks:
// the identity must hold the teacher role AND the request must carry the
// shared teacher secret in the password query parameter. Both halves are
// required; neither subsumes the other. A correct secret does not rescue a
// student identity, and a teacher identity without the secret is rejected.
// Must run after Auth.
func TeacherGate(sharedSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := CurrentUser(c)
			if err != nil {
				return err
			}
			if user.Role != domain.RoleTeacher {
				metrics.AuthFailuresTotal.WithLabelValues("role").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}

			password := c.QueryParam("password")
			if subtle.ConstantTimeCompare([]byte(password), []byte(sharedSecret)) != 1 {
				metrics.AuthFailuresTotal.WithLabelValues("teacher_secret").Inc()
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}
			return next(c)
		}
	}
}
