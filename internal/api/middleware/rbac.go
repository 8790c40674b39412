package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/transitpulse/transit-api/internal/api/metrics"
)

// RequireRole gates a route on exactly one role. The check is a literal
// match with no hierarchy: an admin token does not pass a driver gate. Runs
// after Auth, which puts the verified role in the context.
func RequireRole(required string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role != required {
				metrics.AuthRejectionsTotal.WithLabelValues("wrong_role").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden - insufficient permissions")
			}
			return next(c)
		}
	}
}
