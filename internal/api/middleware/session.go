package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/heatseek/attendance-system/internal/core/ports"
)

// RequireSession rejects requests with 401 while no session is held, so the
// UI can route to its login entry point. Scope checks stay in the core; this
// only gates authentication.
func RequireSession(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !sessions.Current().Authenticated() {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}
			return next(c)
		}
	}
}
