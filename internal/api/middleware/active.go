package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ActiveOnly rejects tokens whose snapshot marks the account inactive. The
// flag is as stale as the token itself; a deactivation lands for certain at
// the next login or refresh, this gate just shortens the window.
func ActiveOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			active, ok := c.Get("is_active").(bool)
			if !ok || !active {
				return echo.NewHTTPError(http.StatusUnauthorized, "account inactive")
			}
			return next(c)
		}
	}
}
