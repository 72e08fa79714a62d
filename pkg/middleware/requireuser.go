package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireUser is an optional hard gate. When enabled=true, it reads the
// user id from the X-User-Id header or the HV_UID cookie and rejects
// requests without one. When enabled=false, it passes through (use
// DevLogin instead).
func RequireUser(enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled {
				return next(c) // bypass in development
			}
			uid := c.Request().Header.Get("X-User-Id")
			if uid == "" {
				if ck, err := c.Cookie("HV_UID"); err == nil {
					uid = ck.Value
				}
			}
			if uid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing user id"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
