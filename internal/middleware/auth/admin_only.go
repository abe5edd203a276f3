package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminOnly answers 401 for non-admins as well, the contract does not
// distinguish "not logged in" from "not allowed".
func (m *Middleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.Tokens.FromRequest(c)
		if err != nil || !claims.IsAdmin {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		setIdentity(c, claims)
		return next(c)
	}
}
