package auth

import (
	"github.com/labstack/echo/v4"

	"shop_backend/internal/token"
)

const identityKey = "identity"

type Middleware struct {
	Tokens *token.Service
}

// Identity returns the verified claims a middleware stored on the context,
// or nil when the route ran without auth.
func Identity(c echo.Context) *token.Claims {
	claims, _ := c.Get(identityKey).(*token.Claims)
	return claims
}

func setIdentity(c echo.Context, claims *token.Claims) {
	c.Set(identityKey, claims)
}
