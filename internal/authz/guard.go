package authz

import "shop_backend/internal/token"

// Allow reports whether the identity may act on a resource owned by ownerID:
// admins always, everyone else only on their own resources. A nil identity
// is always denied; callers surface that before any ownership reasoning.
func Allow(claims *token.Claims, ownerID uint) bool {
	if claims == nil {
		return false
	}
	return claims.IsAdmin || claims.ID == ownerID
}
