package api

import (
	"github.com/gin-gonic/gin"

	"github.com/deepsoc/deepsoc/pkg/auth"
)

// claimsKey is the gin context key holding the verified token claims.
const claimsKey = "auth.claims"

func setClaims(c *gin.Context, claims auth.Claims) {
	c.Set(claimsKey, claims)
}

// claimsFrom returns the claims stored by requireAuth.
func claimsFrom(c *gin.Context) (auth.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return auth.Claims{}, false
	}
	claims, ok := v.(auth.Claims)
	return claims, ok
}
