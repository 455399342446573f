package middleware

import (
	"strings"

	"SecureEHealth/auth"
	"SecureEHealth/role"
	"SecureEHealth/util"

	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

type TokenValidator interface {
	Validate(raw string) (*auth.Claims, error)
}

/*
* Read the bearer token from the Authorization header
* Validate signature, algorithm and expiry
* Keep the claims on the context for the handlers
 */
func JWTAuth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, raw, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(raw) == "" {
			abort(c, util.E(util.InvalidToken, util.TOKEN_MISSING))
			return
		}
		claims, err := tokens.Validate(strings.TrimSpace(raw))
		if err != nil {
			abort(c, err)
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// Authorize lets the request through only for the listed roles. It must run after JWTAuth.
func Authorize(allowed ...role.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := auth.RequireRole(Claims(c), allowed...); err != nil {
			abort(c, err)
			return
		}
		c.Next()
	}
}

// Claims returns the validated claims, or nil on an unauthenticated route.
func Claims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}

func abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(util.StatusFor(err), util.FailedResponse(err))
}
