package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/flordelima-golang/internal/auth"
)

const claimsKey = "claims"

// TokenValidator is satisfied by *auth.TokenService.
type TokenValidator interface {
	ValidateToken(token string) (*auth.Claims, error)
}

// TokenFromRequest reads the session token from the cookie, falling back to
// an "Authorization: Bearer" header.
func TokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(auth.CookieName); err == nil && token != "" {
		return token
	}
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// AuthMiddleware rejects requests without a valid token and stores the claims
// on the context for handlers.
func AuthMiddleware(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. --- Find the token ---
		token := TokenFromRequest(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		// 2. --- Validate ---
		claims, err := tokens.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// 3. --- Success ---
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// Claims returns what AuthMiddleware stored, or nil on public routes.
func Claims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}

// UserID is the authenticated user's id, "" when there is none.
func UserID(c *gin.Context) string {
	if claims := Claims(c); claims != nil {
		return claims.ID
	}
	return ""
}
