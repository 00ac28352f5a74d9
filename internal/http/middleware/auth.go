package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carwash-dashboard/internal/auth"
	"carwash-dashboard/internal/model"
)

// TokenCookie is the HTTP-only cookie carrying the session token.
const TokenCookie = "token"

const (
	principalKey = "principal"
	tokenKey     = "sessionToken"
)

// Auth authenticates requests from the session cookie. A missing cookie or
// a revoked token is 401; a token that fails verification is 403.
func Auth(tokens *auth.Manager, revocations auth.RevocationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(TokenCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access denied. No token provided."})
			return
		}

		revoked, err := revocations.IsRevoked(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been invalidated"})
			return
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(principalKey, claims.Principal())
		c.Set(tokenKey, token)
		c.Next()
	}
}

func MustPrincipal(c *gin.Context) (model.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return model.Principal{}, false
	}
	principal, ok := value.(model.Principal)
	if !ok {
		return model.Principal{}, false
	}
	return principal, true
}

// SessionToken returns the raw token the request authenticated with.
func SessionToken(c *gin.Context) string {
	value, exists := c.Get(tokenKey)
	if !exists {
		return ""
	}
	token, _ := value.(string)
	return token
}
