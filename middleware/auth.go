package middleware

import (
	"errors"
	"net/http"
	"strings"

	"taste-toffel-api/models"
	"taste-toffel-api/navigation"
	"taste-toffel-api/session"

	"github.com/gin-gonic/gin"
)

const (
	sessionKey = "session"
	claimsKey  = "claims"
)

// SessionLoader resolves the caller's session from the bearer token. No
// Authorization header means a guest; a bad, expired or revoked token is
// rejected.
func SessionLoader(tokens *session.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Set(sessionKey, session.Guest())
			c.Next()
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must be Bearer <token>"})
			return
		}
		sess, claims, err := tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			msg := "Invalid or expired token"
			if errors.Is(err, session.ErrTokenRevoked) {
				msg = "Session has been logged out"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}
		c.Set(sessionKey, sess)
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RoleRequired enforces that caller has one of the allowed roles
func RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerRole := GetSession(c).Role()
		for _, r := range roles {
			if callerRole == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "Access denied. Required role(s): " + rolesString(roles),
		})
	}
}

// RouteRequired lets the request through only if the caller's role may
// open route.
func RouteRequired(route navigation.Route) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := navigation.CanAccess(GetSession(c).Role(), route); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.Next()
	}
}

func rolesString(roles []models.Role) string {
	parts := make([]string, len(roles))
	for i, r := range roles {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}

// GetSession returns the caller's session, a guest if none was loaded
func GetSession(c *gin.Context) session.Session {
	if val, ok := c.Get(sessionKey); ok {
		if s, ok := val.(session.Session); ok {
			return s
		}
	}
	return session.Guest()
}

// GetClaims returns the caller's token claims, nil for guests
func GetClaims(c *gin.Context) *session.Claims {
	if val, ok := c.Get(claimsKey); ok {
		if claims, ok := val.(*session.Claims); ok {
			return claims
		}
	}
	return nil
}
