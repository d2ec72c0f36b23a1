package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// RequireScope validates the bearer token and checks that its scope claim
// grants the required capability. Tokens are HMAC-signed by the login
// endpoint.
func RequireScope(secret, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing bearer token"})
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !hasScope(claims, scope) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "insufficient scope"})
			return
		}

		if sub, err := claims.GetSubject(); err == nil {
			c.Set("user_id", sub)
		}
		c.Next()
	}
}

func hasScope(claims jwt.MapClaims, want string) bool {
	raw, ok := claims["scope"]
	if !ok {
		return false
	}
	switch v := raw.(type) {
	case string:
		for _, s := range strings.Fields(v) {
			if s == want || s == "all" {
				return true
			}
		}
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok && (s == want || s == "all") {
				return true
			}
		}
	}
	return false
}
