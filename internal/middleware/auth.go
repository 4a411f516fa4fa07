package middleware

import (
	"strings"

	"github.com/dimitrije/mirror-api/internal/services"
	"github.com/m1z23r/drift/pkg/drift"
)

const SubjectKey = "session_subject"

// Auth guards the query API with provider-issued bearer session tokens.
func Auth(jwtService *services.JWTService) drift.HandlerFunc {
	return func(c *drift.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Unauthorized("missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Unauthorized("invalid authorization header format")
			return
		}

		claims, err := jwtService.VerifySessionToken(parts[1])
		if err != nil {
			c.Unauthorized("invalid or expired token")
			return
		}

		c.Set(SubjectKey, claims.Subject)

		c.Next()
	}
}

// GetSubject returns the authenticated provider user id, or "" outside an
// authenticated request.
func GetSubject(c *drift.Context) string {
	if sub, ok := c.Get(SubjectKey); ok {
		if s, ok := sub.(string); ok {
			return s
		}
	}
	return ""
}
