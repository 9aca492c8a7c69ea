package common

import (
	"strings"

	"github.com/gin-gonic/gin"

	"nxorax_backend/internal/domain"
)

const (
	// AuthorizationHeader is the header name for the authorization token.
	AuthorizationHeader = "Authorization"
	// AuthorizationTypeBearer is the prefix for Bearer tokens.
	AuthorizationTypeBearer = "Bearer"
	// PrincipalKey is the context key for the authenticated profile.
	PrincipalKey = "principal"
	// FirebaseUIDKey is the context key for the Firebase UID.
	FirebaseUIDKey = "firebaseUID"
)

// GetTokenFromContext retrieves the bearer token string from the
// Authorization header. Returns an empty string if not present or malformed.
func GetTokenFromContext(c *gin.Context) string {
	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], AuthorizationTypeBearer) {
		return ""
	}
	return parts[1]
}

// GetPrincipalFromContext retrieves the authenticated profile from the Gin
// context. Returns nil for anonymous requests.
func GetPrincipalFromContext(c *gin.Context) *domain.Profile {
	val, exists := c.Get(PrincipalKey)
	if !exists {
		return nil
	}
	p, ok := val.(*domain.Profile)
	if !ok {
		return nil
	}
	return p
}

// GetFirebaseUIDFromContext retrieves the Firebase UID from the Gin context.
func GetFirebaseUIDFromContext(c *gin.Context) string {
	val, exists := c.Get(FirebaseUIDKey)
	if !exists {
		return ""
	}
	uid, ok := val.(string)
	if !ok {
		return ""
	}
	return uid
}
