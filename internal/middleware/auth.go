package middleware

import (
	"context"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nxorax_backend/internal/common"
	"nxorax_backend/internal/domain"
)

// TokenVerifier validates a session token against the identity collaborator.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

// ProfileSource resolves a verified UID to its stored profile.
type ProfileSource interface {
	ProfileByUID(ctx context.Context, uid string) (*domain.Profile, error)
}

// Auth creates a Gin middleware that requires a valid Bearer ID token and a
// matching profile document, and stores the principal in the context.
func Auth(verifier TokenVerifier, profiles ProfileSource, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := common.GetTokenFromContext(c)
		if token == "" {
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Authorization header format must be 'Bearer <token>'."))
			return
		}

		decoded, err := verifier.VerifyIDToken(c.Request.Context(), token)
		if err != nil {
			logger.Debug("Token verification failed", zap.Error(err))
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Session token is invalid or expired."))
			return
		}

		profile, err := profiles.ProfileByUID(c.Request.Context(), decoded.UID)
		if err != nil {
			logger.Warn("Verified session has no profile document", zap.String("uid", decoded.UID))
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("No profile exists for this session."))
			return
		}

		c.Set(common.FirebaseUIDKey, decoded.UID)
		c.Set(common.PrincipalKey, profile)
		c.Next()
	}
}

// OptionalAuth resolves the principal when a valid token is present but never
// rejects the request; anonymous callers proceed with no principal set.
func OptionalAuth(verifier TokenVerifier, profiles ProfileSource, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := common.GetTokenFromContext(c)
		if token == "" {
			c.Next()
			return
		}
		decoded, err := verifier.VerifyIDToken(c.Request.Context(), token)
		if err != nil {
			logger.Debug("Ignoring invalid token on optional-auth route", zap.Error(err))
			c.Next()
			return
		}
		if profile, err := profiles.ProfileByUID(c.Request.Context(), decoded.UID); err == nil {
			c.Set(common.FirebaseUIDKey, decoded.UID)
			c.Set(common.PrincipalKey, profile)
		}
		c.Next()
	}
}

// RequireRoles creates a middleware that rejects principals whose role is not
// in the allowed set. It must run after Auth.
func RequireRoles(allowed ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := common.GetPrincipalFromContext(c)
		if p == nil {
			common.RespondWithError(c, common.ErrForbidden.WithDetails("No principal found in context."))
			return
		}
		for _, role := range allowed {
			if p.Role == role {
				c.Next()
				return
			}
		}
		common.RespondWithError(c, common.ErrForbidden.WithDetails("You do not have sufficient permissions for this resource."))
	}
}
