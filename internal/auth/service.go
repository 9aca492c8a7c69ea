package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"nxorax_backend/internal/common"
	"nxorax_backend/internal/domain"
	"nxorax_backend/internal/firebase"
	"nxorax_backend/internal/user"
)

// Identity issues and checks email/password credentials.
type Identity interface {
	CreateAccount(ctx context.Context, email, password string) (*firebase.Credentials, error)
	Authenticate(ctx context.Context, email, password string) (*firebase.Credentials, error)
}

// Accounts covers the admin-side account operations the service needs:
// rollback of half-created signups and session revocation on logout.
type Accounts interface {
	DeleteAccount(ctx context.Context, uid string) error
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

// Service defines the auth business logic contract.
type Service interface {
	Signup(ctx context.Context, req SignupRequest) (*SessionResponse, error)
	Login(ctx context.Context, req LoginRequest) (*SessionResponse, error)
	Logout(ctx context.Context, uid string) error
}

type service struct {
	users    user.Repository
	identity Identity
	accounts Accounts
	logger   *zap.Logger
}

func NewService(users user.Repository, identity Identity, accounts Accounts, logger *zap.Logger) Service {
	return &service{users: users, identity: identity, accounts: accounts, logger: logger}
}

var _ Service = (*service)(nil)

// Signup registers a new account and writes its profile document. The
// username is normalized first and must be unused; "admin" is the only
// username that yields the admin role, everyone else starts as a student.
func (s *service) Signup(ctx context.Context, req SignupRequest) (*SessionResponse, error) {
	username := domain.CleanUsername(req.Username)
	if username == "" {
		return nil, common.ErrBadRequest.WithDetails("Username must contain at least one non-space character.")
	}

	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, common.ErrUsernameTaken
	} else if !errors.Is(err, common.ErrUnknownUsername) {
		s.logger.Error("Username availability check failed", zap.Error(err))
		return nil, common.ErrStoreUnavailable
	}

	creds, err := s.identity.CreateAccount(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, firebase.ErrEmailInUse):
			return nil, common.ErrEmailInUse
		case errors.Is(err, firebase.ErrWeakPassword):
			return nil, common.ErrWeakPassword
		default:
			s.logger.Error("Account creation failed", zap.Error(err))
			return nil, common.ErrStoreUnavailable
		}
	}

	profile := &domain.Profile{
		ID:               creds.UID,
		FullName:         req.FullName,
		Username:         username,
		Whatsapp:         req.Whatsapp,
		Email:            req.Email,
		Role:             domain.RoleForUsername(username),
		PurchasedCourses: []string{},
		CompletedLessons: []string{},
	}

	if err := s.users.Create(ctx, profile); err != nil {
		// The credentials exist but the profile write failed. Remove the
		// orphaned account so the email can be retried.
		s.logger.Error("Profile write failed after account creation, rolling back",
			zap.String("uid", creds.UID), zap.Error(err))
		if delErr := s.accounts.DeleteAccount(ctx, creds.UID); delErr != nil {
			s.logger.Error("Signup rollback failed, account is orphaned",
				zap.String("uid", creds.UID), zap.Error(delErr))
		}
		return nil, common.ErrStoreUnavailable
	}

	s.logger.Info("User signed up",
		zap.String("uid", creds.UID),
		zap.String("username", username),
		zap.String("role", string(profile.Role)))
	return s.session(profile, creds), nil
}

// Login resolves the username to its backing email, then checks the
// password. The two failure modes stay distinct so the client can point at
// the right form field.
func (s *service) Login(ctx context.Context, req LoginRequest) (*SessionResponse, error) {
	username := domain.CleanUsername(req.Username)

	profile, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrUnknownUsername) {
			return nil, common.ErrUnknownUsername
		}
		s.logger.Error("Username lookup failed", zap.Error(err))
		return nil, common.ErrStoreUnavailable
	}

	creds, err := s.identity.Authenticate(ctx, profile.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, firebase.ErrWrongSecret):
			return nil, common.ErrWrongPassword
		case errors.Is(err, firebase.ErrNotFound):
			// Profile exists but its credentials are gone. Report it the
			// same way an unregistered username is reported.
			s.logger.Warn("Profile has no backing account", zap.String("username", username))
			return nil, common.ErrUnknownUsername
		default:
			s.logger.Error("Credential check failed", zap.Error(err))
			return nil, common.ErrStoreUnavailable
		}
	}

	return s.session(profile, creds), nil
}

// Logout revokes all refresh tokens for the account. Existing ID tokens stay
// valid until they expire; only re-issuance is cut off.
func (s *service) Logout(ctx context.Context, uid string) error {
	if err := s.accounts.RevokeRefreshTokens(ctx, uid); err != nil {
		s.logger.Error("Token revocation failed", zap.String("uid", uid), zap.Error(err))
		return common.ErrStoreUnavailable
	}
	return nil
}

func (s *service) session(profile *domain.Profile, creds *firebase.Credentials) *SessionResponse {
	return &SessionResponse{
		User: profile,
		Token: TokenResponse{
			IDToken:      creds.IDToken,
			RefreshToken: creds.RefreshToken,
			ExpiresAt:    creds.ExpiresAt,
		},
	}
}
