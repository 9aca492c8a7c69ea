package firebase

import (
	"context"
	"fmt"
	"path/filepath"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"nxorax_backend/internal/config"
)

// Service wraps the Firebase Admin SDK: session verification against Firebase
// Auth and a Firestore client for the document store. The application never
// stores passwords or validates tokens itself.
type Service struct {
	authClient *auth.Client
	firestore  *firestore.Client
	logger     *zap.Logger
}

// NewService initializes the Firebase Admin SDK and connects the Auth and
// Firestore clients.
func NewService(cfg *config.Config, logger *zap.Logger) (*Service, func(), error) {
	if cfg.FirebaseServiceAccountKeyPath == "" {
		logger.Error("Firebase service account key path is not configured.")
		return nil, nil, fmt.Errorf("firebase service account key path is required")
	}

	cleanPath := filepath.Clean(cfg.FirebaseServiceAccountKeyPath)
	opt := option.WithCredentialsFile(cleanPath)

	var app *firebase.App
	var err error
	if cfg.FirebaseProjectID != "" {
		conf := &firebase.Config{ProjectID: cfg.FirebaseProjectID}
		app, err = firebase.NewApp(context.Background(), conf, opt)
	} else {
		// Let the SDK infer the project from the credentials file.
		app, err = firebase.NewApp(context.Background(), nil, opt)
	}
	if err != nil {
		logger.Error("Failed to initialize Firebase Admin SDK app", zap.Error(err), zap.String("keyPath", cleanPath))
		return nil, nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	authClient, err := app.Auth(context.Background())
	if err != nil {
		logger.Error("Failed to get Firebase Auth client", zap.Error(err))
		return nil, nil, fmt.Errorf("error getting Firebase Auth client: %w", err)
	}

	fsClient, err := app.Firestore(context.Background())
	if err != nil {
		logger.Error("Failed to get Firestore client", zap.Error(err))
		return nil, nil, fmt.Errorf("error getting Firestore client: %w", err)
	}

	logger.Info("Firebase Admin SDK initialized successfully.")
	svc := &Service{
		authClient: authClient,
		firestore:  fsClient,
		logger:     logger,
	}
	cleanup := func() {
		if err := fsClient.Close(); err != nil {
			logger.Warn("Failed to close Firestore client", zap.Error(err))
		}
	}
	return svc, cleanup, nil
}

// Firestore exposes the document store client.
func (s *Service) Firestore() *firestore.Client {
	return s.firestore
}

// VerifyIDToken verifies a Firebase ID token and returns the token claims.
func (s *Service) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	if idToken == "" {
		return nil, fmt.Errorf("ID token must not be empty")
	}
	token, err := s.authClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		s.logger.Warn("Firebase ID token verification failed", zap.Error(err))
		return nil, fmt.Errorf("failed to verify Firebase ID token: %w", err)
	}
	return token, nil
}

// RevokeRefreshTokens ends all sessions for a given user.
func (s *Service) RevokeRefreshTokens(ctx context.Context, uid string) error {
	if err := s.authClient.RevokeRefreshTokens(ctx, uid); err != nil {
		s.logger.Error("Failed to revoke refresh tokens", zap.Error(err), zap.String("uid", uid))
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}
	s.logger.Info("Revoked refresh tokens for user", zap.String("uid", uid))
	return nil
}

// DeleteAccount removes an auth account. Used to roll back a signup whose
// profile document could not be written.
func (s *Service) DeleteAccount(ctx context.Context, uid string) error {
	if err := s.authClient.DeleteUser(ctx, uid); err != nil {
		s.logger.Error("Failed to delete auth account", zap.Error(err), zap.String("uid", uid))
		return fmt.Errorf("failed to delete auth account: %w", err)
	}
	return nil
}
