// Package settings manages the single global appearance document: the
// landing page intro video URL, mutated by admins only.
package settings

import (
	"context"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"

	"nxorax_backend/internal/common"
	"nxorax_backend/internal/domain"
	"nxorax_backend/internal/media"
	"nxorax_backend/internal/replica"
)

// Repository defines the data operations on the settings document.
type Repository interface {
	Appearance(ctx context.Context) (domain.Appearance, error)
	MergeAppearance(ctx context.Context, a domain.Appearance) error
}

type firestoreRepository struct {
	fs     *firestore.Client
	mirror *replica.Mirror
}

// NewFirestoreRepository creates the Firestore-backed settings repository.
func NewFirestoreRepository(fs *firestore.Client, mirror *replica.Mirror) Repository {
	return &firestoreRepository{fs: fs, mirror: mirror}
}

func (r *firestoreRepository) Appearance(_ context.Context) (domain.Appearance, error) {
	return r.mirror.Appearance(), nil
}

// MergeAppearance is a merge write: fields outside the payload survive.
func (r *firestoreRepository) MergeAppearance(ctx context.Context, a domain.Appearance) error {
	doc := r.fs.Collection(replica.SettingsCollection).Doc(replica.AppearanceDoc)
	_, err := doc.Set(ctx, a, firestore.MergeAll)
	return err
}

// AppearanceResponse is the appearance payload with the intro video's
// resolved embed.
type AppearanceResponse struct {
	IntroVideoURL string      `json:"introVideoUrl"`
	IntroEmbed    media.Embed `json:"introEmbed"`
}

// UpdateAppearanceRequest defines the admin payload for the settings save.
type UpdateAppearanceRequest struct {
	IntroVideoURL string `json:"introVideoUrl" binding:"omitempty,url"`
}

// Service defines the settings business logic.
type Service interface {
	Get(ctx context.Context) (*AppearanceResponse, error)
	Update(ctx context.Context, req UpdateAppearanceRequest) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new settings service.
func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger}
}

var _ Service = (*service)(nil)

func (s *service) Get(ctx context.Context) (*AppearanceResponse, error) {
	a, err := s.repo.Appearance(ctx)
	if err != nil {
		return nil, err
	}
	resp := &AppearanceResponse{IntroVideoURL: a.IntroVideoURL}
	if a.IntroVideoURL != "" {
		resp.IntroEmbed = media.Resolve(a.IntroVideoURL)
	}
	return resp, nil
}

func (s *service) Update(ctx context.Context, req UpdateAppearanceRequest) error {
	err := s.repo.MergeAppearance(ctx, domain.Appearance{IntroVideoURL: req.IntroVideoURL})
	if err != nil {
		s.logger.Error("Failed to save appearance settings", zap.Error(err))
		return common.ErrStoreUnavailable
	}
	s.logger.Info("Appearance settings saved")
	return nil
}
