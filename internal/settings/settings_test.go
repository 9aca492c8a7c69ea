package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"nxorax_backend/internal/common"
	"nxorax_backend/internal/domain"
	"nxorax_backend/internal/media"
)

// MockRepository is a mock type for settings.Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Appearance(ctx context.Context) (domain.Appearance, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Appearance), args.Error(1)
}

func (m *MockRepository) MergeAppearance(ctx context.Context, a domain.Appearance) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func TestService_Get_ResolvesIntroEmbed(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, zap.NewNop())
	ctx := context.Background()

	repo.On("Appearance", ctx).Return(domain.Appearance{IntroVideoURL: "https://youtu.be/abc123"}, nil)

	resp, err := svc.Get(ctx)

	assert.NoError(t, err)
	assert.Equal(t, "https://youtu.be/abc123", resp.IntroVideoURL)
	assert.Equal(t, media.ProviderYouTube, resp.IntroEmbed.Provider)
}

func TestService_Get_EmptyURL(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, zap.NewNop())
	ctx := context.Background()

	repo.On("Appearance", ctx).Return(domain.Appearance{}, nil)

	resp, err := svc.Get(ctx)

	assert.NoError(t, err)
	assert.Empty(t, resp.IntroVideoURL)
	assert.Empty(t, resp.IntroEmbed.Provider)
}

func TestService_Update(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, zap.NewNop())
	ctx := context.Background()

	repo.On("MergeAppearance", ctx, domain.Appearance{IntroVideoURL: "https://vimeo.com/1"}).Return(nil)

	err := svc.Update(ctx, UpdateAppearanceRequest{IntroVideoURL: "https://vimeo.com/1"})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_Update_StoreFailure(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, zap.NewNop())
	ctx := context.Background()

	repo.On("MergeAppearance", ctx, mock.Anything).Return(errors.New("store down"))

	err := svc.Update(ctx, UpdateAppearanceRequest{IntroVideoURL: "https://vimeo.com/1"})

	assert.ErrorIs(t, err, common.ErrStoreUnavailable)
}
