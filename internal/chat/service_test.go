package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"nxorax_backend/internal/common"
	"nxorax_backend/internal/domain"
)

// MockRepository is a mock type for chat.Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListLatest(ctx context.Context, limit int) ([]domain.Message, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Message), args.Error(1)
}

func (m *MockRepository) Add(ctx context.Context, msg *domain.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockRepository) DeleteBeyondLatest(ctx context.Context, keep int) (int, error) {
	args := m.Called(ctx, keep)
	return args.Int(0), args.Error(1)
}

func newTestService(t *testing.T) (*MockRepository, Service) {
	t.Helper()
	repo := new(MockRepository)
	return repo, NewService(repo, 100, zap.NewNop())
}

func TestService_History_UsesConfiguredLimit(t *testing.T) {
	repo, svc := newTestService(t)
	ctx := context.Background()

	msgs := []domain.Message{{ID: "m1", Text: "hi"}}
	repo.On("ListLatest", ctx, 100).Return(msgs, nil)

	got, err := svc.History(ctx)

	assert.NoError(t, err)
	assert.Equal(t, msgs, got)
	repo.AssertExpectations(t)
}

func TestService_History_StoreFailure(t *testing.T) {
	repo, svc := newTestService(t)
	ctx := context.Background()

	repo.On("ListLatest", ctx, 100).Return(nil, errors.New("store down"))

	_, err := svc.History(ctx)

	assert.ErrorIs(t, err, common.ErrStoreUnavailable)
}

func TestService_Send_StampsSenderIdentity(t *testing.T) {
	repo, svc := newTestService(t)
	ctx := context.Background()

	repo.On("Add", ctx, mock.AnythingOfType("*domain.Message")).Return(nil)
	sender := &domain.Profile{ID: "u1", FullName: "Alice", Role: domain.RoleStudent}

	msg, err := svc.Send(ctx, sender, "  hello  ")

	assert.NoError(t, err)
	assert.Equal(t, "hello", msg.Text)
	assert.Equal(t, "u1", msg.UserID)
	assert.Equal(t, "Alice", msg.UserName)
	assert.False(t, msg.IsAdmin)
}

func TestService_Send_AdminFlag(t *testing.T) {
	repo, svc := newTestService(t)
	ctx := context.Background()

	repo.On("Add", ctx, mock.AnythingOfType("*domain.Message")).Return(nil)
	sender := &domain.Profile{ID: "a1", FullName: "Root", Role: domain.RoleAdmin}

	msg, err := svc.Send(ctx, sender, "announcement")

	assert.NoError(t, err)
	assert.True(t, msg.IsAdmin)
}

func TestService_Send_AnonymousRejected(t *testing.T) {
	repo, svc := newTestService(t)

	_, err := svc.Send(context.Background(), nil, "hello")

	assert.ErrorIs(t, err, common.ErrUnauthorized)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestService_Send_EmptyTextRejected(t *testing.T) {
	repo, svc := newTestService(t)
	sender := &domain.Profile{ID: "u1", FullName: "Alice"}

	_, err := svc.Send(context.Background(), sender, "   ")

	apiErr, ok := common.IsAPIError(err)
	assert.True(t, ok)
	assert.Equal(t, common.ErrBadRequest.Code, apiErr.Code)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestService_Send_StoreFailure(t *testing.T) {
	repo, svc := newTestService(t)
	ctx := context.Background()

	repo.On("Add", ctx, mock.AnythingOfType("*domain.Message")).Return(errors.New("store down"))
	sender := &domain.Profile{ID: "u1", FullName: "Alice"}

	_, err := svc.Send(ctx, sender, "hello")

	assert.ErrorIs(t, err, common.ErrStoreUnavailable)
}
