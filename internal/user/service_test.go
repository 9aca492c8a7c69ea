package user

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

// MockRepository is a mock type for user.Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockRepository) FindByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]domain.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, p *domain.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRepository) SetPurchasedCourses(ctx context.Context, id string, purchased []string) error {
	args := m.Called(ctx, id, purchased)
	return args.Error(0)
}

func (m *MockRepository) SetRole(ctx context.Context, id string, role domain.Role) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

func (m *MockRepository) AddCompletedLesson(ctx context.Context, id, lessonID string) error {
	args := m.Called(ctx, id, lessonID)
	return args.Error(0)
}

func newTestService(t *testing.T) (*MockRepository, Service) {
	t.Helper()
	repo := new(MockRepository)
	return repo, NewService(repo, zap.NewNop())
}

func TestService_ToggleAccess_Grant(t *testing.T) {
	repo, svc := newTestService(t)
	ctx := context.Background()

	repo.On("GetByID", ctx, "u1").Return(&domain.Profile{ID: "u1", PurchasedCourses: []string{"c1"}}, nil)
	repo.On("SetPurchasedCourses", ctx, "u1", []string{"c1", "c2"}).Return(nil)

	err := svc.ToggleAccess(ctx, "u1", "c2")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_ToggleAccess_Revoke(t *testing.T) {
	repo, svc := newTestService(t)
	ctx := context.Background()

	repo.On("GetByID", ctx, "u1").Return(&domain.Profile{ID: "u1", PurchasedCourses: []string{"c1", "c2"}}, nil)
	repo.On("SetPurchasedCourses", ctx, "u1", []string{"c1"}).Return(nil)

	err := svc.ToggleAccess(ctx, "u1", "c2")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_ToggleAccess_UnknownUser(t *testing.T) {
	repo, svc := newTestService(t)
	ctx := context.Background()

	repo.On("GetByID", ctx, "missing").Return(nil, common.ErrNotFound)

	err := svc.ToggleAccess(ctx, "missing", "c1")

	assert.ErrorIs(t, err, common.ErrNotFound)
	repo.AssertNotCalled(t, "SetPurchasedCourses", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ToggleAccess_WriteFailure(t *testing.T) {
	repo, svc := newTestService(t)
	ctx := context.Background()

	repo.On("GetByID", ctx, "u1").Return(&domain.Profile{ID: "u1"}, nil)
	repo.On("SetPurchasedCourses", ctx, "u1", []string{"c1"}).Return(errors.New("store down"))

	err := svc.ToggleAccess(ctx, "u1", "c1")

	assert.ErrorIs(t, err, common.ErrStoreUnavailable)
}

func TestService_ToggleRole_StudentBecomesCreator(t *testing.T) {
	repo, svc := newTestService(t)
	ctx := context.Background()

	repo.On("GetByID", ctx, "u1").Return(&domain.Profile{ID: "u1", Role: domain.RoleStudent}, nil)
	repo.On("SetRole", ctx, "u1", domain.RoleCreator).Return(nil)

	err := svc.ToggleRole(ctx, "u1")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_ToggleRole_CreatorBecomesStudent(t *testing.T) {
	repo, svc := newTestService(t)
	ctx := context.Background()

	repo.On("GetByID", ctx, "u1").Return(&domain.Profile{ID: "u1", Role: domain.RoleCreator}, nil)
	repo.On("SetRole", ctx, "u1", domain.RoleStudent).Return(nil)

	err := svc.ToggleRole(ctx, "u1")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_ToggleRole_AdminIsNoOp(t *testing.T) {
	repo, svc := newTestService(t)
	ctx := context.Background()

	repo.On("GetByID", ctx, "u1").Return(&domain.Profile{ID: "u1", Role: domain.RoleAdmin}, nil)

	err := svc.ToggleRole(ctx, "u1")

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "SetRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_MarkLessonCompleted_SwallowsFailure(t *testing.T) {
	repo, svc := newTestService(t)
	ctx := context.Background()

	repo.On("AddCompletedLesson", ctx, "u1", "l1").Return(errors.New("store down"))

	// Must not panic or surface the error; playback continues regardless.
	svc.MarkLessonCompleted(ctx, "u1", "l1")
	repo.AssertExpectations(t)
}

func TestService_Roster(t *testing.T) {
	repo, svc := newTestService(t)
	ctx := context.Background()

	roster := []domain.Profile{{ID: "u1"}, {ID: "u2"}}
	repo.On("List", ctx).Return(roster, nil)

	got, err := svc.Roster(ctx)

	assert.NoError(t, err)
	assert.Equal(t, roster, got)
}
