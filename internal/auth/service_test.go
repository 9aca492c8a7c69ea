package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"nxorax_backend/internal/common"
	"nxorax_backend/internal/domain"
	"nxorax_backend/internal/firebase"
)

// MockUserRepository is a mock type for user.Repository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]domain.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, p *domain.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockUserRepository) SetPurchasedCourses(ctx context.Context, id string, purchased []string) error {
	args := m.Called(ctx, id, purchased)
	return args.Error(0)
}

func (m *MockUserRepository) SetRole(ctx context.Context, id string, role domain.Role) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

func (m *MockUserRepository) AddCompletedLesson(ctx context.Context, id, lessonID string) error {
	args := m.Called(ctx, id, lessonID)
	return args.Error(0)
}

// MockIdentity is a mock type for auth.Identity
type MockIdentity struct {
	mock.Mock
}

func (m *MockIdentity) CreateAccount(ctx context.Context, email, password string) (*firebase.Credentials, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*firebase.Credentials), args.Error(1)
}

func (m *MockIdentity) Authenticate(ctx context.Context, email, password string) (*firebase.Credentials, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*firebase.Credentials), args.Error(1)
}

// MockAccounts is a mock type for auth.Accounts
type MockAccounts struct {
	mock.Mock
}

func (m *MockAccounts) DeleteAccount(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

func (m *MockAccounts) RevokeRefreshTokens(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

type serviceTestSuite struct {
	users    *MockUserRepository
	identity *MockIdentity
	accounts *MockAccounts
	service  Service
}

func setupServiceTestSuite(t *testing.T) *serviceTestSuite {
	t.Helper()
	ts := &serviceTestSuite{
		users:    new(MockUserRepository),
		identity: new(MockIdentity),
		accounts: new(MockAccounts),
	}
	ts.service = NewService(ts.users, ts.identity, ts.accounts, zap.NewNop())
	return ts
}

func testCredentials(uid string) *firebase.Credentials {
	return &firebase.Credentials{
		UID:          uid,
		IDToken:      "id-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    time.Now().Add(time.Hour),
	}
}

func TestService_Signup_NormalizesUsernameAndAssignsStudent(t *testing.T) {
	ts := setupServiceTestSuite(t)
	ctx := context.Background()

	ts.users.On("FindByUsername", ctx, "alice").Return(nil, common.ErrUnknownUsername)
	ts.identity.On("CreateAccount", ctx, "alice@example.com", "secret123").Return(testCredentials("uid-1"), nil)
	ts.users.On("Create", ctx, mock.MatchedBy(func(p *domain.Profile) bool {
		return p.ID == "uid-1" && p.Username == "alice" && p.Role == domain.RoleStudent
	})).Return(nil)

	session, err := ts.service.Signup(ctx, SignupRequest{
		FullName: "Alice A",
		Username: " A LICE ",
		Email:    "alice@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "alice", session.User.Username)
	assert.Equal(t, domain.RoleStudent, session.User.Role)
	assert.Equal(t, "id-token", session.Token.IDToken)
	ts.users.AssertExpectations(t)
}

func TestService_Signup_AdminUsernameGetsAdminRole(t *testing.T) {
	ts := setupServiceTestSuite(t)
	ctx := context.Background()

	ts.users.On("FindByUsername", ctx, "admin").Return(nil, common.ErrUnknownUsername)
	ts.identity.On("CreateAccount", ctx, "root@example.com", "secret123").Return(testCredentials("uid-a"), nil)
	ts.users.On("Create", ctx, mock.MatchedBy(func(p *domain.Profile) bool {
		return p.Role == domain.RoleAdmin
	})).Return(nil)

	session, err := ts.service.Signup(ctx, SignupRequest{
		FullName: "Root",
		Username: "Admin",
		Email:    "root@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, session.User.Role)
}

func TestService_Signup_UsernameTaken(t *testing.T) {
	ts := setupServiceTestSuite(t)
	ctx := context.Background()

	ts.users.On("FindByUsername", ctx, "alice").Return(&domain.Profile{ID: "other"}, nil)

	_, err := ts.service.Signup(ctx, SignupRequest{
		Username: "alice", Email: "x@example.com", Password: "secret123",
	})

	assert.ErrorIs(t, err, common.ErrUsernameTaken)
	ts.identity.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Signup_BlankUsernameRejected(t *testing.T) {
	ts := setupServiceTestSuite(t)

	_, err := ts.service.Signup(context.Background(), SignupRequest{
		Username: "   ", Email: "x@example.com", Password: "secret123",
	})

	apiErr, ok := common.IsAPIError(err)
	assert.True(t, ok)
	assert.Equal(t, common.ErrBadRequest.Code, apiErr.Code)
}

func TestService_Signup_EmailInUse(t *testing.T) {
	ts := setupServiceTestSuite(t)
	ctx := context.Background()

	ts.users.On("FindByUsername", ctx, "alice").Return(nil, common.ErrUnknownUsername)
	ts.identity.On("CreateAccount", ctx, "alice@example.com", "secret123").Return(nil, firebase.ErrEmailInUse)

	_, err := ts.service.Signup(ctx, SignupRequest{
		Username: "alice", Email: "alice@example.com", Password: "secret123",
	})

	assert.ErrorIs(t, err, common.ErrEmailInUse)
	ts.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Signup_WeakPassword(t *testing.T) {
	ts := setupServiceTestSuite(t)
	ctx := context.Background()

	ts.users.On("FindByUsername", ctx, "alice").Return(nil, common.ErrUnknownUsername)
	ts.identity.On("CreateAccount", ctx, "alice@example.com", "123").Return(nil, firebase.ErrWeakPassword)

	_, err := ts.service.Signup(ctx, SignupRequest{
		Username: "alice", Email: "alice@example.com", Password: "123",
	})

	assert.ErrorIs(t, err, common.ErrWeakPassword)
}

func TestService_Signup_ProfileWriteFailureRollsBackAccount(t *testing.T) {
	ts := setupServiceTestSuite(t)
	ctx := context.Background()

	ts.users.On("FindByUsername", ctx, "alice").Return(nil, common.ErrUnknownUsername)
	ts.identity.On("CreateAccount", ctx, "alice@example.com", "secret123").Return(testCredentials("uid-1"), nil)
	ts.users.On("Create", ctx, mock.AnythingOfType("*domain.Profile")).Return(errors.New("store down"))
	ts.accounts.On("DeleteAccount", ctx, "uid-1").Return(nil)

	_, err := ts.service.Signup(ctx, SignupRequest{
		Username: "alice", Email: "alice@example.com", Password: "secret123",
	})

	assert.ErrorIs(t, err, common.ErrStoreUnavailable)
	ts.accounts.AssertExpectations(t)
}

func TestService_Login_Success(t *testing.T) {
	ts := setupServiceTestSuite(t)
	ctx := context.Background()

	profile := &domain.Profile{ID: "uid-1", Username: "alice", Email: "alice@example.com", Role: domain.RoleStudent}
	ts.users.On("FindByUsername", ctx, "alice").Return(profile, nil)
	ts.identity.On("Authenticate", ctx, "alice@example.com", "secret123").Return(testCredentials("uid-1"), nil)

	session, err := ts.service.Login(ctx, LoginRequest{Username: "Alice", Password: "secret123"})

	assert.NoError(t, err)
	assert.Equal(t, profile, session.User)
	assert.Equal(t, "refresh-token", session.Token.RefreshToken)
}

func TestService_Login_UnknownUsername(t *testing.T) {
	ts := setupServiceTestSuite(t)
	ctx := context.Background()

	ts.users.On("FindByUsername", ctx, "ghost").Return(nil, common.ErrUnknownUsername)

	_, err := ts.service.Login(ctx, LoginRequest{Username: "ghost", Password: "whatever"})

	assert.ErrorIs(t, err, common.ErrUnknownUsername)
	ts.identity.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Login_WrongPassword(t *testing.T) {
	ts := setupServiceTestSuite(t)
	ctx := context.Background()

	profile := &domain.Profile{ID: "uid-1", Username: "alice", Email: "alice@example.com"}
	ts.users.On("FindByUsername", ctx, "alice").Return(profile, nil)
	ts.identity.On("Authenticate", ctx, "alice@example.com", "nope").Return(nil, firebase.ErrWrongSecret)

	_, err := ts.service.Login(ctx, LoginRequest{Username: "alice", Password: "nope"})

	// Wrong password and unknown username must stay distinguishable.
	assert.ErrorIs(t, err, common.ErrWrongPassword)
	assert.NotErrorIs(t, err, common.ErrUnknownUsername)
}

func TestService_Logout_RevokesTokens(t *testing.T) {
	ts := setupServiceTestSuite(t)
	ctx := context.Background()

	ts.accounts.On("RevokeRefreshTokens", ctx, "uid-1").Return(nil)

	assert.NoError(t, ts.service.Logout(ctx, "uid-1"))
	ts.accounts.AssertExpectations(t)
}

func TestService_Logout_Failure(t *testing.T) {
	ts := setupServiceTestSuite(t)
	ctx := context.Background()

	ts.accounts.On("RevokeRefreshTokens", ctx, "uid-1").Return(errors.New("backend down"))

	assert.ErrorIs(t, ts.service.Logout(ctx, "uid-1"), common.ErrStoreUnavailable)
}
