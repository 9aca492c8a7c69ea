package user

import (
	"context"

	"go.uber.org/zap"

	"nxorax_backend/internal/access"
	"nxorax_backend/internal/common"
	"nxorax_backend/internal/domain"
)

// Service defines the business logic over user profiles: the admin roster,
// the role/access toggles and lesson-completion bookkeeping.
type Service interface {
	ProfileByUID(ctx context.Context, uid string) (*domain.Profile, error)
	Roster(ctx context.Context) ([]domain.Profile, error)
	ToggleAccess(ctx context.Context, userID, courseID string) error
	ToggleRole(ctx context.Context, userID string) error
	MarkLessonCompleted(ctx context.Context, uid, lessonID string)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new user service.
func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger}
}

var _ Service = (*service)(nil)

func (s *service) ProfileByUID(ctx context.Context, uid string) (*domain.Profile, error) {
	return s.repo.GetByID(ctx, uid)
}

func (s *service) Roster(ctx context.Context) ([]domain.Profile, error) {
	return s.repo.List(ctx)
}

// ToggleAccess flips courseID's membership in the user's purchased set and
// writes the whole array back. Repeated identical clicks keep toggling; this
// is deliberate, not a set-once grant.
func (s *service) ToggleAccess(ctx context.Context, userID, courseID string) error {
	p, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	updated := access.ToggledPurchases(p.PurchasedCourses, courseID)
	if err := s.repo.SetPurchasedCourses(ctx, userID, updated); err != nil {
		s.logger.Error("Failed to toggle course access",
			zap.Error(err), zap.String("userID", userID), zap.String("courseID", courseID))
		return common.ErrStoreUnavailable
	}
	s.logger.Info("Course access toggled",
		zap.String("userID", userID), zap.String("courseID", courseID),
		zap.Bool("granted", len(updated) > len(p.PurchasedCourses)))
	return nil
}

// ToggleRole flips a user between student and creator. Admins are never
// reassigned: the toggle is a silent no-op for them.
func (s *service) ToggleRole(ctx context.Context, userID string) error {
	p, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	next := access.ToggledRole(p.Role)
	if next == p.Role {
		return nil
	}
	if err := s.repo.SetRole(ctx, userID, next); err != nil {
		s.logger.Error("Failed to toggle role", zap.Error(err), zap.String("userID", userID))
		return common.ErrStoreUnavailable
	}
	s.logger.Info("Role toggled", zap.String("userID", userID), zap.String("role", string(next)))
	return nil
}

// MarkLessonCompleted issues the idempotent set-add unconditionally and
// swallows failures: bookkeeping must never interrupt the learner's playback.
func (s *service) MarkLessonCompleted(ctx context.Context, uid, lessonID string) {
	if err := s.repo.AddCompletedLesson(ctx, uid, lessonID); err != nil {
		s.logger.Warn("Failed to mark lesson as completed",
			zap.Error(err), zap.String("uid", uid), zap.String("lessonID", lessonID))
	}
}
