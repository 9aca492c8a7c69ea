package course

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nxorax_backend/internal/access"
	"nxorax_backend/internal/common"
	"nxorax_backend/internal/domain"
)

// Service defines the course business logic: the gated catalog and player
// plus the back-office curriculum mutations.
type Service interface {
	Catalog(ctx context.Context, principal *domain.Profile) ([]SummaryResponse, error)
	Player(ctx context.Context, principal *domain.Profile, courseID string) (*PlayerResponse, error)
	Create(ctx context.Context, req CreateCourseRequest) (*domain.Course, error)
	Delete(ctx context.Context, id string) error
	AppendLesson(ctx context.Context, courseID string, req AddLessonRequest) error
	RemoveLesson(ctx context.Context, courseID, lessonID string) error
	ReplaceLessons(ctx context.Context, courseID string, videos []domain.Lesson) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new course service.
func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger}
}

var _ Service = (*service)(nil)

// Catalog lists every course as a summary. Anonymous principals see the
// whole catalog locked.
func (s *service) Catalog(ctx context.Context, principal *domain.Profile) ([]SummaryResponse, error) {
	courses, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]SummaryResponse, len(courses))
	for i := range courses {
		out[i] = ToSummaryResponse(&courses[i], !access.CanView(principal, &courses[i]))
	}
	return out, nil
}

// Player returns the full lesson payload for a viewable course. An unknown
// id is a terminal not-found, never a redirect; an unpurchased course is
// forbidden.
func (s *service) Player(ctx context.Context, principal *domain.Profile, courseID string) (*PlayerResponse, error) {
	c, err := s.repo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !access.CanView(principal, c) {
		return nil, common.ErrForbidden.WithDetails("You do not have access to this course.")
	}
	resp := ToPlayerResponse(c)
	return &resp, nil
}

// Create generates the course id and fills the display-string defaults the
// storefront expects.
func (s *service) Create(ctx context.Context, req CreateCourseRequest) (*domain.Course, error) {
	price := strings.TrimSpace(req.Price)
	if price == "" {
		price = "0 EGP"
	}
	c := &domain.Course{
		ID:            uuid.NewString(),
		Title:         strings.TrimSpace(req.Title),
		Description:   strings.TrimSpace(req.Description),
		Image:         req.Image,
		Price:         price,
		Duration:      "Course",
		StudentsCount: "0",
		Videos:        []domain.Lesson{},
	}
	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error("Failed to create course", zap.Error(err), zap.String("title", c.Title))
		return nil, common.ErrStoreUnavailable
	}
	s.logger.Info("Course created", zap.String("id", c.ID), zap.String("title", c.Title))
	return c, nil
}

// Delete removes a course wholesale. Irreversible; stray completed-lesson
// ids left behind in user profiles are excluded by the progress intersection.
func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete course", zap.Error(err), zap.String("id", id))
		return common.ErrStoreUnavailable
	}
	s.logger.Info("Course deleted", zap.String("id", id))
	return nil
}

func (s *service) AppendLesson(ctx context.Context, courseID string, req AddLessonRequest) error {
	c, err := s.repo.GetByID(ctx, courseID)
	if err != nil {
		return err
	}
	videos := append(c.Videos, domain.Lesson{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		URL:         strings.TrimSpace(req.URL),
		Description: req.Description,
	})
	return s.writeLessons(ctx, courseID, videos)
}

func (s *service) RemoveLesson(ctx context.Context, courseID, lessonID string) error {
	c, err := s.repo.GetByID(ctx, courseID)
	if err != nil {
		return err
	}
	videos := make([]domain.Lesson, 0, len(c.Videos))
	for _, v := range c.Videos {
		if v.ID != lessonID {
			videos = append(videos, v)
		}
	}
	return s.writeLessons(ctx, courseID, videos)
}

func (s *service) ReplaceLessons(ctx context.Context, courseID string, videos []domain.Lesson) error {
	if _, err := s.repo.GetByID(ctx, courseID); err != nil {
		return err
	}
	return s.writeLessons(ctx, courseID, videos)
}

func (s *service) writeLessons(ctx context.Context, courseID string, videos []domain.Lesson) error {
	if err := s.repo.ReplaceLessons(ctx, courseID, videos); err != nil {
		s.logger.Error("Failed to update course lessons", zap.Error(err), zap.String("courseID", courseID))
		return common.ErrStoreUnavailable
	}
	s.logger.Info("Course lessons updated", zap.String("courseID", courseID), zap.Int("count", len(videos)))
	return nil
}
