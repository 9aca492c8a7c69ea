// Package dashboard assembles the learner's progress summary: per-course and
// aggregate completion, rank, points and badges.
package dashboard

import (
	"context"

	"go.uber.org/zap"

	"nxorax_backend/internal/course"
	"nxorax_backend/internal/domain"
	"nxorax_backend/internal/progress"
)

// CourseProgressResponse is one owned course with its completion percentage.
type CourseProgressResponse struct {
	CourseID string `json:"courseId"`
	Title    string `json:"title"`
	Image    string `json:"image"`
	Progress int    `json:"progress"`
}

// Badge is a named achievement with its activation state.
type Badge struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// Summary is the full dashboard payload.
type Summary struct {
	OverallProgress   int                      `json:"overallProgress"`
	Rank              progress.Rank            `json:"rank"`
	OwnedCourses      int                      `json:"ownedCourses"`
	CompletedLessons  int                      `json:"completedLessons"`
	TotalOwnedLessons int                      `json:"totalOwnedLessons"`
	Points            int                      `json:"points"`
	Courses           []CourseProgressResponse `json:"courses"`
	Badges            []Badge                  `json:"badges"`
}

// Service derives the dashboard summary for a principal.
type Service interface {
	Summary(ctx context.Context, p *domain.Profile) (*Summary, error)
}

type service struct {
	courses course.Repository
	logger  *zap.Logger
}

// NewService creates a new dashboard service.
func NewService(courses course.Repository, logger *zap.Logger) Service {
	return &service{courses: courses, logger: logger}
}

var _ Service = (*service)(nil)

func (s *service) Summary(ctx context.Context, p *domain.Profile) (*Summary, error) {
	all, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}

	// Owned courses only: purchased ids whose course still exists. Stray ids
	// from deleted courses drop out here and never inflate the aggregate.
	var owned []domain.Course
	for i := range all {
		if p.HasPurchased(all[i].ID) {
			owned = append(owned, all[i])
		}
	}

	completed := p.CompletedSet()
	overall := progress.OverallProgress(owned, completed)

	courses := make([]CourseProgressResponse, len(owned))
	totalLessons := 0
	for i := range owned {
		totalLessons += len(owned[i].Videos)
		courses[i] = CourseProgressResponse{
			CourseID: owned[i].ID,
			Title:    owned[i].Title,
			Image:    owned[i].Image,
			Progress: progress.CourseProgress(&owned[i], completed),
		}
	}

	completedCount := len(p.CompletedLessons)
	return &Summary{
		OverallProgress:   overall,
		Rank:              progress.RankFor(len(owned), overall),
		OwnedCourses:      len(owned),
		CompletedLessons:  completedCount,
		TotalOwnedLessons: totalLessons,
		Points:            completedCount * 10,
		Courses:           courses,
		Badges: []Badge{
			{ID: "power_start", Name: "Power Start", Active: len(owned) > 0},
			{ID: "smart_learner", Name: "Smart Learner", Active: completedCount > 5},
			{ID: "elite_member", Name: "Elite Member", Active: len(owned) >= 3},
		},
	}, nil
}
