package course

import (
	"nxorax_backend/internal/domain"
	"nxorax_backend/internal/media"
)

// --- DTOs ---

// CreateCourseRequest defines the payload for creating a course. Price,
// duration and studentsCount are free-form display strings.
type CreateCourseRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	Image       string `json:"image" binding:"required"`
	Price       string `json:"price" binding:"omitempty,max=50"`
}

// AddLessonRequest defines the payload for appending a lesson.
type AddLessonRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	URL         string `json:"url" binding:"required"`
	Description string `json:"description" binding:"omitempty,max=5000"`
}

// ReplaceLessonsRequest replaces the whole curriculum in one write.
type ReplaceLessonsRequest struct {
	Videos []domain.Lesson `json:"videos" binding:"required"`
}

// SummaryResponse is a catalog entry. Lesson content stays out of the
// catalog; Locked says whether the player is gated for this principal.
type SummaryResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Image         string `json:"image"`
	Price         string `json:"price"`
	Duration      string `json:"duration"`
	StudentsCount string `json:"studentsCount"`
	LessonsCount  int    `json:"lessonsCount"`
	Locked        bool   `json:"isLocked"`
}

// PlayerLessonResponse is a lesson with its resolved embed.
type PlayerLessonResponse struct {
	domain.Lesson
	Embed media.Embed `json:"embed"`
}

// PlayerResponse is the full player payload for a viewable course. Lessons
// keep curriculum order; the first lesson is the player's default.
type PlayerResponse struct {
	ID            string                 `json:"id"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description"`
	Image         string                 `json:"image"`
	Price         string                 `json:"price"`
	Duration      string                 `json:"duration"`
	StudentsCount string                 `json:"studentsCount"`
	Videos        []PlayerLessonResponse `json:"videos"`
}

// ToSummaryResponse converts a course to its catalog entry.
func ToSummaryResponse(c *domain.Course, locked bool) SummaryResponse {
	return SummaryResponse{
		ID:            c.ID,
		Title:         c.Title,
		Description:   c.Description,
		Image:         c.Image,
		Price:         c.Price,
		Duration:      c.Duration,
		StudentsCount: c.StudentsCount,
		LessonsCount:  len(c.Videos),
		Locked:        locked,
	}
}

// ToPlayerResponse converts a course to the player payload.
func ToPlayerResponse(c *domain.Course) PlayerResponse {
	videos := make([]PlayerLessonResponse, len(c.Videos))
	for i, v := range c.Videos {
		videos[i] = PlayerLessonResponse{Lesson: v, Embed: media.Resolve(v.URL)}
	}
	return PlayerResponse{
		ID:            c.ID,
		Title:         c.Title,
		Description:   c.Description,
		Image:         c.Image,
		Price:         c.Price,
		Duration:      c.Duration,
		StudentsCount: c.StudentsCount,
		Videos:        videos,
	}
}
