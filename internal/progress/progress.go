// Package progress derives display-ready learning progress from raw
// identifier sets. Everything here is a pure computation; stray lesson ids
// whose course has been deleted are excluded by intersection and never crash
// or inflate a percentage.
package progress

import (
	"math"

	"nxorax_backend/internal/domain"
)

// Rank is the qualitative label derived from aggregate progress and
// course-ownership count.
type Rank string

const (
	RankNewStarter       Rank = "New Starter"
	RankAmbitiousLearner Rank = "Ambitious Learner"
	RankRisingTalent     Rank = "Rising Talent"
	RankAdvancedLearner  Rank = "Advanced Learner"
	RankProExpert        Rank = "Pro Expert"
)

// CourseProgress returns the rounded completion percentage of a single
// course, always in [0,100]. A course with no lessons is 0% complete for any
// completed set.
func CourseProgress(c *domain.Course, completed map[string]struct{}) int {
	if c == nil || len(c.Videos) == 0 {
		return 0
	}
	done := 0
	for _, v := range c.Videos {
		if _, ok := completed[v.ID]; ok {
			done++
		}
	}
	return percent(done, len(c.Videos))
}

// OverallProgress returns the rounded completion percentage over the union of
// all lesson ids across the owned courses; 0 when that union is empty.
func OverallProgress(owned []domain.Course, completed map[string]struct{}) int {
	total := 0
	done := 0
	for i := range owned {
		for _, v := range owned[i].Videos {
			total++
			if _, ok := completed[v.ID]; ok {
				done++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return percent(done, total)
}

// RankFor maps ownership count and overall progress to a tier. Thresholds are
// evaluated high to low and are mutually exclusive; owning no courses always
// yields the lowest tier.
func RankFor(ownedCount, overall int) Rank {
	if ownedCount == 0 {
		return RankNewStarter
	}
	switch {
	case overall > 80:
		return RankProExpert
	case overall > 50:
		return RankAdvancedLearner
	case overall > 20:
		return RankRisingTalent
	}
	return RankAmbitiousLearner
}

func percent(done, total int) int {
	return int(math.Round(float64(done) / float64(total) * 100))
}
