// Package routing gates client-side navigation by session presence and role.
// Resolution is a pure, synchronous function of the session state and the
// requested path; a session that is still loading suspends resolution instead
// of guessing.
package routing

import (
	"strings"

	"nxorax_backend/internal/domain"
)

// Outcome classifies a resolution result.
type Outcome string

const (
	OutcomeAllow    Outcome = "allow"
	OutcomeRedirect Outcome = "redirect"
	OutcomeSuspend  Outcome = "suspend"
)

// Decision is the result of resolving a navigation request.
type Decision struct {
	Outcome    Outcome `json:"outcome"`
	RedirectTo string  `json:"redirectTo,omitempty"`
}

// Session is the principal state a resolution runs against.
type Session struct {
	// Loading marks a session whose auth state has not settled yet.
	Loading bool
	// Profile is nil for anonymous sessions.
	Profile *domain.Profile
}

const (
	PathLanding   = "/"
	PathSignup    = "/signup"
	PathLogin     = "/login"
	PathCourses   = "/courses"
	PathPlayer    = "/player"
	PathSupport   = "/support"
	PathDashboard = "/dashboard"
	PathPrivacy   = "/privacy"
	PathAdmin     = "/admin"
)

func allow() Decision { return Decision{Outcome: OutcomeAllow} }

func redirect(to string) Decision { return Decision{Outcome: OutcomeRedirect, RedirectTo: to} }

// Resolve evaluates the route guard table for the requested path.
func Resolve(s Session, path string) Decision {
	if s.Loading {
		return Decision{Outcome: OutcomeSuspend}
	}

	switch normalize(path) {
	case PathLanding, PathSupport, PathPrivacy:
		return allow()

	case PathLogin, PathSignup:
		if s.Profile != nil {
			return redirect(PathDashboard)
		}
		return allow()

	case PathCourses, PathPlayer, PathDashboard:
		if s.Profile == nil {
			return redirect(PathLogin)
		}
		return allow()

	case PathAdmin:
		if s.Profile == nil {
			return redirect(PathLanding)
		}
		switch s.Profile.Role {
		case domain.RoleAdmin, domain.RoleCreator:
			return allow()
		case domain.RoleStudent:
			return redirect(PathLanding)
		}
		return redirect(PathLanding)
	}

	// Unmatched routes fall through to the landing page.
	return redirect(PathLanding)
}

// normalize strips a trailing slash and collapses player routes, which carry
// a course id segment, onto their route class.
func normalize(path string) string {
	if path == "" {
		return PathLanding
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	if path == PathPlayer || strings.HasPrefix(path, PathPlayer+"/") {
		return PathPlayer
	}
	return path
}
