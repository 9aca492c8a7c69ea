// Package access decides, per (user, course) pair, whether lesson content is
// viewable and whether the back-office screens are reachable. All predicates
// are pure functions over already-fetched data: an absent user or course
// simply yields false, never an error.
package access

import "nxorax_backend/internal/domain"

// CanView reports whether p may watch c's lessons: admins see everything,
// everyone else needs the course in their purchased set. Anonymous users
// (nil profile) see nothing.
func CanView(p *domain.Profile, c *domain.Course) bool {
	if p == nil || c == nil {
		return false
	}
	switch p.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleCreator, domain.RoleStudent:
		return p.HasPurchased(c.ID)
	}
	return false
}

// CanManage reports whether p may reach the admin surface and manage course
// content.
func CanManage(p *domain.Profile) bool {
	if p == nil {
		return false
	}
	switch p.Role {
	case domain.RoleAdmin, domain.RoleCreator:
		return true
	case domain.RoleStudent:
		return false
	}
	return false
}

// CanManageUsers reports whether p may manage the user roster and global
// settings. Creators manage content only.
func CanManageUsers(p *domain.Profile) bool {
	if p == nil {
		return false
	}
	return p.Role == domain.RoleAdmin
}

// ToggledPurchases returns the purchased set with courseID's membership
// flipped: removed if present, appended otherwise. This is intentionally a
// toggle, not a set-once grant.
func ToggledPurchases(purchased []string, courseID string) []string {
	out := make([]string, 0, len(purchased)+1)
	found := false
	for _, id := range purchased {
		if id == courseID {
			found = true
			continue
		}
		out = append(out, id)
	}
	if !found {
		out = append(out, courseID)
	}
	return out
}

// ToggledRole returns the role after an admin-initiated role toggle. Admin is
// never reassigned; otherwise the toggle is a student/creator 2-cycle.
func ToggledRole(r domain.Role) domain.Role {
	switch r {
	case domain.RoleAdmin:
		return domain.RoleAdmin
	case domain.RoleCreator:
		return domain.RoleStudent
	case domain.RoleStudent:
		return domain.RoleCreator
	}
	return r
}
