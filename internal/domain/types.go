package domain

import (
	"strings"
	"time"
)

// Role is the closed set of roles a profile can hold. Admin is a superset of
// creator privileges and is never demoted once assigned.
type Role string

const (
	RoleStudent Role = "student"
	RoleCreator Role = "creator"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleCreator, RoleAdmin:
		return true
	}
	return false
}

// RoleForUsername returns the role assigned at signup. The reserved username
// "admin" yields RoleAdmin; everyone else starts as a student.
func RoleForUsername(username string) Role {
	if username == "admin" {
		return RoleAdmin
	}
	return RoleStudent
}

// CleanUsername normalizes a raw username: trimmed, lowercased, all
// whitespace removed.
func CleanUsername(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), "")
}

// Profile is a user document in the users collection. ID is the Firebase UID
// and is not stored inside the document itself.
type Profile struct {
	ID               string   `firestore:"-" json:"id"`
	FullName         string   `firestore:"fullName" json:"fullName"`
	Username         string   `firestore:"username" json:"username"`
	Whatsapp         string   `firestore:"whatsapp" json:"whatsapp"`
	Email            string   `firestore:"email" json:"email"`
	Role             Role     `firestore:"role" json:"role"`
	PurchasedCourses []string `firestore:"purchasedCourses" json:"purchasedCourses"`
	CompletedLessons []string `firestore:"completedLessons" json:"completedLessons,omitempty"`
}

// HasPurchased reports whether courseID is in the profile's purchased set.
// Membership, not order, matters.
func (p *Profile) HasPurchased(courseID string) bool {
	for _, id := range p.PurchasedCourses {
		if id == courseID {
			return true
		}
	}
	return false
}

// CompletedSet returns the completed-lesson list as a set.
func (p *Profile) CompletedSet() map[string]struct{} {
	set := make(map[string]struct{}, len(p.CompletedLessons))
	for _, id := range p.CompletedLessons {
		set[id] = struct{}{}
	}
	return set
}

// Lesson is a single video unit belonging to exactly one course.
type Lesson struct {
	ID          string `firestore:"id" json:"id"`
	Title       string `firestore:"title" json:"title"`
	URL         string `firestore:"url" json:"url"`
	Description string `firestore:"description" json:"description"`
}

// Course is a purchasable curriculum unit. Videos order is curriculum order
// and is significant: it drives lesson numbering and the "first lesson"
// default in the player.
type Course struct {
	ID            string   `firestore:"-" json:"id"`
	Title         string   `firestore:"title" json:"title"`
	Description   string   `firestore:"description" json:"description"`
	Image         string   `firestore:"image" json:"image"`
	Price         string   `firestore:"price" json:"price"`
	Duration      string   `firestore:"duration" json:"duration"`
	StudentsCount string   `firestore:"studentsCount" json:"studentsCount"`
	Videos        []Lesson `firestore:"videos" json:"videos"`
}

// LessonIDs returns the ids of the course's lessons in curriculum order.
func (c *Course) LessonIDs() []string {
	ids := make([]string, len(c.Videos))
	for i, v := range c.Videos {
		ids[i] = v.ID
	}
	return ids
}

// Appearance is the single global settings document (settings/appearance).
type Appearance struct {
	IntroVideoURL string `firestore:"introVideoUrl" json:"introVideoUrl"`
}

// Message is a community chat message. Timestamp is assigned by the store on
// write.
type Message struct {
	ID        string    `firestore:"-" json:"id"`
	Text      string    `firestore:"text" json:"text"`
	UserID    string    `firestore:"userId" json:"userId"`
	UserName  string    `firestore:"userName" json:"userName"`
	Timestamp time.Time `firestore:"timestamp,serverTimestamp" json:"timestamp"`
	IsAdmin   bool      `firestore:"isAdmin" json:"isAdmin"`
}
