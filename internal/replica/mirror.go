// Package replica holds the transient, non-authoritative read replicas of the
// subscribed collections for the lifetime of the process. Handlers read these
// mirrors; mutations go straight to the store and are reflected by the next
// emitted snapshot (last-snapshot-wins, no local transaction log or rollback).
package replica

import (
	"context"
	"sync"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"

	"nxorax_backend/internal/domain"
	"nxorax_backend/internal/store"
)

const (
	UsersCollection    = "users"
	CoursesCollection  = "courses"
	SettingsCollection = "settings"
	AppearanceDoc      = "appearance"
)

// Mirror maintains live subscriptions to the users collection, the course
// collection and the settings document, with an explicit Start/Stop
// lifecycle. Each snapshot replaces the corresponding slice wholesale.
type Mirror struct {
	fs     *firestore.Client
	logger *zap.Logger

	mu         sync.RWMutex
	users      []domain.Profile
	courses    []domain.Course
	appearance domain.Appearance

	unsubs []store.Unsubscribe
}

// NewMirror creates a Mirror. Subscriptions begin on Start.
func NewMirror(fs *firestore.Client, logger *zap.Logger) *Mirror {
	return &Mirror{fs: fs, logger: logger.Named("Mirror")}
}

// Start opens the live subscriptions. They run until Stop or until ctx is
// cancelled.
func (m *Mirror) Start(ctx context.Context) {
	m.unsubs = append(m.unsubs,
		store.WatchCollection(ctx, m.fs.Collection(UsersCollection).Query, m.logger,
			func(docs []store.Snapshot[domain.Profile]) {
				users := make([]domain.Profile, len(docs))
				for i, d := range docs {
					d.Data.ID = d.ID
					users[i] = d.Data
				}
				m.mu.Lock()
				m.users = users
				m.mu.Unlock()
			}),
		store.WatchCollection(ctx, m.fs.Collection(CoursesCollection).Query, m.logger,
			func(docs []store.Snapshot[domain.Course]) {
				courses := make([]domain.Course, len(docs))
				for i, d := range docs {
					d.Data.ID = d.ID
					courses[i] = d.Data
				}
				m.mu.Lock()
				m.courses = courses
				m.mu.Unlock()
			}),
		store.WatchDocument(ctx, m.fs.Collection(SettingsCollection).Doc(AppearanceDoc), m.logger,
			func(a domain.Appearance, exists bool) {
				if !exists {
					a = domain.Appearance{}
				}
				m.mu.Lock()
				m.appearance = a
				m.mu.Unlock()
			}),
	)
	m.logger.Info("Live collection subscriptions started")
}

// Stop tears down all subscriptions. In-flight mutation calls elsewhere are
// not affected.
func (m *Mirror) Stop() {
	for _, unsub := range m.unsubs {
		unsub()
	}
	m.unsubs = nil
	m.logger.Info("Live collection subscriptions stopped")
}

// Users returns the current users snapshot.
func (m *Mirror) Users() []domain.Profile {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Profile, len(m.users))
	copy(out, m.users)
	return out
}

// UserByID returns a user from the current snapshot, or nil.
func (m *Mirror) UserByID(id string) *domain.Profile {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.users {
		if m.users[i].ID == id {
			u := m.users[i]
			return &u
		}
	}
	return nil
}

// Courses returns the current course snapshot.
func (m *Mirror) Courses() []domain.Course {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Course, len(m.courses))
	copy(out, m.courses)
	return out
}

// CourseByID returns a course from the current snapshot, or nil.
func (m *Mirror) CourseByID(id string) *domain.Course {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.courses {
		if m.courses[i].ID == id {
			c := m.courses[i]
			return &c
		}
	}
	return nil
}

// Appearance returns the current settings snapshot.
func (m *Mirror) Appearance() domain.Appearance {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.appearance
}
