package user

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"nxorax_backend/internal/common"
	"nxorax_backend/internal/domain"
	"nxorax_backend/internal/replica"
)

// Repository defines the data operations on user profiles. Writes are always
// single-document round trips against the store; reads are served from the
// live mirror where freshness allows it.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	FindByUsername(ctx context.Context, username string) (*domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	Create(ctx context.Context, p *domain.Profile) error
	SetPurchasedCourses(ctx context.Context, id string, purchased []string) error
	SetRole(ctx context.Context, id string, role domain.Role) error
	AddCompletedLesson(ctx context.Context, id, lessonID string) error
}

type firestoreRepository struct {
	fs     *firestore.Client
	mirror *replica.Mirror
}

// NewFirestoreRepository creates the Firestore-backed user repository.
func NewFirestoreRepository(fs *firestore.Client, mirror *replica.Mirror) Repository {
	return &firestoreRepository{fs: fs, mirror: mirror}
}

func (r *firestoreRepository) doc(id string) *firestore.DocumentRef {
	return r.fs.Collection(replica.UsersCollection).Doc(id)
}

// GetByID prefers the mirror and falls back to a direct read, since a freshly
// created profile may not have reached the snapshot stream yet.
func (r *firestoreRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	if p := r.mirror.UserByID(id); p != nil {
		return p, nil
	}
	snap, err := r.doc(id).Get(ctx)
	if err != nil {
		return nil, common.ErrNotFound.WithDetails("User profile not found.")
	}
	var p domain.Profile
	if err := snap.DataTo(&p); err != nil {
		return nil, err
	}
	p.ID = snap.Ref.ID
	return &p, nil
}

// FindByUsername queries the store directly; login correctness must not
// depend on mirror freshness.
func (r *firestoreRepository) FindByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	iter := r.fs.Collection(replica.UsersCollection).
		Where("username", "==", username).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, common.ErrUnknownUsername
	}
	if err != nil {
		return nil, err
	}
	var p domain.Profile
	if err := snap.DataTo(&p); err != nil {
		return nil, err
	}
	p.ID = snap.Ref.ID
	return &p, nil
}

func (r *firestoreRepository) List(_ context.Context) ([]domain.Profile, error) {
	return r.mirror.Users(), nil
}

func (r *firestoreRepository) Create(ctx context.Context, p *domain.Profile) error {
	_, err := r.doc(p.ID).Set(ctx, p)
	return err
}

// SetPurchasedCourses replaces the whole purchased array in one write, as the
// access toggle does. Two concurrent toggles can race; last write wins.
func (r *firestoreRepository) SetPurchasedCourses(ctx context.Context, id string, purchased []string) error {
	_, err := r.doc(id).Update(ctx, []firestore.Update{
		{Path: "purchasedCourses", Value: purchased},
	})
	return err
}

func (r *firestoreRepository) SetRole(ctx context.Context, id string, role domain.Role) error {
	_, err := r.doc(id).Update(ctx, []firestore.Update{
		{Path: "role", Value: role},
	})
	return err
}

// AddCompletedLesson is an idempotent set-add; re-marking an already
// completed lesson is a no-op in effect.
func (r *firestoreRepository) AddCompletedLesson(ctx context.Context, id, lessonID string) error {
	_, err := r.doc(id).Update(ctx, []firestore.Update{
		{Path: "completedLessons", Value: firestore.ArrayUnion(lessonID)},
	})
	return err
}
