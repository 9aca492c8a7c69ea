package course

import (
	"context"

	"cloud.google.com/go/firestore"

	"nxorax_backend/internal/common"
	"nxorax_backend/internal/domain"
	"nxorax_backend/internal/replica"
)

// Repository defines the data operations on courses. Lesson edits go through
// ReplaceLessons: the entire videos array is replaced atomically per write,
// so two concurrent lesson-list edits can race and one can silently clobber
// the other. That hazard is accepted, not mitigated.
type Repository interface {
	List(ctx context.Context) ([]domain.Course, error)
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	Create(ctx context.Context, c *domain.Course) error
	ReplaceLessons(ctx context.Context, id string, videos []domain.Lesson) error
	Delete(ctx context.Context, id string) error
}

type firestoreRepository struct {
	fs     *firestore.Client
	mirror *replica.Mirror
}

// NewFirestoreRepository creates the Firestore-backed course repository.
func NewFirestoreRepository(fs *firestore.Client, mirror *replica.Mirror) Repository {
	return &firestoreRepository{fs: fs, mirror: mirror}
}

func (r *firestoreRepository) doc(id string) *firestore.DocumentRef {
	return r.fs.Collection(replica.CoursesCollection).Doc(id)
}

func (r *firestoreRepository) List(_ context.Context) ([]domain.Course, error) {
	return r.mirror.Courses(), nil
}

func (r *firestoreRepository) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	if c := r.mirror.CourseByID(id); c != nil {
		return c, nil
	}
	snap, err := r.doc(id).Get(ctx)
	if err != nil {
		return nil, common.ErrNotFound.WithDetails("Course not found.")
	}
	var c domain.Course
	if err := snap.DataTo(&c); err != nil {
		return nil, err
	}
	c.ID = snap.Ref.ID
	return &c, nil
}

func (r *firestoreRepository) Create(ctx context.Context, c *domain.Course) error {
	_, err := r.doc(c.ID).Set(ctx, c)
	return err
}

func (r *firestoreRepository) ReplaceLessons(ctx context.Context, id string, videos []domain.Lesson) error {
	_, err := r.doc(id).Update(ctx, []firestore.Update{
		{Path: "videos", Value: videos},
	})
	return err
}

func (r *firestoreRepository) Delete(ctx context.Context, id string) error {
	_, err := r.doc(id).Delete(ctx)
	return err
}
