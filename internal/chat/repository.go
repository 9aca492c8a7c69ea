package chat

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"nxorax_backend/internal/domain"
)

// MessagesCollection is the community chat collection.
const MessagesCollection = "messages"

// Repository defines the data operations on chat messages.
type Repository interface {
	// ListLatest returns up to limit messages in ascending timestamp order.
	ListLatest(ctx context.Context, limit int) ([]domain.Message, error)
	Add(ctx context.Context, msg *domain.Message) error
	// DeleteBeyondLatest removes every message older than the newest keep
	// messages. Returns the number deleted.
	DeleteBeyondLatest(ctx context.Context, keep int) (int, error)
}

type firestoreRepository struct {
	fs *firestore.Client
}

// NewFirestoreRepository creates the Firestore-backed chat repository.
func NewFirestoreRepository(fs *firestore.Client) Repository {
	return &firestoreRepository{fs: fs}
}

func (r *firestoreRepository) ListLatest(ctx context.Context, limit int) ([]domain.Message, error) {
	iter := r.fs.Collection(MessagesCollection).
		OrderBy("timestamp", firestore.Asc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var msgs []domain.Message
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var m domain.Message
		if err := snap.DataTo(&m); err != nil {
			continue
		}
		m.ID = snap.Ref.ID
		msgs = append(msgs, m)
	}
	return msgs, nil
}

// Add lets the store assign the document id and the server timestamp.
func (r *firestoreRepository) Add(ctx context.Context, msg *domain.Message) error {
	ref, _, err := r.fs.Collection(MessagesCollection).Add(ctx, msg)
	if err != nil {
		return err
	}
	msg.ID = ref.ID
	return nil
}

func (r *firestoreRepository) DeleteBeyondLatest(ctx context.Context, keep int) (int, error) {
	iter := r.fs.Collection(MessagesCollection).
		OrderBy("timestamp", firestore.Desc).
		Offset(keep).
		Documents(ctx)
	defer iter.Stop()

	deleted := 0
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return deleted, err
		}
		if _, err := snap.Ref.Delete(ctx); err != nil {
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}
