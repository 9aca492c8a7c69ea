// Package store adapts Firestore's snapshot listeners into an explicit
// observable abstraction: subscribe with a callback, get back an unsubscribe
// handle. Every delivery replaces the previous snapshot wholesale; there is
// no diffing or merging against prior state.
package store

import (
	"context"
	"sync"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Unsubscribe tears down a live subscription. Safe to call more than once.
type Unsubscribe func()

// Snapshot pairs a decoded document with its id.
type Snapshot[T any] struct {
	ID   string
	Data T
}

// WatchCollection subscribes to a query and invokes onSnapshot with the full
// decoded result set every time the backend's state changes. Documents that
// fail to decode are logged and skipped; the rest of the snapshot still
// delivers.
func WatchCollection[T any](ctx context.Context, q firestore.Query, logger *zap.Logger, onSnapshot func([]Snapshot[T])) Unsubscribe {
	ctx, cancel := context.WithCancel(ctx)

	go func() {
		it := q.Snapshots(ctx)
		defer it.Stop()
		for {
			snap, err := it.Next()
			if err != nil {
				if ctx.Err() != nil || status.Code(err) == codes.Canceled {
					return
				}
				logger.Error("Collection watch failed", zap.Error(err))
				return
			}

			var docs []Snapshot[T]
			iter := snap.Documents
			for {
				doc, err := iter.Next()
				if err == iterator.Done {
					break
				}
				if err != nil {
					logger.Warn("Snapshot document iteration failed", zap.Error(err))
					break
				}
				var v T
				if err := doc.DataTo(&v); err != nil {
					logger.Warn("Skipping undecodable document",
						zap.String("id", doc.Ref.ID), zap.Error(err))
					continue
				}
				docs = append(docs, Snapshot[T]{ID: doc.Ref.ID, Data: v})
			}
			onSnapshot(docs)
		}
	}()

	var once sync.Once
	return func() { once.Do(cancel) }
}

// WatchDocument subscribes to a single document. onSnapshot receives the
// decoded document and whether it exists; a missing document still delivers
// (with exists == false) so consumers can reset derived state.
func WatchDocument[T any](ctx context.Context, ref *firestore.DocumentRef, logger *zap.Logger, onSnapshot func(data T, exists bool)) Unsubscribe {
	ctx, cancel := context.WithCancel(ctx)

	go func() {
		it := ref.Snapshots(ctx)
		defer it.Stop()
		for {
			doc, err := it.Next()
			if err != nil {
				if ctx.Err() != nil || status.Code(err) == codes.Canceled {
					return
				}
				logger.Error("Document watch failed", zap.String("path", ref.Path), zap.Error(err))
				return
			}
			var v T
			if !doc.Exists() {
				onSnapshot(v, false)
				continue
			}
			if err := doc.DataTo(&v); err != nil {
				logger.Warn("Skipping undecodable document", zap.String("path", ref.Path), zap.Error(err))
				continue
			}
			onSnapshot(v, true)
		}
	}()

	var once sync.Once
	return func() { once.Do(cancel) }
}
