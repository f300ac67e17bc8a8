package queries

import (
	"context"
)

type SnapshotQueries interface {
	Current(ctx context.Context) (*SnapshotView, error)
}

type snapshotQueriesImpl struct {
	store SnapshotReadStore
}

func NewSnapshotQueries(store SnapshotReadStore) SnapshotQueries {
	return &snapshotQueriesImpl{store: store}
}

func (q *snapshotQueriesImpl) Current(ctx context.Context) (*SnapshotView, error) {
	return q.store.Snapshot(ctx)
}
