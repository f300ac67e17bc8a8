package persistence

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"storefront/internal/infra"
	"storefront/internal/infra/state"
	"storefront/internal/pkg/config"
)

// SnapshotStore persists container snapshots to a single JSON file keyed by
// namespace. Writes go through a temp file and rename so a crash mid-write
// never leaves a torn snapshot behind.
type SnapshotStore struct {
	dir       string
	namespace string
}

func NewSnapshotStore(cfg config.SnapshotConfig) *SnapshotStore {
	return &SnapshotStore{
		dir:       cfg.Dir,
		namespace: cfg.Namespace,
	}
}

func (s *SnapshotStore) path() string {
	return filepath.Join(s.dir, s.namespace+".json")
}

func (s *SnapshotStore) Save(_ context.Context, snap state.Snapshot) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return infra.WrapAdapterErr("failed to create snapshot dir", err, infra.KindIOFailure)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return infra.WrapAdapterErr("failed to encode snapshot", err, infra.KindIOFailure)
	}

	tmp := s.path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return infra.WrapAdapterErr("failed to write snapshot", err, infra.KindIOFailure)
	}
	if err := os.Rename(tmp, s.path()); err != nil {
		return infra.WrapAdapterErr("failed to replace snapshot", err, infra.KindIOFailure)
	}
	return nil
}

// Load returns (nil, false, nil) when no snapshot exists yet; a missing file
// is the normal first-run state, not an error.
func (s *SnapshotStore) Load(_ context.Context) (*state.Snapshot, bool, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, infra.WrapAdapterErr("failed to read snapshot", err, infra.KindIOFailure)
	}

	var snap state.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, false, infra.WrapAdapterErr("failed to decode snapshot", err, infra.KindCorruptSnapshot)
	}
	return &snap, true, nil
}
