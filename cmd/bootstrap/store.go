package bootstrap

import (
	"context"
	"log/slog"

	"storefront/internal/infra/persistence"
	"storefront/internal/infra/state"
	"storefront/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewSnapshotStore,
		NewStateContainer,
	),
)

func NewSnapshotStore(cfg config.Config) *persistence.SnapshotStore {
	return persistence.NewSnapshotStore(cfg.Snapshot)
}

// NewStateContainer wires the in-memory state container to its durable
// snapshot: the last snapshot is restored on startup, every subsequent
// mutation is written back, and a final snapshot is taken on shutdown.
func NewStateContainer(lc fx.Lifecycle, store *persistence.SnapshotStore, logger *slog.Logger) *state.Container {
	container := state.NewContainer()

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			snap, found, err := store.Load(ctx)
			if err != nil {
				// 壊れたスナップショットは空の状態で起動する
				logger.Warn("スナップショットの読み込みに失敗しました", "error", err)
			} else if found {
				if err := container.Restore(*snap); err != nil {
					logger.Warn("スナップショットの復元に失敗しました", "error", err)
				} else {
					logger.Info("スナップショットを復元しました")
				}
			}

			container.Subscribe(func(snap state.Snapshot) {
				if err := store.Save(context.Background(), snap); err != nil {
					logger.Warn("スナップショットの保存に失敗しました", "error", err)
				}
			})
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return store.Save(ctx, container.Export())
		},
	})

	return container
}
