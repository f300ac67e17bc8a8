package commands

import (
	"context"

	"storefront/internal/domain/filter"
	"storefront/internal/usecase/shared"
)

type FilterCommands interface {
	// Set merges the patch into the current selection. Last write wins.
	Set(ctx context.Context, patch filter.Patch) error
}

type filterCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewFilterCommands(uow shared.UnitOfWork) FilterCommands {
	return &filterCommandsImpl{uow: uow}
}

func (f *filterCommandsImpl) Set(ctx context.Context, patch filter.Patch) error {
	return f.uow.Within(ctx, func(_ context.Context, tx shared.Tx) error {
		tx.SetSelection(tx.Selection().Apply(patch))
		return nil
	})
}
