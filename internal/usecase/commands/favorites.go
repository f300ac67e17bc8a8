package commands

import (
	"context"

	"storefront/internal/domain/product"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"
)

type FavoriteCommands interface {
	Add(ctx context.Context, p product.Snapshot) error
	Remove(ctx context.Context, productID int64) error
	Clear(ctx context.Context) error
}

type favoriteCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewFavoriteCommands(uow shared.UnitOfWork) FavoriteCommands {
	return &favoriteCommandsImpl{uow: uow}
}

func (f *favoriteCommandsImpl) Add(ctx context.Context, p product.Snapshot) error {
	return f.uow.Within(ctx, func(_ context.Context, tx shared.Tx) error {
		if err := tx.Favorites().Add(p); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		return nil
	})
}

func (f *favoriteCommandsImpl) Remove(ctx context.Context, productID int64) error {
	return f.uow.Within(ctx, func(_ context.Context, tx shared.Tx) error {
		tx.Favorites().Remove(productID)
		return nil
	})
}

func (f *favoriteCommandsImpl) Clear(ctx context.Context) error {
	return f.uow.Within(ctx, func(_ context.Context, tx shared.Tx) error {
		tx.Favorites().Clear()
		return nil
	})
}
