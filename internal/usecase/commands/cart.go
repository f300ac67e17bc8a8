package commands

import (
	"context"

	"storefront/internal/domain/product"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"
)

type CartCommands interface {
	// AddItem inserts one unit, incrementing the line when the product is
	// already in the cart. The engine never rejects a repeated add; whether
	// a second click is allowed is the caller's call.
	AddItem(ctx context.Context, p product.Snapshot) error
	RemoveItem(ctx context.Context, productID int64) error
	SetQuantity(ctx context.Context, productID int64, quantity int64) error
	Clear(ctx context.Context) error
}

type cartCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCartCommands(uow shared.UnitOfWork) CartCommands {
	return &cartCommandsImpl{uow: uow}
}

func (c *cartCommandsImpl) AddItem(ctx context.Context, p product.Snapshot) error {
	return c.uow.Within(ctx, func(_ context.Context, tx shared.Tx) error {
		if err := tx.Cart().Add(p); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		return nil
	})
}

// RemoveItem deletes the whole line. Absent products are a no-op so UI code
// never has to guard a stale remove.
func (c *cartCommandsImpl) RemoveItem(ctx context.Context, productID int64) error {
	return c.uow.Within(ctx, func(_ context.Context, tx shared.Tx) error {
		tx.Cart().Remove(productID)
		return nil
	})
}

func (c *cartCommandsImpl) SetQuantity(ctx context.Context, productID int64, quantity int64) error {
	return c.uow.Within(ctx, func(_ context.Context, tx shared.Tx) error {
		if err := tx.Cart().SetQuantity(productID, quantity); err != nil {
			return errs.Mark(err, errs.ErrInvalidQuantity)
		}
		return nil
	})
}

func (c *cartCommandsImpl) Clear(ctx context.Context) error {
	return c.uow.Within(ctx, func(_ context.Context, tx shared.Tx) error {
		tx.Cart().Clear()
		return nil
	})
}
