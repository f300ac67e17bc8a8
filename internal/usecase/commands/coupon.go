package commands

import (
	"context"
	"errors"

	"storefront/internal/domain/coupon"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"
)

type ApplyCouponResult struct {
	Code             string
	DiscountPercent  int
	MaxDiscountCents int64
}

type CouponCommands interface {
	// Apply looks the typed code up in the catalog and, on a hit, makes it
	// the session's single applied coupon. On a miss nothing changes: a
	// previously applied coupon stays in effect and only the error is
	// reported.
	Apply(ctx context.Context, typedCode string) (*ApplyCouponResult, error)
	// Remove clears the applied coupon unconditionally; it always succeeds.
	Remove(ctx context.Context) error
}

type couponCommandsImpl struct {
	uow     shared.UnitOfWork
	catalog CouponReadStore
}

func NewCouponCommands(uow shared.UnitOfWork, catalog CouponReadStore) CouponCommands {
	return &couponCommandsImpl{uow: uow, catalog: catalog}
}

func (c *couponCommandsImpl) Apply(ctx context.Context, typedCode string) (*ApplyCouponResult, error) {
	code, err := coupon.NewCode(typedCode)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCoupon)
	}

	rule, err := c.catalog.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, errs.ErrCouponNotFound) {
			return nil, errs.Mark(err, errs.ErrInvalidCoupon)
		}
		return nil, err
	}

	err = c.uow.Within(ctx, func(_ context.Context, tx shared.Tx) error {
		tx.SetAppliedCoupon(coupon.NewApplied(typedCode, rule))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ApplyCouponResult{
		Code:             rule.Code().String(),
		DiscountPercent:  rule.DiscountPercent(),
		MaxDiscountCents: int64(rule.MaxDiscountCents()),
	}, nil
}

func (c *couponCommandsImpl) Remove(ctx context.Context) error {
	return c.uow.Within(ctx, func(_ context.Context, tx shared.Tx) error {
		tx.ClearAppliedCoupon()
		return nil
	})
}
