package queries

import (
	"context"

	"storefront/internal/domain/coupon"
	"storefront/internal/pkg/money"
)

// PricingReadStore exposes the two inputs of the pricing calculation: the
// cart total and the coupon currently in effect, if any.
type PricingReadStore interface {
	CartTotalCents(ctx context.Context) (money.Cents, error)
	AppliedCoupon(ctx context.Context) (coupon.Applied, bool, error)
}

type PricingQueries interface {
	Quote(ctx context.Context) (*QuoteView, error)
}

type pricingQueriesImpl struct {
	store PricingReadStore
}

func NewPricingQueries(store PricingReadStore) PricingQueries {
	return &pricingQueriesImpl{store: store}
}

// Quote derives the checkout totals from a cart snapshot and the applied
// coupon. It is a pure read: nothing is cached independently of its inputs.
func (q *pricingQueriesImpl) Quote(ctx context.Context) (*QuoteView, error) {
	subtotal, err := q.store.CartTotalCents(ctx)
	if err != nil {
		return nil, err
	}

	applied, ok, err := q.store.AppliedCoupon(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &QuoteView{
			SubtotalCents: int64(subtotal),
			DiscountCents: 0,
			TotalCents:    int64(subtotal),
		}, nil
	}

	discount := applied.Rule().DiscountFor(subtotal)
	code := applied.TypedCode()
	return &QuoteView{
		SubtotalCents: int64(subtotal),
		DiscountCents: int64(discount),
		TotalCents:    int64(subtotal - discount),
		CouponCode:    &code,
	}, nil
}
