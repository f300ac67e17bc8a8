package commands

import (
	"context"

	"storefront/internal/domain/coupon"
)

// CouponReadStore looks up coupon rules by canonical code. Misses are
// reported with errs.ErrCouponNotFound, never as a hard failure.
type CouponReadStore interface {
	FindByCode(ctx context.Context, code coupon.Code) (coupon.Rule, error)
}
