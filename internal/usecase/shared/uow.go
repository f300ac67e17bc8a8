package shared

import (
	"context"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/coupon"
	"storefront/internal/domain/favorites"
	"storefront/internal/domain/filter"
	"storefront/internal/domain/session"
)

// UnitOfWork serializes mutations against the process-wide state container.
// Each Within call is a single indivisible state transition: concurrent
// writers are queued behind it, and subscribers observe the state only after
// fn has returned without error.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx is the mutable view of the container handed to a command while it holds
// the mutation lock.
type Tx interface {
	Cart() *cart.Ledger
	Favorites() *favorites.Set

	// Identity returns nil while the session is anonymous.
	Identity() *session.Identity
	SetIdentity(identity *session.Identity)
	ClearIdentity()

	AppliedCoupon() (coupon.Applied, bool)
	SetAppliedCoupon(applied coupon.Applied)
	ClearAppliedCoupon()

	Selection() filter.Selection
	SetSelection(sel filter.Selection)
}
