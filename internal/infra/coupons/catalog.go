package coupons

import (
	"context"

	"storefront/internal/domain/coupon"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/money"
)

// The shipped coupon set. Caps are sized so a discount can never push a
// plausible total below zero.
var shippedRules = []struct {
	code     string
	percent  int
	capCents money.Cents
}{
	{"RAM50", 50, 100_00},
	{"SITA40", 40, 80_00},
	{"HANUMAN30", 30, 60_00},
	{"RAVAN20", 20, 40_00},
	{"LAXMAN10", 10, 20_00},
}

// Catalog is the static, read-only coupon lookup loaded at process start.
type Catalog struct {
	rules map[coupon.Code]coupon.Rule
}

func NewCatalog() (*Catalog, error) {
	rules := make(map[coupon.Code]coupon.Rule, len(shippedRules))
	for _, r := range shippedRules {
		rule, err := coupon.NewRule(r.code, r.percent, r.capCents)
		if err != nil {
			return nil, errs.Wrap(err, "invalid shipped coupon rule")
		}
		rules[rule.Code()] = rule
	}
	return &Catalog{rules: rules}, nil
}

// FindByCode implements commands.CouponReadStore. Unknown codes report
// errs.ErrCouponNotFound; lookup never hard-fails.
func (c *Catalog) FindByCode(_ context.Context, code coupon.Code) (coupon.Rule, error) {
	rule, ok := c.rules[code]
	if !ok {
		return coupon.Rule{}, errs.ErrCouponNotFound
	}
	return rule, nil
}
