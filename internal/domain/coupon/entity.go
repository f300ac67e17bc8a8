package coupon

import (
	"storefront/internal/pkg/money"
)

// Rule is a named discount policy: a percentage off the cart total with an
// absolute cap on the discounted amount.
type Rule struct {
	code             Code
	discountPercent  int
	maxDiscountCents money.Cents
}

func NewRule(code string, discountPercent int, maxDiscountCents money.Cents) (Rule, error) {
	couponCode, err := NewCode(code)
	if err != nil {
		return Rule{}, err
	}
	if discountPercent < 0 || discountPercent > 100 {
		return Rule{}, ErrInvalidDiscountPercent
	}
	if maxDiscountCents < 0 {
		return Rule{}, ErrInvalidDiscountCap
	}
	return Rule{
		code:             couponCode,
		discountPercent:  discountPercent,
		maxDiscountCents: maxDiscountCents,
	}, nil
}

func (r Rule) Code() Code                    { return r.code }
func (r Rule) DiscountPercent() int          { return r.discountPercent }
func (r Rule) MaxDiscountCents() money.Cents { return r.maxDiscountCents }

// DiscountFor computes min(subtotal × percent/100, cap) in integer cents.
func (r Rule) DiscountFor(subtotal money.Cents) money.Cents {
	if subtotal <= 0 {
		return 0
	}
	raw := money.Cents(int64(subtotal) * int64(r.discountPercent) / 100)
	if raw > r.maxDiscountCents {
		return r.maxDiscountCents
	}
	return raw
}

// Applied records the single coupon in effect for the session, keeping the
// code exactly as the user typed it for display.
type Applied struct {
	typedCode string
	rule      Rule
}

func NewApplied(typedCode string, rule Rule) Applied {
	return Applied{typedCode: typedCode, rule: rule}
}

func (a Applied) TypedCode() string { return a.typedCode }
func (a Applied) Rule() Rule        { return a.rule }
