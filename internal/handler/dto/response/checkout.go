package response

import (
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"
)

type QuoteResponse struct {
	SubtotalCents int64   `json:"subtotalCents"`
	DiscountCents int64   `json:"discountCents"`
	TotalCents    int64   `json:"totalCents"`
	CouponCode    *string `json:"couponCode,omitempty"`
}

type AppliedCouponResponse struct {
	Code             string `json:"code"`
	DiscountPercent  int    `json:"discountPercent"`
	MaxDiscountCents int64  `json:"maxDiscountCents"`
}

func FromQuoteView(view *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		SubtotalCents: view.SubtotalCents,
		DiscountCents: view.DiscountCents,
		TotalCents:    view.TotalCents,
		CouponCode:    view.CouponCode,
	}
}

func FromApplyCouponResult(result *commands.ApplyCouponResult) *AppliedCouponResponse {
	return &AppliedCouponResponse{
		Code:             result.Code,
		DiscountPercent:  result.DiscountPercent,
		MaxDiscountCents: result.MaxDiscountCents,
	}
}
