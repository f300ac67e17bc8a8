package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Coupon errors
	ErrCouponNotFound = errors.New("coupon not found")
	ErrInvalidCoupon  = errors.New("invalid coupon")

	// Cart errors
	ErrItemNotInCart   = errors.New("item not in cart")
	ErrInvalidQuantity = errors.New("invalid quantity")

	// Catalog errors
	ErrProductNotFound = errors.New("product not found")

	// Session errors
	ErrNotAuthenticated = errors.New("not authenticated")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
