package product

import (
	"errors"

	"storefront/internal/pkg/money"
)

var (
	ErrInvalidProductID = errors.New("product id must be positive")
	ErrNegativePrice    = errors.New("product price cannot be negative")
)

// Snapshot is a read-only copy of a catalog product as received from the
// upstream catalog. The engine never mutates it; cart and favorites keep the
// snapshot as it was at the moment the user acted on it.
type Snapshot struct {
	ID         int64       `json:"id"`
	Title      string      `json:"title"`
	PriceCents money.Cents `json:"price_cents"`
	Thumbnail  string      `json:"thumbnail,omitempty"`
	Category   string      `json:"category,omitempty"`
	Stock      int32       `json:"stock,omitempty"`
}

func (s Snapshot) Validate() error {
	if s.ID <= 0 {
		return ErrInvalidProductID
	}
	if s.PriceCents < 0 {
		return ErrNegativePrice
	}
	return nil
}
