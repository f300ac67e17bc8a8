package queries

import (
	"context"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ProductView struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	PriceCents int64   `json:"price_cents"`
	Price      float64 `json:"price"`
	Thumbnail  string  `json:"thumbnail,omitempty"`
	Category   string  `json:"category,omitempty"`
	Stock      int32   `json:"stock,omitempty"`
}

type LineItemView struct {
	Product       ProductView `json:"product"`
	Quantity      int64       `json:"quantity"`
	SubtotalCents int64       `json:"subtotal_cents"`
}

type CartView struct {
	Items      []LineItemView `json:"items"`
	TotalCents int64          `json:"total_cents"`
}

type IdentityView struct {
	SessionID       uuid.UUID `json:"session_id"`
	Username        string    `json:"username"`
	Token           string    `json:"token"`
	IsAuthenticated bool      `json:"is_authenticated"`
}

type FilterView struct {
	Category    string `json:"category"`
	SortBy      string `json:"sort_by"`
	SearchQuery string `json:"search_query"`
}

// SnapshotView is the complete readable state at one instant: what the UI
// renders and what the persistence adapter stores.
type SnapshotView struct {
	Auth      *IdentityView `json:"auth,omitempty"`
	Cart      CartView      `json:"cart"`
	Filter    FilterView    `json:"filter"`
	Favorites []ProductView `json:"favorites"`
}

type QuoteView struct {
	SubtotalCents int64   `json:"subtotal_cents"`
	DiscountCents int64   `json:"discount_cents"`
	TotalCents    int64   `json:"total_cents"`
	CouponCode    *string `json:"coupon_code,omitempty"`
}

type CategoryView struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type ProductPageView struct {
	Products []ProductView `json:"products"`
	Total    int           `json:"total"`
	Skip     int           `json:"skip"`
	Limit    int           `json:"limit"`
}

// SnapshotReadStore reads the current state without mutating it.
type SnapshotReadStore interface {
	Snapshot(ctx context.Context) (*SnapshotView, error)
}
