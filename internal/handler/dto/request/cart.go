package request

import (
	"storefront/internal/domain/product"
	"storefront/internal/pkg/money"
)

// AddItemRequest carries the already-fetched product snapshot the UI acted
// on; the engine never fetches catalog data on its own.
type AddItemRequest struct {
	ID        int64   `json:"id" binding:"required,gt=0"`
	Title     string  `json:"title" binding:"required"`
	Price     float64 `json:"price" binding:"gte=0"`
	Thumbnail string  `json:"thumbnail,omitempty"`
	Category  string  `json:"category,omitempty"`
	Stock     int32   `json:"stock,omitempty"`
}

func (r *AddItemRequest) ToDomain() product.Snapshot {
	return product.Snapshot{
		ID:         r.ID,
		Title:      r.Title,
		PriceCents: money.FromFloat(r.Price),
		Thumbnail:  r.Thumbnail,
		Category:   r.Category,
		Stock:      r.Stock,
	}
}

// Quantities below 1 are rejected here as well as in the domain; a zero must
// go through the remove endpoint instead.
type SetQuantityRequest struct {
	Quantity int64 `json:"quantity" binding:"required,min=1"`
}
