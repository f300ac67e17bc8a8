package state

import (
	"github.com/google/uuid"
)

// Snapshot is the durable form of the container state: a plain structured
// record of {auth, cart, filter, favorites} with no cyclic references,
// round-trippable through JSON. The cached cart total is deliberately not
// stored; Restore recomputes it from the line items.
type Snapshot struct {
	Auth      *AuthRecord     `json:"auth,omitempty"`
	Cart      CartRecord      `json:"cart"`
	Filter    FilterRecord    `json:"filter"`
	Favorites []ProductRecord `json:"favorites"`
}

type AuthRecord struct {
	SessionID uuid.UUID `json:"session_id"`
	Username  string    `json:"username"`
	Token     string    `json:"token"`
}

type ProductRecord struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	PriceCents int64  `json:"price_cents"`
	Thumbnail  string `json:"thumbnail,omitempty"`
	Category   string `json:"category,omitempty"`
	Stock      int32  `json:"stock,omitempty"`
}

type LineRecord struct {
	Product  ProductRecord `json:"product"`
	Quantity int64         `json:"quantity"`
}

type CartRecord struct {
	Items []LineRecord `json:"items"`
}

type FilterRecord struct {
	Category    string `json:"category"`
	SortBy      string `json:"sort_by"`
	SearchQuery string `json:"search_query"`
}
