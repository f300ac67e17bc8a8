package filter

import (
	"errors"
)

var ErrInvalidSortBy = errors.New("invalid sort order")

type SortBy string

const (
	SortNone      SortBy = ""
	SortPriceAsc  SortBy = "price-asc"
	SortPriceDesc SortBy = "price-desc"
)

func NewSortBy(s string) (SortBy, error) {
	switch SortBy(s) {
	case SortNone, SortPriceAsc, SortPriceDesc:
		return SortBy(s), nil
	default:
		return SortNone, ErrInvalidSortBy
	}
}

// Selection is the user's current browsing selection. Pure value holder,
// last write wins.
type Selection struct {
	Category    string `json:"category"`
	SortBy      SortBy `json:"sort_by"`
	SearchQuery string `json:"search_query"`
}

// Patch carries a partial update; nil fields keep their current value.
type Patch struct {
	Category    *string
	SortBy      *SortBy
	SearchQuery *string
}

func (s Selection) Apply(p Patch) Selection {
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.SortBy != nil {
		s.SortBy = *p.SortBy
	}
	if p.SearchQuery != nil {
		s.SearchQuery = *p.SearchQuery
	}
	return s
}
