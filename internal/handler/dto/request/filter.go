package request

import (
	"storefront/internal/domain/filter"
)

// UpdateFilterRequest is a partial update; omitted fields keep their value.
type UpdateFilterRequest struct {
	Category    *string `json:"category,omitempty"`
	SortBy      *string `json:"sort_by,omitempty" binding:"omitempty,oneof='' price-asc price-desc"`
	SearchQuery *string `json:"search_query,omitempty"`
}

func (r *UpdateFilterRequest) ToDomain() (filter.Patch, error) {
	patch := filter.Patch{
		Category:    r.Category,
		SearchQuery: r.SearchQuery,
	}
	if r.SortBy != nil {
		sortBy, err := filter.NewSortBy(*r.SortBy)
		if err != nil {
			return filter.Patch{}, err
		}
		patch.SortBy = &sortBy
	}
	return patch, nil
}
