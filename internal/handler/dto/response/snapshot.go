package response

import (
	"storefront/internal/usecase/queries"
)

type FilterResponse struct {
	Category    string `json:"category"`
	SortBy      string `json:"sortBy"`
	SearchQuery string `json:"searchQuery"`
}

type SnapshotResponse struct {
	Auth      *IdentityResponse `json:"auth,omitempty"`
	Cart      CartResponse      `json:"cart"`
	Filter    FilterResponse    `json:"filter"`
	Favorites []ProductResponse `json:"favorites"`
}

func FromSnapshotView(view *queries.SnapshotView) (*SnapshotResponse, error) {
	cart, err := FromCartView(&view.Cart)
	if err != nil {
		return nil, err
	}

	favorites := make([]ProductResponse, 0, len(view.Favorites))
	for i := range view.Favorites {
		p, perr := FromProductView(&view.Favorites[i])
		if perr != nil {
			return nil, perr
		}
		favorites = append(favorites, *p)
	}

	resp := &SnapshotResponse{
		Cart: *cart,
		Filter: FilterResponse{
			Category:    view.Filter.Category,
			SortBy:      view.Filter.SortBy,
			SearchQuery: view.Filter.SearchQuery,
		},
		Favorites: favorites,
	}
	if view.Auth != nil {
		resp.Auth = FromIdentityView(view.Auth)
	}
	return resp, nil
}
