package response

import (
	"github.com/jinzhu/copier"

	"storefront/internal/usecase/queries"
)

type ProductResponse struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	PriceCents int64   `json:"priceCents"`
	Price      float64 `json:"price"`
	Thumbnail  string  `json:"thumbnail,omitempty"`
	Category   string  `json:"category,omitempty"`
	Stock      int32   `json:"stock,omitempty"`
}

type ProductPageResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
	Skip     int               `json:"skip"`
	Limit    int               `json:"limit"`
}

type CategoryResponse struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

func FromProductView(view *queries.ProductView) (*ProductResponse, error) {
	var resp ProductResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromProductPageView(view *queries.ProductPageView) (*ProductPageResponse, error) {
	var resp ProductPageResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromCategoryViews(views []queries.CategoryView) ([]CategoryResponse, error) {
	resp := make([]CategoryResponse, 0, len(views))
	if err := copier.Copy(&resp, views); err != nil {
		return nil, err
	}
	return resp, nil
}
