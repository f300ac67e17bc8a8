package response

import (
	"github.com/jinzhu/copier"

	"storefront/internal/usecase/queries"
)

type LineItemResponse struct {
	Product       ProductResponse `json:"product"`
	Quantity      int64           `json:"quantity"`
	SubtotalCents int64           `json:"subtotalCents"`
}

type CartResponse struct {
	Items      []LineItemResponse `json:"items"`
	TotalCents int64              `json:"totalCents"`
}

func FromCartView(view *queries.CartView) (*CartResponse, error) {
	var resp CartResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	if resp.Items == nil {
		resp.Items = []LineItemResponse{}
	}
	return &resp, nil
}
