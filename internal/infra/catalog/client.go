package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"storefront/internal/infra"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/money"
	"storefront/internal/usecase/queries"
)

// Client talks to the upstream product catalog API (dummyjson-compatible).
// Prices arrive as decimals and are converted to cents at this boundary so
// everything past it runs on integer arithmetic.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.CatalogConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type productPayload struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Thumbnail string  `json:"thumbnail"`
	Category  string  `json:"category"`
	Stock     int32   `json:"stock"`
}

type productListPayload struct {
	Products []productPayload `json:"products"`
	Total    int              `json:"total"`
	Skip     int              `json:"skip"`
	Limit    int              `json:"limit"`
}

type categoryPayload struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

func (c *Client) List(ctx context.Context, limit, skip int) (*queries.ProductPageView, error) {
	endpoint := fmt.Sprintf("%s/products?limit=%d&skip=%d", c.baseURL, limit, skip)

	var payload productListPayload
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	return &queries.ProductPageView{
		Products: toProductViews(payload.Products),
		Total:    payload.Total,
		Skip:     payload.Skip,
		Limit:    payload.Limit,
	}, nil
}

func (c *Client) Categories(ctx context.Context) ([]queries.CategoryView, error) {
	endpoint := c.baseURL + "/products/categories"

	var payload []categoryPayload
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	views := make([]queries.CategoryView, 0, len(payload))
	for _, cat := range payload {
		views = append(views, queries.CategoryView{Slug: cat.Slug, Name: cat.Name})
	}
	return views, nil
}

func (c *Client) ByCategory(ctx context.Context, category string) ([]queries.ProductView, error) {
	endpoint := c.baseURL + "/products/category/" + url.PathEscape(category)

	var payload productListPayload
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	return toProductViews(payload.Products), nil
}

func (c *Client) Search(ctx context.Context, query string) ([]queries.ProductView, error) {
	endpoint := c.baseURL + "/products/search?q=" + url.QueryEscape(query)

	var payload productListPayload
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	return toProductViews(payload.Products), nil
}

func (c *Client) ByID(ctx context.Context, id int64) (*queries.ProductView, error) {
	endpoint := c.baseURL + "/products/" + strconv.FormatInt(id, 10)

	var payload productPayload
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrProductNotFound)
		}
		return nil, err
	}
	view := toProductView(payload)
	return &view, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return infra.WrapAdapterErr("failed to build catalog request", err, infra.KindUpstreamFailure)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return infra.WrapAdapterErr("catalog request failed", err, infra.KindUpstreamFailure)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return infra.WrapAdapterErr("catalog resource not found", errs.New(resp.Status), infra.KindNotFound)
	case resp.StatusCode != http.StatusOK:
		return infra.WrapAdapterErr("catalog returned unexpected status", errs.New(resp.Status), infra.KindUpstreamFailure)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return infra.WrapAdapterErr("failed to decode catalog response", err, infra.KindUpstreamFailure)
	}
	return nil
}

func toProductViews(payloads []productPayload) []queries.ProductView {
	views := make([]queries.ProductView, 0, len(payloads))
	for _, p := range payloads {
		views = append(views, toProductView(p))
	}
	return views
}

func toProductView(p productPayload) queries.ProductView {
	cents := money.FromFloat(p.Price)
	return queries.ProductView{
		ID:         p.ID,
		Title:      p.Title,
		PriceCents: int64(cents),
		Price:      cents.Float(),
		Thumbnail:  p.Thumbnail,
		Category:   p.Category,
		Stock:      p.Stock,
	}
}
