package queries

import (
	"context"
	"sort"

	"storefront/internal/domain/filter"
)

const defaultPageLimit = 12

// ProductSource is the upstream product catalog collaborator. The engine
// never fetches eagerly; queries call it on demand and hand snapshots to the
// caller.
type ProductSource interface {
	List(ctx context.Context, limit, skip int) (*ProductPageView, error)
	Categories(ctx context.Context) ([]CategoryView, error)
	ByCategory(ctx context.Context, category string) ([]ProductView, error)
	Search(ctx context.Context, query string) ([]ProductView, error)
	ByID(ctx context.Context, id int64) (*ProductView, error)
}

// FilterReadStore reads the current browsing selection.
type FilterReadStore interface {
	Selection(ctx context.Context) (filter.Selection, error)
}

type ProductQueries interface {
	Browse(ctx context.Context, limit, skip int) (*ProductPageView, error)
	Categories(ctx context.Context) ([]CategoryView, error)
	ByID(ctx context.Context, id int64) (*ProductView, error)
}

type productQueriesImpl struct {
	source  ProductSource
	filters FilterReadStore
}

func NewProductQueries(source ProductSource, filters FilterReadStore) ProductQueries {
	return &productQueriesImpl{source: source, filters: filters}
}

// Browse lists products honoring the stored selection: an active search
// query wins over a category filter, which wins over the plain paginated
// listing. Price sorting is applied over the fetched page.
func (q *productQueriesImpl) Browse(ctx context.Context, limit, skip int) (*ProductPageView, error) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if skip < 0 {
		skip = 0
	}

	sel, err := q.filters.Selection(ctx)
	if err != nil {
		return nil, err
	}

	var page *ProductPageView
	switch {
	case sel.SearchQuery != "":
		products, err := q.source.Search(ctx, sel.SearchQuery)
		if err != nil {
			return nil, err
		}
		page = &ProductPageView{Products: products, Total: len(products), Skip: 0, Limit: len(products)}
	case sel.Category != "":
		products, err := q.source.ByCategory(ctx, sel.Category)
		if err != nil {
			return nil, err
		}
		page = &ProductPageView{Products: products, Total: len(products), Skip: 0, Limit: len(products)}
	default:
		page, err = q.source.List(ctx, limit, skip)
		if err != nil {
			return nil, err
		}
	}

	sortProducts(page.Products, sel.SortBy)
	return page, nil
}

func (q *productQueriesImpl) Categories(ctx context.Context) ([]CategoryView, error) {
	return q.source.Categories(ctx)
}

func (q *productQueriesImpl) ByID(ctx context.Context, id int64) (*ProductView, error) {
	return q.source.ByID(ctx, id)
}

func sortProducts(products []ProductView, by filter.SortBy) {
	switch by {
	case filter.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].PriceCents < products[j].PriceCents
		})
	case filter.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].PriceCents > products[j].PriceCents
		})
	}
}
