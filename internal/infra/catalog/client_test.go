//go:build unit

package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/infra"
	"storefront/internal/infra/catalog"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *catalog.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return catalog.NewClient(config.CatalogConfig{
		BaseURL: server.URL,
		Timeout: 2 * time.Second,
	})
}

func TestClientList(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "12", r.URL.Query().Get("limit"))
		assert.Equal(t, "24", r.URL.Query().Get("skip"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"products": [
				{"id": 1, "title": "Essence Mascara", "price": 9.99, "thumbnail": "t.png", "category": "beauty", "stock": 5}
			],
			"total": 194, "skip": 24, "limit": 12
		}`))
	}))

	page, err := client.List(context.Background(), 12, 24)
	require.NoError(t, err)

	assert.Equal(t, 194, page.Total)
	require.Len(t, page.Products, 1)
	p := page.Products[0]
	assert.Equal(t, int64(1), p.ID)
	// decimal prices are converted to cents at the boundary
	assert.Equal(t, int64(9_99), p.PriceCents)
	assert.InDelta(t, 9.99, p.Price, 1e-9)
	assert.Equal(t, "beauty", p.Category)
}

func TestClientCategories(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/categories", r.URL.Path)
		_, _ = w.Write([]byte(`[{"slug": "beauty", "name": "Beauty"}, {"slug": "laptops", "name": "Laptops"}]`))
	}))

	categories, err := client.Categories(context.Background())
	require.NoError(t, err)

	require.Len(t, categories, 2)
	assert.Equal(t, "beauty", categories[0].Slug)
	assert.Equal(t, "Laptops", categories[1].Name)
}

func TestClientByCategory(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/category/mens-watches", r.URL.Path)
		_, _ = w.Write([]byte(`{"products": [{"id": 7, "title": "Watch", "price": 120}], "total": 1, "skip": 0, "limit": 1}`))
	}))

	products, err := client.ByCategory(context.Background(), "mens-watches")
	require.NoError(t, err)

	require.Len(t, products, 1)
	assert.Equal(t, int64(120_00), products[0].PriceCents)
}

func TestClientSearch(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/search", r.URL.Path)
		assert.Equal(t, "red lipstick", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`{"products": [], "total": 0, "skip": 0, "limit": 0}`))
	}))

	products, err := client.Search(context.Background(), "red lipstick")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestClientByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/products/7", r.URL.Path)
			_, _ = w.Write([]byte(`{"id": 7, "title": "Watch", "price": 19.98, "stock": 3}`))
		}))

		view, err := client.ByID(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, int64(19_98), view.PriceCents)
	})

	t.Run("error: 404 maps to product not found", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		_, err := client.ByID(context.Background(), 9999)
		require.ErrorIs(t, err, errs.ErrProductNotFound)
	})
}

func TestClientUpstreamFailures(t *testing.T) {
	t.Run("5xx reports an upstream failure", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))

		_, err := client.List(context.Background(), 12, 0)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindUpstreamFailure))
	})

	t.Run("malformed body reports an upstream failure", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html>not json</html>"))
		}))

		_, err := client.List(context.Background(), 12, 0)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindUpstreamFailure))
	})
}
