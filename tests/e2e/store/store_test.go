//go:build e2e

package store_test

import (
	"net/http"
	"testing"

	resdto "storefront/internal/handler/dto/response"
	"storefront/tests/common/builder"
	"storefront/tests/common/httptest"
	"storefront/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	cartURL      = "/api/cart"
	cartItemsURL = "/api/cart/items"
	favoritesURL = "/api/favorites"
	filterURL    = "/api/filter"
	productsURL  = "/api/products"
	couponURL    = "/api/checkout/coupon"
	quoteURL     = "/api/checkout/quote"
)

type storeSuite struct {
	suite.Suite
	server *e2e.TestServer
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(storeSuite))
}

func (s *storeSuite) SetupTest() {
	s.server = e2e.NewTestServer(s.T(), e2e.CatalogStub())
}

func (s *storeSuite) TestShoppingJourney() {
	t := s.T()
	mascara := builder.NewProductBuilder().BuildDTO()
	palette := builder.NewProductBuilder().
		WithID(2).WithTitle("Eyeshadow Palette with Mirror").WithPriceCents(19_99).
		BuildDTO()

	// カートに2商品を追加
	w := httptest.PerformRequest(t, s.server.Engine, http.MethodPost, cartItemsURL, mascara, "")
	var cart resdto.CartResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &cart)
	require.Equal(t, int64(9_99), cart.TotalCents)

	w = httptest.PerformRequest(t, s.server.Engine, http.MethodPost, cartItemsURL, palette, "")
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &cart)
	require.Len(t, cart.Items, 2)
	require.Equal(t, int64(29_98), cart.TotalCents)

	// 数量を変更
	w = httptest.PerformRequest(t, s.server.Engine, http.MethodPut, cartItemsURL+"/1", map[string]any{"quantity": 3}, "")
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &cart)
	require.Equal(t, int64(49_95), cart.TotalCents)

	// クーポンを適用して見積もりを確認
	w = httptest.PerformRequest(t, s.server.Engine, http.MethodPost, couponURL, map[string]any{"code": "laxman10"}, "")
	var applied resdto.AppliedCouponResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &applied)
	require.Equal(t, "LAXMAN10", applied.Code)

	w = httptest.PerformRequest(t, s.server.Engine, http.MethodGet, quoteURL, nil, "")
	var quote resdto.QuoteResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &quote)
	require.Equal(t, int64(49_95), quote.SubtotalCents)
	require.Equal(t, int64(4_99), quote.DiscountCents)
	require.Equal(t, int64(44_96), quote.TotalCents)
	require.NotNil(t, quote.CouponCode)
	require.Equal(t, "laxman10", *quote.CouponCode)

	// 商品を1つ削除すると見積もりが追従する
	w = httptest.PerformRequest(t, s.server.Engine, http.MethodDelete, cartItemsURL+"/2", nil, "")
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &cart)
	require.Len(t, cart.Items, 1)

	w = httptest.PerformRequest(t, s.server.Engine, http.MethodGet, quoteURL, nil, "")
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &quote)
	require.Equal(t, int64(29_97), quote.SubtotalCents)
	require.Equal(t, int64(2_99), quote.DiscountCents)

	// カートをクリア
	w = httptest.PerformRequest(t, s.server.Engine, http.MethodDelete, cartURL, nil, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.PerformRequest(t, s.server.Engine, http.MethodGet, quoteURL, nil, "")
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &quote)
	require.Equal(t, int64(0), quote.SubtotalCents)
	require.Equal(t, int64(0), quote.DiscountCents)
}

func (s *storeSuite) TestCouponValidation() {
	t := s.T()

	// 未知のクーポンは拒否される
	w := httptest.PerformRequest(t, s.server.Engine, http.MethodPost, couponURL, map[string]any{"code": "BOGUS99"}, "")
	httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid coupon code")

	// 適用済みクーポンの解除
	w = httptest.PerformRequest(t, s.server.Engine, http.MethodPost, couponURL, map[string]any{"code": "RAM50"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.PerformRequest(t, s.server.Engine, http.MethodDelete, couponURL, nil, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	var quote resdto.QuoteResponse
	w = httptest.PerformRequest(t, s.server.Engine, http.MethodGet, quoteURL, nil, "")
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &quote)
	require.Nil(t, quote.CouponCode)
}

func (s *storeSuite) TestFavorites() {
	t := s.T()
	mascara := builder.NewProductBuilder().BuildDTO()

	w := httptest.PerformRequest(t, s.server.Engine, http.MethodPost, favoritesURL, mascara, "")
	var favorites []resdto.ProductResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &favorites)
	require.Len(t, favorites, 1)

	// 二重追加はノーオペ
	w = httptest.PerformRequest(t, s.server.Engine, http.MethodPost, favoritesURL, mascara, "")
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &favorites)
	require.Len(t, favorites, 1)

	w = httptest.PerformRequest(t, s.server.Engine, http.MethodDelete, favoritesURL+"/1", nil, "")
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &favorites)
	require.Empty(t, favorites)
}

func (s *storeSuite) TestFilterDrivesProductListing() {
	t := s.T()

	// 部分更新でフィルタを設定
	w := httptest.PerformRequest(t, s.server.Engine, http.MethodPut, filterURL, map[string]any{"category": "beauty", "sort_by": "price-asc"}, "")
	var filterRes resdto.FilterResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &filterRes)
	require.Equal(t, "beauty", filterRes.Category)
	require.Equal(t, "price-asc", filterRes.SortBy)

	// フィルタ適用済みの商品一覧
	w = httptest.PerformRequest(t, s.server.Engine, http.MethodGet, productsURL, nil, "")
	var page resdto.ProductPageResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
	require.Len(t, page.Products, 3)
	require.Equal(t, int64(9_99), page.Products[0].PriceCents)
	require.Equal(t, int64(19_99), page.Products[2].PriceCents)

	w = httptest.PerformRequest(t, s.server.Engine, http.MethodGet, productsURL+"/categories", nil, "")
	var categories []resdto.CategoryResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &categories)
	require.Len(t, categories, 2)
	require.Equal(t, "beauty", categories[0].Slug)
}

func (s *storeSuite) TestSnapshotPersistence() {
	t := s.T()
	mascara := builder.NewProductBuilder().BuildDTO()

	w := httptest.PerformRequest(t, s.server.Engine, http.MethodPost, cartItemsURL, mascara, "")
	require.Equal(t, http.StatusOK, w.Code)

	// 変更のたびにスナップショットが書き出される
	snap, found, err := s.server.Store.Load(t.Context())
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, snap.Cart.Items, 1)
	require.Equal(t, int64(1), snap.Cart.Items[0].Product.ID)
}
