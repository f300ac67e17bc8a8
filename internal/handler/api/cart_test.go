//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"storefront/internal/handler/api"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/queries"
	"storefront/tests/common/builder"
	"storefront/tests/common/httptest"
	"storefront/tests/common/testutil"
	commandsmock "storefront/tests/mock/commands"
	queriesmock "storefront/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockQueries  *queriesmock.MockSnapshotQueries
	handler      *api.CartHandler
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSnapshotQueries(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/api/cart", s.handler.Get)
	s.router.DELETE("/api/cart", s.handler.Clear)
	s.router.POST("/api/cart/items", s.handler.AddItem)
	s.router.PUT("/api/cart/items/:id", s.handler.SetQuantity)
	s.router.DELETE("/api/cart/items/:id", s.handler.RemoveItem)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) cartSnapshot() *queries.SnapshotView {
	return &queries.SnapshotView{
		Cart: queries.CartView{
			Items: []queries.LineItemView{
				{
					Product:       builder.NewProductBuilder().WithPriceCents(9_99).BuildView(),
					Quantity:      2,
					SubtotalCents: 19_98,
				},
			},
			TotalCents: 19_98,
		},
	}
}

func (s *CartHandlerTestSuite) TestGet() {
	s.Run("success: returns the cart with totals", func() {
		s.mockQueries.EXPECT().Current(gomock.Any()).Return(s.cartSnapshot(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cart", nil, "")

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
		s.Equal(int64(19_98), response.TotalCents)
		s.Equal(int64(2), response.Items[0].Quantity)
	})

	s.Run("success: empty cart serializes items as an empty array", func() {
		s.mockQueries.EXPECT().Current(gomock.Any()).Return(&queries.SnapshotView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cart", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"items":[]`)
	})
}

func (s *CartHandlerTestSuite) TestAddItem() {
	url := "/api/cart/items"
	reqBody := builder.NewProductBuilder().WithPriceCents(9_99).BuildDTO()

	s.Run("success: adds the item and returns the cart", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), gomock.Any()).Return(nil).Times(1)
		s.mockQueries.EXPECT().Current(gomock.Any()).Return(s.cartSnapshot(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(19_98), response.TotalCents)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing id", mutate: testutil.Field("id", nil)},
			{name: "zero id", mutate: testutil.Field("id", 0)},
			{name: "missing title", mutate: testutil.Field("title", nil)},
			{name: "negative price", mutate: testutil.Field("price", -1)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: domain rejection maps to 400", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), gomock.Any()).
			Return(errs.Mark(errors.New("bad product"), errs.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid product")
	})
}

func (s *CartHandlerTestSuite) TestSetQuantity() {
	s.Run("success: updates the quantity", func() {
		s.mockCommands.EXPECT().SetQuantity(gomock.Any(), int64(1), int64(3)).Return(nil).Times(1)
		s.mockQueries.EXPECT().Current(gomock.Any()).Return(s.cartSnapshot(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/cart/items/1", map[string]any{"quantity": 3}, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: quantity below 1 is rejected by binding", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/cart/items/1", map[string]any{"quantity": 0}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: usecase rejection maps to 400", func() {
		s.mockCommands.EXPECT().SetQuantity(gomock.Any(), int64(1), int64(5)).
			Return(errs.Mark(errors.New("bad quantity"), errs.ErrInvalidQuantity)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/cart/items/1", map[string]any{"quantity": 5}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Quantity must be at least 1")
	})

	s.Run("error: malformed product id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/cart/items/abc", map[string]any{"quantity": 3}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid product id")
	})
}

func (s *CartHandlerTestSuite) TestRemoveItem() {
	s.Run("success: returns the remaining cart", func() {
		s.mockCommands.EXPECT().RemoveItem(gomock.Any(), int64(7)).Return(nil).Times(1)
		s.mockQueries.EXPECT().Current(gomock.Any()).Return(&queries.SnapshotView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/cart/items/7", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: malformed product id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/cart/items/-1", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid product id")
	})
}

func (s *CartHandlerTestSuite) TestClear() {
	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Clear(gomock.Any()).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/cart", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
