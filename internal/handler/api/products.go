package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProductsHandler struct {
	productQueries queries.ProductQueries
}

func NewProductsHandler(productQueries queries.ProductQueries) *ProductsHandler {
	return &ProductsHandler{
		productQueries: productQueries,
	}
}

// @Summary Browse products
// @Description Paginated product listing honoring the stored filter
// @Description selection (search, category, price sort).
// @Tags products
// @Produce json
// @Param limit query int false "Page size" default(12)
// @Param skip query int false "Offset" default(0)
// @Success 200 {object} resdto.ProductPageResponse
// @Failure 502 {object} httperr.Response
// @Router /api/products [get]
func (h *ProductsHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))

	page, err := h.productQueries.Browse(c.Request.Context(), limit, skip)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Product catalog unavailable", nil)
		return
	}

	resp, err := resdto.FromProductPageView(page)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List product categories
// @Tags products
// @Produce json
// @Success 200 {array} resdto.CategoryResponse
// @Failure 502 {object} httperr.Response
// @Router /api/products/categories [get]
func (h *ProductsHandler) Categories(c *gin.Context) {
	categories, err := h.productQueries.Categories(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Product catalog unavailable", nil)
		return
	}

	resp, err := resdto.FromCategoryViews(categories)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get product by id
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/products/{id} [get]
func (h *ProductsHandler) Get(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	view, err := h.productQueries.ByID(c.Request.Context(), productID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrProductNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Product catalog unavailable", nil)
		}
		return
	}

	resp, err := resdto.FromProductView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
