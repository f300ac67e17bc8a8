package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartCommands    commands.CartCommands
	snapshotQueries queries.SnapshotQueries
}

func NewCartHandler(cartCommands commands.CartCommands, snapshotQueries queries.SnapshotQueries) *CartHandler {
	return &CartHandler{
		cartCommands:    cartCommands,
		snapshotQueries: snapshotQueries,
	}
}

// @Summary Get cart
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /api/cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	h.respondWithCart(c, http.StatusOK)
}

// @Summary Add item to cart
// @Description Adds one unit of the product; an item already in the cart has
// @Description its quantity incremented instead.
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddItemRequest true "Product snapshot"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Router /api/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req reqdto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cartCommands.AddItem(c.Request.Context(), req.ToDomain()); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product", nil)
		return
	}

	h.respondWithCart(c, http.StatusOK)
}

// @Summary Set line item quantity
// @Description Quantities below 1 are rejected; remove the item instead.
// @Tags cart
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body reqdto.SetQuantityRequest true "New quantity"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Router /api/cart/items/{id} [put]
func (h *CartHandler) SetQuantity(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	var req reqdto.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cartCommands.SetQuantity(c.Request.Context(), productID, req.Quantity); err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidQuantity):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Quantity must be at least 1", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	h.respondWithCart(c, http.StatusOK)
}

// @Summary Remove item from cart
// @Description Removing an absent item is a no-op, not an error.
// @Tags cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Router /api/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	if err := h.cartCommands.RemoveItem(c.Request.Context(), productID); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	h.respondWithCart(c, http.StatusOK)
}

// @Summary Clear cart
// @Tags cart
// @Success 204 "No Content"
// @Router /api/cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.cartCommands.Clear(c.Request.Context()); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) respondWithCart(c *gin.Context, status int) {
	snap, err := h.snapshotQueries.Current(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	resp, err := resdto.FromCartView(&snap.Cart)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, resp)
}

func productIDParam(c *gin.Context) (int64, bool) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || productID <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("invalid product id"), "Invalid product id", nil)
		return 0, false
	}
	return productID, true
}
