package api

import (
	"errors"
	"net/http"

	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	couponCommands commands.CouponCommands
	pricingQueries queries.PricingQueries
}

func NewCheckoutHandler(couponCommands commands.CouponCommands, pricingQueries queries.PricingQueries) *CheckoutHandler {
	return &CheckoutHandler{
		couponCommands: couponCommands,
		pricingQueries: pricingQueries,
	}
}

// @Summary Apply coupon code
// @Description Unknown codes leave the state untouched: a previously
// @Description applied coupon stays in effect and only the error is shown.
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.ApplyCouponRequest true "Coupon code"
// @Success 200 {object} resdto.AppliedCouponResponse
// @Failure 400 {object} httperr.Response
// @Router /api/checkout/coupon [post]
func (h *CheckoutHandler) ApplyCoupon(c *gin.Context) {
	var req reqdto.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.couponCommands.Apply(c.Request.Context(), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidCoupon):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coupon code", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromApplyCouponResult(result))
}

// @Summary Remove applied coupon
// @Tags checkout
// @Success 204 "No Content"
// @Router /api/checkout/coupon [delete]
func (h *CheckoutHandler) RemoveCoupon(c *gin.Context) {
	if err := h.couponCommands.Remove(c.Request.Context()); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get checkout quote
// @Description Subtotal, discount and final total derived from the current
// @Description cart and the applied coupon.
// @Tags checkout
// @Produce json
// @Success 200 {object} resdto.QuoteResponse
// @Router /api/checkout/quote [get]
func (h *CheckoutHandler) Quote(c *gin.Context) {
	quote, err := h.pricingQueries.Quote(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(quote))
}
