package api

import (
	"net/http"

	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FilterHandler struct {
	filterCommands  commands.FilterCommands
	snapshotQueries queries.SnapshotQueries
}

func NewFilterHandler(filterCommands commands.FilterCommands, snapshotQueries queries.SnapshotQueries) *FilterHandler {
	return &FilterHandler{
		filterCommands:  filterCommands,
		snapshotQueries: snapshotQueries,
	}
}

// @Summary Get current filter selection
// @Tags filter
// @Produce json
// @Success 200 {object} resdto.FilterResponse
// @Router /api/filter [get]
func (h *FilterHandler) Get(c *gin.Context) {
	h.respondWithFilter(c)
}

// @Summary Update filter selection
// @Description Partial update; omitted fields keep their current value.
// @Tags filter
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateFilterRequest true "Filter patch"
// @Success 200 {object} resdto.FilterResponse
// @Failure 400 {object} httperr.Response
// @Router /api/filter [put]
func (h *FilterHandler) Update(c *gin.Context) {
	var req reqdto.UpdateFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	patch, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid sort order", nil)
		return
	}

	if err := h.filterCommands.Set(c.Request.Context(), patch); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	h.respondWithFilter(c)
}

func (h *FilterHandler) respondWithFilter(c *gin.Context) {
	snap, err := h.snapshotQueries.Current(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FilterResponse{
		Category:    snap.Filter.Category,
		SortBy:      snap.Filter.SortBy,
		SearchQuery: snap.Filter.SearchQuery,
	})
}
