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

type FavoritesHandler struct {
	favoriteCommands commands.FavoriteCommands
	snapshotQueries  queries.SnapshotQueries
}

func NewFavoritesHandler(favoriteCommands commands.FavoriteCommands, snapshotQueries queries.SnapshotQueries) *FavoritesHandler {
	return &FavoritesHandler{
		favoriteCommands: favoriteCommands,
		snapshotQueries:  snapshotQueries,
	}
}

// @Summary List favorites
// @Tags favorites
// @Produce json
// @Success 200 {array} resdto.ProductResponse
// @Router /api/favorites [get]
func (h *FavoritesHandler) List(c *gin.Context) {
	h.respondWithFavorites(c)
}

// @Summary Add product to favorites
// @Description Adding an already-favorited product is a no-op.
// @Tags favorites
// @Accept json
// @Produce json
// @Param request body reqdto.AddItemRequest true "Product snapshot"
// @Success 200 {array} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Router /api/favorites [post]
func (h *FavoritesHandler) Add(c *gin.Context) {
	var req reqdto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.favoriteCommands.Add(c.Request.Context(), req.ToDomain()); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product", nil)
		return
	}

	h.respondWithFavorites(c)
}

// @Summary Remove product from favorites
// @Tags favorites
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {array} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Router /api/favorites/{id} [delete]
func (h *FavoritesHandler) Remove(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	if err := h.favoriteCommands.Remove(c.Request.Context(), productID); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	h.respondWithFavorites(c)
}

// @Summary Clear favorites
// @Tags favorites
// @Success 204 "No Content"
// @Router /api/favorites [delete]
func (h *FavoritesHandler) Clear(c *gin.Context) {
	if err := h.favoriteCommands.Clear(c.Request.Context()); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FavoritesHandler) respondWithFavorites(c *gin.Context) {
	snap, err := h.snapshotQueries.Current(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	favorites := make([]resdto.ProductResponse, 0, len(snap.Favorites))
	for i := range snap.Favorites {
		p, perr := resdto.FromProductView(&snap.Favorites[i])
		if perr != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, perr, "Internal server error", nil)
			return
		}
		favorites = append(favorites, *p)
	}
	c.JSON(http.StatusOK, favorites)
}
