package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront/internal/handler/api"
	"storefront/internal/handler/middleware"
	"storefront/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	cartHandler *api.CartHandler,
	favoritesHandler *api.FavoritesHandler,
	filterHandler *api.FilterHandler,
	productsHandler *api.ProductsHandler,
	checkoutHandler *api.CheckoutHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, cartHandler, favoritesHandler, filterHandler, productsHandler, checkoutHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	cartHandler *api.CartHandler,
	favoritesHandler *api.FavoritesHandler,
	filterHandler *api.FilterHandler,
	productsHandler *api.ProductsHandler,
	checkoutHandler *api.CheckoutHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		// The cart works for anonymous sessions too: logging in afterwards
		// resets it per the session binding rule.
		cart := apiGroup.Group("/cart")
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: cartHandler.Get},
				{Method: http.MethodDelete, Path: "", Handler: cartHandler.Clear},
				{Method: http.MethodPost, Path: "/items", Handler: cartHandler.AddItem},
				{Method: http.MethodPut, Path: "/items/:id", Handler: cartHandler.SetQuantity},
				{Method: http.MethodDelete, Path: "/items/:id", Handler: cartHandler.RemoveItem},
			})
		}

		favorites := apiGroup.Group("/favorites")
		{
			addRoutes(favorites, []route{
				{Method: http.MethodGet, Path: "", Handler: favoritesHandler.List},
				{Method: http.MethodPost, Path: "", Handler: favoritesHandler.Add},
				{Method: http.MethodDelete, Path: "", Handler: favoritesHandler.Clear},
				{Method: http.MethodDelete, Path: "/:id", Handler: favoritesHandler.Remove},
			})
		}

		filter := apiGroup.Group("/filter")
		{
			addRoutes(filter, []route{
				{Method: http.MethodGet, Path: "", Handler: filterHandler.Get},
				{Method: http.MethodPut, Path: "", Handler: filterHandler.Update},
			})
		}

		products := apiGroup.Group("/products")
		{
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "", Handler: productsHandler.List},
				{Method: http.MethodGet, Path: "/categories", Handler: productsHandler.Categories},
				{Method: http.MethodGet, Path: "/:id", Handler: productsHandler.Get},
			})
		}

		checkout := apiGroup.Group("/checkout")
		{
			addRoutes(checkout, []route{
				{Method: http.MethodPost, Path: "/coupon", Handler: checkoutHandler.ApplyCoupon},
				{Method: http.MethodDelete, Path: "/coupon", Handler: checkoutHandler.RemoveCoupon},
				{Method: http.MethodGet, Path: "/quote", Handler: checkoutHandler.Quote},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
