//go:build e2e

package e2e

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/handler"
	"storefront/internal/handler/api"
	"storefront/internal/handler/middleware"
	"storefront/internal/infra/catalog"
	"storefront/internal/infra/coupons"
	"storefront/internal/infra/persistence"
	"storefront/internal/infra/state"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/jwt"
	"storefront/internal/usecase"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// CatalogStub serves a fixed dummyjson-shaped product catalog.
func CatalogStub() http.Handler {
	products := `{
		"products": [
			{"id": 1, "title": "Essence Mascara Lash Princess", "price": 9.99, "thumbnail": "https://cdn.example.com/1.png", "category": "beauty", "stock": 5},
			{"id": 2, "title": "Eyeshadow Palette with Mirror", "price": 19.99, "thumbnail": "https://cdn.example.com/2.png", "category": "beauty", "stock": 44},
			{"id": 3, "title": "Powder Canister", "price": 14.99, "thumbnail": "https://cdn.example.com/3.png", "category": "beauty", "stock": 59}
		],
		"total": 3, "skip": 0, "limit": 12
	}`

	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(products))
	})
	mux.HandleFunc("/products/categories", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"slug": "beauty", "name": "Beauty"}, {"slug": "fragrances", "name": "Fragrances"}]`))
	})
	mux.HandleFunc("/products/category/beauty", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(products))
	})
	mux.HandleFunc("/products/search", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(products))
	})
	mux.HandleFunc("/products/1", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 1, "title": "Essence Mascara Lash Princess", "price": 9.99, "thumbnail": "https://cdn.example.com/1.png", "category": "beauty", "stock": 5}`))
	})
	return mux
}

// TestServer is the full HTTP stack wired against an isolated state
// container, a temp-dir snapshot store and a stubbed product catalog.
type TestServer struct {
	Engine    *gin.Engine
	Container *state.Container
	Store     *persistence.SnapshotStore
}

// NewTestServer assembles the stack the way bootstrap does, minus fx.
func NewTestServer(t *testing.T, catalogHandler http.Handler) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	cfg.CORS.AllowOrigins = []string{"http://localhost:3000"}
	cfg.Snapshot.Dir = t.TempDir()

	if catalogHandler == nil {
		catalogHandler = http.NotFoundHandler()
	}
	upstream := httptest.NewServer(catalogHandler)
	t.Cleanup(upstream.Close)
	cfg.Catalog.BaseURL = upstream.URL

	container := state.NewContainer()
	store := persistence.NewSnapshotStore(cfg.Snapshot)
	container.Subscribe(func(snap state.Snapshot) {
		_ = store.Save(t.Context(), snap)
	})

	couponCatalog, err := coupons.NewCatalog()
	require.NoError(t, err)
	jwtService := jwt.NewService(cfg.JWT.Secret, time.Hour, clock.NewRealClock())
	productSource := catalog.NewClient(cfg.Catalog)

	snapshotQueries := queries.NewSnapshotQueries(container)
	authMiddleware := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwtService))

	engine := gin.New()
	handler.NewRouter(
		engine,
		cfg,
		api.NewAuthHandler(commands.NewSessionCommands(container, jwtService), snapshotQueries),
		api.NewCartHandler(commands.NewCartCommands(container), snapshotQueries),
		api.NewFavoritesHandler(commands.NewFavoriteCommands(container), snapshotQueries),
		api.NewFilterHandler(commands.NewFilterCommands(container), snapshotQueries),
		api.NewProductsHandler(queries.NewProductQueries(productSource, container)),
		api.NewCheckoutHandler(commands.NewCouponCommands(container, couponCatalog), queries.NewPricingQueries(container)),
		authMiddleware,
	)

	return &TestServer{
		Engine:    engine,
		Container: container,
		Store:     store,
	}
}
