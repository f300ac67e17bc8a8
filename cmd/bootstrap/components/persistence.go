package components

import (
	"storefront/internal/infra/catalog"
	"storefront/internal/infra/coupons"
	"storefront/internal/infra/state"
	"storefront/internal/pkg/config"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"
	"storefront/internal/usecase/shared"

	"go.uber.org/fx"
)

// PersistenceModule binds the infra adapters to the ports the use cases
// consume. The state container backs both the write side (unit of work) and
// the read side (snapshot, pricing, filter).
var PersistenceModule = fx.Module("persistence",
	stateModule,
	readstoreModule,
)

var stateModule = fx.Module("persistence/state",
	fx.Provide(
		fx.Annotate(
			func(c *state.Container) *state.Container { return c },
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Snapshot / pricing / filter reads come straight off the container
		fx.Annotate(
			func(c *state.Container) *state.Container { return c },
			fx.As(new(queries.SnapshotReadStore)),
			fx.As(new(queries.PricingReadStore)),
			fx.As(new(queries.FilterReadStore)),
		),
		// Coupon catalog
		fx.Annotate(
			coupons.NewCatalog,
			fx.As(new(commands.CouponReadStore)),
		),
		// Upstream product catalog
		fx.Annotate(
			func(cfg config.Config) *catalog.Client {
				return catalog.NewClient(cfg.Catalog)
			},
			fx.As(new(queries.ProductSource)),
		),
	),
)
