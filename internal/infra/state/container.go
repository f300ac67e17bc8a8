package state

import (
	"context"
	"sync"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/coupon"
	"storefront/internal/domain/favorites"
	"storefront/internal/domain/filter"
	"storefront/internal/domain/product"
	"storefront/internal/domain/session"
	"storefront/internal/infra"
	"storefront/internal/pkg/money"
	"storefront/internal/usecase/queries"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

// Container is the single process-wide state store: cart, favorites,
// identity, applied coupon and filter selection, constructed once at
// bootstrap with an explicit lifecycle. All mutations go through Within,
// which serializes writers so the ledger-total invariant can never be
// observed mid-update. Subscribers are notified after every successful
// mutation, in mutation order.
type Container struct {
	mu       sync.RWMutex
	notifyMu sync.Mutex

	cart      *cart.Ledger
	favorites *favorites.Set
	identity  *session.Identity
	applied   *coupon.Applied
	selection filter.Selection

	subscribers []func(Snapshot)
}

func NewContainer() *Container {
	return &Container{
		cart:      cart.NewLedger(),
		favorites: favorites.NewSet(),
	}
}

// Subscribe registers fn to run after each successful mutation with an
// exported snapshot. Subscribers may read the container but must not mutate
// it from the callback.
func (c *Container) Subscribe(fn func(Snapshot)) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

// Within implements shared.UnitOfWork. The notify lock is taken before the
// state lock is released so notifications cannot be reordered across
// mutations.
func (c *Container) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	c.mu.Lock()
	if err := fn(ctx, &containerTx{c: c}); err != nil {
		c.mu.Unlock()
		return err
	}
	snap := c.exportLocked()
	c.notifyMu.Lock()
	c.mu.Unlock()

	defer c.notifyMu.Unlock()
	for _, fn := range c.subscribers {
		fn(snap)
	}
	return nil
}

type containerTx struct {
	c *Container
}

func (t *containerTx) Cart() *cart.Ledger        { return t.c.cart }
func (t *containerTx) Favorites() *favorites.Set { return t.c.favorites }

func (t *containerTx) Identity() *session.Identity { return t.c.identity }

func (t *containerTx) SetIdentity(identity *session.Identity) { t.c.identity = identity }
func (t *containerTx) ClearIdentity()                         { t.c.identity = nil }

func (t *containerTx) AppliedCoupon() (coupon.Applied, bool) {
	if t.c.applied == nil {
		return coupon.Applied{}, false
	}
	return *t.c.applied, true
}

func (t *containerTx) SetAppliedCoupon(applied coupon.Applied) { t.c.applied = &applied }
func (t *containerTx) ClearAppliedCoupon()                     { t.c.applied = nil }

func (t *containerTx) Selection() filter.Selection       { return t.c.selection }
func (t *containerTx) SetSelection(sel filter.Selection) { t.c.selection = sel }

// --- read side -------------------------------------------------------------

// Snapshot implements queries.SnapshotReadStore.
func (c *Container) Snapshot(_ context.Context) (*queries.SnapshotView, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	view := &queries.SnapshotView{
		Cart:      c.cartViewLocked(),
		Favorites: make([]queries.ProductView, 0, c.favorites.Len()),
		Filter: queries.FilterView{
			Category:    c.selection.Category,
			SortBy:      string(c.selection.SortBy),
			SearchQuery: c.selection.SearchQuery,
		},
	}
	for _, p := range c.favorites.Items() {
		view.Favorites = append(view.Favorites, toProductView(p))
	}
	if c.identity != nil {
		view.Auth = &queries.IdentityView{
			SessionID:       c.identity.SessionID(),
			Username:        c.identity.Username().Value(),
			Token:           c.identity.Token(),
			IsAuthenticated: true,
		}
	}
	return view, nil
}

// CartTotalCents implements queries.PricingReadStore.
func (c *Container) CartTotalCents(_ context.Context) (money.Cents, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cart.TotalCents(), nil
}

// AppliedCoupon implements queries.PricingReadStore.
func (c *Container) AppliedCoupon(_ context.Context) (coupon.Applied, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.applied == nil {
		return coupon.Applied{}, false, nil
	}
	return *c.applied, true, nil
}

// Selection implements queries.FilterReadStore.
func (c *Container) Selection(_ context.Context) (filter.Selection, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.selection, nil
}

func (c *Container) cartViewLocked() queries.CartView {
	view := queries.CartView{
		Items:      make([]queries.LineItemView, 0, c.cart.Len()),
		TotalCents: int64(c.cart.TotalCents()),
	}
	for _, li := range c.cart.Items() {
		view.Items = append(view.Items, queries.LineItemView{
			Product:       toProductView(li.Product()),
			Quantity:      li.Quantity(),
			SubtotalCents: int64(li.SubtotalCents()),
		})
	}
	return view
}

func toProductView(p product.Snapshot) queries.ProductView {
	return queries.ProductView{
		ID:         p.ID,
		Title:      p.Title,
		PriceCents: int64(p.PriceCents),
		Price:      p.PriceCents.Float(),
		Thumbnail:  p.Thumbnail,
		Category:   p.Category,
		Stock:      p.Stock,
	}
}

// --- snapshot export / import ---------------------------------------------

// Export returns the durable snapshot of the current state.
func (c *Container) Export() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.exportLocked()
}

func (c *Container) exportLocked() Snapshot {
	snap := Snapshot{
		Cart:      CartRecord{Items: make([]LineRecord, 0, c.cart.Len())},
		Favorites: make([]ProductRecord, 0, c.favorites.Len()),
		Filter: FilterRecord{
			Category:    c.selection.Category,
			SortBy:      string(c.selection.SortBy),
			SearchQuery: c.selection.SearchQuery,
		},
	}
	for _, li := range c.cart.Items() {
		snap.Cart.Items = append(snap.Cart.Items, LineRecord{
			Product:  toProductRecord(li.Product()),
			Quantity: li.Quantity(),
		})
	}
	for _, p := range c.favorites.Items() {
		snap.Favorites = append(snap.Favorites, toProductRecord(p))
	}
	if c.identity != nil {
		snap.Auth = &AuthRecord{
			SessionID: c.identity.SessionID(),
			Username:  c.identity.Username().Value(),
			Token:     c.identity.Token(),
		}
	}
	return snap
}

// Restore replaces the container state with a previously exported snapshot.
// The snapshot is validated through the domain constructors; a corrupt one
// leaves the container untouched.
func (c *Container) Restore(snap Snapshot) error {
	lineItems := make([]cart.LineItem, 0, len(snap.Cart.Items))
	for _, rec := range snap.Cart.Items {
		li, err := cart.NewLineItem(toProductSnapshot(rec.Product), rec.Quantity)
		if err != nil {
			return infra.WrapAdapterErr("invalid cart line in snapshot", err, infra.KindCorruptSnapshot)
		}
		lineItems = append(lineItems, li)
	}
	ledger, err := cart.ReconstructLedger(lineItems)
	if err != nil {
		return infra.WrapAdapterErr("invalid cart in snapshot", err, infra.KindCorruptSnapshot)
	}

	favs := make([]product.Snapshot, 0, len(snap.Favorites))
	for _, rec := range snap.Favorites {
		favs = append(favs, toProductSnapshot(rec))
	}
	favSet, err := favorites.ReconstructSet(favs)
	if err != nil {
		return infra.WrapAdapterErr("invalid favorites in snapshot", err, infra.KindCorruptSnapshot)
	}

	sortBy, err := filter.NewSortBy(snap.Filter.SortBy)
	if err != nil {
		return infra.WrapAdapterErr("invalid sort order in snapshot", err, infra.KindCorruptSnapshot)
	}

	var identity *session.Identity
	if snap.Auth != nil {
		username, uerr := session.NewUsername(snap.Auth.Username)
		if uerr != nil {
			return infra.WrapAdapterErr("invalid identity in snapshot", uerr, infra.KindCorruptSnapshot)
		}
		sessionID := snap.Auth.SessionID
		if sessionID == uuid.Nil {
			sessionID = uuid.New()
		}
		identity = session.ReconstructIdentity(sessionID, username, snap.Auth.Token)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cart = ledger
	c.favorites = favSet
	c.identity = identity
	c.applied = nil
	c.selection = filter.Selection{
		Category:    snap.Filter.Category,
		SortBy:      sortBy,
		SearchQuery: snap.Filter.SearchQuery,
	}
	return nil
}

func toProductRecord(p product.Snapshot) ProductRecord {
	return ProductRecord{
		ID:         p.ID,
		Title:      p.Title,
		PriceCents: int64(p.PriceCents),
		Thumbnail:  p.Thumbnail,
		Category:   p.Category,
		Stock:      p.Stock,
	}
}

func toProductSnapshot(rec ProductRecord) product.Snapshot {
	return product.Snapshot{
		ID:         rec.ID,
		Title:      rec.Title,
		PriceCents: money.Cents(rec.PriceCents),
		Thumbnail:  rec.Thumbnail,
		Category:   rec.Category,
		Stock:      rec.Stock,
	}
}
