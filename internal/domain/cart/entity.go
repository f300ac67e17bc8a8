package cart

import (
	"errors"

	"storefront/internal/domain/product"
	"storefront/internal/pkg/money"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrDuplicateLine   = errors.New("duplicate line item for product")
)

type LineItem struct {
	product  product.Snapshot
	quantity int64
}

func NewLineItem(p product.Snapshot, quantity int64) (LineItem, error) {
	if err := p.Validate(); err != nil {
		return LineItem{}, err
	}
	if quantity < 1 {
		return LineItem{}, ErrInvalidQuantity
	}
	return LineItem{product: p, quantity: quantity}, nil
}

func (li LineItem) Product() product.Snapshot { return li.product }
func (li LineItem) Quantity() int64           { return li.quantity }

func (li LineItem) SubtotalCents() money.Cents {
	return li.product.PriceCents.Mul(li.quantity)
}

// Ledger holds the cart line items in insertion order, at most one per
// product id, with a cached running total. Every mutation updates the items
// and the total together so the two are never observably out of sync.
type Ledger struct {
	items      []LineItem
	index      map[int64]int
	totalCents money.Cents
}

func NewLedger() *Ledger {
	return &Ledger{
		index: make(map[int64]int),
	}
}

// ReconstructLedger rebuilds a ledger from persisted line items. The total is
// recomputed from scratch rather than trusted from storage.
func ReconstructLedger(items []LineItem) (*Ledger, error) {
	l := NewLedger()
	for _, li := range items {
		if li.quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		if _, ok := l.index[li.product.ID]; ok {
			return nil, ErrDuplicateLine
		}
		l.index[li.product.ID] = len(l.items)
		l.items = append(l.items, li)
		l.totalCents += li.SubtotalCents()
	}
	return l, nil
}

// Add puts one unit of the product into the cart. A line item already present
// for the same id is incremented instead; the price stored on that line is the
// one that counts, so the cached total stays recomputable from the items.
func (l *Ledger) Add(p product.Snapshot) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if i, ok := l.index[p.ID]; ok {
		l.items[i].quantity++
		l.totalCents += l.items[i].product.PriceCents
		return nil
	}

	l.index[p.ID] = len(l.items)
	l.items = append(l.items, LineItem{product: p, quantity: 1})
	l.totalCents += p.PriceCents
	return nil
}

// Remove deletes the whole line item. Absent ids are a no-op.
func (l *Ledger) Remove(productID int64) {
	i, ok := l.index[productID]
	if !ok {
		return
	}

	l.totalCents -= l.items[i].SubtotalCents()
	l.items = append(l.items[:i], l.items[i+1:]...)
	delete(l.index, productID)
	for j := i; j < len(l.items); j++ {
		l.index[l.items[j].product.ID] = j
	}
}

// SetQuantity replaces the quantity of an existing line. Quantities below 1
// are rejected; callers wanting zero must Remove instead. Absent ids are a
// no-op.
func (l *Ledger) SetQuantity(productID int64, quantity int64) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	i, ok := l.index[productID]
	if !ok {
		return nil
	}

	delta := quantity - l.items[i].quantity
	l.items[i].quantity = quantity
	l.totalCents += l.items[i].product.PriceCents.Mul(delta)
	return nil
}

func (l *Ledger) Clear() {
	l.items = nil
	l.index = make(map[int64]int)
	l.totalCents = 0
}

func (l *Ledger) Contains(productID int64) bool {
	_, ok := l.index[productID]
	return ok
}

func (l *Ledger) Get(productID int64) (LineItem, bool) {
	i, ok := l.index[productID]
	if !ok {
		return LineItem{}, false
	}
	return l.items[i], true
}

// Items returns the line items in insertion order.
func (l *Ledger) Items() []LineItem {
	out := make([]LineItem, len(l.items))
	copy(out, l.items)
	return out
}

func (l *Ledger) Len() int {
	return len(l.items)
}

func (l *Ledger) TotalCents() money.Cents {
	return l.totalCents
}
