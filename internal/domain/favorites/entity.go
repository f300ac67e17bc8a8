package favorites

import (
	"storefront/internal/domain/product"
)

// Set keeps favorited product snapshots, at most one per product id, in a
// stable insertion order for display. It is fully independent of the cart.
type Set struct {
	items []product.Snapshot
	index map[int64]int
}

func NewSet() *Set {
	return &Set{
		index: make(map[int64]int),
	}
}

func ReconstructSet(items []product.Snapshot) (*Set, error) {
	s := NewSet()
	for _, p := range items {
		if err := s.Add(p); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add appends the product unless an entry with the same id already exists.
func (s *Set) Add(p product.Snapshot) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, ok := s.index[p.ID]; ok {
		return nil
	}
	s.index[p.ID] = len(s.items)
	s.items = append(s.items, p)
	return nil
}

// Remove deletes the entry. Absent ids are a no-op.
func (s *Set) Remove(productID int64) {
	i, ok := s.index[productID]
	if !ok {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.index, productID)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j].ID] = j
	}
}

func (s *Set) Contains(productID int64) bool {
	_, ok := s.index[productID]
	return ok
}

func (s *Set) Clear() {
	s.items = nil
	s.index = make(map[int64]int)
}

func (s *Set) Items() []product.Snapshot {
	out := make([]product.Snapshot, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Set) Len() int {
	return len(s.items)
}
