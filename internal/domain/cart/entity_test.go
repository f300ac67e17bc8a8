//go:build unit

package cart_test

import (
	"testing"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/product"
	"storefront/internal/pkg/money"
	"storefront/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineItem(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		snap := builder.NewProductBuilder().WithPriceCents(19_99).BuildSnapshot()

		li, err := cart.NewLineItem(snap, 3)
		require.NoError(t, err)

		assert.Equal(t, snap.ID, li.Product().ID)
		assert.Equal(t, int64(3), li.Quantity())
		assert.Equal(t, money.Cents(59_97), li.SubtotalCents())
	})

	t.Run("quantity validation", func(t *testing.T) {
		snap := builder.NewProductBuilder().BuildSnapshot()

		_, err := cart.NewLineItem(snap, 0)
		require.ErrorIs(t, err, cart.ErrInvalidQuantity)

		_, err = cart.NewLineItem(snap, -1)
		require.ErrorIs(t, err, cart.ErrInvalidQuantity)
	})

	t.Run("product validation", func(t *testing.T) {
		snap := builder.NewProductBuilder().WithID(0).BuildSnapshot()

		_, err := cart.NewLineItem(snap, 1)
		require.ErrorIs(t, err, product.ErrInvalidProductID)
	})
}

func TestLedgerAdd(t *testing.T) {
	t.Run("first add creates a line with quantity 1", func(t *testing.T) {
		l := cart.NewLedger()
		snap := builder.NewProductBuilder().WithPriceCents(9_99).BuildSnapshot()

		require.NoError(t, l.Add(snap))

		li, ok := l.Get(snap.ID)
		require.True(t, ok)
		assert.Equal(t, int64(1), li.Quantity())
		assert.Equal(t, money.Cents(9_99), l.TotalCents())
	})

	t.Run("adding the same product increments the existing line", func(t *testing.T) {
		l := cart.NewLedger()
		snap := builder.NewProductBuilder().WithPriceCents(9_99).BuildSnapshot()

		require.NoError(t, l.Add(snap))
		require.NoError(t, l.Add(snap))

		li, ok := l.Get(snap.ID)
		require.True(t, ok)
		assert.Equal(t, int64(2), li.Quantity())
		assert.Equal(t, 1, l.Len())
		assert.Equal(t, money.Cents(19_98), l.TotalCents())
	})

	t.Run("re-adding with a changed price keeps the stored line price", func(t *testing.T) {
		l := cart.NewLedger()
		original := builder.NewProductBuilder().WithPriceCents(10_00).BuildSnapshot()
		repriced := builder.NewProductBuilder().WithPriceCents(12_00).BuildSnapshot()

		require.NoError(t, l.Add(original))
		require.NoError(t, l.Add(repriced))

		li, _ := l.Get(original.ID)
		assert.Equal(t, money.Cents(10_00), li.Product().PriceCents)
		assert.Equal(t, money.Cents(20_00), l.TotalCents())
	})

	t.Run("invalid product is rejected", func(t *testing.T) {
		l := cart.NewLedger()
		snap := builder.NewProductBuilder().WithPriceCents(-1).BuildSnapshot()

		require.ErrorIs(t, l.Add(snap), product.ErrNegativePrice)
		assert.Equal(t, 0, l.Len())
	})

	t.Run("insertion order is preserved", func(t *testing.T) {
		l := cart.NewLedger()
		for _, id := range []int64{3, 1, 2} {
			require.NoError(t, l.Add(builder.NewProductBuilder().WithID(id).BuildSnapshot()))
		}

		items := l.Items()
		require.Len(t, items, 3)
		assert.Equal(t, int64(3), items[0].Product().ID)
		assert.Equal(t, int64(1), items[1].Product().ID)
		assert.Equal(t, int64(2), items[2].Product().ID)
	})
}

func TestLedgerSetQuantity(t *testing.T) {
	t.Run("total follows the quantity through a full cycle", func(t *testing.T) {
		l := cart.NewLedger()
		snap := builder.NewProductBuilder().WithPriceCents(9_99).BuildSnapshot()
		require.NoError(t, l.Add(snap))
		assert.Equal(t, money.Cents(9_99), l.TotalCents())

		require.NoError(t, l.SetQuantity(snap.ID, 2))
		assert.Equal(t, money.Cents(19_98), l.TotalCents())

		require.NoError(t, l.SetQuantity(snap.ID, 1))
		assert.Equal(t, money.Cents(9_99), l.TotalCents())

		l.Remove(snap.ID)
		assert.Equal(t, money.Cents(0), l.TotalCents())
		assert.Equal(t, 0, l.Len())
	})

	t.Run("quantity below 1 is rejected and leaves the line untouched", func(t *testing.T) {
		l := cart.NewLedger()
		snap := builder.NewProductBuilder().BuildSnapshot()
		require.NoError(t, l.Add(snap))

		require.ErrorIs(t, l.SetQuantity(snap.ID, 0), cart.ErrInvalidQuantity)
		require.ErrorIs(t, l.SetQuantity(snap.ID, -5), cart.ErrInvalidQuantity)

		li, _ := l.Get(snap.ID)
		assert.Equal(t, int64(1), li.Quantity())
	})

	t.Run("absent product id is a no-op", func(t *testing.T) {
		l := cart.NewLedger()

		require.NoError(t, l.SetQuantity(42, 3))
		assert.Equal(t, 0, l.Len())
		assert.Equal(t, money.Cents(0), l.TotalCents())
	})
}

func TestLedgerRemove(t *testing.T) {
	t.Run("removes the whole line regardless of quantity", func(t *testing.T) {
		l := cart.NewLedger()
		snap := builder.NewProductBuilder().WithPriceCents(5_00).BuildSnapshot()
		require.NoError(t, l.Add(snap))
		require.NoError(t, l.SetQuantity(snap.ID, 4))

		l.Remove(snap.ID)

		assert.False(t, l.Contains(snap.ID))
		assert.Equal(t, money.Cents(0), l.TotalCents())
	})

	t.Run("removal is idempotent", func(t *testing.T) {
		l := cart.NewLedger()
		snap := builder.NewProductBuilder().BuildSnapshot()
		require.NoError(t, l.Add(snap))

		l.Remove(snap.ID)
		l.Remove(snap.ID)

		assert.Equal(t, 0, l.Len())
		assert.Equal(t, money.Cents(0), l.TotalCents())
	})

	t.Run("removing a middle line keeps the rest addressable", func(t *testing.T) {
		l := cart.NewLedger()
		for _, id := range []int64{1, 2, 3} {
			require.NoError(t, l.Add(builder.NewProductBuilder().WithID(id).WithPriceCents(1_00).BuildSnapshot()))
		}

		l.Remove(2)

		require.NoError(t, l.SetQuantity(3, 2))
		li, ok := l.Get(3)
		require.True(t, ok)
		assert.Equal(t, int64(2), li.Quantity())
		assert.Equal(t, money.Cents(3_00), l.TotalCents())
	})
}

func TestLedgerClear(t *testing.T) {
	l := cart.NewLedger()
	require.NoError(t, l.Add(builder.NewProductBuilder().WithID(1).BuildSnapshot()))
	require.NoError(t, l.Add(builder.NewProductBuilder().WithID(2).BuildSnapshot()))

	l.Clear()

	assert.Equal(t, 0, l.Len())
	assert.Equal(t, money.Cents(0), l.TotalCents())
	assert.Empty(t, l.Items())

	// the ledger stays usable after a clear
	require.NoError(t, l.Add(builder.NewProductBuilder().WithID(1).WithPriceCents(2_50).BuildSnapshot()))
	assert.Equal(t, money.Cents(2_50), l.TotalCents())
}

func TestReconstructLedger(t *testing.T) {
	mustLine := func(id int64, priceCents, quantity int64) cart.LineItem {
		li, err := cart.NewLineItem(builder.NewProductBuilder().WithID(id).WithPriceCents(priceCents).BuildSnapshot(), quantity)
		require.NoError(t, err)
		return li
	}

	t.Run("recomputes the total from the lines", func(t *testing.T) {
		l, err := cart.ReconstructLedger([]cart.LineItem{
			mustLine(1, 9_99, 2),
			mustLine(2, 5_00, 1),
		})
		require.NoError(t, err)

		assert.Equal(t, 2, l.Len())
		assert.Equal(t, money.Cents(24_98), l.TotalCents())
	})

	t.Run("duplicate product ids are rejected", func(t *testing.T) {
		_, err := cart.ReconstructLedger([]cart.LineItem{
			mustLine(1, 9_99, 1),
			mustLine(1, 9_99, 2),
		})
		require.ErrorIs(t, err, cart.ErrDuplicateLine)
	})

	t.Run("empty input yields an empty ledger", func(t *testing.T) {
		l, err := cart.ReconstructLedger(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, l.Len())
	})
}
