package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddMergesSameProductAndSize(t *testing.T) {
	s := NewCartStore()
	s.Add("sid", CartItem{ProductID: "p-001", Size: "50ml", Quantity: 1, PriceCents: 10900})
	cart := s.Add("sid", CartItem{ProductID: "p-001", Size: "50ml", Quantity: 2, PriceCents: 10900})

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestCartDifferentSizesAreSeparateLines(t *testing.T) {
	s := NewCartStore()
	s.Add("sid", CartItem{ProductID: "p-001", Size: "50ml", Quantity: 1, PriceCents: 10900})
	cart := s.Add("sid", CartItem{ProductID: "p-001", Size: "100ml", Quantity: 1, PriceCents: 17900})

	assert.Len(t, cart.Items, 2)
}

func TestCartSubtotal(t *testing.T) {
	s := NewCartStore()
	s.Add("sid", CartItem{ProductID: "p-001", Size: "50ml", Quantity: 2, PriceCents: 10900})
	s.Add("sid", CartItem{ProductID: "p-006", Size: "50ml", Quantity: 1, PriceCents: 8400})

	cart := s.Get("sid")
	assert.Equal(t, 2*10900+8400, cart.SubtotalCents())
	assert.Equal(t, 3, cart.Count())
}

func TestCartSetQuantityZeroRemovesLine(t *testing.T) {
	s := NewCartStore()
	s.Add("sid", CartItem{ProductID: "p-001", Size: "50ml", Quantity: 2})
	cart := s.SetQuantity("sid", "p-001", "50ml", 0)
	assert.Empty(t, cart.Items)
}

func TestCartSetQuantityUnknownLineIsNoOp(t *testing.T) {
	s := NewCartStore()
	s.Add("sid", CartItem{ProductID: "p-001", Size: "50ml", Quantity: 2})
	cart := s.SetQuantity("sid", "ghost", "50ml", 5)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCartsAreSessionScoped(t *testing.T) {
	s := NewCartStore()
	s.Add("sid-a", CartItem{ProductID: "p-001", Size: "50ml", Quantity: 1})

	assert.Empty(t, s.Get("sid-b").Items)
	s.Clear("sid-a")
	assert.Empty(t, s.Get("sid-a").Items)
}

func TestCartSnapshotIsACopy(t *testing.T) {
	s := NewCartStore()
	s.Add("sid", CartItem{ProductID: "p-001", Size: "50ml", Quantity: 1})

	cart := s.Get("sid")
	cart.Items[0].Quantity = 99

	assert.Equal(t, 1, s.Get("sid").Items[0].Quantity)
}

func TestWishlistAddIsIdempotent(t *testing.T) {
	w := NewWishlistStore()
	w.Add("sid", "p-001")
	w.Add("sid", "p-001")
	w.Add("sid", "p-002")

	assert.Equal(t, []string{"p-001", "p-002"}, w.List("sid"))
	assert.True(t, w.Contains("sid", "p-001"))

	w.Remove("sid", "p-001")
	assert.Equal(t, []string{"p-002"}, w.List("sid"))
	assert.False(t, w.Contains("sid", "p-001"))
}
