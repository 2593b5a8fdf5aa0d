// Package shop holds the session-scoped storefront state: cart, wishlist
// and checkout shipment details. Everything is in process memory, keyed by
// a signed session cookie id, and vanishes on restart.
package shop

import "sync"

// CartItem is one cart line. A line is identified by product id + size.
type CartItem struct {
	ProductID  string `json:"productId"`
	Slug       string `json:"slug"`
	Name       string `json:"name"`
	Size       string `json:"size"`
	Quantity   int    `json:"quantity"`
	PriceCents int    `json:"priceCents"`
	Currency   string `json:"currency"`
	ImageKey   string `json:"imageKey"`
}

// LineTotalCents is quantity times unit price.
func (i CartItem) LineTotalCents() int { return i.Quantity * i.PriceCents }

// Cart is a snapshot of one session's cart.
type Cart struct {
	Items []CartItem `json:"items"`
}

// SubtotalCents sums all line totals.
func (c Cart) SubtotalCents() int {
	total := 0
	for _, i := range c.Items {
		total += i.LineTotalCents()
	}
	return total
}

// Count is the total unit count across lines.
func (c Cart) Count() int {
	n := 0
	for _, i := range c.Items {
		n += i.Quantity
	}
	return n
}

// CartStore keeps one cart per session id.
type CartStore struct {
	mu    sync.Mutex
	carts map[string][]CartItem
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string][]CartItem)}
}

// Get returns a snapshot of the session's cart.
func (s *CartStore) Get(sessionID string) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Cart{Items: append([]CartItem(nil), s.carts[sessionID]...)}
}

// Add puts an item in the cart, merging quantity into an existing line for
// the same product and size.
func (s *CartStore) Add(sessionID string, item CartItem) Cart {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	for i := range items {
		if items[i].ProductID == item.ProductID && items[i].Size == item.Size {
			items[i].Quantity += item.Quantity
			return Cart{Items: append([]CartItem(nil), items...)}
		}
	}
	items = append(items, item)
	s.carts[sessionID] = items
	return Cart{Items: append([]CartItem(nil), items...)}
}

// SetQuantity updates one line; quantity 0 removes it. Unknown lines are a
// no-op.
func (s *CartStore) SetQuantity(sessionID, productID, size string, quantity int) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	for i := range items {
		if items[i].ProductID != productID || items[i].Size != size {
			continue
		}
		if quantity <= 0 {
			items = append(items[:i], items[i+1:]...)
		} else {
			items[i].Quantity = quantity
		}
		s.carts[sessionID] = items
		break
	}
	return Cart{Items: append([]CartItem(nil), s.carts[sessionID]...)}
}

// Remove drops one line.
func (s *CartStore) Remove(sessionID, productID, size string) Cart {
	return s.SetQuantity(sessionID, productID, size, 0)
}

// Clear empties the session's cart.
func (s *CartStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
