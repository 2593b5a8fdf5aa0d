package shop

import "sync"

// WishlistStore keeps per-session wishlists as ordered product id lists.
type WishlistStore struct {
	mu    sync.Mutex
	lists map[string][]string
}

func NewWishlistStore() *WishlistStore {
	return &WishlistStore{lists: make(map[string][]string)}
}

// List returns the session's wishlist product ids in insertion order.
func (s *WishlistStore) List(sessionID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lists[sessionID]...)
}

// Add appends a product id once; adding it again is a no-op.
func (s *WishlistStore) Add(sessionID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.lists[sessionID] {
		if id == productID {
			return
		}
	}
	s.lists[sessionID] = append(s.lists[sessionID], productID)
}

// Remove drops a product id if present.
func (s *WishlistStore) Remove(sessionID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.lists[sessionID]
	for i, id := range ids {
		if id == productID {
			s.lists[sessionID] = append(ids[:i], ids[i+1:]...)
			return
		}
	}
}

// Contains reports whether the product is wishlisted.
func (s *WishlistStore) Contains(sessionID, productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.lists[sessionID] {
		if id == productID {
			return true
		}
	}
	return false
}
