package admin

import (
	"sync"

	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/gateway"
)

// Store holds the fetched user and order collections plus the pagination
// metadata of the last order fetch. It is the only shared mutable state in
// the admin workflow; the controller and coordinator are its only writers.
//
// Everything here is ephemeral. A restart drops it all, the same way a page
// reload did in the browser version.
type Store struct {
	mu         sync.RWMutex
	users      []gateway.User
	orders     []gateway.Order
	pagination gateway.Pagination
}

func NewStore() *Store { return &Store{} }

// SetUsers replaces the user collection wholesale. No merging.
func (s *Store) SetUsers(users []gateway.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append([]gateway.User(nil), users...)
}

// SetOrders replaces the order collection and pagination wholesale.
func (s *Store) SetOrders(orders []gateway.Order, pg gateway.Pagination) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append([]gateway.Order(nil), orders...)
	s.pagination = pg
}

// Users returns a copy of the user collection.
func (s *Store) Users() []gateway.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]gateway.User(nil), s.users...)
}

// Orders returns a copy of the order collection and the last pagination.
func (s *Store) Orders() ([]gateway.Order, gateway.Pagination) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]gateway.Order(nil), s.orders...), s.pagination
}

// Pagination returns the last pagination the backend handed out.
func (s *Store) Pagination() gateway.Pagination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pagination
}

// UserByID looks up one user.
func (s *Store) UserByID(id string) (gateway.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return gateway.User{}, false
}

// OrderByNumber looks up one order.
func (s *Store) OrderByNumber(orderNumber string) (gateway.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.OrderNumber == orderNumber {
			return o, true
		}
	}
	return gateway.Order{}, false
}

// PatchUser applies a shallow field update to the one user matching id.
// Unknown field names and mistyped values are dropped silently; a missing
// id is a no-op. Field shapes are not validated.
func (s *Store) PatchUser(id string, fields map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		for k, v := range fields {
			switch k {
			case "username":
				if sv, ok := v.(string); ok {
					s.users[i].Username = sv
				}
			case "email":
				if sv, ok := v.(string); ok {
					s.users[i].Email = sv
				}
			case "isAdmin":
				if bv, ok := v.(bool); ok {
					s.users[i].IsAdmin = bv
				}
			case "isVerified":
				if bv, ok := v.(bool); ok {
					s.users[i].IsVerified = bv
				}
			}
		}
		return
	}
}

// PatchOrder applies a shallow field update to the one order matching
// orderNumber. Same silent-drop semantics as PatchUser.
func (s *Store) PatchOrder(orderNumber string, fields map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].OrderNumber != orderNumber {
			continue
		}
		for k, v := range fields {
			switch k {
			case "status":
				if sv, ok := v.(string); ok {
					s.orders[i].Status = sv
				}
			case "paymentMethod":
				if sv, ok := v.(string); ok {
					s.orders[i].PaymentMethod = sv
				}
			}
		}
		return
	}
}

// RemoveOrder deletes exactly the order matching orderNumber, if present.
func (s *Store) RemoveOrder(orderNumber string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].OrderNumber == orderNumber {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return
		}
	}
}
