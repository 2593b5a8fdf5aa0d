package shop

import (
	"strings"
	"sync"

	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/shared/apperr"
)

// ShipmentDetails is the checkout-adjacent shipping form, persisted per
// session so a shopper can leave checkout and come back.
type ShipmentDetails struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone"`
	Address    string `json:"address" binding:"required"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// ShipmentStore keeps one shipment record per session.
type ShipmentStore struct {
	mu      sync.Mutex
	records map[string]ShipmentDetails
}

func NewShipmentStore() *ShipmentStore {
	return &ShipmentStore{records: make(map[string]ShipmentDetails)}
}

// Save validates the minimum required fields and stores the record.
func (s *ShipmentStore) Save(sessionID string, d ShipmentDetails) error {
	fields := map[string]string{}
	if strings.TrimSpace(d.Name) == "" {
		fields["name"] = "Name is required."
	}
	if strings.TrimSpace(d.Email) == "" {
		fields["email"] = "Email is required."
	}
	if strings.TrimSpace(d.Address) == "" {
		fields["address"] = "Address is required."
	}
	if len(fields) > 0 {
		return apperr.InvalidErr("Shipment details are incomplete.", fields)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[sessionID] = d
	return nil
}

// Get returns the session's saved shipment details.
func (s *ShipmentStore) Get(sessionID string) (ShipmentDetails, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.records[sessionID]
	return d, ok
}

// Clear forgets the session's shipment details.
func (s *ShipmentStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, sessionID)
}
