package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/shared/apperr"
)

func TestShipmentSaveAndGet(t *testing.T) {
	s := NewShipmentStore()
	d := ShipmentDetails{
		Name:    "Amelia Hart",
		Email:   "amelia@example.com",
		Address: "12 Rue des Fleurs",
		City:    "Lyon",
		Country: "FR",
	}
	require.NoError(t, s.Save("sid", d))

	got, ok := s.Get("sid")
	require.True(t, ok)
	assert.Equal(t, d, got)

	s.Clear("sid")
	_, ok = s.Get("sid")
	assert.False(t, ok)
}

func TestShipmentSaveRejectsMissingRequiredFields(t *testing.T) {
	s := NewShipmentStore()
	err := s.Save("sid", ShipmentDetails{Email: "amelia@example.com"})
	require.Error(t, err)

	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Invalid, ae.Kind)
	assert.Contains(t, ae.Fields, "name")
	assert.Contains(t, ae.Fields, "address")
	assert.NotContains(t, ae.Fields, "email")

	_, saved := s.Get("sid")
	assert.False(t, saved, "invalid details must not be stored")
}

func TestShipmentIsSessionScoped(t *testing.T) {
	s := NewShipmentStore()
	require.NoError(t, s.Save("sid-a", ShipmentDetails{Name: "A", Email: "a@x.com", Address: "1 Way"}))

	_, ok := s.Get("sid-b")
	assert.False(t, ok)
}
