package sessioncookie

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := New([]byte("secret"), "sf_session", false, time.Hour)

	v := c.Encode("abc-123")
	id, err := c.Decode(v)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", id)
}

func TestDecodeRejectsTamperedValue(t *testing.T) {
	c := New([]byte("secret"), "sf_session", false, time.Hour)

	v := c.Encode("abc-123")
	_, err := c.Decode("zzz-999." + v[len("abc-123."):])
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestDecodeRejectsWrongSecret(t *testing.T) {
	a := New([]byte("secret-a"), "sf_session", false, time.Hour)
	b := New([]byte("secret-b"), "sf_session", false, time.Hour)

	_, err := b.Decode(a.Encode("abc-123"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestDecodeRejectsMalformedValue(t *testing.T) {
	c := New([]byte("secret"), "sf_session", false, time.Hour)
	for _, v := range []string{"", "no-dot", ".sig", "a.b.c"} {
		_, err := c.Decode(v)
		assert.Error(t, err, "value %q", v)
	}
}
