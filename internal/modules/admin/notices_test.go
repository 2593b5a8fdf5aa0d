package admin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoticeSelfClearsAfterTTL(t *testing.T) {
	n := NewNotices(40 * time.Millisecond)
	n.Publish(NoticeSuccess, "saved")

	cur, ok := n.Current()
	require.True(t, ok)
	assert.Equal(t, "saved", cur.Message)
	assert.Equal(t, NoticeSuccess, cur.Kind)

	assert.Eventually(t, func() bool {
		_, ok := n.Current()
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestStaleTimerDoesNotClearNewerNotice(t *testing.T) {
	n := NewNotices(50 * time.Millisecond)
	n.Publish(NoticeError, "first")
	time.Sleep(30 * time.Millisecond)
	n.Publish(NoticeSuccess, "second")

	// first's timer fires around 50ms; second must survive it
	time.Sleep(35 * time.Millisecond)
	cur, ok := n.Current()
	require.True(t, ok)
	assert.Equal(t, "second", cur.Message)

	assert.Eventually(t, func() bool {
		_, ok := n.Current()
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestZeroTTLFallsBackToDefault(t *testing.T) {
	n := NewNotices(0)
	assert.Equal(t, DefaultNoticeTTL, n.ttl)
}
