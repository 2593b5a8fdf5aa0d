package admin

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/gateway"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newCoordinator(gw Gateway, store *Store, ttl time.Duration) (*Coordinator, *Notices) {
	notices := NewNotices(ttl)
	return NewCoordinator(gw, store, notices, testLogger()), notices
}

func TestToggleAdminStatusSuccess(t *testing.T) {
	gw := &fakeGateway{}
	store := NewStore()
	store.SetUsers([]gateway.User{{ID: "u1", IsAdmin: false}})
	coord, notices := newCoordinator(gw, store, 40*time.Millisecond)

	require.NoError(t, coord.ToggleAdminStatus(context.Background(), "u1"))

	u, _ := store.UserByID("u1")
	assert.True(t, u.IsAdmin)
	assert.True(t, gw.lastAdminFlag)

	cur, ok := notices.Current()
	require.True(t, ok)
	assert.Equal(t, NoticeSuccess, cur.Kind)
	assert.Equal(t, "User admin status updated successfully", cur.Message)

	// the toast clears on its own
	assert.Eventually(t, func() bool {
		_, ok := notices.Current()
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestToggleAdminStatusFailureLeavesStateUntouched(t *testing.T) {
	gw := &fakeGateway{mutateErr: &gateway.APIError{Status: 403, Message: "Not allowed"}}
	store := NewStore()
	store.SetUsers([]gateway.User{{ID: "u1", IsAdmin: true}})
	coord, notices := newCoordinator(gw, store, time.Minute)

	err := coord.ToggleAdminStatus(context.Background(), "u1")
	require.Error(t, err)

	u, _ := store.UserByID("u1")
	assert.True(t, u.IsAdmin, "failed mutation must not patch the store")

	cur, ok := notices.Current()
	require.True(t, ok)
	assert.Equal(t, NoticeError, cur.Kind)
	assert.Equal(t, "Not allowed", cur.Message, "backend message surfaces verbatim")
}

func TestToggleAdminStatusUnknownUser(t *testing.T) {
	gw := &fakeGateway{}
	coord, _ := newCoordinator(gw, NewStore(), time.Minute)

	err := coord.ToggleAdminStatus(context.Background(), "ghost")
	require.Error(t, err)
	assert.Zero(t, gw.adminCalls, "gateway must not be called for unknown ids")
}

func TestConcurrentToggleSameIDRejectedWithFeedback(t *testing.T) {
	gw := &fakeGateway{release: make(chan struct{})}
	store := NewStore()
	store.SetUsers([]gateway.User{{ID: "u1"}})
	coord, _ := newCoordinator(gw, store, time.Minute)

	var wg sync.WaitGroup
	wg.Add(1)
	firstDone := make(chan error, 1)
	go func() {
		defer wg.Done()
		firstDone <- coord.ToggleAdminStatus(context.Background(), "u1")
	}()

	// wait until the first call is inside the gateway
	require.Eventually(t, func() bool {
		gw.mu.Lock()
		defer gw.mu.Unlock()
		return gw.adminCalls == 1
	}, time.Second, 5*time.Millisecond)

	err := coord.ToggleAdminStatus(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrMutationInFlight)

	close(gw.release)
	wg.Wait()
	require.NoError(t, <-firstDone)

	gw.mu.Lock()
	defer gw.mu.Unlock()
	assert.Equal(t, 1, gw.adminCalls, "at most one in-flight gateway call per id")
}

func TestMutationsForDistinctIDsMayOverlap(t *testing.T) {
	gw := &fakeGateway{}
	store := NewStore()
	store.SetOrders([]gateway.Order{{OrderNumber: "ORD-1"}, {OrderNumber: "ORD-2"}}, gateway.Pagination{})
	coord, _ := newCoordinator(gw, store, time.Minute)

	require.NoError(t, coord.UpdateOrderStatus(context.Background(), "ORD-1", "shipped"))
	require.NoError(t, coord.UpdateOrderStatus(context.Background(), "ORD-2", "cancelled"))
	assert.Equal(t, 2, gw.statusCalls)
}

func TestUpdateOrderStatusForwardsLiterally(t *testing.T) {
	gw := &fakeGateway{}
	store := NewStore()
	store.SetOrders([]gateway.Order{{OrderNumber: "ORD-1", Status: "delivered"}}, gateway.Pagination{})
	coord, _ := newCoordinator(gw, store, time.Minute)

	// delivered -> pending is permitted; there is no transition graph here
	require.NoError(t, coord.UpdateOrderStatus(context.Background(), "ORD-1", "pending"))
	assert.Equal(t, "pending", gw.lastStatus)

	o, _ := store.OrderByNumber("ORD-1")
	assert.Equal(t, "pending", o.Status)
}

func TestDeleteOrderRequiresConfirmation(t *testing.T) {
	gw := &fakeGateway{}
	store := NewStore()
	store.SetOrders([]gateway.Order{{OrderNumber: "ORD-100"}}, gateway.Pagination{})
	coord, _ := newCoordinator(gw, store, time.Minute)

	err := coord.DeleteOrder(context.Background(), "ORD-100", false)
	assert.ErrorIs(t, err, ErrConfirmationRequired)
	assert.Zero(t, gw.deleteCalls)

	require.NoError(t, coord.DeleteOrder(context.Background(), "ORD-100", true))
	orders, _ := store.Orders()
	assert.Empty(t, orders)
}

func TestDeleteOrderFailureKeepsRecordAndSurfacesMessage(t *testing.T) {
	gw := &fakeGateway{mutateErr: &gateway.APIError{Status: 404, Message: "Order not found"}}
	store := NewStore()
	store.SetOrders([]gateway.Order{{OrderNumber: "ORD-100"}}, gateway.Pagination{})
	coord, notices := newCoordinator(gw, store, time.Minute)

	err := coord.DeleteOrder(context.Background(), "ORD-100", true)
	require.Error(t, err)

	_, stillThere := store.OrderByNumber("ORD-100")
	assert.True(t, stillThere)

	cur, ok := notices.Current()
	require.True(t, ok)
	assert.Equal(t, "Order not found", cur.Message)
}

func TestTransportFailureGetsGenericMessage(t *testing.T) {
	gw := &fakeGateway{mutateErr: &gateway.TransportError{Op: "PUT /x", Err: errors.New("connection refused")}}
	store := NewStore()
	store.SetOrders([]gateway.Order{{OrderNumber: "ORD-1"}}, gateway.Pagination{})
	coord, notices := newCoordinator(gw, store, time.Minute)

	require.Error(t, coord.UpdateOrderStatus(context.Background(), "ORD-1", "shipped"))

	cur, ok := notices.Current()
	require.True(t, ok)
	assert.Equal(t, genericFailureMsg, cur.Message)
	assert.NotContains(t, cur.Message, "connection refused")
}

func TestPendingAlwaysReturnsToIdle(t *testing.T) {
	gw := &fakeGateway{mutateErr: errors.New("boom")}
	store := NewStore()
	store.SetOrders([]gateway.Order{{OrderNumber: "ORD-1"}}, gateway.Pagination{})
	coord, _ := newCoordinator(gw, store, time.Minute)

	require.Error(t, coord.UpdateOrderStatus(context.Background(), "ORD-1", "shipped"))

	// a failed mutation must not leave the id stuck in Pending
	gw.mutateErr = nil
	require.NoError(t, coord.UpdateOrderStatus(context.Background(), "ORD-1", "shipped"))
}
