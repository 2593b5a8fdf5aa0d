package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, testLogger())
}

func TestGetAllUsers(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/users", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"users": []map[string]any{
				{"_id": "u1", "username": "amelia", "email": "amelia@example.com", "isAdmin": false, "isVerified": true},
			},
		})
	})

	users, err := c.GetAllUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "u1", users[0].ID)
	assert.Equal(t, "amelia", users[0].Username)
	assert.False(t, users[0].IsAdmin)
	assert.True(t, users[0].IsVerified)
}

func TestGetAllOrdersQueryAndPagination(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/admin/all", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "10", q.Get("limit"))
		assert.Equal(t, "pending", q.Get("status"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"orders": []map[string]any{
				{"orderNumber": "ORD-1", "status": "pending"},
				{"orderNumber": "ORD-2", "status": "pending"},
				{"orderNumber": "ORD-3", "status": "pending"},
			},
			"pagination": map[string]any{
				"currentPage": 1, "totalPages": 2, "totalOrders": 15,
				"hasNext": true, "hasPrev": false,
			},
		})
	})

	orders, pg, err := c.GetAllOrders(context.Background(), ListOrdersParams{Page: 1, Status: "pending"})
	require.NoError(t, err)
	assert.Len(t, orders, 3)
	assert.Equal(t, Pagination{CurrentPage: 1, TotalPages: 2, TotalOrders: 15, HasPrev: false, HasNext: true}, pg)
}

func TestUpdateUserAdminStatusSendsFlag(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/users/u1/admin-status", r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&got)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "updated"})
	})

	err := c.UpdateUserAdminStatus(context.Background(), "u1", true)
	require.NoError(t, err)
	assert.Equal(t, true, got["isAdmin"])
}

func TestAPIErrorMessageIsVerbatim(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Order not found"})
	})

	err := c.DeleteOrder(context.Background(), "ORD-100")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Order not found", apiErr.Message)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestTransportErrorOnUnreachableBackend(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close() // nothing listens anymore

	c := NewClient(url, time.Second, testLogger())
	_, err := c.GetAllUsers(context.Background())
	require.Error(t, err)

	var te *TransportError
	assert.True(t, errors.As(err, &te))
}

func TestTransportErrorOnGarbageBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	})

	_, err := c.GetAllUsers(context.Background())
	var te *TransportError
	require.True(t, errors.As(err, &te))
}
