package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client talks to the backend user/order API. All durable state lives behind
// it; this service only ever holds fetched projections.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type usersResponse struct {
	envelope
	Users []User `json:"users"`
}

type ordersResponse struct {
	envelope
	Orders     []Order    `json:"orders"`
	Pagination Pagination `json:"pagination"`
}

// GetAllUsers fetches every user. The backend does not paginate this list.
func (c *Client) GetAllUsers(ctx context.Context) ([]User, error) {
	var out usersResponse
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// UpdateUserAdminStatus sets the admin flag for one user.
func (c *Client) UpdateUserAdminStatus(ctx context.Context, userID string, isAdmin bool) error {
	body := map[string]any{"isAdmin": isAdmin}
	path := "/api/users/" + url.PathEscape(userID) + "/admin-status"
	return c.do(ctx, http.MethodPut, path, body, &envelope{})
}

// GetAllOrders fetches one page of orders, optionally narrowed by status or
// customer email. Status filtering is server-side only; callers must not
// re-filter by status locally.
func (c *Client) GetAllOrders(ctx context.Context, p ListOrdersParams) ([]Order, Pagination, error) {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	limit := p.Limit
	if limit <= 0 {
		limit = PageSize
	}
	q.Set("limit", strconv.Itoa(limit))
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.Email != "" {
		q.Set("email", p.Email)
	}

	var out ordersResponse
	if err := c.do(ctx, http.MethodGet, "/api/orders/admin/all?"+q.Encode(), nil, &out); err != nil {
		return nil, Pagination{}, err
	}
	return out.Orders, out.Pagination, nil
}

// UpdateOrderStatus forwards the literal status value. Whether the
// transition is legal is the backend's call.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderNumber, status string) error {
	body := map[string]any{"status": status}
	path := "/api/orders/admin/" + url.PathEscape(orderNumber) + "/status"
	return c.do(ctx, http.MethodPut, path, body, &envelope{})
}

// DeleteOrder permanently removes an order.
func (c *Client) DeleteOrder(ctx context.Context, orderNumber string) error {
	path := "/api/orders/admin/" + url.PathEscape(orderNumber)
	return c.do(ctx, http.MethodDelete, path, nil, &envelope{})
}

type envelopeCarrier interface {
	env() envelope
}

func (e envelope) env() envelope { return e }

func (c *Client) do(ctx context.Context, method, path string, body any, out envelopeCarrier) error {
	op := method + " " + path

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Op: op, Err: err}
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.LogAttrs(ctx, slog.LevelError, "backend_unreachable",
			slog.String("op", op),
			slog.Any("err", err),
		)
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}

	c.logger.LogAttrs(ctx, slog.LevelDebug, "backend_call",
		slog.String("op", op),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if env := out.env(); !env.Success {
		return &APIError{Status: resp.StatusCode, Message: env.Message}
	}
	return nil
}
