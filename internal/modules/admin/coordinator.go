package admin

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/gateway"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/shared/apperr"
)

// Gateway is the slice of the backend API the admin workflow consumes.
// *gateway.Client satisfies it; tests plug in a fake.
type Gateway interface {
	GetAllUsers(ctx context.Context) ([]gateway.User, error)
	UpdateUserAdminStatus(ctx context.Context, userID string, isAdmin bool) error
	GetAllOrders(ctx context.Context, p gateway.ListOrdersParams) ([]gateway.Order, gateway.Pagination, error)
	UpdateOrderStatus(ctx context.Context, orderNumber, status string) error
	DeleteOrder(ctx context.Context, orderNumber string) error
}

var (
	// ErrMutationInFlight: a mutation for the same entity id is still
	// Pending. The caller gets explicit feedback, never a silent drop.
	ErrMutationInFlight = errors.New("another change for this record is still in progress")

	// ErrConfirmationRequired: order deletion is irreversible and must be
	// confirmed by the caller first.
	ErrConfirmationRequired = errors.New("order deletion requires confirmation")
)

// genericFailureMsg is shown for transport-level failures. The real cause
// only goes to the log.
const genericFailureMsg = "Could not reach the server. Please try again."

// Coordinator serializes mutations per entity id: Idle -> Pending -> Idle.
// At most one mutation may be Pending for a given id; mutations for
// different ids run independently. Every path returns the id to Idle.
type Coordinator struct {
	gw      Gateway
	store   *Store
	notices *Notices
	logger  *slog.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewCoordinator(gw Gateway, store *Store, notices *Notices, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		gw:       gw,
		store:    store,
		notices:  notices,
		logger:   logger,
		inflight: make(map[string]struct{}),
	}
}

func (c *Coordinator) begin(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.inflight[id]; busy {
		return ErrMutationInFlight
	}
	c.inflight[id] = struct{}{}
	return nil
}

func (c *Coordinator) end(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inflight, id)
}

// ToggleAdminStatus flips the admin flag of one user: the gateway is asked
// for the negation of the pre-call value, and only a successful response
// patches the local record.
func (c *Coordinator) ToggleAdminStatus(ctx context.Context, userID string) error {
	u, ok := c.store.UserByID(userID)
	if !ok {
		return apperr.NotFoundErr("User not found.")
	}

	if err := c.begin("user:" + userID); err != nil {
		return err
	}
	defer c.end("user:" + userID)

	next := !u.IsAdmin
	if err := c.gw.UpdateUserAdminStatus(ctx, userID, next); err != nil {
		c.fail(ctx, "toggle_admin_status", userID, err)
		return err
	}

	c.store.PatchUser(userID, map[string]any{"isAdmin": next})
	c.notices.Publish(NoticeSuccess, "User admin status updated successfully")
	return nil
}

// UpdateOrderStatus forwards newStatus literally: no check that it differs
// from the current value, no transition graph. On success only the status
// field is patched.
func (c *Coordinator) UpdateOrderStatus(ctx context.Context, orderNumber, newStatus string) error {
	if err := c.begin("order:" + orderNumber); err != nil {
		return err
	}
	defer c.end("order:" + orderNumber)

	if err := c.gw.UpdateOrderStatus(ctx, orderNumber, newStatus); err != nil {
		c.fail(ctx, "update_order_status", orderNumber, err)
		return err
	}

	c.store.PatchOrder(orderNumber, map[string]any{"status": newStatus})
	c.notices.Publish(NoticeSuccess, "Order status updated successfully")
	return nil
}

// DeleteOrder removes an order permanently. The confirmed flag is the
// explicit user confirmation step; without it the gateway is never called.
func (c *Coordinator) DeleteOrder(ctx context.Context, orderNumber string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}

	if err := c.begin("order:" + orderNumber); err != nil {
		return err
	}
	defer c.end("order:" + orderNumber)

	if err := c.gw.DeleteOrder(ctx, orderNumber); err != nil {
		c.fail(ctx, "delete_order", orderNumber, err)
		return err
	}

	c.store.RemoveOrder(orderNumber)
	c.notices.Publish(NoticeSuccess, "Order deleted successfully")
	return nil
}

// fail publishes the user-facing message for err and logs the cause.
// Application-level messages from the backend are surfaced verbatim;
// transport failures get the generic message.
func (c *Coordinator) fail(ctx context.Context, op, id string, err error) {
	c.logger.LogAttrs(ctx, slog.LevelWarn, "mutation_failed",
		slog.String("op", op),
		slog.String("entity_id", id),
		slog.Any("err", err),
	)
	c.notices.Publish(NoticeError, UserMessage(err))
}

// UserMessage maps a gateway error to what the console shows.
func UserMessage(err error) string {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return genericFailureMsg
}
