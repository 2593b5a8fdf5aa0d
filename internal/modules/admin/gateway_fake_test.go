package admin

import (
	"context"
	"sync"

	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/gateway"
)

// fakeGateway records calls and serves canned responses. The optional
// release channel holds mutation calls open so tests can overlap them.
type fakeGateway struct {
	mu sync.Mutex

	users      []gateway.User
	orders     []gateway.Order
	pagination gateway.Pagination

	usersErr  error
	ordersErr error
	mutateErr error

	usersCalls  int
	ordersCalls int
	adminCalls  int
	statusCalls int
	deleteCalls int

	lastOrdersParams gateway.ListOrdersParams
	lastAdminFlag    bool
	lastStatus       string

	release chan struct{}
}

func (f *fakeGateway) GetAllUsers(ctx context.Context) ([]gateway.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.usersCalls++
	if f.usersErr != nil {
		return nil, f.usersErr
	}
	return append([]gateway.User(nil), f.users...), nil
}

func (f *fakeGateway) GetAllOrders(ctx context.Context, p gateway.ListOrdersParams) ([]gateway.Order, gateway.Pagination, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ordersCalls++
	f.lastOrdersParams = p
	if f.ordersErr != nil {
		return nil, gateway.Pagination{}, f.ordersErr
	}
	return append([]gateway.Order(nil), f.orders...), f.pagination, nil
}

func (f *fakeGateway) UpdateUserAdminStatus(ctx context.Context, userID string, isAdmin bool) error {
	f.mu.Lock()
	f.adminCalls++
	f.lastAdminFlag = isAdmin
	err := f.mutateErr
	release := f.release
	f.mu.Unlock()

	if release != nil {
		<-release
	}
	return err
}

func (f *fakeGateway) UpdateOrderStatus(ctx context.Context, orderNumber, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusCalls++
	f.lastStatus = status
	return f.mutateErr
}

func (f *fakeGateway) DeleteOrder(ctx context.Context, orderNumber string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	return f.mutateErr
}
