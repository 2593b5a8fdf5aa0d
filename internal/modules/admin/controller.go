package admin

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/gateway"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/shared/apperr"
)

// Tab is the active console view.
type Tab string

const (
	TabSummary Tab = "summary"
	TabUsers   Tab = "users"
	TabOrders  Tab = "orders"
)

// Controller answers the console's UI intents: tab switches, searches,
// filters, page changes and mutations. It owns the store exclusively
// together with its coordinator.
type Controller struct {
	gw      Gateway
	store   *Store
	coord   *Coordinator
	notices *Notices
	logger  *slog.Logger

	mu            sync.Mutex
	loadingUsers  bool
	loadingOrders bool
	usersErr      string
	ordersErr     string
	userCriteria  UserCriteria
	orderQuery    string
	statusFilter  string
	page          int
}

func NewController(gw Gateway, store *Store, coord *Coordinator, notices *Notices, logger *slog.Logger) *Controller {
	return &Controller{
		gw:      gw,
		store:   store,
		coord:   coord,
		notices: notices,
		logger:  logger,
		page:    1,
	}
}

// Coordinator exposes the mutation side of the controller.
func (d *Controller) Coordinator() *Coordinator { return d.coord }

// Notices exposes the transient message state.
func (d *Controller) Notices() *Notices { return d.notices }

// ActivateTab fetches what the view needs: users always, orders when the
// tab is orders or the summary. The two fetches are independent; a failure
// in one does not block the other.
func (d *Controller) ActivateTab(ctx context.Context, tab Tab) error {
	usersErr := d.RefreshUsers(ctx)

	var ordersErr error
	if tab == TabOrders || tab == TabSummary {
		ordersErr = d.RefreshOrders(ctx)
	}

	if usersErr != nil {
		return usersErr
	}
	return ordersErr
}

// RefreshUsers refetches the full user list and replaces the store slice.
func (d *Controller) RefreshUsers(ctx context.Context) error {
	d.mu.Lock()
	d.loadingUsers = true
	d.usersErr = ""
	d.mu.Unlock()

	users, err := d.gw.GetAllUsers(ctx)

	d.mu.Lock()
	d.loadingUsers = false
	if err != nil {
		d.usersErr = UserMessage(err)
	}
	d.mu.Unlock()

	if err != nil {
		d.logger.LogAttrs(ctx, slog.LevelWarn, "users_fetch_failed", slog.Any("err", err))
		return err
	}
	d.store.SetUsers(users)
	return nil
}

// RefreshOrders refetches the current page with the current status filter.
func (d *Controller) RefreshOrders(ctx context.Context) error {
	d.mu.Lock()
	d.loadingOrders = true
	d.ordersErr = ""
	page := d.page
	status := d.statusFilter
	d.mu.Unlock()

	orders, pg, err := d.gw.GetAllOrders(ctx, gateway.ListOrdersParams{
		Page:   page,
		Status: status,
	})

	d.mu.Lock()
	d.loadingOrders = false
	if err != nil {
		d.ordersErr = UserMessage(err)
	}
	d.mu.Unlock()

	if err != nil {
		d.logger.LogAttrs(ctx, slog.LevelWarn, "orders_fetch_failed", slog.Any("err", err))
		return err
	}
	d.store.SetOrders(orders, pg)
	return nil
}

// SetStatusFilter narrows the order fetch by status. The page always resets
// to 1 so a shorter result set can't leave the view on an out-of-range page.
func (d *Controller) SetStatusFilter(ctx context.Context, status string) error {
	d.mu.Lock()
	d.statusFilter = status
	d.page = 1
	d.mu.Unlock()
	return d.RefreshOrders(ctx)
}

// ChangePage moves to the requested page. Movement past the backend's
// HasPrev/HasNext flags is refused locally without a fetch.
func (d *Controller) ChangePage(ctx context.Context, page int) error {
	if page < 1 {
		return apperr.InvalidErr("Page must be 1 or higher.", nil)
	}

	pg := d.store.Pagination()
	d.mu.Lock()
	cur := d.page
	d.mu.Unlock()

	if page > cur && !pg.HasNext {
		return apperr.InvalidErr("There is no next page.", nil)
	}
	if page < cur && !pg.HasPrev {
		return apperr.InvalidErr("There is no previous page.", nil)
	}

	d.mu.Lock()
	d.page = page
	d.mu.Unlock()
	return d.RefreshOrders(ctx)
}

// SetUserSearch updates the transient user text query.
func (d *Controller) SetUserSearch(q string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.userCriteria.Query = q
}

// SetUserFilter updates the categorical user filter.
func (d *Controller) SetUserFilter(f UserFilter) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.userCriteria.Filter = f
}

// SetOrderSearch updates the transient order text query.
func (d *Controller) SetOrderSearch(q string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.orderQuery = q
}

// Users returns the current user projection.
func (d *Controller) Users() []gateway.User {
	d.mu.Lock()
	crit := d.userCriteria
	d.mu.Unlock()
	return ProjectUsers(d.store.Users(), crit)
}

// Orders returns the current order projection plus the authoritative
// pagination. Only the text stage applies here; status was already applied
// by the backend at fetch time.
func (d *Controller) Orders() ([]gateway.Order, gateway.Pagination) {
	d.mu.Lock()
	q := d.orderQuery
	d.mu.Unlock()
	orders, pg := d.store.Orders()
	return ProjectOrders(orders, q), pg
}

// Stats folds the current store contents into dashboard numbers.
func (d *Controller) Stats() Stats {
	orders, pg := d.store.Orders()
	return ComputeStats(d.store.Users(), orders, pg)
}

// ViewState is the loading/error/filter state a view needs to render.
type ViewState struct {
	LoadingUsers  bool       `json:"loadingUsers"`
	LoadingOrders bool       `json:"loadingOrders"`
	UsersError    string     `json:"usersError,omitempty"`
	OrdersError   string     `json:"ordersError,omitempty"`
	UserQuery     string     `json:"userQuery"`
	UserFilter    UserFilter `json:"userFilter"`
	OrderQuery    string     `json:"orderQuery"`
	StatusFilter  string     `json:"statusFilter"`
	Page          int        `json:"page"`
}

// State snapshots the transient view state.
func (d *Controller) State() ViewState {
	d.mu.Lock()
	defer d.mu.Unlock()
	f := d.userCriteria.Filter
	if f == "" {
		f = FilterAll
	}
	return ViewState{
		LoadingUsers:  d.loadingUsers,
		LoadingOrders: d.loadingOrders,
		UsersError:    d.usersErr,
		OrdersError:   d.ordersErr,
		UserQuery:     d.userCriteria.Query,
		UserFilter:    f,
		OrderQuery:    d.orderQuery,
		StatusFilter:  d.statusFilter,
		Page:          d.page,
	}
}
