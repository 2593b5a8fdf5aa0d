package admin

import (
	"strings"

	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/gateway"
)

// UserFilter is the categorical user filter from the console UI.
type UserFilter string

const (
	FilterAll        UserFilter = "all"
	FilterAdmin      UserFilter = "admin"
	FilterRegular    UserFilter = "regular"
	FilterVerified   UserFilter = "verified"
	FilterUnverified UserFilter = "unverified"
)

// UserCriteria is transient UI state, never persisted.
type UserCriteria struct {
	Query  string
	Filter UserFilter
}

// ProjectUsers returns the users matching both the text query (username or
// email, case-insensitive contains) and the categorical filter. The input
// slice is never mutated.
func ProjectUsers(users []gateway.User, c UserCriteria) []gateway.User {
	q := strings.ToLower(strings.TrimSpace(c.Query))
	out := make([]gateway.User, 0, len(users))
	for _, u := range users {
		if q != "" &&
			!strings.Contains(strings.ToLower(u.Username), q) &&
			!strings.Contains(strings.ToLower(u.Email), q) {
			continue
		}
		if !matchesUserFilter(u, c.Filter) {
			continue
		}
		out = append(out, u)
	}
	return out
}

func matchesUserFilter(u gateway.User, f UserFilter) bool {
	switch f {
	case "", FilterAll:
		return true
	case FilterAdmin:
		return u.IsAdmin
	case FilterRegular:
		return !u.IsAdmin
	case FilterVerified:
		return u.IsVerified
	case FilterUnverified:
		return !u.IsVerified
	default:
		return true
	}
}

// ProjectOrders returns the orders whose customer email, order number, or
// customer name contains the query, case-insensitively. Status is never
// inspected here: status narrowing happens on the backend at fetch time.
func ProjectOrders(orders []gateway.Order, query string) []gateway.Order {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]gateway.Order, 0, len(orders))
	for _, o := range orders {
		if q != "" &&
			!strings.Contains(strings.ToLower(o.CustomerInfo.Email), q) &&
			!strings.Contains(strings.ToLower(o.OrderNumber), q) &&
			!strings.Contains(strings.ToLower(o.CustomerInfo.Name), q) {
			continue
		}
		out = append(out, o)
	}
	return out
}
