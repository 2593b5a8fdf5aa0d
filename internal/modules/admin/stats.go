package admin

import "github.com/prathamesh4949/Olcademyfrontend-sub002/internal/gateway"

// Stats are the dashboard summary numbers. They are recomputed as a pure
// fold over the current store contents on every call, never cached, so they
// are only as fresh as the last fetch.
//
// Revenue and the per-status counts cover only the loaded page of orders;
// TotalOrders comes from the backend pagination and may be larger.
type Stats struct {
	TotalUsers      int `json:"totalUsers"`
	AdminUsers      int `json:"adminUsers"`
	RegularUsers    int `json:"regularUsers"`
	VerifiedUsers   int `json:"verifiedUsers"`
	UnverifiedUsers int `json:"unverifiedUsers"`

	TotalOrders    int            `json:"totalOrders"`
	LoadedOrders   int            `json:"loadedOrders"`
	OrdersByStatus map[string]int `json:"ordersByStatus"`
	Revenue        float64        `json:"revenue"`
}

// ComputeStats folds the given collections into summary numbers.
func ComputeStats(users []gateway.User, orders []gateway.Order, pg gateway.Pagination) Stats {
	st := Stats{
		TotalUsers:     len(users),
		TotalOrders:    pg.TotalOrders,
		LoadedOrders:   len(orders),
		OrdersByStatus: make(map[string]int),
	}
	for _, u := range users {
		if u.IsAdmin {
			st.AdminUsers++
		} else {
			st.RegularUsers++
		}
		if u.IsVerified {
			st.VerifiedUsers++
		} else {
			st.UnverifiedUsers++
		}
	}
	for _, o := range orders {
		st.OrdersByStatus[o.Status]++
		st.Revenue += o.Pricing.Total
	}
	return st
}
