// mockbackend serves the backend user/order API contract with seed data so
// the storefront console can be developed without the real backend.
//
// Usage:
//
//	go run ./cmd/tools/mockbackend -addr :5000 -orders 35
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/gateway"
)

type backend struct {
	mu     sync.Mutex
	users  []gateway.User
	orders []gateway.Order
}

func main() {
	addr := flag.String("addr", ":5000", "listen address")
	orderCount := flag.Int("orders", 35, "number of seed orders")
	userCount := flag.Int("users", 12, "number of seed users")
	flag.Parse()

	b := &backend{
		users:  seedUsers(*userCount),
		orders: seedOrders(*orderCount),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/users", b.getUsers)
	mux.HandleFunc("PUT /api/users/{id}/admin-status", b.updateAdminStatus)
	mux.HandleFunc("GET /api/orders/admin/all", b.getOrders)
	mux.HandleFunc("PUT /api/orders/admin/{orderNumber}/status", b.updateOrderStatus)
	mux.HandleFunc("DELETE /api/orders/admin/{orderNumber}", b.deleteOrder)

	log.Printf("mock backend listening on %s (%d users, %d orders)", *addr, *userCount, *orderCount)
	log.Fatal(http.ListenAndServe(*addr, mux))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func fail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "message": msg})
}

func (b *backend) getUsers(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "users": b.users})
}

func (b *backend) updateAdminStatus(w http.ResponseWriter, r *http.Request) {
	var in struct {
		IsAdmin bool `json:"isAdmin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id := r.PathValue("id")
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.users {
		if b.users[i].ID == id {
			b.users[i].IsAdmin = in.IsAdmin
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "User admin status updated"})
			return
		}
	}
	fail(w, http.StatusNotFound, "User not found")
}

func (b *backend) getOrders(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = gateway.PageSize
	}
	status := r.URL.Query().Get("status")
	email := strings.ToLower(r.URL.Query().Get("email"))

	b.mu.Lock()
	defer b.mu.Unlock()

	filtered := make([]gateway.Order, 0, len(b.orders))
	for _, o := range b.orders {
		if status != "" && o.Status != status {
			continue
		}
		if email != "" && !strings.Contains(strings.ToLower(o.CustomerInfo.Email), email) {
			continue
		}
		filtered = append(filtered, o)
	}

	total := len(filtered)
	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"orders":  filtered[start:end],
		"pagination": gateway.Pagination{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalOrders: total,
			HasPrev:     page > 1,
			HasNext:     page < totalPages,
		},
	})
}

func (b *backend) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Status == "" {
		fail(w, http.StatusBadRequest, "Status is required")
		return
	}

	num := r.PathValue("orderNumber")
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.orders {
		if b.orders[i].OrderNumber == num {
			b.orders[i].Status = in.Status
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Order status updated"})
			return
		}
	}
	fail(w, http.StatusNotFound, "Order not found")
}

func (b *backend) deleteOrder(w http.ResponseWriter, r *http.Request) {
	num := r.PathValue("orderNumber")
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.orders {
		if b.orders[i].OrderNumber == num {
			b.orders = append(b.orders[:i], b.orders[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Order deleted"})
			return
		}
	}
	fail(w, http.StatusNotFound, "Order not found")
}

var firstNames = []string{"amelia", "bharat", "chloe", "diego", "esin", "farah", "gustav", "hana", "idris", "jonas", "kavya", "lena"}

func seedUsers(n int) []gateway.User {
	users := make([]gateway.User, 0, n)
	for i := 0; i < n; i++ {
		name := firstNames[i%len(firstNames)]
		users = append(users, gateway.User{
			ID:         uuid.NewString(),
			Username:   fmt.Sprintf("%s%02d", name, i),
			Email:      fmt.Sprintf("%s%02d@example.com", name, i),
			IsAdmin:    i == 0,
			IsVerified: i%3 != 2,
			CreatedAt:  time.Now().AddDate(0, 0, -i).Format(time.RFC3339),
		})
	}
	return users
}

func seedOrders(n int) []gateway.Order {
	statuses := gateway.KnownStatuses
	orders := make([]gateway.Order, 0, n)
	for i := 0; i < n; i++ {
		name := firstNames[i%len(firstNames)]
		sub := float64(40 + i*7)
		tax := sub * 0.08
		ship := 5.0
		orders = append(orders, gateway.Order{
			OrderNumber: fmt.Sprintf("ORD-%04d", 1000+i),
			CustomerInfo: gateway.CustomerInfo{
				Name:  strings.ToUpper(name[:1]) + name[1:],
				Email: fmt.Sprintf("%s%02d@example.com", name, i),
			},
			Items: []gateway.OrderItem{
				{Name: "Amber Oud Intense 50ml", Quantity: 1 + i%2, Price: sub / float64(1+i%2)},
			},
			Pricing: gateway.Pricing{
				Subtotal: sub,
				Tax:      tax,
				Shipping: ship,
				Total:    sub + tax + ship,
			},
			Status:        statuses[i%len(statuses)],
			CreatedAt:     time.Now().AddDate(0, 0, -i).Format(time.RFC3339),
			PaymentMethod: []string{"card", "paypal", "cod"}[i%3],
		})
	}
	return orders
}
