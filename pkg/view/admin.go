package view

import (
	"fmt"

	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/gateway"
)

type AdminUserRow struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	IsAdmin    bool   `json:"isAdmin"`
	IsVerified bool   `json:"isVerified"`
	CreatedAt  string `json:"createdAt"`
}

func AdminUserRowFrom(u gateway.User) AdminUserRow {
	return AdminUserRow(u)
}

type AdminOrderRow struct {
	OrderNumber   string `json:"orderNumber"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	ItemCount     int    `json:"itemCount"`
	Total         string `json:"total"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
	PaymentMethod string `json:"paymentMethod"`
}

func AdminOrderRowFrom(o gateway.Order) AdminOrderRow {
	count := 0
	for _, it := range o.Items {
		count += it.Quantity
	}
	return AdminOrderRow{
		OrderNumber:   o.OrderNumber,
		CustomerName:  o.CustomerInfo.Name,
		CustomerEmail: o.CustomerInfo.Email,
		ItemCount:     count,
		Total:         fmt.Sprintf("%.2f", o.Pricing.Total),
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
		PaymentMethod: o.PaymentMethod,
	}
}

func AdminUserRows(users []gateway.User) []AdminUserRow {
	rows := make([]AdminUserRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, AdminUserRowFrom(u))
	}
	return rows
}

func AdminOrderRows(orders []gateway.Order) []AdminOrderRow {
	rows := make([]AdminOrderRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, AdminOrderRowFrom(o))
	}
	return rows
}
