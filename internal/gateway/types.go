package gateway

// Wire types mirror the backend API's JSON verbatim. The backend owns the
// schema; nothing here is validated or recomputed on this side.

type User struct {
	ID         string `json:"_id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	IsAdmin    bool   `json:"isAdmin"`
	IsVerified bool   `json:"isVerified"`
	CreatedAt  string `json:"createdAt"`
}

type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Pricing totals are whatever the backend computed. They are trusted as-is.
type Pricing struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

type Order struct {
	OrderNumber   string       `json:"orderNumber"`
	CustomerInfo  CustomerInfo `json:"customerInfo"`
	Items         []OrderItem  `json:"items"`
	Pricing       Pricing      `json:"pricing"`
	Status        string       `json:"status"`
	CreatedAt     string       `json:"createdAt"`
	PaymentMethod string       `json:"paymentMethod"`
}

// Pagination is the authoritative copy from the backend's last response.
// It is never derived locally.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalOrders int  `json:"totalOrders"`
	HasPrev     bool `json:"hasPrev"`
	HasNext     bool `json:"hasNext"`
}

// Order status values the backend hands out. The client forwards status
// updates literally and enforces no transition graph.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// KnownStatuses in display order.
var KnownStatuses = []string{
	StatusPending, StatusConfirmed, StatusProcessing,
	StatusShipped, StatusDelivered, StatusCancelled,
}

// ListOrdersParams maps to the backend's admin order listing query.
// Page size is fixed at 10 by the backend; Limit exists for the mock tool.
type ListOrdersParams struct {
	Page   int
	Limit  int
	Status string
	Email  string
}

// PageSize is the backend's fixed admin page size.
const PageSize = 10
