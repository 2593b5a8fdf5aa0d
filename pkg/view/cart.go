package view

import "github.com/prathamesh4949/Olcademyfrontend-sub002/internal/modules/shop"

type CartLine struct {
	ProductID string `json:"productId"`
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	LineTotal string `json:"lineTotal"`
	ImageKey  string `json:"imageKey"`
}

type CartPage struct {
	Items    []CartLine `json:"items"`
	Count    int        `json:"count"`
	Subtotal string     `json:"subtotal"`
}

func CartPageFrom(cart shop.Cart, currency string) CartPage {
	lines := make([]CartLine, 0, len(cart.Items))
	for _, it := range cart.Items {
		cur := it.Currency
		if cur == "" {
			cur = currency
		}
		lines = append(lines, CartLine{
			ProductID: it.ProductID,
			Slug:      it.Slug,
			Name:      it.Name,
			Size:      it.Size,
			Quantity:  it.Quantity,
			UnitPrice: MoneyFromCents(it.PriceCents, cur),
			LineTotal: MoneyFromCents(it.LineTotalCents(), cur),
			ImageKey:  it.ImageKey,
		})
	}
	return CartPage{
		Items:    lines,
		Count:    cart.Count(),
		Subtotal: MoneyFromCents(cart.SubtotalCents(), currency),
	}
}
