package view

import "github.com/prathamesh4949/Olcademyfrontend-sub002/internal/modules/catalog"

type ProductSize struct {
	Label string `json:"label"`
	Price string `json:"price"`
}

type ProductListItem struct {
	ID         string `json:"id"`
	Slug       string `json:"slug"`
	Name       string `json:"name"`
	Brand      string `json:"brand"`
	Collection string `json:"collection"`
	FromPrice  string `json:"fromPrice"`
	InStock    bool   `json:"inStock"`
	ImageKey   string `json:"imageKey"`
}

type ProductDetail struct {
	ProductListItem
	Description string        `json:"description"`
	Notes       catalog.Notes `json:"notes"`
	Sizes       []ProductSize `json:"sizes"`
	Tags        []string      `json:"tags"`
}

func ProductListItemFrom(p catalog.Product) ProductListItem {
	return ProductListItem{
		ID:         p.ID,
		Slug:       p.Slug,
		Name:       p.Name,
		Brand:      p.Brand,
		Collection: p.Collection,
		FromPrice:  MoneyFromCents(p.MinPriceCents(), p.Currency),
		InStock:    p.InStock,
		ImageKey:   p.ImageKey,
	}
}

func ProductDetailFrom(p catalog.Product) ProductDetail {
	sizes := make([]ProductSize, 0, len(p.Sizes))
	for _, s := range p.Sizes {
		sizes = append(sizes, ProductSize{
			Label: s.Label,
			Price: MoneyFromCents(s.PriceCents, p.Currency),
		})
	}
	return ProductDetail{
		ProductListItem: ProductListItemFrom(p),
		Description:     p.Description,
		Notes:           p.Notes,
		Sizes:           sizes,
		Tags:            p.Tags,
	}
}
