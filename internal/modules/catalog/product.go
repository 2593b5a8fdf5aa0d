package catalog

// Notes describe a fragrance pyramid.
type Notes struct {
	Top   []string `json:"top"`
	Heart []string `json:"heart"`
	Base  []string `json:"base"`
}

// Size is one purchasable bottle size.
type Size struct {
	Label      string `json:"label"` // e.g. "50ml"
	PriceCents int    `json:"priceCents"`
}

// Product is one catalog entry. The catalog is static fixture data: it is
// loaded once at startup and never mutated at runtime.
type Product struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Collection  string   `json:"collection"` // e.g. "men", "women", "unisex", "gift"
	Description string   `json:"description"`
	Notes       Notes    `json:"notes"`
	Sizes       []Size   `json:"sizes"`
	Currency    string   `json:"currency"`
	InStock     bool     `json:"inStock"`
	ImageKey    string   `json:"imageKey"`
	Tags        []string `json:"tags"`
}

// MinPriceCents is the cheapest size, used for listing and sorting.
func (p Product) MinPriceCents() int {
	if len(p.Sizes) == 0 {
		return 0
	}
	min := p.Sizes[0].PriceCents
	for _, s := range p.Sizes[1:] {
		if s.PriceCents < min {
			min = s.PriceCents
		}
	}
	return min
}

// SizeByLabel finds one size.
func (p Product) SizeByLabel(label string) (Size, bool) {
	for _, s := range p.Sizes {
		if s.Label == label {
			return s, true
		}
	}
	return Size{}, false
}
