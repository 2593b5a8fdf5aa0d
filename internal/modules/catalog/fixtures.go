package catalog

// Fixtures is the built-in product catalog. It mirrors what the storefront
// ships with when no external fixture source is configured.
func Fixtures() []Product {
	return []Product{
		{
			ID: "p-001", Slug: "amber-oud-intense", Name: "Amber Oud Intense", Brand: "Maison Velour",
			Collection:  "unisex",
			Description: "A dense amber opening that settles into smoked oud and vanilla.",
			Notes: Notes{
				Top:   []string{"amber", "saffron"},
				Heart: []string{"oud", "rose"},
				Base:  []string{"vanilla", "musk"},
			},
			Sizes:    []Size{{Label: "50ml", PriceCents: 10900}, {Label: "100ml", PriceCents: 17900}},
			Currency: "USD", InStock: true, ImageKey: "products/amber-oud-intense.webp",
			Tags: []string{"oud", "evening", "bestseller"},
		},
		{
			ID: "p-002", Slug: "citrus-vetiver-sport", Name: "Citrus Vetiver Sport", Brand: "Maison Velour",
			Collection:  "men",
			Description: "Bitter grapefruit and crushed vetiver for daylight wear.",
			Notes: Notes{
				Top:   []string{"grapefruit", "bergamot"},
				Heart: []string{"vetiver", "ginger"},
				Base:  []string{"cedar"},
			},
			Sizes:    []Size{{Label: "50ml", PriceCents: 7900}, {Label: "100ml", PriceCents: 12900}},
			Currency: "USD", InStock: true, ImageKey: "products/citrus-vetiver-sport.webp",
			Tags: []string{"fresh", "daytime"},
		},
		{
			ID: "p-003", Slug: "white-gardenia-silk", Name: "White Gardenia Silk", Brand: "Fleur Atelier",
			Collection:  "women",
			Description: "Creamy gardenia over sandalwood, soft enough for the office.",
			Notes: Notes{
				Top:   []string{"pear", "neroli"},
				Heart: []string{"gardenia", "jasmine"},
				Base:  []string{"sandalwood"},
			},
			Sizes:    []Size{{Label: "30ml", PriceCents: 6500}, {Label: "75ml", PriceCents: 11500}},
			Currency: "USD", InStock: true, ImageKey: "products/white-gardenia-silk.webp",
			Tags: []string{"floral", "daytime", "bestseller"},
		},
		{
			ID: "p-004", Slug: "noir-tabac-royale", Name: "Noir Tabac Royale", Brand: "Fleur Atelier",
			Collection:  "men",
			Description: "Pipe tobacco, dark honey and a leather drydown.",
			Notes: Notes{
				Top:   []string{"honey", "rum"},
				Heart: []string{"tobacco leaf", "clove"},
				Base:  []string{"leather", "tonka"},
			},
			Sizes:    []Size{{Label: "100ml", PriceCents: 15900}},
			Currency: "USD", InStock: false, ImageKey: "products/noir-tabac-royale.webp",
			Tags: []string{"evening", "winter"},
		},
		{
			ID: "p-005", Slug: "rose-santal-no9", Name: "Rose Santal No. 9", Brand: "Maison Velour",
			Collection:  "women",
			Description: "Turkish rose folded into milky santal.",
			Notes: Notes{
				Top:   []string{"pink pepper"},
				Heart: []string{"turkish rose", "peony"},
				Base:  []string{"santal", "amber"},
			},
			Sizes:    []Size{{Label: "50ml", PriceCents: 9900}, {Label: "100ml", PriceCents: 16400}},
			Currency: "USD", InStock: true, ImageKey: "products/rose-santal-no9.webp",
			Tags: []string{"floral", "evening"},
		},
		{
			ID: "p-006", Slug: "sel-marin-azur", Name: "Sel Marin Azur", Brand: "Atelier Côte",
			Collection:  "unisex",
			Description: "Salt spray, driftwood and a clean white musk.",
			Notes: Notes{
				Top:   []string{"sea salt", "lemon"},
				Heart: []string{"driftwood", "sage"},
				Base:  []string{"white musk"},
			},
			Sizes:    []Size{{Label: "50ml", PriceCents: 8400}, {Label: "100ml", PriceCents: 13900}},
			Currency: "USD", InStock: true, ImageKey: "products/sel-marin-azur.webp",
			Tags: []string{"fresh", "summer"},
		},
		{
			ID: "p-007", Slug: "fig-cashmere-veil", Name: "Fig & Cashmere Veil", Brand: "Atelier Côte",
			Collection:  "unisex",
			Description: "Green fig leaf wrapped in cashmeran warmth.",
			Notes: Notes{
				Top:   []string{"fig leaf", "galbanum"},
				Heart: []string{"fig fruit", "iris"},
				Base:  []string{"cashmeran", "cream"},
			},
			Sizes:    []Size{{Label: "30ml", PriceCents: 5900}, {Label: "75ml", PriceCents: 9900}},
			Currency: "USD", InStock: true, ImageKey: "products/fig-cashmere-veil.webp",
			Tags: []string{"cozy", "autumn", "bestseller"},
		},
		{
			ID: "p-008", Slug: "discovery-set-classics", Name: "Discovery Set: Classics", Brand: "Maison Velour",
			Collection:  "gift",
			Description: "Five 8ml sprays of the house classics in a travel tin.",
			Notes:       Notes{},
			Sizes:       []Size{{Label: "5x8ml", PriceCents: 4900}},
			Currency:    "USD", InStock: true, ImageKey: "products/discovery-set-classics.webp",
			Tags: []string{"gift", "travel"},
		},
	}
}
