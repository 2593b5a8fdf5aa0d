package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/shared/slug"
)

// Query narrows and orders a catalog listing. Zero value lists everything.
type Query struct {
	Text        string // matches name, brand, notes, tags
	Collection  string // men|women|unisex|gift, empty for all
	Tag         string
	InStockOnly bool
	Sort        string // price_asc | price_desc | name
}

// Service serves read-only catalog lookups over a fixed product set.
type Service struct {
	products []Product
	bySlug   map[string]int
}

func NewService(products []Product) *Service {
	s := &Service{
		products: append([]Product(nil), products...),
		bySlug:   make(map[string]int, len(products)),
	}
	for i, p := range s.products {
		s.bySlug[p.Slug] = i
	}
	return s
}

// Load decodes a fixture JSON document from src and builds a Service.
// A nil src falls back to the embedded fixtures.
func Load(ctx context.Context, src Source) (*Service, error) {
	if src == nil {
		return NewService(Fixtures()), nil
	}
	r, err := src.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog fixtures: %w", err)
	}
	defer r.Close()

	var products []Product
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode catalog fixtures: %w", err)
	}
	// External fixture files may omit slugs; derive them here so routing
	// works the same as with the embedded set.
	for i := range products {
		if products[i].Slug == "" {
			products[i].Slug = slug.FromName(products[i].Name)
		}
	}
	return NewService(products), nil
}

// List applies the query as a pure projection over the product set.
func (s *Service) List(q Query) []Product {
	text := strings.ToLower(strings.TrimSpace(q.Text))
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if q.InStockOnly && !p.InStock {
			continue
		}
		if q.Collection != "" && p.Collection != q.Collection {
			continue
		}
		if q.Tag != "" && !hasTag(p, q.Tag) {
			continue
		}
		if text != "" && !matchesText(p, text) {
			continue
		}
		out = append(out, p)
	}

	switch q.Sort {
	case "price_asc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].MinPriceCents() < out[j].MinPriceCents() })
	case "price_desc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].MinPriceCents() > out[j].MinPriceCents() })
	case "name":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	}
	return out
}

// Get finds one product by slug.
func (s *Service) Get(slug string) (Product, bool) {
	i, ok := s.bySlug[slug]
	if !ok {
		return Product{}, false
	}
	return s.products[i], true
}

// GetByID finds one product by id.
func (s *Service) GetByID(id string) (Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func hasTag(p Product, tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func matchesText(p Product, text string) bool {
	if strings.Contains(strings.ToLower(p.Name), text) ||
		strings.Contains(strings.ToLower(p.Brand), text) {
		return true
	}
	for _, group := range [][]string{p.Notes.Top, p.Notes.Heart, p.Notes.Base, p.Tags} {
		for _, n := range group {
			if strings.Contains(strings.ToLower(n), text) {
				return true
			}
		}
	}
	return false
}
