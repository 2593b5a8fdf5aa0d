package catalog

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEmptyQueryReturnsEverything(t *testing.T) {
	s := NewService(Fixtures())
	got := s.List(Query{})
	assert.Len(t, got, len(Fixtures()))
}

func TestListInStockOnlyDropsOutOfStock(t *testing.T) {
	s := NewService(Fixtures())
	got := s.List(Query{InStockOnly: true})
	for _, p := range got {
		assert.True(t, p.InStock, "%s should be in stock", p.Slug)
	}
	assert.Less(t, len(got), len(Fixtures()))
}

func TestListTextSearchesNotesAndTags(t *testing.T) {
	s := NewService(Fixtures())

	got := s.List(Query{Text: "oud"})
	require.NotEmpty(t, got)
	assert.Equal(t, "amber-oud-intense", got[0].Slug)

	got = s.List(Query{Text: "turkish rose"})
	require.Len(t, got, 1)
	assert.Equal(t, "rose-santal-no9", got[0].Slug)
}

func TestListCollectionAndTag(t *testing.T) {
	s := NewService(Fixtures())

	got := s.List(Query{Collection: "men"})
	for _, p := range got {
		assert.Equal(t, "men", p.Collection)
	}

	got = s.List(Query{Tag: "bestseller"})
	assert.Len(t, got, 3)
}

func TestListSortByPrice(t *testing.T) {
	s := NewService(Fixtures())
	got := s.List(Query{Sort: "price_asc"})
	require.NotEmpty(t, got)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].MinPriceCents(), got[i].MinPriceCents())
	}
}

func TestListDoesNotMutateFixtures(t *testing.T) {
	products := Fixtures()
	s := NewService(products)
	_ = s.List(Query{Sort: "price_desc"})
	assert.Equal(t, Fixtures(), products)
	assert.Equal(t, Fixtures(), s.List(Query{}))
}

func TestGetBySlug(t *testing.T) {
	s := NewService(Fixtures())
	p, ok := s.Get("fig-cashmere-veil")
	require.True(t, ok)
	assert.Equal(t, "Fig & Cashmere Veil", p.Name)

	_, ok = s.Get("does-not-exist")
	assert.False(t, ok)
}

func TestLoadNilSourceUsesEmbeddedFixtures(t *testing.T) {
	s, err := Load(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, s.List(Query{}), len(Fixtures()))
}

type stringSource string

func (s stringSource) Fetch(context.Context) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(string(s))), nil
}

func TestLoadDerivesMissingSlugs(t *testing.T) {
	src := stringSource(`[
		{"id":"x-1","name":"Néroli & Sea Salt","collection":"unisex","inStock":true,
		 "sizes":[{"label":"50ml","priceCents":7900}]}
	]`)
	s, err := Load(context.Background(), src)
	require.NoError(t, err)

	p, ok := s.Get("n-roli-sea-salt")
	require.True(t, ok)
	assert.Equal(t, "Néroli & Sea Salt", p.Name)
}

func TestLoadBadDocument(t *testing.T) {
	_, err := Load(context.Background(), stringSource(`{not json`))
	assert.Error(t, err)
}

func TestSizeByLabel(t *testing.T) {
	s := NewService(Fixtures())
	p, _ := s.Get("amber-oud-intense")

	sz, ok := p.SizeByLabel("50ml")
	require.True(t, ok)
	assert.Equal(t, 10900, sz.PriceCents)

	_, ok = p.SizeByLabel("250ml")
	assert.False(t, ok)
}
