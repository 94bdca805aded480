package catalog

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/Modeva-Ecommerce/sepia-storefront/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestCategories(t *testing.T) {
	products := []models.Product{
		product("1", "Face", price(10), nil),
		product("2", "Body", price(20), nil),
		product("3", "", price(30), nil),
		product("4", "Face", nil, price(40)),
	}

	want := []models.CategoryOption{
		{Label: "Body", Count: 1},
		{Label: "Face", Count: 2},
	}
	if diff := cmp.Diff(want, Categories(products)); diff != "" {
		t.Fatalf("Categories mismatch (-want +got):\n%s", diff)
	}
}

func TestCategories_Empty(t *testing.T) {
	got := Categories(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCategories_MatchesOccurrences(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		products := randomProducts(r, r.IntN(30))

		counts := map[string]int{}
		for _, p := range products {
			if p.Category != "" {
				counts[p.Category]++
			}
		}

		got := Categories(products)
		assert.Len(t, got, len(counts))
		assert.True(t, sort.SliceIsSorted(got, func(a, b int) bool { return got[a].Label < got[b].Label }))
		for _, opt := range got {
			assert.Equal(t, counts[opt.Label], opt.Count, "count for %q", opt.Label)
		}
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name     string
		products []models.Product
		want     models.PriceBounds
	}{
		{
			name: "empty list uses fallback",
			want: models.PriceBounds{Min: 0, Max: 100},
		},
		{
			name: "no priced products uses fallback",
			products: []models.Product{
				product("1", "Face", nil, nil),
			},
			want: models.PriceBounds{Min: 0, Max: 100},
		},
		{
			name: "sale price wins over original",
			products: []models.Product{
				product("1", "Face", price(20), price(300)),
				product("2", "Body", nil, price(40)),
			},
			want: models.PriceBounds{Min: 20, Max: 40},
		},
		{
			name: "single price",
			products: []models.Product{
				product("1", "Face", price(12.5), nil),
			},
			want: models.PriceBounds{Min: 12.5, Max: 12.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Bounds(tt.products))
		})
	}
}

func TestBounds_ContainEveryEffectivePrice(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 200; i++ {
		products := randomProducts(r, 1+r.IntN(30))
		bounds := Bounds(products)

		assert.LessOrEqual(t, bounds.Min, bounds.Max)
		priced := 0
		for _, p := range products {
			v, ok := p.EffectivePrice()
			if !ok {
				continue
			}
			priced++
			assert.GreaterOrEqual(t, v, bounds.Min)
			assert.LessOrEqual(t, v, bounds.Max)
		}
		if priced == 0 {
			assert.Equal(t, DefaultPriceBounds, bounds)
		}
	}
}
