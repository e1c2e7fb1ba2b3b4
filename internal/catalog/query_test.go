package catalog

import (
	"testing"

	"github.com/abarbosa/catalogo/internal/models"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: "p1", Name: "Tênis Runner", CategoryID: models.Ptr("cat1"), Featured: true, CreatedAt: 100},
		{ID: "p2", Name: "Camiseta Básica", CategoryID: models.Ptr("cat2"), Favorite: true, CreatedAt: 200},
		{ID: "p3", Name: "Boné", CreatedAt: 300},
		{ID: "p4", Name: "Tênis Casual", CategoryID: models.Ptr("cat1"), Favorite: true, CreatedAt: 400},
	}
}

func TestFilterProducts(t *testing.T) {
	tc := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{
			name:   "no filter sorts featured first then newest",
			filter: Filter{},
			want:   []string{"p1", "p4", "p3", "p2"},
		},
		{
			name:   "query matches name substring case-insensitively",
			filter: Filter{Query: "tênis"},
			want:   []string{"p1", "p4"},
		},
		{
			name:   "query is trimmed",
			filter: Filter{Query: "  boné  "},
			want:   []string{"p3"},
		},
		{
			name:   "category filter excludes absent references",
			filter: Filter{CategoryID: "cat1"},
			want:   []string{"p1", "p4"},
		},
		{
			name:   "favorites only",
			filter: Filter{FavoritesOnly: true},
			want:   []string{"p4", "p2"},
		},
		{
			name:   "filters combine",
			filter: Filter{Query: "tênis", CategoryID: "cat1", FavoritesOnly: true},
			want:   []string{"p4"},
		},
		{
			name:   "no match yields empty result",
			filter: Filter{Query: "relógio"},
			want:   []string{},
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterProducts(sampleProducts(), tt.filter)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d products, got %d", len(tt.want), len(got))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestCategoryName(t *testing.T) {
	categories := []models.Category{
		{ID: "cat1", Name: "Tênis"},
	}

	t.Run("resolves existing reference", func(t *testing.T) {
		if got := CategoryName(categories, models.Ptr("cat1")); got != "Tênis" {
			t.Errorf("expected Tênis, got %s", got)
		}
	})

	t.Run("absent reference", func(t *testing.T) {
		if got := CategoryName(categories, nil); got != UncategorizedLabel {
			t.Errorf("expected %q, got %s", UncategorizedLabel, got)
		}
	})

	t.Run("dangling reference reads as uncategorized", func(t *testing.T) {
		if got := CategoryName(categories, models.Ptr("deleted")); got != UncategorizedLabel {
			t.Errorf("expected %q, got %s", UncategorizedLabel, got)
		}
	})
}

func TestFind(t *testing.T) {
	products := sampleProducts()

	if p, ok := FindProduct(products, "p3"); !ok || p.Name != "Boné" {
		t.Errorf("expected to find Boné, got %+v ok=%v", p, ok)
	}
	if _, ok := FindProduct(products, "p9"); ok {
		t.Error("unknown product id should not be found")
	}

	categories := []models.Category{{ID: "cat1", Name: "Tênis"}}
	if c, ok := FindCategory(categories, "cat1"); !ok || c.Name != "Tênis" {
		t.Errorf("expected to find Tênis, got %+v ok=%v", c, ok)
	}
	if _, ok := FindCategory(categories, "cat9"); ok {
		t.Error("unknown category id should not be found")
	}
}
