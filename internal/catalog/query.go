package catalog

import (
	"sort"
	"strings"

	"github.com/abarbosa/catalogo/internal/models"
)

// UncategorizedLabel is displayed when a product has no (or a dangling)
// category reference.
const UncategorizedLabel = "Sem categoria"

// Filter narrows a product collection for display. Zero values mean "no
// restriction": an empty Query matches everything and an empty CategoryID
// disables category filtering.
type Filter struct {
	Query         string
	CategoryID    string
	FavoritesOnly bool
}

// FilterProducts returns the products matching f, sorted for display:
// featured first, then newest first. The input slice is not modified.
func FilterProducts(products []models.Product, f Filter) []models.Product {
	q := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.FavoritesOnly && !p.Favorite {
			continue
		}
		if f.CategoryID != "" && (p.CategoryID == nil || *p.CategoryID != f.CategoryID) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Featured != out[j].Featured {
			return out[i].Featured
		}
		return out[i].CreatedAt > out[j].CreatedAt
	})

	return out
}

// CategoryName resolves a product's category reference to a display name,
// treating absent and dangling references the same.
func CategoryName(categories []models.Category, id *string) string {
	if id == nil {
		return UncategorizedLabel
	}
	if c, ok := FindCategory(categories, *id); ok {
		return c.Name
	}
	return UncategorizedLabel
}

// FindProduct returns the product with the given id.
func FindProduct(products []models.Product, id string) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// FindCategory returns the category with the given id.
func FindCategory(categories []models.Category, id string) (models.Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}
