package ui

import (
	"fmt"

	"github.com/abarbosa/catalogo/internal/catalog"
	"github.com/abarbosa/catalogo/internal/models"
	"github.com/charmbracelet/bubbles/list"
)

var (
	_ list.Item = productItem{}
	_ list.Item = categoryItem{}
)

// productItem wraps [models.Product] to implement [list.Item].
type productItem struct {
	product    models.Product
	categories []models.Category
}

func (i productItem) FilterValue() string { return i.product.Name }

func (i productItem) Title() string {
	title := i.product.Name
	if i.product.Featured {
		title = fmt.Sprintf("%s • Destaque", title)
	}
	if i.product.Favorite {
		title = fmt.Sprintf("%s ★", title)
	}
	return title
}

func (i productItem) Description() string {
	return fmt.Sprintf("R$ %.2f • %s", i.product.Price, catalog.CategoryName(i.categories, i.product.CategoryID))
}

// categoryItem wraps [models.Category] to implement [list.Item].
type categoryItem struct {
	category models.Category
	count    int
}

func (i categoryItem) FilterValue() string { return i.category.Name }
func (i categoryItem) Title() string       { return i.category.Name }
func (i categoryItem) Description() string {
	if i.count == 1 {
		return "1 produto"
	}
	return fmt.Sprintf("%d produtos", i.count)
}
