// package forms validates raw user input before it reaches the catalog store.
//
// The store itself performs no validation; these rules belong to the
// presentation layer. Prices are parsed with shopspring/decimal and rounded
// to two decimal places, names are trimmed and required, and empty optional
// fields normalize to absent.
package forms

import (
	"fmt"
	"strings"

	"github.com/abarbosa/catalogo/internal/models"
	"github.com/abarbosa/catalogo/internal/shared"
	"github.com/shopspring/decimal"
)

// ProductForm is the raw, text-typed product input as entered by the user.
type ProductForm struct {
	ID          string
	Name        string
	Price       string
	Description string
	CategoryID  string
	ImageURL    string
	Featured    bool
	Favorite    bool
}

// CategoryForm is the raw category input.
type CategoryForm struct {
	ID   string
	Name string
}

// Parse validates the form and converts it to a store input.
func (f ProductForm) Parse() (models.ProductInput, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return models.ProductInput{}, fmt.Errorf("%w: product name", shared.ErrEmptyName)
	}

	price, err := ParsePrice(f.Price)
	if err != nil {
		return models.ProductInput{}, err
	}

	return models.ProductInput{
		ID:          f.ID,
		Name:        name,
		Price:       price,
		Description: optional(f.Description),
		CategoryID:  optional(f.CategoryID),
		ImageURL:    optional(f.ImageURL),
		Featured:    f.Featured,
		Favorite:    f.Favorite,
	}, nil
}

// Parse validates the form and converts it to a store input.
func (f CategoryForm) Parse() (models.CategoryInput, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return models.CategoryInput{}, fmt.Errorf("%w: category name", shared.ErrEmptyName)
	}
	return models.CategoryInput{ID: f.ID, Name: name}, nil
}

// ParsePrice parses a user-entered amount, accepting a comma as the decimal
// separator, and rounds it to two decimal places. Negative amounts are
// rejected.
func ParsePrice(raw string) (float64, error) {
	text := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if text == "" {
		return 0, fmt.Errorf("%w: empty amount", shared.ErrInvalidPrice)
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", shared.ErrInvalidPrice, raw)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: amount must not be negative", shared.ErrInvalidPrice)
	}

	return d.Round(2).InexactFloat64(), nil
}

func optional(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
