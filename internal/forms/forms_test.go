package forms

import (
	"errors"
	"testing"

	"github.com/abarbosa/catalogo/internal/shared"
)

func TestParsePrice(t *testing.T) {
	tc := []struct {
		name    string
		raw     string
		want    float64
		wantErr bool
	}{
		{name: "plain amount", raw: "199.90", want: 199.9},
		{name: "comma as decimal separator", raw: "39,90", want: 39.9},
		{name: "rounds to two decimal places", raw: "10.999", want: 11},
		{name: "rounds down", raw: "10.994", want: 10.99},
		{name: "integer amount", raw: "50", want: 50},
		{name: "zero is allowed", raw: "0", want: 0},
		{name: "surrounding whitespace", raw: "  59.9  ", want: 59.9},
		{name: "negative amount", raw: "-1", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "not a number", raw: "abc", wantErr: true},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrice(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected an error for %q", tt.raw)
				}
				if !errors.Is(err, shared.ErrInvalidPrice) {
					t.Errorf("error should wrap ErrInvalidPrice, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParsePrice(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestProductForm(t *testing.T) {
	t.Run("valid form", func(t *testing.T) {
		input, err := ProductForm{
			Name:        "  Boné  ",
			Price:       "39,90",
			Description: "Aba curva.",
			CategoryID:  "cat1",
			Featured:    true,
		}.Parse()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if input.Name != "Boné" {
			t.Errorf("name should be trimmed, got %q", input.Name)
		}
		if input.Price != 39.9 {
			t.Errorf("expected price 39.9, got %v", input.Price)
		}
		if input.Description == nil || *input.Description != "Aba curva." {
			t.Error("description should be present")
		}
		if input.CategoryID == nil || *input.CategoryID != "cat1" {
			t.Error("categoryId should be present")
		}
		if !input.Featured || input.Favorite {
			t.Error("flags should carry through")
		}
	})

	t.Run("empty optional fields normalize to absent", func(t *testing.T) {
		input, err := ProductForm{Name: "Boné", Price: "39.9", Description: "   "}.Parse()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if input.Description != nil || input.CategoryID != nil || input.ImageURL != nil {
			t.Error("blank optional fields should parse as absent")
		}
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		_, err := ProductForm{Name: "   ", Price: "10"}.Parse()
		if !errors.Is(err, shared.ErrEmptyName) {
			t.Errorf("expected ErrEmptyName, got %v", err)
		}
	})

	t.Run("invalid price is rejected", func(t *testing.T) {
		_, err := ProductForm{Name: "Boné", Price: "-5"}.Parse()
		if !errors.Is(err, shared.ErrInvalidPrice) {
			t.Errorf("expected ErrInvalidPrice, got %v", err)
		}
	})
}

func TestCategoryForm(t *testing.T) {
	t.Run("valid form trims the name", func(t *testing.T) {
		input, err := CategoryForm{Name: " Acessórios "}.Parse()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if input.Name != "Acessórios" {
			t.Errorf("expected trimmed name, got %q", input.Name)
		}
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		_, err := CategoryForm{Name: ""}.Parse()
		if !errors.Is(err, shared.ErrEmptyName) {
			t.Errorf("expected ErrEmptyName, got %v", err)
		}
	})
}
