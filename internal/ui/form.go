package ui

import (
	"fmt"

	"github.com/abarbosa/catalogo/internal/forms"
	"github.com/abarbosa/catalogo/internal/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formField enumerates the focusable fields of the product form, in order.
type formField int

const (
	fieldName formField = iota
	fieldPrice
	fieldDescription
	fieldImageURL
	fieldCategory
	fieldFeatured
	fieldFavorite
	fieldCount
)

// formModel holds the state of the product create/edit screen. Text fields
// are bubbles textinputs; category and the two flags are cycled with ←/→ or
// space when focused.
type formModel struct {
	editID      string
	inputs      []textinput.Model
	focus       formField
	categoryIdx int // 0 means no category, i means categories[i-1]
	featured    bool
	favorite    bool
	errMsg      string
}

func newProductForm(categories []models.Category, editing *models.Product) formModel {
	name := textinput.New()
	name.Placeholder = "Ex: Tênis Runner"
	name.Focus()

	price := textinput.New()
	price.Placeholder = "Ex: 199.90"

	description := textinput.New()
	description.Placeholder = "Detalhes do produto..."

	imageURL := textinput.New()
	imageURL.Placeholder = "https://..."

	f := formModel{inputs: []textinput.Model{name, price, description, imageURL}}

	if editing != nil {
		f.editID = editing.ID
		f.inputs[fieldName].SetValue(editing.Name)
		f.inputs[fieldPrice].SetValue(fmt.Sprintf("%.2f", editing.Price))
		if editing.Description != nil {
			f.inputs[fieldDescription].SetValue(*editing.Description)
		}
		if editing.ImageURL != nil {
			f.inputs[fieldImageURL].SetValue(*editing.ImageURL)
		}
		f.featured = editing.Featured
		f.favorite = editing.Favorite
		if editing.CategoryID != nil {
			for i, c := range categories {
				if c.ID == *editing.CategoryID {
					f.categoryIdx = i + 1
					break
				}
			}
		}
	}

	return f
}

// next and prev move focus through the fields, wrapping around.
func (f *formModel) next() { f.setFocus((f.focus + 1) % fieldCount) }
func (f *formModel) prev() { f.setFocus((f.focus + fieldCount - 1) % fieldCount) }

func (f *formModel) setFocus(field formField) {
	f.focus = field
	for i := range f.inputs {
		if formField(i) == field {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

// cycle adjusts the focused non-text field by delta.
func (f *formModel) cycle(delta, categoryCount int) {
	switch f.focus {
	case fieldCategory:
		n := categoryCount + 1
		f.categoryIdx = (f.categoryIdx + delta + n) % n
	case fieldFeatured:
		f.featured = !f.featured
	case fieldFavorite:
		f.favorite = !f.favorite
	}
}

func (f *formModel) updateFocused(msg tea.Msg) tea.Cmd {
	if int(f.focus) >= len(f.inputs) {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// parse converts the form into a store input, surfacing validation failures
// on the form itself.
func (f *formModel) parse(categories []models.Category) (models.ProductInput, bool) {
	var categoryID string
	if f.categoryIdx > 0 && f.categoryIdx <= len(categories) {
		categoryID = categories[f.categoryIdx-1].ID
	}

	input, err := forms.ProductForm{
		ID:          f.editID,
		Name:        f.inputs[fieldName].Value(),
		Price:       f.inputs[fieldPrice].Value(),
		Description: f.inputs[fieldDescription].Value(),
		ImageURL:    f.inputs[fieldImageURL].Value(),
		CategoryID:  categoryID,
		Featured:    f.featured,
		Favorite:    f.favorite,
	}.Parse()
	if err != nil {
		f.errMsg = err.Error()
		return models.ProductInput{}, false
	}

	f.errMsg = ""
	return input, true
}

func (f formModel) categoryLabel(categories []models.Category) string {
	if f.categoryIdx == 0 || f.categoryIdx > len(categories) {
		return "Sem"
	}
	return categories[f.categoryIdx-1].Name
}
