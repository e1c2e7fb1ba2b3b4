// package models defines the data model for the local catalog manager
package models

// Category groups products under a display name.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Product is a catalog entry. Description, CategoryID and ImageURL are
// optional: a nil pointer means the field is absent, which keeps "no
// category" distinguishable from an empty string.
//
// CategoryID is a soft reference: it may point at a category that no longer
// exists, and consumers treat a dangling reference the same as an absent one.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description *string `json:"description,omitempty"`
	CategoryID  *string `json:"categoryId,omitempty"`
	Featured    bool    `json:"featured"`
	Favorite    bool    `json:"favorite"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	CreatedAt   int64   `json:"createdAt"` // unix milliseconds, fixed at creation
}

// Snapshot is the complete persisted document: both collections at a point
// in time. The hydrated flag is runtime-only and never part of a snapshot.
type Snapshot struct {
	Categories []Category `json:"categories"`
	Products   []Product  `json:"products"`
}

// CategoryInput carries the fields accepted by a category upsert. A zero ID
// means "create with a fresh identifier".
type CategoryInput struct {
	ID   string
	Name string
}

// ProductInput carries the fields accepted by a product upsert. A zero ID
// means "create"; CreatedAt is never supplied by callers.
type ProductInput struct {
	ID          string
	Name        string
	Price       float64
	Description *string
	CategoryID  *string
	Featured    bool
	Favorite    bool
	ImageURL    *string
}

// Clone returns a deep copy so holders of a previous snapshot never observe
// later mutations.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Categories: CloneCategories(s.Categories),
		Products:   CloneProducts(s.Products),
	}
}

// CloneCategories copies a category collection.
func CloneCategories(categories []Category) []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CloneProducts copies a product collection, including the optional pointer
// fields.
func CloneProducts(products []Product) []Product {
	out := make([]Product, len(products))
	for i, p := range products {
		p.Description = cloneStr(p.Description)
		p.CategoryID = cloneStr(p.CategoryID)
		p.ImageURL = cloneStr(p.ImageURL)
		out[i] = p
	}
	return out
}

// Ptr returns a pointer to v, for building optional fields inline.
func Ptr(v string) *string { return &v }

func cloneStr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
