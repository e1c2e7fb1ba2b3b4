package main

import (
	"context"
	"fmt"

	"github.com/abarbosa/catalogo/internal/catalog"
	"github.com/abarbosa/catalogo/internal/forms"
	"github.com/abarbosa/catalogo/internal/shared"
	"github.com/urfave/cli/v3"
)

// ProductAdd creates a product from the command flags.
func (r *Runner) ProductAdd(ctx context.Context, cmd *cli.Command) error {
	store, cleanup, err := r.openStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	input, err := forms.ProductForm{
		Name:        cmd.String("name"),
		Price:       cmd.String("price"),
		Description: cmd.String("description"),
		CategoryID:  cmd.String("category"),
		ImageURL:    cmd.String("image"),
		Featured:    cmd.Bool("featured"),
		Favorite:    cmd.Bool("favorite"),
	}.Parse()
	if err != nil {
		return err
	}

	store.UpsertProduct(input)

	// New products are prepended, so the created entry is first.
	p := store.State().Products[0]
	r.logger.Info("product created", "id", p.ID, "name", p.Name)

	if cmd.Bool("json") {
		return r.writeJSON(p, true)
	}
	return r.writePlainln("✓ Produto criado: %s (%s)", p.Name, p.ID)
}

// ProductEdit updates an existing product, keeping any field whose flag was
// not supplied.
func (r *Runner) ProductEdit(ctx context.Context, cmd *cli.Command) error {
	store, cleanup, err := r.openStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	id := cmd.String("id")
	existing, ok := catalog.FindProduct(store.State().Products, id)
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrProductNotFound, id)
	}

	form := forms.ProductForm{
		ID:       id,
		Name:     existing.Name,
		Price:    fmt.Sprintf("%.2f", existing.Price),
		Featured: existing.Featured,
		Favorite: existing.Favorite,
	}
	if existing.Description != nil {
		form.Description = *existing.Description
	}
	if existing.CategoryID != nil {
		form.CategoryID = *existing.CategoryID
	}
	if existing.ImageURL != nil {
		form.ImageURL = *existing.ImageURL
	}

	if cmd.IsSet("name") {
		form.Name = cmd.String("name")
	}
	if cmd.IsSet("price") {
		form.Price = cmd.String("price")
	}
	if cmd.IsSet("description") {
		form.Description = cmd.String("description")
	}
	if cmd.IsSet("category") {
		form.CategoryID = cmd.String("category")
	}
	if cmd.IsSet("image") {
		form.ImageURL = cmd.String("image")
	}
	if cmd.IsSet("featured") {
		form.Featured = cmd.Bool("featured")
	}
	if cmd.IsSet("favorite") {
		form.Favorite = cmd.Bool("favorite")
	}

	input, err := form.Parse()
	if err != nil {
		return err
	}

	store.UpsertProduct(input)

	p, _ := catalog.FindProduct(store.State().Products, id)
	if cmd.Bool("json") {
		return r.writeJSON(p, true)
	}
	return r.writePlainln("✓ Produto atualizado: %s (%s)", p.Name, p.ID)
}

// ProductRemove deletes a product by id.
func (r *Runner) ProductRemove(ctx context.Context, cmd *cli.Command) error {
	store, cleanup, err := r.openStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	id := cmd.String("id")
	p, ok := catalog.FindProduct(store.State().Products, id)
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrProductNotFound, id)
	}

	store.RemoveProduct(id)
	return r.writePlainln("✓ Produto removido: %s", p.Name)
}

// ProductShow prints a single product.
func (r *Runner) ProductShow(ctx context.Context, cmd *cli.Command) error {
	store, cleanup, err := r.openStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	id := cmd.String("id")
	state := store.State()
	p, ok := catalog.FindProduct(state.Products, id)
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrProductNotFound, id)
	}

	if cmd.Bool("json") {
		return r.writeJSON(p, true)
	}

	r.writePlainln("%s", p.Name)
	r.writePlainln("  Categoria: %s", catalog.CategoryName(state.Categories, p.CategoryID))
	r.writePlainln("  Preço: R$ %.2f", p.Price)
	r.writePlainln("  Destaque: %s", simNao(p.Featured))
	r.writePlainln("  Favorito: %s", simNao(p.Favorite))
	if p.Description != nil {
		r.writePlainln("  %s", *p.Description)
	}
	return nil
}

// ProductList prints products matching the filter flags, featured first then
// newest.
func (r *Runner) ProductList(ctx context.Context, cmd *cli.Command) error {
	store, cleanup, err := r.openStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	state := store.State()
	products := catalog.FilterProducts(state.Products, catalog.Filter{
		Query:         cmd.String("query"),
		CategoryID:    cmd.String("category"),
		FavoritesOnly: cmd.Bool("favorites"),
	})

	if cmd.Bool("json") {
		return r.writeJSON(products, true)
	}

	if len(products) == 0 {
		return r.writePlainln("Nenhum produto encontrado.")
	}

	for _, p := range products {
		line := fmt.Sprintf("%s  R$ %.2f  %s", p.Name, p.Price, catalog.CategoryName(state.Categories, p.CategoryID))
		if p.Featured {
			line += "  [destaque]"
		}
		if p.Favorite {
			line += "  ★"
		}
		r.writePlainln("%s  (%s)", line, p.ID)
	}
	return nil
}

// FavToggle flips the favorite flag on a product.
func (r *Runner) FavToggle(ctx context.Context, cmd *cli.Command) error {
	store, cleanup, err := r.openStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	id := cmd.String("id")
	if _, ok := catalog.FindProduct(store.State().Products, id); !ok {
		return fmt.Errorf("%w: %s", shared.ErrProductNotFound, id)
	}

	store.ToggleFavorite(id)

	p, _ := catalog.FindProduct(store.State().Products, id)
	if p.Favorite {
		return r.writePlainln("★ Favoritado: %s", p.Name)
	}
	return r.writePlainln("✓ Favorito removido: %s", p.Name)
}

func simNao(v bool) string {
	if v {
		return "sim"
	}
	return "não"
}
