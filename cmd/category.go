package main

import (
	"context"
	"fmt"

	"github.com/abarbosa/catalogo/internal/catalog"
	"github.com/abarbosa/catalogo/internal/forms"
	"github.com/abarbosa/catalogo/internal/shared"
	"github.com/urfave/cli/v3"
)

// CategoryAdd creates a category.
func (r *Runner) CategoryAdd(ctx context.Context, cmd *cli.Command) error {
	store, cleanup, err := r.openStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	input, err := forms.CategoryForm{Name: cmd.String("name")}.Parse()
	if err != nil {
		return err
	}

	store.UpsertCategory(input)

	c := store.State().Categories[0]
	return r.writePlainln("✓ Categoria criada: %s (%s)", c.Name, c.ID)
}

// CategoryRemove deletes a category. Referencing products are kept and become
// uncategorized.
func (r *Runner) CategoryRemove(ctx context.Context, cmd *cli.Command) error {
	store, cleanup, err := r.openStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	id := cmd.String("id")
	state := store.State()
	c, ok := catalog.FindCategory(state.Categories, id)
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrCategoryNotFound, id)
	}

	orphaned := 0
	for _, p := range state.Products {
		if p.CategoryID != nil && *p.CategoryID == id {
			orphaned++
		}
	}

	store.RemoveCategory(id)

	r.writePlainln("✓ Categoria removida: %s", c.Name)
	if orphaned > 0 {
		r.writePlainln("  %d produto(s) agora sem categoria", orphaned)
	}
	return nil
}

// CategoryList prints all categories with their product counts.
func (r *Runner) CategoryList(ctx context.Context, cmd *cli.Command) error {
	store, cleanup, err := r.openStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	state := store.State()
	if cmd.Bool("json") {
		return r.writeJSON(state.Categories, true)
	}

	if len(state.Categories) == 0 {
		return r.writePlainln("Nenhuma categoria.")
	}

	counts := map[string]int{}
	for _, p := range state.Products {
		if p.CategoryID != nil {
			counts[*p.CategoryID]++
		}
	}

	for _, c := range state.Categories {
		r.writePlainln("%s  %d produto(s)  (%s)", c.Name, counts[c.ID], c.ID)
	}
	return nil
}
