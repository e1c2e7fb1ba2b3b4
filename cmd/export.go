package main

import (
	"context"
	"fmt"

	"github.com/abarbosa/catalogo/internal/formatter"
	"github.com/abarbosa/catalogo/internal/models"
	"github.com/urfave/cli/v3"
)

// Export writes the current catalog to a file in the requested format.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	store, cleanup, err := r.openStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	state := store.State()
	snap := models.Snapshot{Categories: state.Categories, Products: state.Products}

	path, err := formatter.WriteExport(snap, cmd.String("format"), cmd.String("output"))
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	r.logger.Info("catalog exported", "path", path, "format", cmd.String("format"))
	return r.writePlainln("✓ Catálogo exportado: %s", path)
}
