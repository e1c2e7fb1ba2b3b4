package main

import (
	"context"
	"fmt"

	"github.com/abarbosa/catalogo/internal/shared"
	"github.com/abarbosa/catalogo/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI for the catalog.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	store, cleanup, err := r.openStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	// Redirect logs to file to avoid interfering with TUI rendering
	if path := r.config.Log.TUIPath; path != "" {
		fileLogger, err := shared.NewFileLogger(path)
		if err != nil {
			return fmt.Errorf("failed to create file logger: %w", err)
		}
		r.logger = fileLogger
	}

	model := ui.NewModel(ctx, store)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
