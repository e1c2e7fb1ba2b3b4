package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/abarbosa/catalogo/internal/catalog"
	"github.com/abarbosa/catalogo/internal/shared"
	"github.com/abarbosa/catalogo/internal/storage"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config  *shared.Config
	logger  *log.Logger
	output  io.Writer
	backend storage.Backend // optional override; nil means SQLite per config
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config  *shared.Config
	Logger  *log.Logger
	Output  io.Writer
	Backend storage.Backend
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config:  opts.Config,
		logger:  opts.Logger,
		output:  opts.Output,
		backend: opts.Backend,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, productCommand, categoryCommand, favCommand, exportCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// openStore builds a hydrated store for a command invocation. The returned
// cleanup drains pending persists and closes the database; call it before the
// process exits so the last mutation reaches durable storage.
func (r *Runner) openStore(ctx context.Context, cmd *cli.Command) (*catalog.Store, func(), error) {
	config := r.config
	if path := cmd.String("config"); path != "" {
		if _, err := os.Stat(path); err == nil {
			loaded, err := shared.LoadConfig(path)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to load config: %w", err)
			}
			config = loaded
		}
	}

	backend := r.backend
	closeDB := func() {}
	if backend == nil {
		db, err := shared.NewDatabase(config.Database.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

		if err := shared.RunMigrations(db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		backend = storage.NewSQLiteBackend(db)
		closeDB = func() { db.Close() }
	}

	adapter := storage.NewAdapter(backend, r.logger)
	store := catalog.NewStore(adapter, config.Storage.Key, r.logger)
	store.Hydrate(ctx)

	cleanup := func() {
		if err := store.Close(); err != nil {
			r.logger.Warn("failed to drain pending writes", "error", err)
		}
		closeDB()
	}

	return store, cleanup, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
