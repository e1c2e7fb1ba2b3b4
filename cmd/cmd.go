// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// setupCommand initializes the config file and local database
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Initialize configuration and local database",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Setup,
	}
}

// productCommand handles product operations
func productCommand(r *Runner) *cli.Command {
	productFlags := []cli.Flag{
		configFlag(),
		&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Product name"},
		&cli.StringFlag{Name: "price", Aliases: []string{"p"}, Usage: "Price, e.g. 199.90"},
		&cli.StringFlag{Name: "description", Usage: "Optional description"},
		&cli.StringFlag{Name: "category", Usage: "Category ID (empty for none)"},
		&cli.StringFlag{Name: "image", Usage: "Optional image URL"},
		&cli.BoolFlag{Name: "featured", Usage: "Mark as featured"},
		&cli.BoolFlag{Name: "favorite", Usage: "Mark as favorite"},
		&cli.BoolFlag{Name: "json", Usage: "Output JSON"},
	}

	return &cli.Command{
		Name:    "product",
		Aliases: []string{"prod"},
		Usage:   "Product operations",
		Commands: []*cli.Command{
			{
				Name:   "add",
				Usage:  "Create a product",
				Flags:  productFlags,
				Action: r.ProductAdd,
			},
			{
				Name:  "edit",
				Usage: "Update an existing product",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "id", Usage: "Product ID to edit", Required: true},
				}, productFlags...),
				Action: r.ProductEdit,
			},
			{
				Name:  "rm",
				Usage: "Remove a product",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "id", Usage: "Product ID to remove", Required: true},
				},
				Action: r.ProductRemove,
			},
			{
				Name:  "show",
				Usage: "Show a single product",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "id", Usage: "Product ID to show", Required: true},
					&cli.BoolFlag{Name: "json", Usage: "Output JSON"},
				},
				Action: r.ProductShow,
			},
			{
				Name:  "list",
				Usage: "List products, featured first then newest",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "query", Aliases: []string{"q"}, Usage: "Filter by name substring"},
					&cli.StringFlag{Name: "category", Usage: "Filter by category ID"},
					&cli.BoolFlag{Name: "favorites", Usage: "Favorites only"},
					&cli.BoolFlag{Name: "json", Usage: "Output JSON"},
				},
				Action: r.ProductList,
			},
		},
	}
}

// categoryCommand handles category operations
func categoryCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "category",
		Aliases: []string{"cat"},
		Usage:   "Category operations",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Create a category",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Category name", Required: true},
				},
				Action: r.CategoryAdd,
			},
			{
				Name:  "rm",
				Usage: "Remove a category; its products keep existing without a category",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "id", Usage: "Category ID to remove", Required: true},
				},
				Action: r.CategoryRemove,
			},
			{
				Name:  "list",
				Usage: "List categories",
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{Name: "json", Usage: "Output JSON"},
				},
				Action: r.CategoryList,
			},
		},
	}
}

// favCommand toggles the favorite flag on a product
func favCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "fav",
		Usage: "Toggle a product's favorite flag",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{Name: "id", Usage: "Product ID", Required: true},
		},
		Action: r.FavToggle,
	}
}

// exportCommand writes the catalog to a file
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export the catalog to CSV, Markdown or plain text",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "csv, md or txt", Value: "csv"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output file path"},
		},
		Action: r.Export,
	}
}

// tuiCommand launches the interactive terminal UI
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Browse and edit the catalog interactively",
		Flags:  []cli.Flag{configFlag()},
		Action: r.TUI,
	}
}
