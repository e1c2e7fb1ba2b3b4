// package formatter exports the catalog to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/abarbosa/catalogo/internal/catalog"
	"github.com/abarbosa/catalogo/internal/models"
)

// ExportToCSV converts a snapshot to CSV with columns: ID, Name, Price, Category, Featured, Favorite, CreatedAt
func ExportToCSV(snap models.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Name", "Price", "Category", "Featured", "Favorite", "CreatedAt"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, p := range snap.Products {
		record := []string{
			p.ID,
			p.Name,
			strconv.FormatFloat(p.Price, 'f', 2, 64),
			catalog.CategoryName(snap.Categories, p.CategoryID),
			strconv.FormatBool(p.Featured),
			strconv.FormatBool(p.Favorite),
			formatCreatedAt(p.CreatedAt),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a snapshot to Markdown, grouping products by category.
func ExportToMarkdown(snap models.Snapshot) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Catálogo\n\n")
	buf.WriteString(fmt.Sprintf("**Categorias**: %d\n", len(snap.Categories)))
	buf.WriteString(fmt.Sprintf("**Produtos**: %d\n\n", len(snap.Products)))

	groups := append([]models.Category{}, snap.Categories...)
	groups = append(groups, models.Category{Name: catalog.UncategorizedLabel})

	for _, c := range groups {
		filter := catalog.Filter{CategoryID: c.ID}
		var items []models.Product
		if c.ID == "" {
			for _, p := range catalog.FilterProducts(snap.Products, catalog.Filter{}) {
				if catalog.CategoryName(snap.Categories, p.CategoryID) == catalog.UncategorizedLabel {
					items = append(items, p)
				}
			}
		} else {
			items = catalog.FilterProducts(snap.Products, filter)
		}
		if len(items) == 0 {
			continue
		}

		buf.WriteString(fmt.Sprintf("## %s\n\n", c.Name))
		for _, p := range items {
			line := fmt.Sprintf("- %s — R$ %.2f", p.Name, p.Price)
			if p.Featured {
				line += " (destaque)"
			}
			if p.Favorite {
				line += " ★"
			}
			buf.WriteString(line + "\n")
			if p.Description != nil {
				buf.WriteString(fmt.Sprintf("  - %s\n", *p.Description))
			}
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// ExportToText converts a snapshot to a plain text listing.
func ExportToText(snap models.Snapshot) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Produtos: %d\n\n", len(snap.Products)))
	for i, p := range catalog.FilterProducts(snap.Products, catalog.Filter{}) {
		buf.WriteString(fmt.Sprintf("%d. %s - R$ %.2f (%s)\n",
			i+1, p.Name, p.Price, catalog.CategoryName(snap.Categories, p.CategoryID)))
	}

	return buf.Bytes(), nil
}

// WriteExport renders the snapshot in the given format ("csv", "md" or "txt")
// and writes it to path, returning the path written.
func WriteExport(snap models.Snapshot, format, path string) (string, error) {
	var (
		data []byte
		err  error
	)

	switch format {
	case "csv":
		data, err = ExportToCSV(snap)
	case "md", "markdown":
		data, err = ExportToMarkdown(snap)
	case "txt", "text":
		data, err = ExportToText(snap)
	default:
		return "", fmt.Errorf("unsupported export format: %s", format)
	}
	if err != nil {
		return "", err
	}

	if path == "" {
		path = "catalogo." + format
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}

func formatCreatedAt(millis int64) string {
	return time.UnixMilli(millis).UTC().Format(time.RFC3339)
}
