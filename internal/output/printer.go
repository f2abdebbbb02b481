// Package output provides formatted terminal output for matlist.
// This centralizes all printing and formatting logic away from command modules.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/jdamm/matlist/internal/export"
	"github.com/jdamm/matlist/internal/model"
	"github.com/jdamm/matlist/internal/resolver"
)

// Format represents different output formats
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// Printer handles formatted output to the terminal
type Printer struct {
	writer io.Writer
	format Format
	quiet  bool
}

// NewPrinter creates a new printer with the specified format
func NewPrinter(format Format, quiet bool) *Printer {
	return &Printer{
		writer: os.Stdout,
		format: format,
		quiet:  quiet,
	}
}

// NewPrinterWithWriter creates a new printer with a custom writer
func NewPrinterWithWriter(writer io.Writer, format Format, quiet bool) *Printer {
	return &Printer{
		writer: writer,
		format: format,
		quiet:  quiet,
	}
}

// Success prints a success message
func (p *Printer) Success(message string) {
	if !p.quiet {
		fmt.Fprintf(p.writer, "✓ %s\n", message)
	}
}

// Error prints an error message
func (p *Printer) Error(message string) {
	fmt.Fprintf(p.writer, "✗ %s\n", message)
}

// Warning prints a warning message
func (p *Printer) Warning(message string) {
	if !p.quiet {
		fmt.Fprintf(p.writer, "⚠ %s\n", message)
	}
}

// Info prints an informational message
func (p *Printer) Info(message string) {
	if !p.quiet {
		fmt.Fprintf(p.writer, "ℹ %s\n", message)
	}
}

// PrintResult prints an export run summary
func (p *Printer) PrintResult(r *export.Result) error {
	switch p.format {
	case FormatTable:
		return p.printResultTable(r)
	case FormatJSON:
		return p.printJSON(r)
	default:
		return fmt.Errorf("unsupported format: %s", p.format)
	}
}

// PrintSnapshot prints a snapshot summary
func (p *Printer) PrintSnapshot(doc *model.Document) error {
	switch p.format {
	case FormatTable:
		return p.printSnapshotTable(doc)
	case FormatJSON:
		return p.printJSON(snapshotSummary(doc))
	default:
		return fmt.Errorf("unsupported format: %s", p.format)
	}
}

// PrintColumns prints the export column table
func (p *Printer) PrintColumns(infos []export.ColumnInfo) error {
	switch p.format {
	case FormatTable:
		return p.printColumnsTable(infos)
	case FormatJSON:
		return p.printJSON(infos)
	default:
		return fmt.Errorf("unsupported format: %s", p.format)
	}
}

// printResultTable prints an export run summary in table format
func (p *Printer) printResultTable(r *export.Result) error {
	if r.Aborted() {
		fmt.Fprintf(p.writer, "No file written\n")
	} else {
		fmt.Fprintf(p.writer, "File: %s\n", r.Path)
	}
	fmt.Fprintf(p.writer, "Rows: %d\n", r.Rows)
	fmt.Fprintf(p.writer, "Elements: %d\n", r.Elements)
	if r.Skipped > 0 {
		fmt.Fprintf(p.writer, "Skipped: %d\n", r.Skipped)
	}
	fmt.Fprintf(p.writer, "Run: %s (%s)\n", r.RunID, r.Duration.Round(time.Millisecond))
	return nil
}

// summary shapes used for JSON output
type categoryCount struct {
	Category string `json:"category"`
	Elements int    `json:"elements"`
}

type snapshotInfo struct {
	Project    string          `json:"project,omitempty"`
	Units      string          `json:"units"`
	Elements   int             `json:"elements"`
	Types      int             `json:"types"`
	Materials  int             `json:"materials"`
	Categories []categoryCount `json:"categories"`
}

func snapshotSummary(doc *model.Document) snapshotInfo {
	counts := make(map[string]int)
	for _, el := range doc.Elements {
		counts[el.Category()]++
	}

	categories := make([]categoryCount, 0, len(counts))
	for name, n := range counts {
		categories = append(categories, categoryCount{Category: name, Elements: n})
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Category < categories[j].Category
	})

	return snapshotInfo{
		Project:    doc.Project,
		Units:      doc.Units,
		Elements:   len(doc.Elements),
		Types:      len(doc.Types),
		Materials:  len(doc.Materials),
		Categories: categories,
	}
}

// printSnapshotTable prints a snapshot summary in table format
func (p *Printer) printSnapshotTable(doc *model.Document) error {
	info := snapshotSummary(doc)

	if info.Project != "" {
		fmt.Fprintf(p.writer, "Project: %s\n", info.Project)
	}
	fmt.Fprintf(p.writer, "Units: %s\n", info.Units)
	fmt.Fprintf(p.writer, "Elements: %d\n", info.Elements)
	fmt.Fprintf(p.writer, "Types: %d\n", info.Types)
	fmt.Fprintf(p.writer, "Materials: %d\n", info.Materials)

	fmt.Fprintf(p.writer, "\nCategories:\n")
	if len(info.Categories) == 0 {
		fmt.Fprintf(p.writer, "  No elements found\n")
	} else {
		w := tabwriter.NewWriter(p.writer, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  CATEGORY\tELEMENTS\n")
		fmt.Fprintf(w, "  --------\t--------\n")
		for _, c := range info.Categories {
			name := c.Category
			if name == "" {
				name = "(none)"
			}
			fmt.Fprintf(w, "  %s\t%d\n", name, c.Elements)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintf(p.writer, "\nMaterials:\n")
	return p.printMaterialsTable(doc)
}

// printMaterialsTable lists the document's materials sorted by name
func (p *Printer) printMaterialsTable(doc *model.Document) error {
	if len(doc.Materials) == 0 {
		fmt.Fprintf(p.writer, "  No materials found\n")
		return nil
	}

	materials := make([]*model.Material, 0, len(doc.Materials))
	for _, m := range doc.Materials {
		materials = append(materials, m)
	}
	sort.Slice(materials, func(i, j int) bool {
		return materials[i].Name < materials[j].Name
	})

	w := tabwriter.NewWriter(p.writer, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  NAME\tCLASS\tID\tCOLOR\tSHININESS\tSMOOTHNESS\tTRANSPARENCY\n")
	fmt.Fprintf(w, "  ----\t-----\t--\t-----\t---------\t----------\t------------\n")
	for _, m := range materials {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			m.Name, m.Class, m.MaterialID, m.ColorLabel(),
			appearance(m.Shininess), appearance(m.Smoothness), appearance(m.Transparency))
	}
	return w.Flush()
}

// appearance formats an optional material appearance number
func appearance(v *int) string {
	if v == nil {
		return resolver.NotAvailable
	}
	return strconv.Itoa(*v)
}

// printColumnsTable prints the export column table
func (p *Printer) printColumnsTable(infos []export.ColumnInfo) error {
	w := tabwriter.NewWriter(p.writer, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "COLUMN\tSOURCE\tUNIT\tKEYS\n")
	fmt.Fprintf(w, "------\t------\t----\t----\n")

	for _, info := range infos {
		keys := strings.Join(info.Keys, ", ")
		if len(info.Legacy) > 0 {
			if keys != "" {
				keys += "; "
			}
			keys += "legacy: " + strings.Join(info.Legacy, ", ")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", info.Name, info.Source, info.Unit, keys)
	}

	return w.Flush()
}

// printJSON prints any object as JSON
func (p *Printer) printJSON(obj interface{}) error {
	encoder := json.NewEncoder(p.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(obj)
}
