// Package output renders command results as tables or as JSON and YAML
// documents.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Format names an output format.
type Format string

const (
	// FormatTable is a bordered table with long cells shortened.
	FormatTable Format = "table"
	// FormatWide is a table with every column in full.
	FormatWide Format = "wide"
	// FormatJSON is indented JSON.
	FormatJSON Format = "json"
	// FormatYAML is block-style YAML.
	FormatYAML Format = "yaml"
)

// Structured reports whether f is a machine-readable document format.
func (f Format) Structured() bool {
	return f == FormatJSON || f == FormatYAML
}

// MaxCellWidth is the longest cell a non-wide table prints before
// shortening it.
const MaxCellWidth = 40

// Align is the alignment of one table column.
type Align int

const (
	// AlignDefault leaves alignment to the table renderer.
	AlignDefault Align = iota
	// AlignLeft aligns a column left.
	AlignLeft
	// AlignCenter centers a column.
	AlignCenter
	// AlignRight aligns a column right.
	AlignRight
)

func (a Align) tw() tw.Align {
	switch a {
	case AlignLeft:
		return tw.AlignLeft
	case AlignCenter:
		return tw.AlignCenter
	case AlignRight:
		return tw.AlignRight
	default:
		return tw.Skip
	}
}

// Data is a table ready for rendering.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // optional; missing columns use AlignDefault
	Footer          string  // printed under the table when set
}

// Formatter writes a value to w.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// FormatterFunc adapts a function to Formatter.
type FormatterFunc func(io.Writer, any) error

// Format calls f.
func (f FormatterFunc) Format(w io.Writer, data any) error {
	return f(w, data)
}

// NewFormatter returns the formatter for format. Unknown formats render
// as tables.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return FormatterFunc(writeJSON)
	case FormatYAML:
		return FormatterFunc(writeYAML)
	case FormatWide:
		return &TableFormatter{Wide: true}
	default:
		return &TableFormatter{}
	}
}

func writeJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func writeYAML(w io.Writer, data any) error {
	b, err := yaml.MarshalWithOptions(data, yaml.Indent(2), yaml.IndentSequence(false))
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// TableFormatter renders Data with tablewriter.
type TableFormatter struct {
	Wide bool
}

// Format renders data, which must be a Data or *Data.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case Data:
		return f.render(w, v)
	case *Data:
		return f.render(w, *v)
	default:
		return fmt.Errorf("cannot render %T as a table, use -o json or -o yaml", data)
	}
}

func (f *TableFormatter) render(w io.Writer, data Data) error {
	var cfg tablewriter.Config
	if len(data.ColumnAlignment) > 0 {
		align := make([]tw.Align, len(data.Headers))
		for i := range align {
			align[i] = tw.Skip
			if i < len(data.ColumnAlignment) {
				align[i] = data.ColumnAlignment[i].tw()
			}
		}
		cfg.Header.Alignment = tw.CellAlignment{PerColumn: align}
		cfg.Row.Alignment = tw.CellAlignment{PerColumn: align}
	}
	table := tablewriter.NewTable(w, tablewriter.WithConfig(cfg))

	if len(data.Headers) > 0 {
		upper := cases.Upper(language.English)
		headers := make([]any, len(data.Headers))
		for i, h := range data.Headers {
			headers[i] = upper.String(h)
		}
		table.Header(headers...)
	}

	for _, row := range data.Rows {
		cells := make([]any, len(row))
		for i, cell := range row {
			if !f.Wide {
				cell = shorten(cell, MaxCellWidth)
			}
			cells[i] = cell
		}
		if err := table.Append(cells...); err != nil {
			return err
		}
	}

	if err := table.Render(); err != nil {
		return err
	}
	if data.Footer != "" {
		_, err := fmt.Fprintln(w, data.Footer)
		return err
	}
	return nil
}

// shorten cuts s to limit runes, marking the cut with "...".
func shorten(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	r := []rune(s)
	return string(r[:limit-3]) + "..."
}

// DetectFormat returns the explicit format when one was given, a table
// on a terminal, and JSON when stdout is piped.
func DetectFormat(explicitFormat string) Format {
	if explicitFormat != "" {
		return Format(strings.ToLower(explicitFormat))
	}
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return FormatTable
	}
	return FormatJSON
}

// ParseFormat validates s as a format name. The empty string means
// auto-detect.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(s))
	switch format {
	case FormatTable, FormatJSON, FormatYAML, FormatWide, "":
		return format, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be one of: table, wide, json, yaml", s)
	}
}
