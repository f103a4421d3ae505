package output

import (
	"fmt"
	"io"
	"strings"
)

// strategyColumns are the fixed headers of the strategy listing.
var strategyColumns = [4]string{"KIND", "NAME", "AVAILABLE", "EXTENSION"}

// StrategyTable accumulates wallet strategy rows and renders them as an
// aligned text listing. Rows keep insertion order, which callers use to
// present strategies in registration order.
type StrategyTable struct {
	rows [][4]string
}

// NewStrategyTable creates an empty strategy listing.
func NewStrategyTable() *StrategyTable {
	return &StrategyTable{}
}

// Add appends one strategy row.
func (t *StrategyTable) Add(kind, name string, available, extension bool) {
	t.rows = append(t.rows, [4]string{kind, name, yesNo(available), yesNo(extension)})
}

// Render writes the listing with a header row and dashed underline.
func (t *StrategyTable) Render(w io.Writer) error {
	widths := t.columnWidths()

	if err := writeCells(w, strategyColumns, widths); err != nil {
		return err
	}

	underline := [4]string{}
	for i, width := range widths {
		underline[i] = strings.Repeat("-", width)
	}
	if err := writeCells(w, underline, widths); err != nil {
		return err
	}

	for _, row := range t.rows {
		if err := writeCells(w, row, widths); err != nil {
			return err
		}
	}

	return nil
}

// String renders the listing into a string, for use in messages.
func (t *StrategyTable) String() string {
	var sb strings.Builder
	_ = t.Render(&sb)
	return sb.String()
}

func (t *StrategyTable) columnWidths() [4]int {
	widths := [4]int{}
	for i, h := range strategyColumns {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

func writeCells(w io.Writer, cells [4]string, widths [4]int) error {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	return err
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
