package docx

import (
	"strings"

	"github.com/antchfx/xmlquery"
)

// Table wraps a w:tbl element: an ordered grid of rows of cells.
type Table struct {
	n *xmlquery.Node
}

// Node exposes the underlying w:tbl element.
func (t *Table) Node() *xmlquery.Node { return t.n }

// Rows returns the table's w:tr children.
func (t *Table) Rows() []*xmlquery.Node {
	return Children(t.n, "w:tr")
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.Rows())
}

// ColumnCount returns the grid width: the w:tblGrid column count when
// present, otherwise the widest row's cell count.
func (t *Table) ColumnCount() int {
	if grid := Child(t.n, "w:tblGrid"); grid != nil {
		if n := len(Children(grid, "w:gridCol")); n > 0 {
			return n
		}
	}
	max := 0
	for _, row := range t.Rows() {
		if n := len(Children(row, "w:tc")); n > max {
			max = n
		}
	}
	return max
}

// Cells returns every w:tc element of the table in document order.
func (t *Table) Cells() []*xmlquery.Node {
	var out []*xmlquery.Node
	for _, row := range t.Rows() {
		out = append(out, Children(row, "w:tc")...)
	}
	return out
}

// CellParagraphs returns every paragraph held by the table's cells.
func (t *Table) CellParagraphs() []*Paragraph {
	var out []*Paragraph
	for _, cell := range t.Cells() {
		for _, p := range Descendants(cell, "w:p") {
			out = append(out, &Paragraph{n: p})
		}
	}
	return out
}

// Text concatenates the trimmed text of every cell. The classifier uses
// the aggregate length to tell layout wrappers from data tables.
func (t *Table) Text() string {
	var b strings.Builder
	for _, p := range t.CellParagraphs() {
		b.WriteString(strings.TrimSpace(p.Text()))
	}
	return b.String()
}

// Properties returns the table's w:tblPr element, creating it in first
// position if absent.
func (t *Table) Properties() *xmlquery.Node {
	return EnsureFirstChild(t.n, "w:tblPr")
}

// CellProperties returns the cell's w:tcPr element, creating it in first
// position if absent.
func CellProperties(cell *xmlquery.Node) *xmlquery.Node {
	return EnsureFirstChild(cell, "w:tcPr")
}
