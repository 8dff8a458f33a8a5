package rewrite

import (
	"github.com/antchfx/xmlquery"
	"github.com/yuanying/docshift/internal/classify"
	"github.com/yuanying/docshift/internal/docx"
)

// Data-table border grid: thin single lines, light gray.
const (
	tableBorderSize  = "4"
	tableBorderColor = "BFBFBF"
)

var tableBorderNames = []string{"top", "left", "bottom", "right", "insideH", "insideV"}
var cellBorderNames = []string{"top", "left", "bottom", "right"}

// cleanTables strips borders and shading from wrapper tables and applies
// the uniform light-gray grid to data tables.
func cleanTables(doc *docx.Document) {
	for _, t := range doc.Tables() {
		switch classify.Table(t.RowCount(), t.ColumnCount(), t.Text()) {
		case classify.TableWrapper:
			stripWrapperTable(t)
		case classify.TableData:
			styleDataTable(t)
		}
	}
}

// stripWrapperTable removes every border and shading from the table and
// its cells, writing explicit "nil" borders so the word processor does
// not fall back to a table style's grid.
func stripWrapperTable(t *docx.Table) {
	tblPr := t.Properties()
	docx.RemoveChildren(tblPr, "w:tblBorders")
	docx.RemoveChildren(tblPr, "w:tblInd")
	borders := docx.Elem("w:tblBorders")
	for _, name := range tableBorderNames {
		b := docx.Elem("w:" + name)
		docx.SetAttr(b, "w:val", "nil")
		docx.AppendChild(borders, b)
	}
	docx.AppendChild(tblPr, borders)

	for _, cell := range t.Cells() {
		stripCellFormatting(cell)
	}
	for _, p := range t.CellParagraphs() {
		p.RemoveDecor()
	}
}

// stripCellFormatting replaces a cell's borders with explicit "nil"
// borders and drops its shading.
func stripCellFormatting(cell *xmlquery.Node) {
	tcPr := docx.CellProperties(cell)
	docx.RemoveChildren(tcPr, "w:tcBorders")
	docx.RemoveChildren(tcPr, "w:shd")
	borders := docx.Elem("w:tcBorders")
	for _, name := range cellBorderNames {
		b := docx.Elem("w:" + name)
		docx.SetAttr(b, "w:val", "nil")
		docx.AppendChild(borders, b)
	}
	docx.AppendChild(tcPr, borders)
}

// styleDataTable applies the uniform thin gray border grid to a data
// table and drops artifact shading fills from its cells. Intentional
// (colored) fills survive.
func styleDataTable(t *docx.Table) {
	tblPr := t.Properties()
	docx.RemoveChildren(tblPr, "w:tblBorders")
	borders := docx.Elem("w:tblBorders")
	for _, name := range tableBorderNames {
		b := docx.Elem("w:" + name)
		docx.SetAttr(b, "w:val", "single")
		docx.SetAttr(b, "w:sz", tableBorderSize)
		docx.SetAttr(b, "w:color", tableBorderColor)
		docx.SetAttr(b, "w:space", "0")
		docx.AppendChild(borders, b)
	}
	docx.AppendChild(tblPr, borders)

	for _, cell := range t.Cells() {
		tcPr := docx.Child(cell, "w:tcPr")
		if tcPr == nil {
			continue
		}
		shd := docx.Child(tcPr, "w:shd")
		if shd == nil {
			continue
		}
		if classify.IsArtifactFill(docx.AttrValue(shd, "w:fill")) {
			docx.Detach(shd)
		}
	}
}
