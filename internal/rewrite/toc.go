package rewrite

import (
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/yuanying/docshift/internal/docx"
)

// tocBookmarkPrefix tags the heading bookmarks the TOC field jumps to.
const tocBookmarkPrefix = "_Toc"

const tocFieldInstr = ` TOC \o "1-3" \h \z \u `
const tocPlaceholder = `Right-click and select "Update Field" to generate table of contents`

// tocTitles are the paragraph texts recognized as a table-of-contents
// heading (compared lowercase).
var tocTitles = map[string]bool{
	"contents":          true,
	"table of contents": true,
	"toc":               true,
}

// rebuildTOC bookmarks every heading and plants an updatable TOC field
// under the contents heading, if the document has one. pdf2docx renders
// the original table of contents as dead text; the field makes Word
// regenerate it with live page numbers. A document without headings gets
// no field: there would be nothing to list.
func rebuildTOC(doc *docx.Document) {
	if bookmarkHeadings(doc) == 0 {
		return
	}

	title := findTitleParagraph(doc, tocTitles)
	if title == nil {
		return
	}
	insertFieldAfter(title, tocFieldInstr, tocPlaceholder)
}

// bookmarkHeadings anchors a _Toc bookmark on every heading that does not
// already carry one and returns the number of headings found. Names are
// derived from the heading's position, so the prefix check (not name
// equality) is what keeps repeat runs from doubling up.
func bookmarkHeadings(doc *docx.Document) int {
	found := 0
	nextID := doc.MaxBookmarkID() + 1
	for i, p := range doc.Paragraphs() {
		if _, ok := classifyHeading(p); !ok {
			continue
		}
		found++
		if p.HasBookmarkPrefix(tocBookmarkPrefix) {
			continue
		}
		p.AddBookmark(fmt.Sprintf("%s%d", tocBookmarkPrefix, i), nextID)
		nextID++
	}
	return found
}

// findTitleParagraph returns the first body paragraph whose trimmed,
// lowercased text is one of the given titles.
func findTitleParagraph(doc *docx.Document, titles map[string]bool) *docx.Paragraph {
	for _, p := range doc.Paragraphs() {
		if titles[strings.ToLower(strings.TrimSpace(p.Text()))] {
			return p
		}
	}
	return nil
}

// insertFieldAfter plants a field paragraph right after title, unless the
// following paragraph already holds a TOC field.
func insertFieldAfter(title *docx.Paragraph, instr, placeholder string) {
	if next := title.Next(); next != nil && hasTOCField(next) {
		return
	}
	p := title.InsertParagraphAfter()
	buildField(p.Node(), instr, placeholder)
}

// hasTOCField reports whether the paragraph holds a TOC field instruction.
func hasTOCField(p *docx.Paragraph) bool {
	for _, n := range docx.Descendants(p.Node(), "w:instrText") {
		if strings.Contains(n.InnerText(), "TOC") {
			return true
		}
	}
	return false
}

// buildField fills an empty paragraph with a complete Word field: the
// begin marker, the instruction, the separator, placeholder text shown
// until the field is updated, and the end marker.
func buildField(p *xmlquery.Node, instr, placeholder string) {
	docx.AppendChild(p, fldCharRun("begin"))
	docx.AppendChild(p, instrTextRun(instr))
	docx.AppendChild(p, fldCharRun("separate"))
	docx.AppendChild(p, textRun(placeholder))
	docx.AppendChild(p, fldCharRun("end"))
}

func fldCharRun(charType string) *xmlquery.Node {
	r := docx.Elem("w:r")
	fc := docx.Elem("w:fldChar")
	docx.SetAttr(fc, "w:fldCharType", charType)
	docx.AppendChild(r, fc)
	return r
}

func instrTextRun(instr string) *xmlquery.Node {
	r := docx.Elem("w:r")
	it := docx.Elem("w:instrText")
	docx.SetAttr(it, "xml:space", "preserve")
	docx.AppendChild(it, docx.TextNode(instr))
	docx.AppendChild(r, it)
	return r
}

func textRun(text string) *xmlquery.Node {
	r := docx.Elem("w:r")
	t := docx.Elem("w:t")
	docx.AppendChild(t, docx.TextNode(text))
	docx.AppendChild(r, t)
	return r
}
