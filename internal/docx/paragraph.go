package docx

import (
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
)

// Paragraph wraps a w:p element.
type Paragraph struct {
	n   *xmlquery.Node
	doc *Document
}

// Node exposes the underlying w:p element.
func (p *Paragraph) Node() *xmlquery.Node { return p.n }

// Text concatenates the paragraph's visible text (w:t descendants only,
// so field instructions do not leak in).
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, t := range Descendants(p.n, "w:t") {
		b.WriteString(t.InnerText())
	}
	return b.String()
}

// StyleID returns the w:pStyle value, or "".
func (p *Paragraph) StyleID() string {
	pPr := Child(p.n, "w:pPr")
	if pPr == nil {
		return ""
	}
	style := Child(pPr, "w:pStyle")
	if style == nil {
		return ""
	}
	return AttrValue(style, "w:val")
}

// StyleName resolves the paragraph's style id to its friendly name
// ("Heading 1"). Paragraphs without a style resolve to "".
func (p *Paragraph) StyleName() string {
	id := p.StyleID()
	if id == "" {
		return ""
	}
	if p.doc != nil {
		return p.doc.Styles().Name(id)
	}
	return id
}

// Runs returns the paragraph's runs in document order, including runs
// nested inside hyperlink spans.
func (p *Paragraph) Runs() []*Run {
	var out []*Run
	for _, n := range Descendants(p.n, "w:r") {
		out = append(out, &Run{n: n})
	}
	return out
}

// DirectRuns returns only the runs that are immediate children of the
// paragraph, excluding runs already wrapped in w:hyperlink spans.
func (p *Paragraph) DirectRuns() []*Run {
	var out []*Run
	for _, n := range Children(p.n, "w:r") {
		out = append(out, &Run{n: n})
	}
	return out
}

// Hyperlinks returns the paragraph's w:hyperlink spans.
func (p *Paragraph) Hyperlinks() []*xmlquery.Node {
	return Descendants(p.n, "w:hyperlink")
}

// Properties returns the paragraph's w:pPr element, creating it in first
// position if absent.
func (p *Paragraph) Properties() *xmlquery.Node {
	return EnsureFirstChild(p.n, "w:pPr")
}

// RemoveDecor strips paragraph borders, shading and text frames.
func (p *Paragraph) RemoveDecor() {
	pPr := Child(p.n, "w:pPr")
	if pPr == nil {
		return
	}
	RemoveChildren(pPr, "w:pBdr")
	RemoveChildren(pPr, "w:shd")
	RemoveChildren(pPr, "w:framePr")
}

// SetSpacing forces the paragraph's before/after spacing, given in points.
func (p *Paragraph) SetSpacing(beforePt, afterPt float64) {
	spacing := EnsureChild(p.Properties(), "w:spacing")
	SetAttr(spacing, "w:before", strconv.Itoa(int(beforePt*20)))
	SetAttr(spacing, "w:after", strconv.Itoa(int(afterPt*20)))
}

// SpacingAfter reports the w:after spacing value and whether it is set.
func (p *Paragraph) SpacingAfter() (string, bool) {
	pPr := Child(p.n, "w:pPr")
	if pPr == nil {
		return "", false
	}
	spacing := Child(pPr, "w:spacing")
	if spacing == nil {
		return "", false
	}
	v := AttrValue(spacing, "w:after")
	return v, v != ""
}

// SetSpacingAfter sets only the w:after spacing, in points.
func (p *Paragraph) SetSpacingAfter(afterPt float64) {
	spacing := EnsureChild(p.Properties(), "w:spacing")
	SetAttr(spacing, "w:after", strconv.Itoa(int(afterPt*20)))
}

// BookmarkNames returns the names of all bookmarks anchored in this
// paragraph.
func (p *Paragraph) BookmarkNames() []string {
	var names []string
	for _, b := range Children(p.n, "w:bookmarkStart") {
		names = append(names, AttrValue(b, "w:name"))
	}
	return names
}

// HasBookmarkPrefix reports whether the paragraph already carries a
// bookmark whose name starts with prefix. Rewrite passes use this to stay
// idempotent: paragraph indices shift between runs, so names cannot be
// compared exactly.
func (p *Paragraph) HasBookmarkPrefix(prefix string) bool {
	for _, name := range p.BookmarkNames() {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// AddBookmark anchors a named bookmark spanning the paragraph. The start
// marker goes after w:pPr (the schema requires properties first); the end
// marker is appended last.
func (p *Paragraph) AddBookmark(name string, id int) {
	start := Elem("w:bookmarkStart")
	SetAttr(start, "w:id", strconv.Itoa(id))
	SetAttr(start, "w:name", name)

	end := Elem("w:bookmarkEnd")
	SetAttr(end, "w:id", strconv.Itoa(id))

	if pPr := Child(p.n, "w:pPr"); pPr != nil {
		InsertAfter(pPr, start)
	} else {
		PrependChild(p.n, start)
	}
	AppendChild(p.n, end)
}

// InsertParagraphAfter creates an empty paragraph immediately after this
// one and returns it.
func (p *Paragraph) InsertParagraphAfter() *Paragraph {
	n := Elem("w:p")
	InsertAfter(p.n, n)
	return &Paragraph{n: n, doc: p.doc}
}

// Next returns the next sibling paragraph, skipping non-paragraph
// siblings, or nil at the end of the parent block.
func (p *Paragraph) Next() *Paragraph {
	for s := p.n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == xmlquery.ElementNode && NodeName(s) == "w:p" {
			return &Paragraph{n: s, doc: p.doc}
		}
	}
	return nil
}
