package docx

import (
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
)

// Run wraps a w:r element: a contiguous text span with uniform
// character-level properties.
type Run struct {
	n *xmlquery.Node
}

// WrapRun wraps an existing w:r element.
func WrapRun(n *xmlquery.Node) *Run { return &Run{n: n} }

// Node exposes the underlying w:r element.
func (r *Run) Node() *xmlquery.Node { return r.n }

// Text concatenates the run's w:t content.
func (r *Run) Text() string {
	var b strings.Builder
	for _, t := range Children(r.n, "w:t") {
		b.WriteString(t.InnerText())
	}
	return b.String()
}

// props returns the run's w:rPr element, or nil.
func (r *Run) props() *xmlquery.Node {
	return Child(r.n, "w:rPr")
}

// Properties returns the run's w:rPr element, creating it in first
// position if absent.
func (r *Run) Properties() *xmlquery.Node {
	return EnsureFirstChild(r.n, "w:rPr")
}

// Bold reports whether the run is bold. A w:b element with w:val "0" or
// "false" counts as not bold.
func (r *Run) Bold() bool {
	rPr := r.props()
	if rPr == nil {
		return false
	}
	b := Child(rPr, "w:b")
	if b == nil {
		return false
	}
	switch AttrValue(b, "w:val") {
	case "0", "false", "off":
		return false
	}
	return true
}

// FontSizePt returns the run's font size in points, or 0 if unset.
// WordprocessingML stores sizes in half-points.
func (r *Run) FontSizePt() float64 {
	rPr := r.props()
	if rPr == nil {
		return 0
	}
	sz := Child(rPr, "w:sz")
	if sz == nil {
		return 0
	}
	half, err := strconv.ParseFloat(AttrValue(sz, "w:val"), 64)
	if err != nil {
		return 0
	}
	return half / 2
}

// FontName returns the run's ASCII font name, or "".
func (r *Run) FontName() string {
	rPr := r.props()
	if rPr == nil {
		return ""
	}
	fonts := Child(rPr, "w:rFonts")
	if fonts == nil {
		return ""
	}
	return AttrValue(fonts, "w:ascii")
}

// SetFont forces the run's font family.
func (r *Run) SetFont(name string) {
	fonts := EnsureFirstChild(r.Properties(), "w:rFonts")
	SetAttr(fonts, "w:ascii", name)
	SetAttr(fonts, "w:hAnsi", name)
}

// ShadingFill returns the run's w:shd fill value, or "".
func (r *Run) ShadingFill() string {
	rPr := r.props()
	if rPr == nil {
		return ""
	}
	shd := Child(rPr, "w:shd")
	if shd == nil {
		return ""
	}
	return AttrValue(shd, "w:fill")
}

// RemoveShading drops the run's background shading.
func (r *Run) RemoveShading() {
	if rPr := r.props(); rPr != nil {
		RemoveChildren(rPr, "w:shd")
	}
}

// SetColor sets the run's text color (hex without '#').
func (r *Run) SetColor(hex string) {
	color := EnsureChild(r.Properties(), "w:color")
	SetAttr(color, "w:val", hex)
}

// Color returns the run's text color value, or "".
func (r *Run) Color() string {
	rPr := r.props()
	if rPr == nil {
		return ""
	}
	c := Child(rPr, "w:color")
	if c == nil {
		return ""
	}
	return AttrValue(c, "w:val")
}

// SetUnderline applies single underlining.
func (r *Run) SetUnderline() {
	u := EnsureChild(r.Properties(), "w:u")
	SetAttr(u, "w:val", "single")
}

// Underlined reports whether the run has any underline other than "none".
func (r *Run) Underlined() bool {
	rPr := r.props()
	if rPr == nil {
		return false
	}
	u := Child(rPr, "w:u")
	if u == nil {
		return false
	}
	return AttrValue(u, "w:val") != "none"
}
