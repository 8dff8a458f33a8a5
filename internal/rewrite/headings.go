package rewrite

import (
	"github.com/yuanying/docshift/internal/classify"
	"github.com/yuanying/docshift/internal/docx"
)

// Heading spacing in points.
const (
	headingSpaceBeforePt = 12
	headingSpaceAfterPt  = 6
)

// normalizeHeadings gives every heading uniform spacing and clears any
// leftover decoration.
func normalizeHeadings(doc *docx.Document) {
	for _, p := range doc.Paragraphs() {
		if _, ok := classifyHeading(p); !ok {
			continue
		}
		p.RemoveDecor()
		p.SetSpacing(headingSpaceBeforePt, headingSpaceAfterPt)
	}
}

// classifyHeading adapts a paragraph to the classifier's heading check.
func classifyHeading(p *docx.Paragraph) (int, bool) {
	runs := p.Runs()
	infos := make([]classify.RunInfo, 0, len(runs))
	for _, r := range runs {
		infos = append(infos, classify.RunInfo{Bold: r.Bold(), SizePt: r.FontSizePt()})
	}
	return classify.Heading(p.StyleName(), p.Text(), infos)
}
