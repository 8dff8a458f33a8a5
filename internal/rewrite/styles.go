package rewrite

import (
	"strings"

	"github.com/yuanying/docshift/internal/classify"
	"github.com/yuanying/docshift/internal/docx"
)

// Normal-style paragraph spacing.
const (
	bodySpaceAfterPt = 8
	bodyLineSpacing  = 1.15
)

// normalizeStyles unifies the document's typography: the Normal style gets
// the body font and native spacing, monospace runs converge on one code
// font, leftover serif runs (pdf2docx defaults to Times) switch to the
// body font, and paragraphs without explicit spacing get the standard
// space-after.
func normalizeStyles(doc *docx.Document, opts Options) {
	doc.Styles().SetNormal(opts.BodyFont, opts.BodySizePt, bodySpaceAfterPt, bodyLineSpacing)

	for _, p := range doc.AllParagraphs() {
		for _, r := range p.Runs() {
			font := r.FontName()
			switch {
			case classify.IsMonospaceFont(font):
				r.SetFont(opts.MonoFont)
			case font == "":
				r.SetFont(opts.BodyFont)
			case strings.Contains(strings.ToLower(font), opts.ReplaceSerif):
				r.SetFont(opts.BodyFont)
			}
		}
		if _, ok := p.SpacingAfter(); !ok {
			p.SetSpacingAfter(bodySpaceAfterPt)
		}
	}
}
