package rewrite

import (
	"github.com/yuanying/docshift/internal/docx"
)

// Page geometry in twentieths of a point: 1-inch margins, 0.5-inch
// header/footer distance.
const (
	marginTwips       = 1440
	headerFooterTwips = 720
)

// normalizeMargins forces every section to standard Word margins,
// overwriting whatever the converter produced.
func normalizeMargins(doc *docx.Document) {
	for _, sectPr := range doc.SectionProperties() {
		pgMar := docx.EnsureChild(sectPr, "w:pgMar")
		docx.SetAttrInt(pgMar, "w:top", marginTwips)
		docx.SetAttrInt(pgMar, "w:right", marginTwips)
		docx.SetAttrInt(pgMar, "w:bottom", marginTwips)
		docx.SetAttrInt(pgMar, "w:left", marginTwips)
		docx.SetAttrInt(pgMar, "w:header", headerFooterTwips)
		docx.SetAttrInt(pgMar, "w:footer", headerFooterTwips)
		docx.SetAttrInt(pgMar, "w:gutter", 0)
	}
}
