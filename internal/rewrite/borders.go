package rewrite

import (
	"github.com/yuanying/docshift/internal/classify"
	"github.com/yuanying/docshift/internal/docx"
)

// stripParagraphDecor removes borders, shading and text frames that the
// PDF conversion painted onto ordinary paragraphs. Callout boxes and code
// blocks keep their decoration; intentional highlight fills outside the
// artifact palette survive too.
func stripParagraphDecor(doc *docx.Document) {
	for _, p := range doc.AllParagraphs() {
		text := p.Text()
		if classify.IsIntentionalBox(text) || classify.IsCodeText(text) {
			continue
		}
		p.RemoveDecor()
		for _, r := range p.Runs() {
			if classify.IsArtifactFill(r.ShadingFill()) {
				r.RemoveShading()
			}
		}
	}
}
