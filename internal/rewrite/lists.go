package rewrite

import (
	"fmt"
	"regexp"

	"github.com/yuanying/docshift/internal/docx"
)

// Caption bookmark prefixes.
const (
	figureBookmarkPrefix = "_FigRef"
	tableBookmarkPrefix  = "_TblRef"
)

const (
	lofFieldInstr  = ` TOC \h \z \c "Figure" `
	lotFieldInstr  = ` TOC \h \z \c "Table" `
	lofPlaceholder = `Right-click and select "Update Field" to generate list of figures`
	lotPlaceholder = `Right-click and select "Update Field" to generate list of tables`
)

var (
	figureCaptionRE = regexp.MustCompile(`(?i)^\s*(figure|fig\.?)\s*\d+`)
	tableCaptionRE  = regexp.MustCompile(`(?i)^\s*table\s*\d+`)

	lofTitles = map[string]bool{"list of figures": true}
	lotTitles = map[string]bool{"list of tables": true}
)

// bookmarkCaptions anchors bookmarks on figure and table captions and
// plants list-of-figures / list-of-tables fields under their title
// paragraphs, mirroring what rebuildTOC does for headings.
func bookmarkCaptions(doc *docx.Document) {
	nextID := doc.MaxBookmarkID() + 1
	for i, p := range doc.Paragraphs() {
		text := p.Text()
		switch {
		case figureCaptionRE.MatchString(text):
			if p.HasBookmarkPrefix(figureBookmarkPrefix) {
				continue
			}
			p.AddBookmark(fmt.Sprintf("%s%d", figureBookmarkPrefix, i), nextID)
			nextID++
		case tableCaptionRE.MatchString(text):
			if p.HasBookmarkPrefix(tableBookmarkPrefix) {
				continue
			}
			p.AddBookmark(fmt.Sprintf("%s%d", tableBookmarkPrefix, i), nextID)
			nextID++
		}
	}

	if title := findTitleParagraph(doc, lofTitles); title != nil {
		insertFieldAfter(title, lofFieldInstr, lofPlaceholder)
	}
	if title := findTitleParagraph(doc, lotTitles); title != nil {
		insertFieldAfter(title, lotFieldInstr, lotPlaceholder)
	}
}
