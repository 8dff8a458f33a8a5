package rewrite

import (
	"regexp"
	"strings"

	"github.com/yuanying/docshift/internal/docx"
)

// mentionRE matches in-text references to numbered document elements,
// with the dot after an abbreviation optional ("Fig. 3" and "Fig 3").
var mentionRE = regexp.MustCompile(
	`(?i)\b(figure|fig\.?|table|section|sec\.?|chapter|equation|eq\.?)\s+(\d+(?:\.\d+)*)`)

// sectionNumberRE matches numbered section headings ("3.2 Results").
var sectionNumberRE = regexp.MustCompile(`^(\d+(?:\.\d+)*)\s+\w`)

// refTargets is the set of numbered elements a cross-reference can
// resolve against.
type refTargets struct {
	figures  map[string]bool
	tables   map[string]bool
	sections map[string]bool
}

// styleCrossReferences colors in-text references that resolve to an
// element actually present in the document, so they read as live links.
// Caption paragraphs themselves are left alone. Purely visual: no field
// codes are generated for mentions.
func styleCrossReferences(doc *docx.Document) {
	targets := collectRefTargets(doc)
	if len(targets.figures) == 0 && len(targets.tables) == 0 && len(targets.sections) == 0 {
		return
	}

	for _, p := range doc.Paragraphs() {
		text := p.Text()
		if figureCaptionRE.MatchString(text) || tableCaptionRE.MatchString(text) {
			continue
		}
		for _, r := range p.Runs() {
			if mentionResolves(r.Text(), targets) {
				r.SetColor(linkColor)
			}
		}
	}
}

// collectRefTargets scans captions and numbered headings for the numbers
// a mention can point at.
func collectRefTargets(doc *docx.Document) refTargets {
	t := refTargets{
		figures:  make(map[string]bool),
		tables:   make(map[string]bool),
		sections: make(map[string]bool),
	}
	numRE := regexp.MustCompile(`\d+`)
	for _, p := range doc.Paragraphs() {
		text := strings.TrimSpace(p.Text())
		switch {
		case figureCaptionRE.MatchString(text):
			if n := numRE.FindString(text); n != "" {
				t.figures[n] = true
			}
		case tableCaptionRE.MatchString(text):
			if n := numRE.FindString(text); n != "" {
				t.tables[n] = true
			}
		default:
			if _, ok := classifyHeading(p); !ok {
				continue
			}
			if m := sectionNumberRE.FindStringSubmatch(text); m != nil {
				t.sections[m[1]] = true
			}
		}
	}
	return t
}

// mentionResolves reports whether the run text mentions a numbered
// element that exists in the document. Chapter and equation mentions
// never resolve: nothing in the document model numbers them, so there is
// no target to point at.
func mentionResolves(text string, targets refTargets) bool {
	for _, m := range mentionRE.FindAllStringSubmatch(text, -1) {
		kind := strings.TrimSuffix(strings.ToLower(m[1]), ".")
		num := m[2]
		switch kind {
		case "figure", "fig":
			if targets.figures[num] {
				return true
			}
		case "table":
			if targets.tables[num] {
				return true
			}
		case "section", "sec":
			if targets.sections[num] {
				return true
			}
		}
	}
	return false
}
