// Package classify decides whether document structures are authored
// content or artifacts introduced by format conversion. All functions are
// pure: they never error, and missing data always falls toward preserving
// structure (not a heading, not code, a real table).
package classify

import "strings"

// TableKind tags a table as authored data or a conversion-layout wrapper.
type TableKind int

const (
	// TableData is a genuine data table; it keeps a uniform border grid.
	TableData TableKind = iota
	// TableWrapper is a layout container left behind by the converter;
	// all of its borders and shading are stripped.
	TableWrapper
)

// wrapperTextLimit is the aggregate cell-text length under which a short
// single-row table counts as a wrapper.
const wrapperTextLimit = 200

// Table classifies a table from its grid shape and aggregate cell text.
// Rules are evaluated in order; the first match wins.
func Table(rows, cols int, text string) TableKind {
	switch {
	case rows == 1 && cols <= 2:
		return TableWrapper
	case rows == 1 && len(text) < wrapperTextLimit:
		return TableWrapper
	}
	return TableData
}

// RunInfo carries the character properties the heading fallback needs.
type RunInfo struct {
	Bold   bool
	SizePt float64
}

// headingTextLimit is the maximum text length for the formatting-based
// heading fallback.
const headingTextLimit = 100

// Heading reports whether a paragraph is a heading and at what outline
// level (1-5). Style names win over formatting; the fallback requires
// short text with at least one bold run of 12pt or larger.
func Heading(styleName, text string, runs []RunInfo) (level int, ok bool) {
	if strings.Contains(styleName, "Heading") {
		switch {
		case strings.Contains(styleName, "Heading 1"):
			return 1, true
		case strings.Contains(styleName, "Heading 2"):
			return 2, true
		case strings.Contains(styleName, "Heading 3"):
			return 3, true
		case strings.Contains(styleName, "Heading 4"):
			return 4, true
		}
		return 5, true
	}
	if strings.Contains(styleName, "Title") {
		return 1, true
	}

	text = strings.TrimSpace(text)
	if len(text) == 0 || len(text) >= headingTextLimit {
		return 0, false
	}
	for _, r := range runs {
		if !r.Bold || r.SizePt < 12 {
			continue
		}
		switch {
		case r.SizePt >= 16:
			return 1, true
		case r.SizePt >= 14:
			return 2, true
		default:
			return 3, true
		}
	}
	return 0, false
}

// boxMarkers are the textual prefixes that mark an intentional callout box.
var boxMarkers = []string{"note:", "warning:", "caution:", "important:", "tip:"}

// boxGlyphs are glyph markers that mark an intentional callout box.
var boxGlyphs = []string{"ℹ", "⚠", "✓", "✗", "→", "•"}

// IsIntentionalBox reports whether a bordered or shaded paragraph should
// be preserved rather than stripped as a conversion artifact.
func IsIntentionalBox(text string) bool {
	lower := strings.ToLower(text)
	for _, m := range boxMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	for _, g := range boxGlyphs {
		if strings.Contains(text, g) {
			return true
		}
	}
	return false
}

// codeTokens are substrings that mark text as source code.
var codeTokens = []string{
	"def ", "class ", "import ", "func ", "#!/", "<?php",
	"```", ">>>", "$ ", "#include", "return ", "};",
}

// IsCodeText reports whether text looks like source code, in which case
// its shading and monospace font are preserved.
func IsCodeText(text string) bool {
	for _, tok := range codeTokens {
		if strings.Contains(text, tok) {
			return true
		}
	}
	return false
}

// monoFamilies are substrings identifying monospace font families.
var monoFamilies = []string{"courier", "consolas", "monaco", "mono", "code", "menlo"}

// IsMonospaceFont reports whether a font name belongs to a monospace
// family.
func IsMonospaceFont(name string) bool {
	lower := strings.ToLower(name)
	if lower == "" {
		return false
	}
	for _, m := range monoFamilies {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// artifactFills is the palette of near-white fills that PDF conversion
// leaves behind as background shading. Fills outside the palette count as
// intentional highlights and survive rewriting.
var artifactFills = map[string]bool{
	"F5F5F5": true,
	"F0F0F0": true,
	"EFEFEF": true,
	"FAFAFA": true,
	"E0E0E0": true,
	"F8F8F8": true,
	"E8E8E8": true,
	"D0D0D0": true,
	"FFFFFF": true,
	"AUTO":   true,
}

// IsArtifactFill reports whether a shading fill belongs to the known
// conversion-artifact palette.
func IsArtifactFill(fill string) bool {
	if fill == "" {
		return false
	}
	return artifactFills[strings.ToUpper(fill)]
}
