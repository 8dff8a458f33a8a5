package docx

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/antchfx/xmlquery"
)

// StyleRegistry resolves style ids to their friendly names ("Heading 1")
// and supports mutating the default paragraph style. It is backed by the
// parsed word/styles.xml tree so edits survive the save round-trip.
type StyleRegistry struct {
	root  *xmlquery.Node // document node of word/styles.xml, nil if absent
	names map[string]string
}

// parseStyles parses word/styles.xml. A missing part yields an empty
// registry: style names then resolve to the raw style id.
func parseStyles(data []byte) (*StyleRegistry, error) {
	reg := &StyleRegistry{names: make(map[string]string)}
	if len(data) == 0 {
		return reg, nil
	}

	root, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse styles: %w", err)
	}
	reg.root = root

	styles := Child(root, "w:styles")
	if styles == nil {
		return reg, nil
	}
	for _, style := range Children(styles, "w:style") {
		id := AttrValue(style, "w:styleId")
		if id == "" {
			continue
		}
		if nameEl := Child(style, "w:name"); nameEl != nil {
			reg.names[id] = AttrValue(nameEl, "w:val")
		}
	}
	return reg, nil
}

// Name resolves a style id to its friendly name, falling back to the id
// itself when the registry has no entry for it.
func (s *StyleRegistry) Name(id string) string {
	if name, ok := s.names[id]; ok && name != "" {
		return name
	}
	return id
}

// SetNormal rewrites the "Normal" style's font, size and paragraph spacing.
// size is in points, spaceAfter in points, lineSpacing as a multiplier
// (1.15 becomes w:line="276" w:lineRule="auto"). A document without a
// styles part is left unchanged.
func (s *StyleRegistry) SetNormal(font string, sizePt, spaceAfterPt float64, lineSpacing float64) {
	style := s.findStyle("Normal")
	if style == nil {
		return
	}

	// The style schema sequences w:pPr before w:rPr.
	pPr := Child(style, "w:pPr")
	if pPr == nil {
		pPr = Elem("w:pPr")
		if rPr := Child(style, "w:rPr"); rPr != nil {
			InsertBefore(rPr, pPr)
		} else {
			AppendChild(style, pPr)
		}
	}
	rPr := Child(style, "w:rPr")
	if rPr == nil {
		rPr = Elem("w:rPr")
		InsertAfter(pPr, rPr)
	}

	fonts := EnsureFirstChild(rPr, "w:rFonts")
	SetAttr(fonts, "w:ascii", font)
	SetAttr(fonts, "w:hAnsi", font)
	sz := EnsureChild(rPr, "w:sz")
	SetAttr(sz, "w:val", strconv.Itoa(int(math.Round(sizePt*2))))

	spacing := EnsureChild(pPr, "w:spacing")
	SetAttr(spacing, "w:after", strconv.Itoa(int(math.Round(spaceAfterPt*20))))
	SetAttr(spacing, "w:line", strconv.Itoa(int(math.Round(lineSpacing*240))))
	SetAttr(spacing, "w:lineRule", "auto")
}

// findStyle returns the w:style element with the given styleId, or nil.
func (s *StyleRegistry) findStyle(id string) *xmlquery.Node {
	if s.root == nil {
		return nil
	}
	styles := Child(s.root, "w:styles")
	if styles == nil {
		return nil
	}
	for _, style := range Children(styles, "w:style") {
		if AttrValue(style, "w:styleId") == id {
			return style
		}
	}
	return nil
}

// marshal serializes the styles part; ok is false when the document had
// no styles part to begin with.
func (s *StyleRegistry) marshal() (data []byte, ok bool) {
	if s.root == nil {
		return nil, false
	}
	return []byte(s.root.OutputXML(false)), true
}
