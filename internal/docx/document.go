// Package docx provides an in-memory model of a WordprocessingML (.docx)
// document. The container is a zip archive of parts; word/document.xml is
// parsed into a mutable XML tree and the rest of the parts are carried
// through byte-for-byte on save.
package docx

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/antchfx/xmlquery"
)

// Document is an opened .docx file. It owns every block-level element for
// the duration of one conversion: opened once, mutated in place, saved once.
type Document struct {
	path      string
	container *container
	root      *xmlquery.Node // document node of word/document.xml
	body      *xmlquery.Node // the w:body element
	rels      *Relationships
	styles    *StyleRegistry
}

// Open reads the .docx file at path and parses its main document part.
func Open(path string) (*Document, error) {
	c, err := openContainer(path)
	if err != nil {
		return nil, err
	}

	root, err := xmlquery.Parse(bytes.NewReader(c.parts[documentPart]))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", documentPart, err)
	}

	doc := &Document{path: path, container: c, root: root}

	docEl := Child(root, "w:document")
	if docEl == nil {
		return nil, ErrNoBody
	}
	doc.body = Child(docEl, "w:body")
	if doc.body == nil {
		return nil, ErrNoBody
	}

	doc.rels, err = parseRelationships(c.parts[relsPart])
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", relsPart, err)
	}

	doc.styles, err = parseStyles(c.parts[stylesPart])
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", stylesPart, err)
	}

	return doc, nil
}

// Path returns the file path the document was opened from.
func (d *Document) Path() string { return d.path }

// Rels returns the main document part's relationship table.
func (d *Document) Rels() *Relationships { return d.rels }

// Styles returns the document's style registry.
func (d *Document) Styles() *StyleRegistry { return d.styles }

// Body returns the w:body element.
func (d *Document) Body() *xmlquery.Node { return d.body }

// Save writes the document back to the file it was opened from.
func (d *Document) Save() error {
	return d.SaveAs(d.path)
}

// SaveAs serializes the mutated parts and writes the container to path.
func (d *Document) SaveAs(path string) error {
	d.container.setPart(documentPart, []byte(d.root.OutputXML(false)))
	d.container.setPart(relsPart, d.rels.marshal())
	if data, ok := d.styles.marshal(); ok {
		d.container.setPart(stylesPart, data)
	}
	return d.container.writeFile(path)
}

// MarshalDocumentXML returns the current serialized form of the main
// document part without saving. Useful for comparing document states.
func (d *Document) MarshalDocumentXML() []byte {
	return []byte(d.root.OutputXML(false))
}

// Paragraphs returns the body-level paragraphs in document order,
// excluding paragraphs nested inside table cells.
func (d *Document) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, n := range Children(d.body, "w:p") {
		out = append(out, &Paragraph{n: n, doc: d})
	}
	return out
}

// AllParagraphs returns every paragraph in the document, including those
// inside table cells, in document order.
func (d *Document) AllParagraphs() []*Paragraph {
	var out []*Paragraph
	for _, n := range Descendants(d.body, "w:p") {
		out = append(out, &Paragraph{n: n, doc: d})
	}
	return out
}

// Tables returns all tables in the document, including nested ones,
// in document order.
func (d *Document) Tables() []*Table {
	var out []*Table
	for _, n := range Descendants(d.body, "w:tbl") {
		out = append(out, &Table{n: n})
	}
	return out
}

// SectionProperties returns every w:sectPr element in the document:
// the body-level one plus any mid-document section breaks held in
// paragraph properties.
func (d *Document) SectionProperties() []*xmlquery.Node {
	return Descendants(d.body, "w:sectPr")
}

// MaxBookmarkID returns the largest numeric w:id used by any bookmarkStart
// in the document, so new bookmarks can be assigned non-colliding ids.
func (d *Document) MaxBookmarkID() int {
	max := 0
	for _, b := range Descendants(d.body, "w:bookmarkStart") {
		if id, err := strconv.Atoi(AttrValue(b, "w:id")); err == nil && id > max {
			max = id
		}
	}
	return max
}

// HasBookmark reports whether a bookmark with the given name exists
// anywhere in the document.
func (d *Document) HasBookmark(name string) bool {
	for _, b := range Descendants(d.body, "w:bookmarkStart") {
		if AttrValue(b, "w:name") == name {
			return true
		}
	}
	return false
}
