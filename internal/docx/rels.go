package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	relNamespace  = "http://schemas.openxmlformats.org/package/2006/relationships"
	hyperlinkType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
)

// Relationship is one entry of a part's .rels file.
type Relationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

// Relationships is the relationship table of the main document part.
// External hyperlink targets created during rewriting are registered here.
type Relationships struct {
	rels    []Relationship
	byURL   map[string]string // external hyperlink target -> rId
	nextNum int
}

// relationshipsXML mirrors the on-disk .rels structure.
type relationshipsXML struct {
	XMLName       xml.Name       `xml:"Relationships"`
	Relationships []Relationship `xml:"Relationship"`
}

// parseRelationships parses a .rels part. A nil or empty part yields an
// empty, usable table (pdf2docx output may omit it when there are no links).
func parseRelationships(data []byte) (*Relationships, error) {
	r := &Relationships{byURL: make(map[string]string), nextNum: 1}
	if len(data) == 0 {
		return r, nil
	}

	var parsed relationshipsXML
	if err := xml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse relationships: %w", err)
	}
	r.rels = parsed.Relationships

	for _, rel := range r.rels {
		if rel.Type == hyperlinkType {
			r.byURL[rel.Target] = rel.ID
		}
		if num, err := strconv.Atoi(strings.TrimPrefix(rel.ID, "rId")); err == nil && num >= r.nextNum {
			r.nextNum = num + 1
		}
	}
	return r, nil
}

// AddHyperlink registers an external hyperlink target and returns its rId.
// A target that is already registered keeps its existing rId, so repeated
// rewrites do not accumulate duplicate relationships.
func (r *Relationships) AddHyperlink(url string) string {
	if id, ok := r.byURL[url]; ok {
		return id
	}
	id := "rId" + strconv.Itoa(r.nextNum)
	r.nextNum++
	r.rels = append(r.rels, Relationship{
		ID:         id,
		Type:       hyperlinkType,
		Target:     url,
		TargetMode: "External",
	})
	r.byURL[url] = id
	return id
}

// HyperlinkTarget returns the external target registered under rId, or "".
func (r *Relationships) HyperlinkTarget(id string) string {
	for _, rel := range r.rels {
		if rel.ID == id && rel.Type == hyperlinkType {
			return rel.Target
		}
	}
	return ""
}

// Hyperlinks returns all registered external hyperlink targets.
func (r *Relationships) Hyperlinks() []string {
	urls := make([]string, 0, len(r.byURL))
	for url := range r.byURL {
		urls = append(urls, url)
	}
	sort.Strings(urls)
	return urls
}

// marshal serializes the table back into .rels form.
func (r *Relationships) marshal() []byte {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.WriteString(`<Relationships xmlns="` + relNamespace + `">`)
	for _, rel := range r.rels {
		buf.WriteString(`<Relationship Id="` + xmlEscape(rel.ID) +
			`" Type="` + xmlEscape(rel.Type) +
			`" Target="` + xmlEscape(rel.Target) + `"`)
		if rel.TargetMode != "" {
			buf.WriteString(` TargetMode="` + xmlEscape(rel.TargetMode) + `"`)
		}
		buf.WriteString(`/>`)
	}
	buf.WriteString(`</Relationships>`)
	return buf.Bytes()
}

func xmlEscape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
