package rewrite

import (
	"regexp"
	"strings"

	"github.com/yuanying/docshift/internal/docx"
)

// linkColor is the standard hyperlink blue.
const linkColor = "0000EE"

// urlPattern matches http(s) URLs, bare www hosts and email addresses as
// they appear in body text.
var urlPattern = regexp.MustCompile(
	`(https?://[^\s<>"{}|\\^` + "`" + `\[\]]+` +
		`|www\.[^\s<>"{}|\\^` + "`" + `\[\]]+` +
		`|[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,})`)

// rebuildHyperlinks restores the links the conversion lost. Three sources,
// in order: hyperlink spans that survived get restyled, link records
// extracted from the source PDF are matched against run text, and finally
// plain-text URLs get wrapped. Only direct child runs of a paragraph are
// scanned, so runs already inside a hyperlink span are never wrapped twice.
func rebuildHyperlinks(doc *docx.Document, links []Link) {
	restyleHyperlinks(doc)
	applyLinkRecords(doc, links)
	linkPlainURLs(doc)
}

// restyleHyperlinks forces the standard blue-underline look onto every
// existing hyperlink span.
func restyleHyperlinks(doc *docx.Document) {
	for _, p := range doc.AllParagraphs() {
		for _, h := range p.Hyperlinks() {
			for _, n := range docx.Descendants(h, "w:r") {
				r := docx.WrapRun(n)
				r.SetColor(linkColor)
				r.SetUnderline()
			}
		}
	}
}

// applyLinkRecords wraps runs whose trimmed, lowercased text matches a
// link record extracted from the source PDF. Records without display text
// cannot be matched and are skipped; the URL scan may still pick their
// targets up.
func applyLinkRecords(doc *docx.Document, links []Link) {
	if len(links) == 0 {
		return
	}
	paras := doc.AllParagraphs()
	for _, link := range links {
		key := strings.ToLower(strings.TrimSpace(link.Text))
		if key == "" || link.URL == "" {
			continue
		}
		if !matchLinkRecord(doc, paras, key, link.URL) {
			warnf("hyperlink target %q: no run matches %q", link.URL, key)
		}
	}
}

// matchLinkRecord links every run whose text matches the record key.
func matchLinkRecord(doc *docx.Document, paras []*docx.Paragraph, key, url string) bool {
	matched := false
	for _, p := range paras {
		for _, r := range p.DirectRuns() {
			if strings.ToLower(strings.TrimSpace(r.Text())) != key {
				continue
			}
			wrapRunInHyperlink(doc, r, url)
			matched = true
		}
	}
	return matched
}

// linkPlainURLs wraps runs whose text contains a URL or email address.
// The whole containing run is wrapped, matching how the mixed-content run
// was laid out by the converter. URLs split across multiple runs are left
// alone; wrapping a fragment would produce a broken link.
func linkPlainURLs(doc *docx.Document) {
	for _, p := range doc.AllParagraphs() {
		for _, r := range p.DirectRuns() {
			match := strings.TrimRight(urlPattern.FindString(r.Text()), ".,;:)")
			if match == "" {
				continue
			}
			wrapRunInHyperlink(doc, r, normalizeURL(match))
		}
	}
}

// wrapRunInHyperlink registers the target and moves the run inside a new
// w:hyperlink span in the same position.
func wrapRunInHyperlink(doc *docx.Document, r *docx.Run, url string) {
	rID := doc.Rels().AddHyperlink(url)

	h := docx.Elem("w:hyperlink")
	docx.SetAttr(h, "r:id", rID)
	docx.SetAttr(h, "w:history", "1")

	n := r.Node()
	docx.InsertAfter(n, h)
	docx.Detach(n)
	docx.AppendChild(h, n)

	r.SetColor(linkColor)
	r.SetUnderline()
}

// normalizeURL turns bare www hosts and email addresses into proper
// hyperlink targets.
func normalizeURL(s string) string {
	switch {
	case strings.HasPrefix(s, "http://"), strings.HasPrefix(s, "https://"), strings.HasPrefix(s, "mailto:"):
		return s
	case strings.HasPrefix(s, "www."):
		return "https://" + s
	case strings.Contains(s, "@"):
		return "mailto:" + s
	}
	return s
}
