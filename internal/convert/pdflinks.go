package convert

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// LinkRecord is one URI link annotation lifted from a PDF page: the
// annotation's display text (its Contents entry, often empty), the target
// URL and the zero-based page number.
type LinkRecord struct {
	Text string
	URL  string
	Page int
}

// ExtractPDFLinks walks every page's annotations and collects the URI
// links. pdf2docx drops link annotations during conversion; the records
// let the rewrite phase restore them in the DOCX. Malformed annotations
// are skipped, not fatal.
func ExtractPDFLinks(path string) ([]LinkRecord, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var records []LinkRecord
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		records = append(records, pageLinks(ctx, pageNr)...)
	}
	return records, nil
}

// pageLinks collects the URI link annotations of one page.
func pageLinks(ctx *model.Context, pageNr int) []LinkRecord {
	pageDict, _, _, err := ctx.PageDict(pageNr, false)
	if err != nil || pageDict == nil {
		return nil
	}
	obj, found := pageDict.Find("Annots")
	if !found {
		return nil
	}
	annots, err := ctx.DereferenceArray(obj)
	if err != nil {
		return nil
	}

	var records []LinkRecord
	for _, a := range annots {
		annot, err := ctx.DereferenceDict(a)
		if err != nil || annot == nil {
			continue
		}
		if subtype := annot.NameEntry("Subtype"); subtype == nil || *subtype != "Link" {
			continue
		}
		action, found := annot.Find("A")
		if !found {
			continue
		}
		actionDict, err := ctx.DereferenceDict(action)
		if err != nil || actionDict == nil {
			continue
		}
		uri := actionDict.StringEntry("URI")
		if uri == nil || *uri == "" {
			continue
		}
		records = append(records, LinkRecord{
			Text: annotText(annot),
			URL:  *uri,
			Page: pageNr - 1,
		})
	}
	return records
}

// annotText returns the annotation's display text, or "".
func annotText(annot types.Dict) string {
	if s := annot.StringEntry("Contents"); s != nil {
		return *s
	}
	return ""
}
