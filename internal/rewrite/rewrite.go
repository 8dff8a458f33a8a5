// Package rewrite post-processes a converted DOCX so it reads as a native
// word-processor document: conversion-artifact tables and borders are
// stripped, headings and styles normalized, and the semantic structures
// the converter lost (TOC field, bookmarks, hyperlinks, cross-references)
// are rebuilt.
package rewrite

import (
	"fmt"
	"log"

	"github.com/yuanying/docshift/internal/docx"
)

// Link is a hyperlink record extracted from the source PDF: the visible
// text, the target URL and the zero-based source page. Records are matched
// against run text to restore links lost during conversion.
type Link struct {
	Text string
	URL  string
	Page int
}

// Options configures a rewrite run.
type Options struct {
	// Links are hyperlink records extracted from the source PDF.
	Links []Link

	// BodyFont, BodySizePt and MonoFont drive style normalization.
	// Zero values fall back to the Word-native defaults.
	BodyFont   string
	BodySizePt float64
	MonoFont   string

	// ReplaceSerif is a serif family (substring, lowercase) that gets
	// swapped for BodyFont wherever it appears.
	ReplaceSerif string
}

func (o *Options) fillDefaults() {
	if o.BodyFont == "" {
		o.BodyFont = "Calibri"
	}
	if o.BodySizePt == 0 {
		o.BodySizePt = 11
	}
	if o.MonoFont == "" {
		o.MonoFont = "Consolas"
	}
	if o.ReplaceSerif == "" {
		o.ReplaceSerif = "times"
	}
}

// Normalize applies the full rewrite sequence to doc. The pass order
// matters: later passes assume earlier ones completed (heading spacing is
// applied after decor stripping, the TOC pass consumes the bookmarks the
// heading scan assigns). The whole sequence is best-effort; a panic in any
// pass is recovered into the returned error and the caller is expected to
// save the partially rewritten document anyway.
func Normalize(doc *docx.Document, opts Options) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("rewrite aborted: %v", r)
		}
	}()

	opts.fillDefaults()

	normalizeMargins(doc)
	cleanTables(doc)
	stripParagraphDecor(doc)
	normalizeHeadings(doc)
	rebuildHyperlinks(doc, opts.Links)
	rebuildTOC(doc)
	bookmarkCaptions(doc)
	styleCrossReferences(doc)
	normalizeStyles(doc, opts)

	return nil
}

// warnf logs a non-fatal rewrite condition.
func warnf(format string, args ...any) {
	log.Printf("warning: "+format, args...)
}
