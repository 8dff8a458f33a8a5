// Package convert orchestrates document conversion: it drives the
// external engines (pdflatex, pdf2docx, soffice), chains them for
// multi-step modes, and post-processes DOCX output so it reads as a
// native word-processor document.
package convert

import "fmt"

// Mode names a conversion direction.
type Mode string

const (
	ModeTexToPDF  Mode = "tex2pdf"
	ModeTexToDOCX Mode = "tex2docx"
	ModePDFToDOCX Mode = "pdf2docx"
	ModeDOCXToPDF Mode = "docx2pdf"
)

// Modes lists every supported mode in menu order.
var Modes = []Mode{ModeTexToPDF, ModeTexToDOCX, ModePDFToDOCX, ModeDOCXToPDF}

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mode %q (want tex2pdf, tex2docx, pdf2docx or docx2pdf)", s)
}

// SourceExt returns the input file extension for the mode, with dot.
func (m Mode) SourceExt() string {
	switch m {
	case ModeTexToPDF, ModeTexToDOCX:
		return ".tex"
	case ModePDFToDOCX:
		return ".pdf"
	case ModeDOCXToPDF:
		return ".docx"
	}
	return ""
}

// ProducesDOCX reports whether the mode's output is a DOCX file, and so
// goes through the structural rewrite.
func (m Mode) ProducesDOCX() bool {
	return m == ModeTexToDOCX || m == ModePDFToDOCX
}

// tools returns the external commands the mode needs on PATH.
func (m Mode) tools() []string {
	switch m {
	case ModeTexToPDF:
		return []string{"pdflatex"}
	case ModeTexToDOCX:
		return []string{"pdflatex", "pdf2docx"}
	case ModePDFToDOCX:
		return []string{"pdf2docx"}
	case ModeDOCXToPDF:
		return []string{"soffice"}
	}
	return nil
}
