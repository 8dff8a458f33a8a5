package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Tuning holds the pdf2docx layout-recovery parameters. The defaults are
// tightened from the engine's own: they bias toward joining lines into
// paragraphs and away from inventing sections, which suits machine-set
// (LaTeX) source material.
type Tuning struct {
	ConnectedBorderTolerance   float64 `mapstructure:"connected_border_tolerance"`
	MinSectionHeight           float64 `mapstructure:"min_section_height"`
	LineOverlapThreshold       float64 `mapstructure:"line_overlap_threshold"`
	LineBreakWidthRatio        float64 `mapstructure:"line_break_width_ratio"`
	LineBreakFreeSpaceRatio    float64 `mapstructure:"line_break_free_space_ratio"`
	NewParagraphFreeSpaceRatio float64 `mapstructure:"new_paragraph_free_space_ratio"`
	FloatImageIgnorableGap     float64 `mapstructure:"float_image_ignorable_gap"`
	PageMarginFactorTop        float64 `mapstructure:"page_margin_factor_top"`
	PageMarginFactorBottom     float64 `mapstructure:"page_margin_factor_bottom"`
}

// DefaultTuning returns the tuned parameter set.
func DefaultTuning() Tuning {
	return Tuning{
		ConnectedBorderTolerance:   1.0,
		MinSectionHeight:           30,
		LineOverlapThreshold:       0.9,
		LineBreakWidthRatio:        0.5,
		LineBreakFreeSpaceRatio:    0.15,
		NewParagraphFreeSpaceRatio: 0.85,
		FloatImageIgnorableGap:     10,
		PageMarginFactorTop:        0.0,
		PageMarginFactorBottom:     0.0,
	}
}

// args renders the parameters as pdf2docx CLI keyword flags.
func (t Tuning) args() []string {
	f := func(name string, v float64) string {
		return "--" + name + "=" + strconv.FormatFloat(v, 'g', -1, 64)
	}
	return []string{
		f("connected_border_tolerance", t.ConnectedBorderTolerance),
		f("min_section_height", t.MinSectionHeight),
		f("line_overlap_threshold", t.LineOverlapThreshold),
		f("line_break_width_ratio", t.LineBreakWidthRatio),
		f("line_break_free_space_ratio", t.LineBreakFreeSpaceRatio),
		f("new_paragraph_free_space_ratio", t.NewParagraphFreeSpaceRatio),
		f("float_image_ignorable_gap", t.FloatImageIgnorableGap),
		f("page_margin_factor_top", t.PageMarginFactorTop),
		f("page_margin_factor_bottom", t.PageMarginFactorBottom),
	}
}

// PDFToDOCX converts a PDF to DOCX with the pdf2docx engine and returns
// the output path.
func PDFToDOCX(ctx context.Context, pdfPath, outDir string, tuning Tuning) (string, error) {
	stem := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	docxPath := filepath.Join(outDir, stem+".docx")

	args := append([]string{"convert", pdfPath, docxPath}, tuning.args()...)
	if err := runTool(ctx, filepath.Dir(pdfPath), "pdf2docx", args...); err != nil {
		return "", err
	}
	if _, err := os.Stat(docxPath); err != nil {
		return "", fmt.Errorf("%s: %w", docxPath, ErrNoOutput)
	}
	return docxPath, nil
}
