package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DOCXToPDF renders a DOCX to PDF through a headless LibreOffice and
// returns the output path. soffice picks the output name itself (input
// stem plus .pdf) and, in some failure modes, exits zero without writing
// anything, so the output file is checked explicitly.
func DOCXToPDF(ctx context.Context, docxPath, outDir string) (string, error) {
	stem := strings.TrimSuffix(filepath.Base(docxPath), filepath.Ext(docxPath))
	pdfPath := filepath.Join(outDir, stem+".pdf")

	err := runTool(ctx, filepath.Dir(docxPath), "soffice",
		"--headless", "--convert-to", "pdf", "--outdir", outDir, docxPath)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(pdfPath); err != nil {
		return "", fmt.Errorf("%s: %w", pdfPath, ErrNoOutput)
	}
	return pdfPath, nil
}
