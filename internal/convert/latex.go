package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// latexAuxExts are the working files pdflatex scatters next to its output.
var latexAuxExts = []string{
	".aux", ".log", ".out", ".toc", ".lof", ".lot",
	".bbl", ".blg", ".nav", ".snm", ".fls", ".fdb_latexmk", ".synctex.gz",
}

// CompileLaTeX runs pdflatex on texPath twice, so cross-references and the
// table of contents resolve, and returns the produced PDF's path. The
// engine runs in nonstop mode and may exit nonzero on recoverable errors;
// as long as the PDF materializes the compile counts as a success.
// Auxiliary files are removed afterward.
func CompileLaTeX(ctx context.Context, texPath, outDir string) (string, error) {
	stem := strings.TrimSuffix(filepath.Base(texPath), filepath.Ext(texPath))
	pdfPath := filepath.Join(outDir, stem+".pdf")

	var runErr error
	for pass := 0; pass < 2; pass++ {
		runErr = runTool(ctx, filepath.Dir(texPath), "pdflatex",
			"-interaction=nonstopmode",
			"-output-directory", outDir,
			texPath)
		if runErr != nil && ctx.Err() != nil {
			return "", runErr
		}
	}

	if _, err := os.Stat(pdfPath); err != nil {
		if runErr != nil {
			return "", runErr
		}
		return "", fmt.Errorf("%s: %w", pdfPath, ErrNoOutput)
	}
	if runErr != nil {
		warnf("pdflatex reported errors but produced %s: %v", pdfPath, runErr)
	}

	CleanLaTeXAuxFiles(outDir, stem)
	return pdfPath, nil
}

// CleanLaTeXAuxFiles removes pdflatex's auxiliary files for the given
// document stem. Missing files are not an error.
func CleanLaTeXAuxFiles(dir, stem string) {
	for _, ext := range latexAuxExts {
		path := filepath.Join(dir, stem+ext)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			warnf("could not remove %s: %v", path, err)
		}
	}
}
