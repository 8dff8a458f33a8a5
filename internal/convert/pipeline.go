package convert

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/yuanying/docshift/internal/docx"
	"github.com/yuanying/docshift/internal/rewrite"
)

// DefaultTimeout bounds a single external-engine invocation.
const DefaultTimeout = 5 * time.Minute

// skipStems marks working files that batch conversion must not pick up.
var skipStems = []string{"_style", "_temp", ".backup"}

// Options configures a pipeline.
type Options struct {
	Mode      Mode
	OutputDir string
	// Timeout bounds each external-engine invocation, not the whole run.
	Timeout time.Duration
	Tuning  Tuning
	// Rewrite configures DOCX post-processing; its Links field is filled
	// per converted file.
	Rewrite rewrite.Options
}

// Pipeline converts documents in one mode. Construction validates that
// the mode's external engines are installed.
type Pipeline struct {
	opts Options
}

// New builds a pipeline, checking PATH for the mode's engines and
// creating the output directory.
func New(opts Options) (*Pipeline, error) {
	if _, err := ParseMode(string(opts.Mode)); err != nil {
		return nil, err
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	for _, tool := range opts.Mode.tools() {
		if _, err := exec.LookPath(tool); err != nil {
			return nil, fmt.Errorf("%w: %s (needed for %s)", ErrToolNotFound, tool, opts.Mode)
		}
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}
	return &Pipeline{opts: opts}, nil
}

// ConvertFile converts a single input file and returns the output path.
// DOCX-producing modes get the structural rewrite applied to the result.
func (p *Pipeline) ConvertFile(ctx context.Context, path string) (string, error) {
	outPath, links, err := p.convert(ctx, path)
	if err != nil {
		return "", err
	}
	if p.opts.Mode.ProducesDOCX() {
		p.postprocess(outPath, links)
	}
	return outPath, nil
}

// convert runs the mode's engine chain, returning the output path and any
// link records gathered along the way.
func (p *Pipeline) convert(ctx context.Context, path string) (string, []LinkRecord, error) {
	switch p.opts.Mode {
	case ModeTexToPDF:
		out, err := p.withTimeout(ctx, func(ctx context.Context) (string, error) {
			return CompileLaTeX(ctx, path, p.opts.OutputDir)
		})
		return out, nil, err
	case ModeTexToDOCX:
		return p.texToDOCX(ctx, path)
	case ModePDFToDOCX:
		return p.pdfToDOCX(ctx, path)
	case ModeDOCXToPDF:
		out, err := p.withTimeout(ctx, func(ctx context.Context) (string, error) {
			return DOCXToPDF(ctx, path, p.opts.OutputDir)
		})
		return out, nil, err
	}
	return "", nil, fmt.Errorf("unknown mode %q", p.opts.Mode)
}

// texToDOCX chains LaTeX compilation and PDF conversion through a private
// temp dir, so the intermediate PDF never lands in the output directory.
func (p *Pipeline) texToDOCX(ctx context.Context, texPath string) (string, []LinkRecord, error) {
	tmpDir, err := os.MkdirTemp("", "docshift-")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	pdfPath, err := p.withTimeout(ctx, func(ctx context.Context) (string, error) {
		return CompileLaTeX(ctx, texPath, tmpDir)
	})
	if err != nil {
		return "", nil, err
	}
	return p.pdfToDOCX(ctx, pdfPath)
}

// pdfToDOCX converts a PDF, collecting its link annotations first.
func (p *Pipeline) pdfToDOCX(ctx context.Context, pdfPath string) (string, []LinkRecord, error) {
	links, err := ExtractPDFLinks(pdfPath)
	if err != nil {
		warnf("could not extract links from %s: %v", pdfPath, err)
	}

	docxPath, err := p.withTimeout(ctx, func(ctx context.Context) (string, error) {
		return PDFToDOCX(ctx, pdfPath, p.opts.OutputDir, p.opts.Tuning)
	})
	if err != nil {
		return "", nil, err
	}
	return docxPath, links, nil
}

// postprocess runs the structural rewrite on a converted DOCX. Rewriting
// is best-effort: any failure leaves the raw conversion in place and the
// run continues.
func (p *Pipeline) postprocess(docxPath string, links []LinkRecord) {
	doc, err := docx.Open(docxPath)
	if err != nil {
		warnf("skipping post-processing of %s: %v", docxPath, err)
		return
	}

	opts := p.opts.Rewrite
	for _, l := range links {
		opts.Links = append(opts.Links, rewrite.Link{Text: l.Text, URL: l.URL, Page: l.Page})
	}
	if err := rewrite.Normalize(doc, opts); err != nil {
		warnf("post-processing of %s incomplete: %v", docxPath, err)
	}
	if err := doc.Save(); err != nil {
		warnf("could not save post-processed %s: %v", docxPath, err)
	}
}

// withTimeout bounds one engine invocation.
func (p *Pipeline) withTimeout(ctx context.Context, fn func(context.Context) (string, error)) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.opts.Timeout)
	defer cancel()
	return fn(ctx)
}

// DiscoverInputs lists the files in dir that the pipeline's mode can
// convert, in sorted order. Converter working files (_style, _temp,
// .backup stems) are excluded.
func (p *Pipeline) DiscoverInputs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	ext := p.opts.Mode.SourceExt()
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ext) {
			continue
		}
		if isWorkingFile(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

func isWorkingFile(name string) bool {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	for _, s := range skipStems {
		if strings.Contains(stem, s) {
			return true
		}
	}
	return false
}

// BatchResult counts a directory conversion's outcomes.
type BatchResult struct {
	Converted int
	Failed    int
}

// ConvertDir converts every matching file in dir sequentially, continuing
// past individual failures. Each failure is logged with its file.
func (p *Pipeline) ConvertDir(ctx context.Context, dir string) (BatchResult, error) {
	paths, err := p.DiscoverInputs(dir)
	if err != nil {
		return BatchResult{}, err
	}

	var res BatchResult
	for _, path := range paths {
		if _, err := p.ConvertFile(ctx, path); err != nil {
			warnf("%s: %v", path, err)
			res.Failed++
			continue
		}
		res.Converted++
	}
	return res, nil
}

// warnf logs a non-fatal conversion condition.
func warnf(format string, args ...any) {
	log.Printf("warning: "+format, args...)
}
