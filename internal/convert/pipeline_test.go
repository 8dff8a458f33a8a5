package convert

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// fakePdflatexSelective fails for inputs whose name contains "bad".
const fakePdflatexSelective = `
outdir=""
tex=""
while [ $# -gt 0 ]; do
  case "$1" in
    -output-directory) outdir="$2"; shift ;;
    -*) ;;
    *) tex="$1" ;;
  esac
  shift
done
case "$tex" in
  *bad*) echo 'emergency stop' ; exit 1 ;;
esac
stem=${tex##*/}
stem=${stem%.tex}
echo pdf > "$outdir/$stem.pdf"
`

func newTexPipeline(t *testing.T) *Pipeline {
	t.Helper()
	p, err := New(Options{Mode: ModeTexToPDF, OutputDir: t.TempDir()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

func TestNewRejectsUnknownMode(t *testing.T) {
	_, err := New(Options{Mode: "docx2tex", OutputDir: t.TempDir()})
	if err == nil {
		t.Error("New accepted an unknown mode")
	}
}

func TestNewReportsMissingTool(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	_, err := New(Options{Mode: ModeTexToPDF, OutputDir: t.TempDir()})
	if !errors.Is(err, ErrToolNotFound) {
		t.Errorf("New = %v, want ErrToolNotFound", err)
	}
}

func TestNewCreatesOutputDir(t *testing.T) {
	writeFakeTool(t, t.TempDir(), "pdflatex", fakePdflatexOK)

	outDir := filepath.Join(t.TempDir(), "nested", "out")
	if _, err := New(Options{Mode: ModeTexToPDF, OutputDir: outDir}); err != nil {
		t.Fatalf("New: %v", err)
	}
	if info, err := os.Stat(outDir); err != nil || !info.IsDir() {
		t.Error("output directory was not created")
	}
}

func TestDiscoverInputsSkipsWorkingFiles(t *testing.T) {
	writeFakeTool(t, t.TempDir(), "pdflatex", fakePdflatexOK)

	dir := t.TempDir()
	for _, name := range []string{"a.tex", "b.tex", "draft_style.tex", "x_temp.tex", "old.backup.tex", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	p := newTexPipeline(t)
	paths, err := p.DiscoverInputs(dir)
	if err != nil {
		t.Fatalf("DiscoverInputs: %v", err)
	}
	want := []string{filepath.Join(dir, "a.tex"), filepath.Join(dir, "b.tex")}
	if len(paths) != len(want) {
		t.Fatalf("DiscoverInputs = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("DiscoverInputs[%d] = %s, want %s", i, paths[i], want[i])
		}
	}
}

func TestConvertFileTexToPDF(t *testing.T) {
	writeFakeTool(t, t.TempDir(), "pdflatex", fakePdflatexOK)

	p := newTexPipeline(t)
	texPath := writeTexFile(t, t.TempDir(), "paper.tex")

	outPath, err := p.ConvertFile(context.Background(), texPath)
	if err != nil {
		t.Fatalf("ConvertFile: %v", err)
	}
	if filepath.Base(outPath) != "paper.pdf" {
		t.Errorf("output = %s, want paper.pdf", outPath)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("output missing: %v", err)
	}
}

func TestConvertDirContinuesPastFailures(t *testing.T) {
	writeFakeTool(t, t.TempDir(), "pdflatex", fakePdflatexSelective)

	dir := t.TempDir()
	writeTexFile(t, dir, "good.tex")
	writeTexFile(t, dir, "bad.tex")

	p := newTexPipeline(t)
	res, err := p.ConvertDir(context.Background(), dir)
	if err != nil {
		t.Fatalf("ConvertDir: %v", err)
	}
	if res.Converted != 1 || res.Failed != 1 {
		t.Errorf("BatchResult = %+v, want 1 converted, 1 failed", res)
	}
}

func TestConvertDirEmpty(t *testing.T) {
	writeFakeTool(t, t.TempDir(), "pdflatex", fakePdflatexOK)

	p := newTexPipeline(t)
	res, err := p.ConvertDir(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("ConvertDir: %v", err)
	}
	if res.Converted != 0 || res.Failed != 0 {
		t.Errorf("BatchResult = %+v, want zeroes", res)
	}
}
