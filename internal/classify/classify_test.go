package classify

import "testing"

func TestTableSingleCellIsWrapper(t *testing.T) {
	if got := Table(1, 1, "some content"); got != TableWrapper {
		t.Errorf("Table(1,1) = %v, want TableWrapper", got)
	}
}

func TestTableSingleRowNarrowIsWrapper(t *testing.T) {
	if got := Table(1, 2, "label value"); got != TableWrapper {
		t.Errorf("Table(1,2) = %v, want TableWrapper", got)
	}
}

func TestTableSingleRowShortTextIsWrapper(t *testing.T) {
	if got := Table(1, 4, "a b c"); got != TableWrapper {
		t.Errorf("Table(1,4) with short text = %v, want TableWrapper", got)
	}
}

func TestTableMultiRowIsData(t *testing.T) {
	if got := Table(3, 2, "short"); got != TableData {
		t.Errorf("Table(3,2) = %v, want TableData", got)
	}
}

func TestTableWideSingleRowWithLongTextIsData(t *testing.T) {
	long := make([]byte, 250)
	for i := range long {
		long[i] = 'x'
	}
	if got := Table(1, 4, string(long)); got != TableData {
		t.Errorf("Table(1,4) with long text = %v, want TableData", got)
	}
}

func TestHeadingFromStyleName(t *testing.T) {
	tests := []struct {
		style string
		level int
	}{
		{"Heading 1", 1},
		{"Heading 2", 2},
		{"Heading 3", 3},
		{"Heading 4", 4},
		{"Heading 7", 5},
		{"Title", 1},
	}
	for _, tt := range tests {
		level, ok := Heading(tt.style, "Some heading", nil)
		if !ok {
			t.Errorf("Heading(%q) not recognized", tt.style)
			continue
		}
		if level != tt.level {
			t.Errorf("Heading(%q) level = %d, want %d", tt.style, level, tt.level)
		}
	}
}

func TestHeadingFallbackFromFormatting(t *testing.T) {
	tests := []struct {
		name  string
		runs  []RunInfo
		level int
		ok    bool
	}{
		{"large bold", []RunInfo{{Bold: true, SizePt: 18}}, 1, true},
		{"medium bold", []RunInfo{{Bold: true, SizePt: 14}}, 2, true},
		{"small bold", []RunInfo{{Bold: true, SizePt: 12}}, 3, true},
		{"bold but tiny", []RunInfo{{Bold: true, SizePt: 10}}, 0, false},
		{"large but not bold", []RunInfo{{Bold: false, SizePt: 18}}, 0, false},
	}
	for _, tt := range tests {
		level, ok := Heading("Normal", "Introduction", tt.runs)
		if ok != tt.ok || level != tt.level {
			t.Errorf("%s: Heading = (%d, %v), want (%d, %v)", tt.name, level, ok, tt.level, tt.ok)
		}
	}
}

func TestHeadingFallbackRejectsLongText(t *testing.T) {
	long := make([]byte, 150)
	for i := range long {
		long[i] = 'a'
	}
	runs := []RunInfo{{Bold: true, SizePt: 18}}
	if _, ok := Heading("Normal", string(long), runs); ok {
		t.Error("long paragraph classified as heading")
	}
}

func TestHeadingFallbackRejectsEmptyText(t *testing.T) {
	runs := []RunInfo{{Bold: true, SizePt: 18}}
	if _, ok := Heading("Normal", "   ", runs); ok {
		t.Error("empty paragraph classified as heading")
	}
}

func TestIsIntentionalBox(t *testing.T) {
	boxes := []string{
		"Note: remember to save",
		"WARNING: high voltage",
		"⚠ do not touch",
		"• first item",
	}
	for _, s := range boxes {
		if !IsIntentionalBox(s) {
			t.Errorf("IsIntentionalBox(%q) = false, want true", s)
		}
	}
	if IsIntentionalBox("an ordinary paragraph") {
		t.Error("plain text classified as intentional box")
	}
}

func TestIsCodeText(t *testing.T) {
	code := []string{
		"def main():",
		"import os",
		"func main() {",
		"$ ls -la",
		">>> print(1)",
	}
	for _, s := range code {
		if !IsCodeText(s) {
			t.Errorf("IsCodeText(%q) = false, want true", s)
		}
	}
	if IsCodeText("the quick brown fox") {
		t.Error("prose classified as code")
	}
}

func TestIsMonospaceFont(t *testing.T) {
	for _, name := range []string{"Courier New", "Consolas", "DejaVu Sans Mono", "Menlo"} {
		if !IsMonospaceFont(name) {
			t.Errorf("IsMonospaceFont(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"", "Calibri", "Times New Roman"} {
		if IsMonospaceFont(name) {
			t.Errorf("IsMonospaceFont(%q) = true, want false", name)
		}
	}
}

func TestIsArtifactFill(t *testing.T) {
	for _, fill := range []string{"F5F5F5", "f0f0f0", "FFFFFF", "auto"} {
		if !IsArtifactFill(fill) {
			t.Errorf("IsArtifactFill(%q) = false, want true", fill)
		}
	}
	for _, fill := range []string{"", "FFFF00", "C00000"} {
		if IsArtifactFill(fill) {
			t.Errorf("IsArtifactFill(%q) = true, want false", fill)
		}
	}
}
