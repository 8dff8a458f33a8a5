package convert

import "testing"

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(string(m))
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = (%v, %v)", m, got, err)
		}
	}
	if _, err := ParseMode("docx2tex"); err == nil {
		t.Error("ParseMode accepted an unknown mode")
	}
}

func TestModeSourceExt(t *testing.T) {
	tests := []struct {
		mode Mode
		ext  string
	}{
		{ModeTexToPDF, ".tex"},
		{ModeTexToDOCX, ".tex"},
		{ModePDFToDOCX, ".pdf"},
		{ModeDOCXToPDF, ".docx"},
	}
	for _, tt := range tests {
		if got := tt.mode.SourceExt(); got != tt.ext {
			t.Errorf("%s.SourceExt() = %q, want %q", tt.mode, got, tt.ext)
		}
	}
}

func TestModeProducesDOCX(t *testing.T) {
	if ModeTexToPDF.ProducesDOCX() || ModeDOCXToPDF.ProducesDOCX() {
		t.Error("PDF-producing mode claims to produce DOCX")
	}
	if !ModeTexToDOCX.ProducesDOCX() || !ModePDFToDOCX.ProducesDOCX() {
		t.Error("DOCX-producing mode not recognized")
	}
}
