package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if cfg.Timeout != want.Timeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, want.Timeout)
	}
	if cfg.Styles != want.Styles {
		t.Errorf("Styles = %+v, want %+v", cfg.Styles, want.Styles)
	}
	if cfg.Tuning != want.Tuning {
		t.Errorf("Tuning = %+v, want %+v", cfg.Tuning, want.Tuning)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docshift.yaml")
	content := `timeout: 30s
styles:
  body_font: Arial
tuning:
  min_section_height: 50
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.Styles.BodyFont != "Arial" {
		t.Errorf("BodyFont = %q, want Arial", cfg.Styles.BodyFont)
	}
	if cfg.Styles.MonoFont != "Consolas" {
		t.Errorf("MonoFont = %q, want default Consolas", cfg.Styles.MonoFont)
	}
	if cfg.Tuning.MinSectionHeight != 50 {
		t.Errorf("MinSectionHeight = %v, want 50", cfg.Tuning.MinSectionHeight)
	}
	if cfg.Tuning.LineOverlapThreshold != 0.9 {
		t.Errorf("LineOverlapThreshold = %v, want default 0.9", cfg.Tuning.LineOverlapThreshold)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Error("Load succeeded with a nonexistent explicit config file")
	}
}
