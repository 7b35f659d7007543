package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/kite/internal/render"
)

func TestDefault(t *testing.T) {
	opts := Default()

	if opts.TabWidth != 4 {
		t.Errorf("expected tab width 4, got %d", opts.TabWidth)
	}
	if opts.IdleWaitMS != 10 {
		t.Errorf("expected idle wait 10ms, got %d", opts.IdleWaitMS)
	}
	if opts.Theme() != render.DefaultTheme() {
		t.Error("default options should resolve to the default theme")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	opts, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if opts != Default() {
		t.Errorf("expected defaults, got %+v", opts)
	}
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	opts, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts != Default() {
		t.Errorf("expected defaults, got %+v", opts)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
tab_width = 8
idle_wait_ms = 5
log_level = "debug"

[colors]
text = "#ff0000"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.TabWidth != 8 {
		t.Errorf("expected tab width 8, got %d", opts.TabWidth)
	}
	if opts.IdleWaitMS != 5 {
		t.Errorf("expected idle wait 5, got %d", opts.IdleWaitMS)
	}
	if opts.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %q", opts.LogLevel)
	}

	th := opts.Theme()
	if th.Text != render.RGB(255, 0, 0) {
		t.Errorf("expected red text, got %v", th.Text)
	}
	// Unset colors keep their defaults.
	if th.Background != render.DefaultTheme().Background {
		t.Errorf("background changed unexpectedly: %v", th.Background)
	}
}

func TestLoadBadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("tab_width = = 3"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestThemeIgnoresBadColors(t *testing.T) {
	opts := Default()
	opts.Colors.Caret = "chartreuse"

	th := opts.Theme()
	if th.Caret != render.DefaultTheme().Caret {
		t.Errorf("bad color should fall back to default, got %v", th.Caret)
	}
}
