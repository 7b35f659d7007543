package luainit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/kite/internal/config"
	"github.com/dshills/kite/internal/input/key"
	"github.com/dshills/kite/internal/input/keymap"
)

func writeScript(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "init.lua")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestApplySetsOptions(t *testing.T) {
	opts := config.Default()
	table := keymap.NewTable(keymap.DefaultCommands())

	path := writeScript(t, `
kite.set("tab_width", 8)
kite.set("colors.text", "#aabbcc")
`)
	if err := Apply(path, &opts, table); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.TabWidth != 8 {
		t.Errorf("expected tab width 8, got %d", opts.TabWidth)
	}
	if opts.Colors.Text != "#aabbcc" {
		t.Errorf("expected #aabbcc, got %q", opts.Colors.Text)
	}
}

func TestApplyRebinds(t *testing.T) {
	opts := config.Default()
	table := keymap.NewTable(keymap.DefaultCommands())

	path := writeScript(t, `kite.bind("ctrl+u", "edit.undo")`)
	if err := Apply(path, &opts, table); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cmd, ok := table.Lookup(key.NewRuneEvent('u', key.ModCtrl))
	if !ok || cmd.Name() != "edit.undo" {
		t.Errorf("Ctrl+u resolved to %v, want edit.undo", cmd)
	}
}

func TestApplyMissingFile(t *testing.T) {
	opts := config.Default()
	table := keymap.NewTable(keymap.DefaultCommands())

	if err := Apply(filepath.Join(t.TempDir(), "absent.lua"), &opts, table); err != nil {
		t.Errorf("missing init.lua should not error: %v", err)
	}
}

func TestApplyReportsScriptErrors(t *testing.T) {
	opts := config.Default()
	table := keymap.NewTable(keymap.DefaultCommands())

	tests := []string{
		`kite.set("no_such_option", 1)`,
		`kite.bind("hyper+x", "edit.undo")`,
		`kite.bind("ctrl+u", "no.such.command")`,
		`this is not lua`,
	}
	for _, src := range tests {
		if err := Apply(writeScript(t, src), &opts, table); err == nil {
			t.Errorf("script %q: expected error", src)
		}
	}
}

func TestSandboxBlocksOS(t *testing.T) {
	opts := config.Default()
	table := keymap.NewTable(keymap.DefaultCommands())

	// The os library is not opened; touching it must fail.
	err := Apply(writeScript(t, `os.remove("x")`), &opts, table)
	if err == nil {
		t.Error("expected error: os library should be unavailable")
	}
}

func TestSandboxBlocksFileLoading(t *testing.T) {
	opts := config.Default()
	table := keymap.NewTable(keymap.DefaultCommands())

	// dofile and loadfile come with the base library but read from
	// disk; the sandbox removes them.
	for _, src := range []string{`dofile("x")`, `loadfile("x")()`} {
		if err := Apply(writeScript(t, src), &opts, table); err == nil {
			t.Errorf("script %q: expected error", src)
		}
	}
}
