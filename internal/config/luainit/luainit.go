// Package luainit runs the user's optional init.lua over the loaded
// configuration. The script sees a single `kite` module:
//
//	kite.set("tab_width", 8)
//	kite.bind("ctrl+u", "edit.undo")
//
// The state is sandboxed: only the base, table, and string libraries
// are opened, so the script cannot touch the filesystem or spawn
// processes.
package luainit

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/kite/internal/config"
	"github.com/dshills/kite/internal/input/keymap"
)

// Apply evaluates the init script at path, mutating opts and table in
// place. A missing file is not an error. Script errors are returned so
// the caller can report them without aborting startup.
func Apply(path string, opts *config.Options, table *keymap.Table) error {
	if path == "" {
		return nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	// Base and table libraries only; no io, os, or debug.
	for _, open := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
	} {
		L.Push(L.NewFunction(open.fn))
		L.Push(lua.LString(open.name))
		L.Call(1, 0)
	}
	// OpenBase registers dofile and loadfile, which read from disk.
	L.SetGlobal("dofile", lua.LNil)
	L.SetGlobal("loadfile", lua.LNil)

	var scriptErr error
	record := func(err error) {
		if scriptErr == nil {
			scriptErr = err
		}
	}

	mod := L.NewTable()
	L.SetField(mod, "set", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		if err := setOption(opts, name, L.CheckAny(2)); err != nil {
			record(err)
		}
		return 0
	}))
	L.SetField(mod, "bind", L.NewFunction(func(L *lua.LState) int {
		keys := L.CheckString(1)
		command := L.CheckString(2)
		b, err := keymap.ParseBinding(keys)
		if err != nil {
			record(err)
			return 0
		}
		if err := table.Rebind(command, b); err != nil {
			record(err)
		}
		return 0
	}))
	L.SetGlobal("kite", mod)

	if err := L.DoString(string(src)); err != nil {
		return fmt.Errorf("running %s: %w", path, err)
	}
	return scriptErr
}

func setOption(opts *config.Options, name string, v lua.LValue) error {
	switch name {
	case "tab_width":
		n, ok := v.(lua.LNumber)
		if !ok || int(n) < 1 {
			return fmt.Errorf("set %s: want a positive number", name)
		}
		opts.TabWidth = int(n)
	case "idle_wait_ms":
		n, ok := v.(lua.LNumber)
		if !ok || int(n) < 1 {
			return fmt.Errorf("set %s: want a positive number", name)
		}
		opts.IdleWaitMS = int(n)
	case "log_file":
		opts.LogFile = v.String()
	case "log_level":
		opts.LogLevel = v.String()
	case "colors.background":
		opts.Colors.Background = v.String()
	case "colors.text":
		opts.Colors.Text = v.String()
	case "colors.caret":
		opts.Colors.Caret = v.String()
	case "colors.selection":
		opts.Colors.Selection = v.String()
	default:
		return fmt.Errorf("set: unknown option %q", name)
	}
	return nil
}
