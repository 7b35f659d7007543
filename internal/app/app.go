// Package app wires the editor together: it owns the window, the
// configuration, the keymap, and the main event loop driving them
// against a backend.
package app

import (
	"fmt"
	"path/filepath"

	"github.com/dshills/kite/internal/config"
	"github.com/dshills/kite/internal/config/luainit"
	"github.com/dshills/kite/internal/config/watcher"
	"github.com/dshills/kite/internal/input/keymap"
	"github.com/dshills/kite/internal/render"
	"github.com/dshills/kite/internal/render/backend"
)

// Config is the startup configuration, normally from command-line
// flags.
type Config struct {
	// FilePath is the file to open. Empty opens an unnamed buffer.
	FilePath string
	// ConfigPath is the config.toml location. Empty uses the
	// conventional per-user path; init.lua is looked up next to it.
	ConfigPath string
	// LogLevel overrides the configured log level when non-empty.
	LogLevel string
}

// App is the running editor.
type App struct {
	cfg  Config
	opts config.Options

	theme render.Theme
	table *keymap.Table

	backend  backend.Backend
	window   *EditorWindow
	log      *Logger
	watchers []*watcher.Watcher

	quit bool
}

// New loads configuration and builds an editor ready to Run on the
// given backend.
func New(cfg Config, be backend.Backend) (*App, error) {
	a := &App{cfg: cfg, backend: be}
	if err := a.loadOptions(); err != nil {
		return nil, err
	}

	level := a.opts.LogLevel
	if cfg.LogLevel != "" {
		level = cfg.LogLevel
	}
	log, err := OpenFileLogger(ParseLogLevel(level), a.opts.LogFile)
	if err != nil {
		return nil, err
	}
	a.log = log

	// Terminal cells: one advance per glyph, one row per line.
	a.window = NewEditorWindow(render.Metrics{Advance: 1, LineSpacing: 1}, log)
	return a, nil
}

func (a *App) configPath() string {
	if a.cfg.ConfigPath != "" {
		return a.cfg.ConfigPath
	}
	return config.DefaultPath()
}

func (a *App) initPath() string {
	p := a.configPath()
	if p == "" {
		return ""
	}
	return filepath.Join(filepath.Dir(p), "init.lua")
}

// loadOptions builds options and keymap from scratch: defaults, then
// config.toml, then init.lua. Called at startup and on every reload so
// a removed setting reverts rather than sticking.
func (a *App) loadOptions() error {
	opts, err := config.Load(a.configPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	table := keymap.NewTable(keymap.DefaultCommands())
	if p := a.initPath(); p != "" {
		if err := luainit.Apply(p, &opts, table); err != nil {
			return fmt.Errorf("apply init.lua: %w", err)
		}
	}
	a.opts = opts
	a.table = table
	a.theme = opts.Theme()
	return nil
}

// reloadConfig re-reads configuration after a watcher fired. A broken
// config is logged and the previous one stays in effect.
func (a *App) reloadConfig() {
	if err := a.loadOptions(); err != nil {
		a.log.Error("config reload: %v", err)
		return
	}
	a.log.SetLevel(ParseLogLevel(a.opts.LogLevel))
	a.log.Info("config reloaded")
}

// Run initializes the backend, opens the requested file, and drives the
// event loop until quit. It owns the backend lifecycle.
func (a *App) Run() error {
	if err := a.backend.Init(); err != nil {
		return fmt.Errorf("backend init: %w", err)
	}
	defer a.backend.Shutdown()

	w, h := a.backend.Size()
	a.window.Resize(w, h)
	a.window.AddView(a.cfg.FilePath)

	a.startWatchers()
	defer a.stopWatchers()

	a.loop()
	return a.log.Close()
}

// startWatchers watches config.toml and init.lua, posting a reload
// event into the backend queue on change. Watch failures are not
// fatal: the editor just won't live-reload.
func (a *App) startWatchers() {
	paths := []string{a.configPath(), a.initPath()}
	for _, p := range paths {
		if p == "" {
			continue
		}
		wt, err := watcher.New(p, a.backend.PostReload)
		if err != nil {
			a.log.Warn("watch %s: %v", p, err)
			continue
		}
		a.watchers = append(a.watchers, wt)
	}
}

func (a *App) stopWatchers() {
	for _, wt := range a.watchers {
		_ = wt.Close()
	}
	a.watchers = nil
}
