// Package config loads editor options from a TOML file, layered as
// defaults < config file < init.lua (see the luainit subpackage).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/kite/internal/render"
)

// Colors holds theme colors as "#rrggbb" strings.
type Colors struct {
	Background string `toml:"background"`
	Text       string `toml:"text"`
	Caret      string `toml:"caret"`
	Selection  string `toml:"selection"`
}

// Options is the full editor configuration.
type Options struct {
	TabWidth   int    `toml:"tab_width"`
	IdleWaitMS int    `toml:"idle_wait_ms"`
	LogFile    string `toml:"log_file"`
	LogLevel   string `toml:"log_level"`
	Colors     Colors `toml:"colors"`
}

// Default returns the stock configuration.
func Default() Options {
	th := render.DefaultTheme()
	return Options{
		TabWidth:   4,
		IdleWaitMS: 10,
		LogLevel:   "info",
		Colors: Colors{
			Background: th.Background.Hex(),
			Text:       th.Text.Hex(),
			Caret:      th.Caret.Hex(),
			Selection:  th.Selection.Hex(),
		},
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "kite", "config.toml")
}

// Load reads options from a TOML file layered over the defaults.
// A missing file is not an error: the defaults are returned.
func Load(path string) (Options, error) {
	opts := Default()
	if path == "" {
		return opts, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &opts); err != nil {
		return Default(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	if opts.TabWidth < 1 {
		opts.TabWidth = 1
	}
	if opts.IdleWaitMS < 1 {
		opts.IdleWaitMS = 1
	}
	return opts, nil
}

// Theme resolves the color options into a render.Theme. Unparseable
// colors fall back to the matching default.
func (o Options) Theme() render.Theme {
	th := render.DefaultTheme()
	if c, err := render.ParseHex(o.Colors.Background); err == nil {
		th.Background = c
	}
	if c, err := render.ParseHex(o.Colors.Text); err == nil {
		th.Text = c
	}
	if c, err := render.ParseHex(o.Colors.Caret); err == nil {
		th.Caret = c
	}
	if c, err := render.ParseHex(o.Colors.Selection); err == nil {
		th.Selection = c
	}
	return th
}
