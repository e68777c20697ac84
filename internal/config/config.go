// This file is part of the program "lanta".
// Please see the LICENSE file for copyright information.

// Package config loads the TOML configuration file describing groups,
// layouts and key bindings from the user's XDG config directory, writing
// out a usable default on first run.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// Group describes one workspace by name. Every group cycles through the
// same shared Layouts list: layouts are stateless strategies, so there's
// nothing gained by letting groups diverge on which ones exist.
// DefaultLayout names the Layout (by its Name, or its Type if Name is
// unset) the group starts on; left empty, it starts on the first layout in
// Layouts. Groups sharing one layout list can still open on different
// layouts (e.g. "chrome" on "stack", "term" on "tiled").
type Group struct {
	Name          string
	DefaultLayout string
}

// Layout names one of the built-in layout strategies plus its padding, in
// pixels, around the usable viewport. Name distinguishes layouts that
// share a Type but differ in padding (e.g. "stack-padded" vs "stack"), so
// a Group's DefaultLayout can reference one unambiguously; it defaults to
// Type when left unset.
type Layout struct {
	Type    string // "tiled" or "stack"
	Name    string
	Padding int
}

// Binding is a single key-binding table entry: the modifiers and keysym
// that trigger it, the command to run, and that command's arguments (e.g.
// the target group name for "switch-group", or the argv for "spawn").
type Binding struct {
	Modifiers []string
	Key       string
	Command   string
	Args      []string
}

// Config is the full contents of the configuration file.
type Config struct {
	Groups   []Group
	Layouts  []Layout
	Bindings []Binding
}

const fileName = "config.toml"

// Default returns the configuration used when no file exists yet: two
// empty groups sharing a tiled and a stack layout, and a minimal set of
// bindings to switch between them and close the focused window.
func Default() *Config {
	return &Config{
		Groups:  []Group{{Name: "1"}, {Name: "2"}},
		Layouts: []Layout{{Type: "tiled", Padding: 8}, {Type: "stack", Padding: 8}},
		Bindings: []Binding{
			{Modifiers: []string{"mod4"}, Key: "Return", Command: "spawn", Args: []string{"xterm"}},
			{Modifiers: []string{"mod4"}, Key: "j", Command: "focus-next"},
			{Modifiers: []string{"mod4"}, Key: "k", Command: "focus-previous"},
			{Modifiers: []string{"mod4", "shift"}, Key: "c", Command: "close-focused"},
			{Modifiers: []string{"mod4"}, Key: "space", Command: "layout-next"},
			{Modifiers: []string{"mod4"}, Key: "1", Command: "switch-group", Args: []string{"1"}},
			{Modifiers: []string{"mod4"}, Key: "2", Command: "switch-group", Args: []string{"2"}},
		},
	}
}

// Dir returns the directory the configuration file lives in, preferring
// $XDG_CONFIG_HOME over $HOME/.config.
func Dir() string {
	return filepath.Join(xdgOrFallback("XDG_CONFIG_HOME", filepath.Join(os.Getenv("HOME"), ".config")), "lanta")
}

// Load reads and decodes the configuration file from Dir(), writing out
// Default() in its place first if one doesn't exist yet, so there's always
// something usable to load.
func Load(log *logrus.Logger) (*Config, error) {
	return LoadFrom(Dir(), log)
}

// LoadFrom is Load, but reads from an explicit directory rather than Dir().
// It backs the "-c" flag, which names the config directory directly instead
// of going through $XDG_CONFIG_HOME.
func LoadFrom(dir string, log *logrus.Logger) (*Config, error) {
	ok, err := exists(dir)
	if err != nil {
		return nil, fmt.Errorf("config: checking config directory: %w", err)
	}
	if !ok {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("config: creating config directory: %w", err)
		}
	}

	path := filepath.Join(dir, fileName)
	ok, err = exists(path)
	if err != nil {
		return nil, fmt.Errorf("config: checking config file: %w", err)
	}
	if !ok {
		log.Info("no config file found, writing defaults")
		if err := write(path, Default()); err != nil {
			return nil, err
		}
	}

	var conf Config
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return nil, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	if len(conf.Groups) == 0 {
		return nil, fmt.Errorf("config: %s defines no groups", path)
	}
	return &conf, nil
}

func write(path string, conf *Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(conf); err != nil {
		return fmt.Errorf("config: encoding defaults: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func xdgOrFallback(xdg, fallback string) string {
	if dir := os.Getenv(xdg); dir != "" {
		if ok, err := exists(dir); ok && err == nil {
			return dir
		}
	}
	return fallback
}
