// This file is part of the program "lanta".
// Please see the LICENSE file for copyright information.

// Command lanta is the window manager's entry point: it parses flags,
// loads the configuration file, connects to the X display and runs the
// workspace manager's event loop.
package main

import (
	"flag"
	"fmt"
	"os/exec"

	"github.com/sirupsen/logrus"

	"github.com/mjkillough/lanta/internal/config"
	"github.com/mjkillough/lanta/internal/keys"
	"github.com/mjkillough/lanta/internal/layout"
	"github.com/mjkillough/lanta/internal/logging"
	"github.com/mjkillough/lanta/internal/wm"
	"github.com/mjkillough/lanta/internal/xconn"
)

type cliOpts struct {
	verbose    bool
	configPath string
	init       bool
}

func parseCLIOpts() cliOpts {
	var opt cliOpts
	flag.BoolVar(&opt.verbose, "v", false, "Verbose output (print debug logs to stderr)")
	flag.StringVar(&opt.configPath, "c", "", "Config directory containing config.toml (defaults to $XDG_CONFIG_HOME/lanta)")
	flag.BoolVar(&opt.init, "init", false, "Write the default config.toml and exit, without connecting to X")
	flag.Parse()
	return opt
}

func main() {
	opt := parseCLIOpts()
	log := logging.New(opt.verbose)

	loadConfig := config.Load
	if opt.configPath != "" {
		loadConfig = func(log *logrus.Logger) (*config.Config, error) {
			return config.LoadFrom(opt.configPath, log)
		}
	}

	if opt.init {
		if _, err := loadConfig(log); err != nil {
			log.WithError(err).Fatal("writing default configuration")
		}
		return
	}

	conf, err := loadConfig(log)
	if err != nil {
		log.WithError(err).Fatal("loading configuration")
	}

	conn, err := xconn.Connect(log)
	if err != nil {
		log.WithError(err).Fatal("connecting to the X server")
	}

	table, err := buildKeyTable(conf.Bindings)
	if err != nil {
		log.WithError(err).Fatal("building key-binding table")
	}

	layouts, err := buildLayouts(conf.Layouts)
	if err != nil {
		log.WithError(err).Fatal("building layouts")
	}

	specs := make([]wm.GroupSpec, len(conf.Groups))
	for i, g := range conf.Groups {
		specs[i] = wm.GroupSpec{Name: g.Name, DefaultLayout: g.DefaultLayout}
	}

	manager, err := wm.New(conn, table, specs, layouts, log)
	if err != nil {
		log.WithError(err).Fatal("starting window manager")
	}

	manager.Run()
}

func buildLayouts(confLayouts []config.Layout) ([]layout.Layout, error) {
	layouts := make([]layout.Layout, 0, len(confLayouts))
	for _, l := range confLayouts {
		name := l.Name
		if name == "" {
			name = l.Type
		}
		switch l.Type {
		case "tiled":
			layouts = append(layouts, layout.NewTiled(name, l.Padding))
		case "stack":
			layouts = append(layouts, layout.NewStackLayout(name, l.Padding))
		default:
			return nil, fmt.Errorf("unknown layout type %q", l.Type)
		}
	}
	if len(layouts) == 0 {
		layouts = append(layouts, layout.NewTiled("tiled", 8))
	}
	return layouts, nil
}

func buildKeyTable(bindings []config.Binding) (*keys.Table[*wm.Manager], error) {
	table := keys.NewTable(map[keys.Combo]keys.Command[*wm.Manager]{})
	for _, b := range bindings {
		mask, err := xconn.ModMaskFromNames(b.Modifiers)
		if err != nil {
			return nil, err
		}
		sym, err := xconn.KeysymFromName(b.Key)
		if err != nil {
			return nil, err
		}

		cmd, err := buildCommand(b)
		if err != nil {
			return nil, err
		}

		table.Bind(keys.Combo{ModMask: mask, Keysym: sym}, cmd)
	}
	return table, nil
}

func buildCommand(b config.Binding) (keys.Command[*wm.Manager], error) {
	switch b.Command {
	case "close-focused":
		return wm.CloseFocusedWindow(), nil
	case "focus-next":
		return wm.FocusNext(), nil
	case "focus-previous":
		return wm.FocusPrevious(), nil
	case "shuffle-next":
		return wm.ShuffleNext(), nil
	case "shuffle-previous":
		return wm.ShufflePrevious(), nil
	case "layout-next":
		return wm.LayoutNext(), nil
	case "layout-previous":
		return wm.LayoutPrevious(), nil
	case "switch-group":
		if len(b.Args) != 1 {
			return nil, fmt.Errorf("switch-group expects exactly one argument, got %v", b.Args)
		}
		return wm.SwitchGroup(b.Args[0]), nil
	case "move-to-group":
		if len(b.Args) != 1 {
			return nil, fmt.Errorf("move-to-group expects exactly one argument, got %v", b.Args)
		}
		return wm.MoveFocusedToGroup(b.Args[0]), nil
	case "spawn":
		if len(b.Args) == 0 {
			return nil, fmt.Errorf("spawn expects a command to run")
		}
		argv := b.Args
		return wm.Spawn(func() error {
			cmd := exec.Command(argv[0], argv[1:]...)
			return cmd.Start()
		}), nil
	default:
		return nil, fmt.Errorf("unknown command %q", b.Command)
	}
}
