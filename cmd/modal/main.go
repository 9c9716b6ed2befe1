// cmd/modal/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	stlog "log" // Used only before the logger is configured
	"os"

	"github.com/bethropolis/modal/internal/app"
	"github.com/bethropolis/modal/internal/clipboard"
	"github.com/bethropolis/modal/internal/config"
	"github.com/bethropolis/modal/internal/input"
	"github.com/bethropolis/modal/internal/logger"
	"github.com/bethropolis/modal/internal/theme"
	"github.com/bethropolis/modal/internal/tui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code. Everything that touches the terminal is
// released by deferred calls before main exits.
func run(args []string) int {
	var flags config.Flags
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	if _, err := flags.ParseFlags(fs, args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *flags.Version {
		fmt.Printf("%s version %s\n", config.AppName, config.Version)
		return 0
	}

	cfg, cfgErr := config.LoadConfig(*flags.ConfigFilePath, &flags)

	logCloser, err := logger.Init(cfg.Logger)
	if err != nil {
		stlog.Printf("Failed to initialize logger: %v", err)
		return 1
	}
	defer logCloser.Close()

	logger.Infof("Starting %s %s", config.AppName, config.Version)
	if cfgErr != nil {
		logger.Warnf("Config file ignored, using defaults: %v", cfgErr)
	}
	if len(cfg.Undecoded) > 0 {
		logger.Warnf("Unknown config keys: %v", cfg.Undecoded)
	}

	themesDir := cfg.Theme.Dir
	if themesDir == "" {
		themesDir = config.DefaultThemesDir()
	}
	themeManager := theme.NewManager(themesDir)
	if err := themeManager.SetTheme(cfg.Theme.Name); err != nil {
		logger.Warnf("%v, using '%s'", err, themeManager.Current().Name)
	}

	keymap := input.NewKeymap()
	keymap.Apply(cfg.KeyBindings())

	var clip clipboard.Reader
	if cfg.Editor.SystemClipboard {
		clip = clipboard.NewSystem()
	}

	ui, err := tui.New()
	if err != nil {
		logger.Errorf("Error initializing terminal: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		return 1
	}
	defer ui.Close()

	modalApp, err := app.New(app.Config{
		TUI:         ui,
		Theme:       themeManager.Current(),
		Keymap:      keymap,
		Clipboard:   clip,
		ClampCursor: cfg.Editor.ClampCursor,
	})
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		return 1
	}

	if err := modalApp.Run(); err != nil {
		ui.Close()
		logger.Errorf("Application exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		return 1
	}

	logger.Infof("%s finished.", config.AppName)
	return 0
}
