package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

const logPrefix = "g2048"

// newLogger builds the structured logger used by every command.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          logPrefix,
		Level:           lvl,
	}), nil
}

// stderrLogger is used by commands that do not take over the terminal.
func stderrLogger(cfg config.Config) (*log.Logger, error) {
	return newLogger(os.Stderr, cfg.Log.Level)
}

// fileLogger is used while a Bubble Tea program owns the terminal. If the
// log file cannot be opened, logs are discarded after a warning on stderr.
func fileLogger(cfg config.Config) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if f, err := openLogFile(cfg.Log.File); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
	} else if f != nil {
		w = f
		closeFn = func() { f.Close() }
	}

	logger, err := newLogger(w, cfg.Log.Level)
	if err != nil {
		closeFn()
		return nil, func() {}, err
	}
	return logger, closeFn, nil
}

// openLogFile opens path for appending. An empty path disables file logging.
func openLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, nil
	}
	expanded, err := config.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// openStore opens the configured scores database, expanding a leading ~.
func openStore(cfg config.Config) (*storage.Store, error) {
	path, err := config.ExpandHome(cfg.Storage.Path)
	if err != nil {
		return nil, err
	}
	store, err := storage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scores database: %w", err)
	}
	return store, nil
}

// openGameStore opens the scores database for play. On failure the game
// still runs, just without persistence, so the returned Store is nil.
func openGameStore(cfg config.Config, logger *log.Logger) (tui.Store, func()) {
	store, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "path", cfg.Storage.Path, "error", err)
		return nil, func() {}
	}
	return store, func() { store.Close() }
}

// runtimeConfig builds the TUI runtime settings from the terminal size.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	if cfg.Display.TickRate > 0 {
		rc.TickRate = cfg.Display.TickRate
	}
	rc.Seed = flagSeed
	return rc
}
