// Package appState holds the loaded configuration and logger shared by every
// command of one process.
package appState

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/isaacphi/tbprompt/internal/config"
)

// App is the state built once per command invocation.
type App struct {
	Config *config.ConfigSchema
	Logger *slog.Logger

	logFile io.Closer
}

var (
	mu      sync.RWMutex
	current *App
)

// Initialize loads the configuration with overrides applied and installs the
// logger it describes as the slog default. Calling it again replaces the
// previous state and closes its log file.
func Initialize(overrides *config.RuntimeOverrides) error {
	cfg, err := config.New(overrides)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, logFile, err := setupLogger(cfg.Log, os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	mu.Lock()
	prev := current
	current = &App{Config: cfg, Logger: logger, logFile: logFile}
	mu.Unlock()

	if prev != nil && prev.logFile != nil {
		prev.logFile.Close()
	}

	slog.SetDefault(logger)
	for _, w := range cfg.Warnings {
		logger.Warn("config", "warning", w)
	}
	logger.Debug("config loaded", "model", cfg.ActiveModel, "platform", cfg.Editor.Platform)
	return nil
}

// Get returns the state built by Initialize. Commands run after Initialize,
// so a missing state is a programming error.
func Get() *App {
	app, ok := TryGet()
	if !ok {
		panic("appState: Initialize has not been called")
	}
	return app
}

// TryGet returns the state and whether Initialize has run.
func TryGet() (*App, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return current, current != nil
}

// Cleanup closes the log file, if any.
func Cleanup() error {
	mu.Lock()
	defer mu.Unlock()

	if current == nil || current.logFile == nil {
		return nil
	}
	err := current.logFile.Close()
	current.logFile = nil
	return err
}

// setupLogger builds the text logger for cfg. Compiled prompts, exports and
// translations are written to stdout so they can be piped, which leaves
// stderr for logs unless a log file is configured.
func setupLogger(cfg config.Log, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	level := slog.LevelWarn
	if name := strings.TrimSpace(cfg.LogLevel); name != "" {
		if err := level.UnmarshalText([]byte(name)); err != nil {
			return nil, nil, fmt.Errorf("unknown log level %q", cfg.LogLevel)
		}
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	}

	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(stderr, opts)), nil, nil
	}

	file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(file, opts)), file, nil
}
