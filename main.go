package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"zoomcanvas/internal/board"
	"zoomcanvas/internal/config"
	"zoomcanvas/internal/eventbus"
	"zoomcanvas/internal/storage"
	"zoomcanvas/internal/ui"
	"zoomcanvas/internal/ui/commands"
)

func main() {
	// Parse command line arguments
	var configPath, dataFile, importPath string
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.StringVar(&dataFile, "data", "", "Path to the canvas data file (overrides config)")
	flag.StringVar(&importPath, "import", "", "Import a JSON snapshot on startup")
	flag.Parse()

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration
	if configPath == "" {
		configPath = filepath.Join(config.Dir(), "config.toml")
	}
	configSvc := config.NewConfigServiceWithBus(bus, configPath)
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config %s: %v\n", configPath, err)
		os.Exit(1)
	}
	if dataFile != "" {
		cfg.DataFile = dataFile
	}

	// Set up logging
	logger, closeLog := setupLogger(cfg.LogFile)
	defer closeLog()
	slog.SetDefault(logger)
	logger.Info("starting zoom-canvas", "config", configPath, "data", cfg.DataFile)

	if err := os.MkdirAll(filepath.Dir(cfg.DataFile), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating data directory: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.New(ctx, cfg.DataFile, storage.WithLogger(logger))
	if errors.Is(err, storage.ErrLocked) {
		fmt.Fprintf(os.Stderr, "%s is already open in another zoom-canvas window\n", cfg.DataFile)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening canvas: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if _, _, err := store.ClaimWindow(ctx); err != nil {
		logger.Warn("failed to record window id", "error", err)
	}

	initial, loadErr := loadInitialState(ctx, store, logger)
	if importPath != "" {
		imported, err := commands.ReadSnapshot(importPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", importPath, commands.ImportErrorText(err))
			os.Exit(1)
		}
		initial = imported
		if err := store.SaveState(ctx, initial); err != nil {
			logger.Error("failed to save imported canvas", "error", err)
		}
		logger.Info("imported canvas", "path", importPath, "notes", len(initial.Notes))
	}

	// Create UI model
	uiModel := ui.NewModel(ctx, bus, cfg, store, initial, logger)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)
	uiModel.SetProgram(p)

	// Forward events the UI reports on
	forward := func(e eventbus.DomainEvent) {
		go p.Send(ui.EventMsg{Event: e})
	}
	bus.Subscribe(eventbus.EventError, forward)
	bus.Subscribe(eventbus.EventConfigSaved, forward)
	if loadErr != nil {
		bus.Publish(eventbus.ErrorEvent{Message: "Saved canvas could not be read, showing the tutorial", Err: loadErr})
	}

	if os.Getenv("ZOOMCANVAS_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	// Run the UI
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.Error("error running program", "error", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	logger.Info("UI exited normally")
}

// loadInitialState returns the persisted canvas, or the tutorial on first run
// or when the stored data cannot be read. Only the latter returns an error.
func loadInitialState(ctx context.Context, store storage.Persister, logger *slog.Logger) (board.State, error) {
	state, err := store.LoadState(ctx)
	switch {
	case err == nil:
		logger.Info("loaded canvas", "notes", len(state.Notes))
		return state, nil
	case errors.Is(err, storage.ErrStateNotFound):
		logger.Info("no saved canvas, showing tutorial")
		return board.Tutorial(), nil
	default:
		logger.Error("failed to load canvas, showing tutorial", "error", err)
		return board.Tutorial(), err
	}
}

// setupLogger writes JSON logs to path, relative paths living next to the
// config. Logging is discarded when the file cannot be opened.
func setupLogger(path string) (*slog.Logger, func()) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(config.Dir(), path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return slog.New(slog.DiscardHandler), func() {}
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return slog.New(slog.DiscardHandler), func() {}
	}

	level := slog.LevelInfo
	if os.Getenv("ZOOMCANVAS_DEBUG") != "" {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: level})
	return slog.New(handler), func() { _ = logFile.Close() }
}
