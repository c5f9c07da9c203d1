// Command zcrender renders a canvas to PNG without starting the terminal UI.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"zoomcanvas/internal/board"
	"zoomcanvas/internal/config"
	"zoomcanvas/internal/render"
	"zoomcanvas/internal/storage"
	"zoomcanvas/internal/ui/commands"
)

func main() {
	var configPath, dataFile, input, output string
	var noMarker bool
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.StringVar(&dataFile, "data", "", "Canvas data file to render (overrides config)")
	flag.StringVar(&input, "json", "", "Render a JSON snapshot instead of the data file")
	flag.StringVar(&output, "o", "", "Output PNG path (default: export name with .png in the export dir)")
	flag.BoolVar(&noMarker, "no-marker", false, "Do not draw the canvas origin")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	if configPath == "" {
		configPath = filepath.Join(config.Dir(), "config.toml")
	}
	cfg, err := config.NewConfigServiceWithBus(nil, configPath).Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config %s: %v\n", configPath, err)
		os.Exit(1)
	}
	if dataFile != "" {
		cfg.DataFile = dataFile
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	state, err := loadState(ctx, cfg, input, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := render.DefaultOptions()
	opts.NoteWidth = float64(cfg.Canvas.NoteWidth)
	opts.NoteHeight = float64(cfg.Canvas.NoteHeight)
	opts.ShowCenterMarker = cfg.UISettings.ShowCenterMarker && !noMarker

	if output == "" {
		name := strings.TrimSuffix(cfg.ExportName, filepath.Ext(cfg.ExportName)) + ".png"
		output = filepath.Join(cfg.ExportDir, name)
	}

	if err := render.SavePNG(output, board.NewView(state), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering %s: %v\n", output, err)
		os.Exit(1)
	}
	fmt.Println(output)
}

func loadState(ctx context.Context, cfg *config.Config, input string, logger *slog.Logger) (board.State, error) {
	if input != "" {
		state, err := commands.ReadSnapshot(input)
		if err != nil {
			return board.State{}, fmt.Errorf("%s: %s", input, commands.ImportErrorText(err))
		}
		return state, nil
	}

	store, err := storage.New(ctx, cfg.DataFile,
		storage.WithTimeout(200*time.Millisecond),
		storage.WithLogger(logger),
	)
	if errors.Is(err, storage.ErrLocked) {
		return board.State{}, fmt.Errorf("%s is open in zoom-canvas; export with \"p\" instead", cfg.DataFile)
	}
	if err != nil {
		return board.State{}, err
	}
	defer store.Close()

	state, err := store.LoadState(ctx)
	if errors.Is(err, storage.ErrStateNotFound) {
		return board.State{}, fmt.Errorf("%s holds no canvas yet", cfg.DataFile)
	}
	return state, err
}
