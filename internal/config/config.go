package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"zoomcanvas/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version"`
	DataFile   string         `toml:"data_file"`   // bbolt file holding the canvas
	ExportDir  string         `toml:"export_dir"`  // where "s" and "p" write
	ExportName string         `toml:"export_name"` // JSON export file name
	LogFile    string         `toml:"log_file"`
	Canvas     CanvasSettings `toml:"canvas"`
	UISettings UISettings     `toml:"ui"`
}

// CanvasSettings controls geometry and pointer handling
type CanvasSettings struct {
	ZoomFactor    float64 `toml:"zoom_factor"`
	MinZoom       float64 `toml:"min_zoom"`
	MaxZoom       float64 `toml:"max_zoom"`
	NoteWidth     int     `toml:"note_width"`  // cells at zoom 1
	NoteHeight    int     `toml:"note_height"` // cells at zoom 1
	DoubleClickMS int     `toml:"double_click_ms"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowCenterMarker bool `toml:"show_center_marker"`
	ConfirmClear     bool `toml:"confirm_clear"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// Dir returns the zoomcanvas config directory, falling back to ~/.config
// and finally to the working directory.
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "zoomcanvas")
}

// NewConfigService creates a config service for the default location
func NewConfigService() ConfigService {
	return &configService{filePath: filepath.Join(Dir(), "config.toml")}
}

// NewConfigServiceWithBus creates a config service with event bus support.
// An empty path selects the default location.
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	cs := NewConfigService().(*configService)
	if path != "" {
		cs.filePath = path
	}
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration file, returning defaults when it does not
// exist yet.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:     cs.filePath,
			DataFile: cfg.DataFile,
		})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys absent from
// the file keep their defaults.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate rejects values the canvas cannot work with
func (c *Config) Validate() error {
	var errs []error
	if c.Canvas.ZoomFactor <= 1 {
		errs = append(errs, fmt.Errorf("canvas.zoom_factor must be greater than 1, got %v", c.Canvas.ZoomFactor))
	}
	if c.Canvas.MinZoom <= 0 || c.Canvas.MinZoom > 1 || c.Canvas.MaxZoom < 1 || math.IsInf(c.Canvas.MaxZoom, 0) {
		errs = append(errs, fmt.Errorf("canvas.min_zoom and canvas.max_zoom must satisfy 0 < min_zoom <= 1 <= max_zoom, got %v and %v",
			c.Canvas.MinZoom, c.Canvas.MaxZoom))
	}
	if c.Canvas.NoteWidth < 3 || c.Canvas.NoteHeight < 3 {
		errs = append(errs, fmt.Errorf("canvas.note_width and canvas.note_height must be at least 3, got %dx%d",
			c.Canvas.NoteWidth, c.Canvas.NoteHeight))
	}
	if c.Canvas.DoubleClickMS <= 0 {
		errs = append(errs, fmt.Errorf("canvas.double_click_ms must be positive, got %d", c.Canvas.DoubleClickMS))
	}
	if c.ExportName == "" {
		errs = append(errs, errors.New("export_name must not be empty"))
	}
	return errors.Join(errs...)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	dir := Dir()

	exportDir, err := os.Getwd()
	if err != nil {
		exportDir = "."
	}

	return &Config{
		Version:    1,
		DataFile:   filepath.Join(dir, "canvas.db"),
		ExportDir:  exportDir,
		ExportName: "zoom-canvas.json",
		LogFile:    "zoomcanvas.log",
		Canvas: CanvasSettings{
			ZoomFactor:    1.2,
			MinZoom:       0.1,
			MaxZoom:       10,
			NoteWidth:     24,
			NoteHeight:    6,
			DoubleClickMS: 400,
		},
		UISettings: UISettings{
			ShowCenterMarker: true,
			ConfirmClear:     true,
		},
	}
}
