package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoomcanvas/internal/eventbus"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	loaded := make(chan eventbus.ConfigLoadedEvent, 1)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		loaded <- e.(eventbus.ConfigLoadedEvent)
	})

	path := filepath.Join(t.TempDir(), "config.toml")
	cs := NewConfigServiceWithBus(bus, path)

	cfg, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Canvas, cfg.Canvas)

	select {
	case e := <-loaded:
		assert.Equal(t, path, e.Path)
	case <-time.After(time.Second):
		t.Fatal("ConfigLoaded not published")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cs := NewConfigServiceWithBus(nil, path)

	cfg := DefaultConfig()
	cfg.DataFile = "/tmp/somewhere.db"
	cfg.Canvas.ZoomFactor = 1.5
	cfg.UISettings.ConfirmClear = false
	require.NoError(t, cs.Save(cfg))

	got, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadFromPath_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[canvas]\nnote_width = 30\n"), 0644))

	cfg, err := NewConfigService().LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Canvas.NoteWidth)
	assert.Equal(t, 6, cfg.Canvas.NoteHeight)
	assert.Equal(t, 1.2, cfg.Canvas.ZoomFactor)
	assert.True(t, cfg.UISettings.ShowCenterMarker)
}

func TestLoadFromPath_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewConfigService().LoadFromPath(filepath.Join(dir, "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("this = = broken"), 0644))
	_, err = NewConfigService().LoadFromPath(bad)
	assert.ErrorContains(t, err, "failed to parse config")

	invalid := filepath.Join(dir, "invalid.toml")
	require.NoError(t, os.WriteFile(invalid, []byte("[canvas]\nzoom_factor = 0.5\n"), 0644))
	_, err = NewConfigService().LoadFromPath(invalid)
	assert.ErrorContains(t, err, "zoom_factor")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.Canvas.NoteWidth = 1
	cfg.Canvas.DoubleClickMS = 0
	cfg.ExportName = ""
	cfg.Canvas.MinZoom = 2
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "min_zoom")
	assert.ErrorContains(t, err, "note_width")
	assert.ErrorContains(t, err, "double_click_ms")
	assert.ErrorContains(t, err, "export_name")
}

func TestValidateZoomBounds(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		ok       bool
	}{
		{"defaults", 0.1, 10, true},
		{"fixed zoom", 1, 1, true},
		{"zero min", 0, 10, false},
		{"min above one", 1.5, 10, false},
		{"max below one", 0.1, 0.5, false},
		{"infinite max", 0.1, math.Inf(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Canvas.MinZoom, cfg.Canvas.MaxZoom = tt.min, tt.max
			if tt.ok {
				assert.NoError(t, cfg.Validate())
			} else {
				assert.ErrorContains(t, cfg.Validate(), "max_zoom")
			}
		})
	}
}

func TestSaveRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.Canvas.ZoomFactor = 1

	assert.Error(t, NewConfigServiceWithBus(nil, path).Save(cfg))
	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
