package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"strokeview/internal/camera"
	"strokeview/internal/control"
)

// DefaultPath is the viewer config file, relative to the process working directory.
const DefaultPath = "config/viewer.yaml"

// Config holds viewer preferences. Missing keys keep their defaults.
type Config struct {
	APIURL        string   `yaml:"api_url"`
	File          string   `yaml:"file,omitempty"`
	WindowWidth   int      `yaml:"window_width"`
	WindowHeight  int      `yaml:"window_height"`
	FOV           float32  `yaml:"fov"`
	RotationSpeed float32  `yaml:"rotation_speed"`
	MovementSpeed float32  `yaml:"movement_speed"`
	ZoomSpeed     float32  `yaml:"zoom_speed"`
	MinDistance   float32  `yaml:"min_distance"`
	Background    [3]uint8 `yaml:"background"`
	GridVisible   bool     `yaml:"grid_visible"`
	ShowFPS       bool     `yaml:"show_fps"`
	FontPath      string   `yaml:"font_path,omitempty"`
	LogPath       string   `yaml:"log_path"`
}

// Default returns the stock configuration (grid on, FPS off, local API).
func Default() Config {
	return Config{
		APIURL:        "http://localhost:8080",
		WindowWidth:   1280,
		WindowHeight:  720,
		FOV:           75,
		RotationSpeed: control.DefaultRotationSpeed,
		MovementSpeed: control.DefaultMovementSpeed,
		ZoomSpeed:     control.DefaultZoomSpeed,
		MinDistance:   camera.DefaultMinDistance,
		Background:    [3]uint8{240, 240, 240},
		GridVisible:   true,
		ShowFPS:       false,
		LogPath:       "logs/strokeview.log",
	}
}

// Load reads path (DefaultPath if empty) over Default(). A missing file is not an error; a
// malformed or invalid one is.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath
	}
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if path == "" {
		path = DefaultPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings the viewer cannot run with.
func (c Config) Validate() error {
	switch {
	case c.RotationSpeed <= 0:
		return fmt.Errorf("rotation_speed must be positive, got %v", c.RotationSpeed)
	case c.MovementSpeed <= 0:
		return fmt.Errorf("movement_speed must be positive, got %v", c.MovementSpeed)
	case c.ZoomSpeed <= 0:
		return fmt.Errorf("zoom_speed must be positive, got %v", c.ZoomSpeed)
	case c.MinDistance <= 0:
		return fmt.Errorf("min_distance must be positive, got %v", c.MinDistance)
	case c.FOV <= 0 || c.FOV >= 180:
		return fmt.Errorf("fov must be in (0, 180), got %v", c.FOV)
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	return nil
}

// Speeds returns the controller speeds.
func (c Config) Speeds() control.Speeds {
	return control.Speeds{Rotation: c.RotationSpeed, Movement: c.MovementSpeed, Zoom: c.ZoomSpeed}
}

// Flags holds command-line overrides; zero values leave the config unchanged.
type Flags struct {
	APIURL string
	File   string
	Width  int
	Height int
}

// Resolve applies non-zero flag values over the loaded config.
func (c *Config) Resolve(f Flags) {
	if f.APIURL != "" {
		c.APIURL = f.APIURL
	}
	if f.File != "" {
		c.File = f.File
	}
	if f.Width > 0 {
		c.WindowWidth = f.Width
	}
	if f.Height > 0 {
		c.WindowHeight = f.Height
	}
}
