package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.World.TerrainHalfSize != 50 {
		t.Errorf("expected terrain half size 50, got %f", cfg.World.TerrainHalfSize)
	}
	if cfg.World.StarCount != 300 {
		t.Errorf("expected 300 stars, got %d", cfg.World.StarCount)
	}
	if cfg.World.CloudCount != 25 {
		t.Errorf("expected 25 clouds, got %d", cfg.World.CloudCount)
	}
	if cfg.World.MinHeight >= cfg.World.MaxHeight {
		t.Errorf("expected min height %f below max height %f", cfg.World.MinHeight, cfg.World.MaxHeight)
	}

	if cfg.Simulation.StartHour != 12 {
		t.Errorf("expected start hour 12, got %f", cfg.Simulation.StartHour)
	}
	if cfg.Simulation.TimeScale != 1.0 {
		t.Errorf("expected time scale 1.0, got %f", cfg.Simulation.TimeScale)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  fps_limit: 144

world:
  terrain_half_size: 80
  camera_border: 4
  min_height: 2
  max_height: 40
  star_count: 500
  cloud_count: 40
  grass_texture: "data/grass.png"

simulation:
  start_hour: 6.5
  time_scale: 2.0
  seed: 42

logging:
  level: "debug"
  log_file: "demo.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.FPSLimit != 144 {
		t.Errorf("expected fps limit 144, got %d", cfg.Graphics.FPSLimit)
	}

	if cfg.World.TerrainHalfSize != 80 {
		t.Errorf("expected terrain half size 80, got %f", cfg.World.TerrainHalfSize)
	}
	if cfg.World.StarCount != 500 {
		t.Errorf("expected 500 stars, got %d", cfg.World.StarCount)
	}
	if cfg.World.GrassTexture != "data/grass.png" {
		t.Errorf("expected grass texture data/grass.png, got %s", cfg.World.GrassTexture)
	}

	if cfg.Simulation.StartHour != 6.5 {
		t.Errorf("expected start hour 6.5, got %f", cfg.Simulation.StartHour)
	}
	if cfg.Simulation.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Simulation.Seed)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "demo.log" {
		t.Errorf("expected log file 'demo.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "saved", "config.yaml")

	cfg := Default()
	cfg.Graphics.Width = 800
	cfg.Simulation.Seed = 7

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}

	if loaded.Graphics.Width != 800 {
		t.Errorf("expected width 800 after round trip, got %d", loaded.Graphics.Width)
	}
	if loaded.Simulation.Seed != 7 {
		t.Errorf("expected seed 7 after round trip, got %d", loaded.Simulation.Seed)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "windowed flag",
			setup: func() {
				*flagWindowed = true
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() {
				*flagWindowed = false
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Graphics.Width)
				}
				if cfg.Graphics.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "seed flag",
			setup: func() {
				*flagSeed = 99
			},
			verify: func(cfg *Config) {
				if cfg.Simulation.Seed != 99 {
					t.Errorf("expected seed 99, got %d", cfg.Simulation.Seed)
				}
			},
			teardown: func() {
				*flagSeed = 0
			},
		},
		{
			name: "hour flag",
			setup: func() {
				*flagHour = 18.25
			},
			verify: func(cfg *Config) {
				if cfg.Simulation.StartHour != 18.25 {
					t.Errorf("expected start hour 18.25, got %f", cfg.Simulation.StartHour)
				}
			},
			teardown: func() {
				*flagHour = -1
			},
		},
		{
			name: "out of range hour flag ignored",
			setup: func() {
				*flagHour = 25
			},
			verify: func(cfg *Config) {
				if cfg.Simulation.StartHour != 12 {
					t.Errorf("expected default start hour 12, got %f", cfg.Simulation.StartHour)
				}
			},
			teardown: func() {
				*flagHour = -1
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width comes from the flag, height from the file.
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}
