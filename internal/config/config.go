// Package config handles demo configuration loading and management.
package config

// Config holds all demo settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	World      WorldConfig      `yaml:"world"`
	Simulation SimulationConfig `yaml:"simulation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// WorldConfig holds terrain bounds and scene population settings.
type WorldConfig struct {
	TerrainHalfSize float32 `yaml:"terrain_half_size"` // terrain extends +-half_size on X/Z
	CameraBorder    float32 `yaml:"camera_border"`     // kept between camera and terrain edge
	MinHeight       float32 `yaml:"min_height"`
	MaxHeight       float32 `yaml:"max_height"`
	StarCount       int     `yaml:"star_count"`
	CloudCount      int     `yaml:"cloud_count"`
	GrassTexture    string  `yaml:"grass_texture"`
}

// SimulationConfig holds clock and procedural generation settings.
type SimulationConfig struct {
	StartHour float32 `yaml:"start_hour"` // time of day at startup, [0,24)
	TimeScale float32 `yaml:"time_scale"` // hours advanced per real second while P/O held
	Seed      int64   `yaml:"seed"`       // star/cloud placement seed
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		World: WorldConfig{
			TerrainHalfSize: 50,
			CameraBorder:    2,
			MinHeight:       1,
			MaxHeight:       30,
			StarCount:       300,
			CloudCount:      25,
			GrassTexture:    "assets/textures/grass.png",
		},
		Simulation: SimulationConfig{
			StartHour: 12,
			TimeScale: 1.0,
			Seed:      1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
