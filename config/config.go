// Package config loads engine options from a TOML file, falling back to
// sensible defaults for anything the file omits.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Engine  EngineConfig  `toml:"engine"`
	Screen  ScreenConfig  `toml:"screen"`
	Audio   AudioConfig   `toml:"audio"`
	Logging LoggingConfig `toml:"logging"`
}

type EngineConfig struct {
	// FrameRate is the target frames per second of the fixed-interval loop.
	FrameRate int `toml:"frame_rate"`
}

type ScreenConfig struct {
	// TrueColor sends 24-bit color; off quantizes to the 256-color palette.
	TrueColor bool `toml:"true_color"`

	// DefaultCamera spawns a main camera at the origin during init.
	DefaultCamera bool `toml:"default_camera"`

	// Width and Height cap the drawable area in cells; zero means use the
	// full terminal size at startup.
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

type LoggingConfig struct {
	// File receives structured logs; empty disables logging. The terminal
	// owns stdout and stderr while the game runs.
	File  string `toml:"file"`
	Level string `toml:"level"` // "debug", "info", "warn", "error"
}

// Load reads the TOML file at path over the defaults. A missing file is
// not an error; the defaults stand alone.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func Defaults() *Config {
	return &Config{
		Engine: EngineConfig{
			FrameRate: 60,
		},
		Screen: ScreenConfig{
			TrueColor:     true,
			DefaultCamera: true,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// FrameInterval converts the configured frame rate to a ticker interval.
func (c *Config) FrameInterval() time.Duration {
	rate := c.Engine.FrameRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}
