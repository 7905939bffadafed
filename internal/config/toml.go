// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Dial   DialConfig   `toml:"dial"`
	Colors ColorsConfig `toml:"colors"`
}

// DialConfig maps layout and gesture settings. Angles are in degrees.
type DialConfig struct {
	Dots         *int     `toml:"dots"`
	Padding      *float64 `toml:"padding"`
	TouchPadding *float64 `toml:"touch-padding"`
	MovingDiff   *float64 `toml:"moving-diff"`
	Spacing      *float64 `toml:"spacing"`
	SmallDot     *float64 `toml:"small-dot"`
	BigDot       *float64 `toml:"big-dot"`
	StrokeWidth  *float64 `toml:"stroke-width"`
	Start        *float64 `toml:"start"`
	End          *float64 `toml:"end"`
}

// ColorsConfig maps renderer colors.
type ColorsConfig struct {
	Background       *string `toml:"background"`
	MainStroke       *string `toml:"main-stroke"`
	MainDots         *string `toml:"main-dots"`
	UserStroke       *string `toml:"user-stroke"`
	UserStrokeShadow *string `toml:"user-stroke-shadow"`
	UserDot          *string `toml:"user-dot"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
