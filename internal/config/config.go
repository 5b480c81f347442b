// Package config provides YAML-based configuration loading and difficulty
// presets for the 2048 game.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// Config contains all configuration for the game and its surroundings.
type Config struct {
	Engine     EngineConfig     `yaml:"engine"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
	Display    DisplayConfig    `yaml:"display"`
	Storage    StorageConfig    `yaml:"storage"`
	Log        LogConfig        `yaml:"log"`
}

// EngineConfig defines the rule parameters.
type EngineConfig struct {
	// SpawnFourProbability overrides the difficulty preset when non-zero.
	SpawnFourProbability float64 `yaml:"spawn_four_probability"`
	WinTile              int     `yaml:"win_tile"`
}

// DisplayConfig defines terminal loop parameters.
type DisplayConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// StorageConfig defines where finished games are stored.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// LogConfig defines the logger level and the file used while a TUI runs.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// EngineOptions resolves the engine rules: an explicit probability wins,
// otherwise the difficulty preset decides.
func (c Config) EngineOptions() engine.Options {
	p := c.Engine.SpawnFourProbability
	if p == 0 {
		p = c.Difficulty.SpawnFourProbability()
	}
	return engine.Options{
		SpawnFourProbability: p,
		WinTile:              c.Engine.WinTile,
	}
}

// Validate checks values that would otherwise be silently replaced.
func (c Config) Validate() error {
	if p := c.Engine.SpawnFourProbability; p < 0 || p > 1 {
		return fmt.Errorf("config: spawn_four_probability %v outside [0, 1]", p)
	}
	if w := c.Engine.WinTile; w != 0 && (w < 4 || w&(w-1) != 0) {
		return fmt.Errorf("config: win_tile %d is not a power of two >= 4", w)
	}
	if c.Display.TickRate < 0 {
		return fmt.Errorf("config: tick_rate %d is negative", c.Display.TickRate)
	}
	if c.Difficulty != "" {
		if _, err := ParseDifficulty(string(c.Difficulty)); err != nil {
			return err
		}
	}
	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("config: log level %q: %w", c.Log.Level, err)
		}
	}
	return nil
}
