package config

import (
	_ "embed"
)

//go:embed defaults/2048.yaml
var default2048YAML []byte

// DefaultDBPath is the SQLite file used when nothing else is configured.
const DefaultDBPath = "~/.arcade/2048.db"

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Engine: EngineConfig{
			WinTile: 2048,
		},
		Difficulty: DifficultyNormal,
		Display: DisplayConfig{
			TickRate: 30,
		},
		Storage: StorageConfig{
			Path: DefaultDBPath,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.arcade/g2048.log",
		},
	}
}

// withDefaults fills zero fields from Default.
func withDefaults(cfg Config) Config {
	def := Default()
	if cfg.Engine.WinTile == 0 {
		cfg.Engine.WinTile = def.Engine.WinTile
	}
	if cfg.Difficulty == "" {
		cfg.Difficulty = def.Difficulty
	}
	if cfg.Display.TickRate == 0 {
		cfg.Display.TickRate = def.Display.TickRate
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = def.Storage.Path
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Log.File == "" {
		cfg.Log.File = def.Log.File
	}
	return cfg
}
