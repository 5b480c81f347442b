package config

import (
	"errors"
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
// Harder presets spawn 4s more often, which fills the board faster.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ErrUnknownDifficulty is returned for names that are not a preset.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulties lists the presets in menu order.
var Difficulties = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParseDifficulty parses a preset name, case-insensitively.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	}
	return "", fmt.Errorf("config: %q: %w (want easy, normal or hard)", s, ErrUnknownDifficulty)
}

// SpawnFourProbability returns the chance of a new tile being a 4.
// Unknown presets get the classic rule.
func (p DifficultyPreset) SpawnFourProbability() float64 {
	switch p {
	case DifficultyEasy:
		return 0.05
	case DifficultyHard:
		return 0.20
	default:
		return 0.10
	}
}

// Description returns a one-line summary for menus.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "5% of new tiles are 4s"
	case DifficultyHard:
		return "20% of new tiles are 4s"
	default:
		return "Classic rules, 10% of new tiles are 4s"
	}
}

// ApplyPreset selects a preset and drops any explicit spawn probability so
// the preset takes effect.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	cfg.Difficulty = preset
	cfg.Engine.SpawnFourProbability = 0
}
