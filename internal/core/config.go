package core

import "time"

// RuntimeConfig is what the platform hands a game on reset.
type RuntimeConfig struct {
	ScreenW  int   // terminal columns
	ScreenH  int   // terminal rows
	TickRate int   // ticks per second
	Seed     int64 // 0 asks the platform for a time-based seed
}

// DefaultConfig is an 80x24 terminal at 30 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}
}

// Ticks converts d to a tick count at the configured rate, never less than one.
func (c RuntimeConfig) Ticks(d time.Duration) int {
	n := int(d * time.Duration(c.TickRate) / time.Second)
	return max(n, 1)
}

// WithTimeSeed returns c with a seed taken from the clock when none is set.
func (c RuntimeConfig) WithTimeSeed() RuntimeConfig {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// GameState is what the platform needs to know after a tick.
type GameState struct {
	Score    int
	GameOver bool // no move is left
	Paused   bool // input held: paused, win banner or window too small
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
