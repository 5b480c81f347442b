package core

import (
	"testing"
	"time"
)

func TestRuntimeConfigTicks(t *testing.T) {
	tests := []struct {
		rate int
		d    time.Duration
		want int
	}{
		{30, 200 * time.Millisecond, 6},
		{60, time.Second, 60},
		{30, 3 * time.Second, 90},
		{1, 200 * time.Millisecond, 1},
		{0, time.Second, 1},
	}

	for _, tt := range tests {
		cfg := RuntimeConfig{TickRate: tt.rate}
		if got := cfg.Ticks(tt.d); got != tt.want {
			t.Errorf("Ticks(%v) at %d/s = %d, want %d", tt.d, tt.rate, got, tt.want)
		}
	}
}

func TestRuntimeConfigWithTimeSeed(t *testing.T) {
	if got := (RuntimeConfig{Seed: 42}).WithTimeSeed().Seed; got != 42 {
		t.Errorf("explicit seed replaced: got %d", got)
	}
	if got := DefaultConfig().WithTimeSeed().Seed; got == 0 {
		t.Error("zero seed should be replaced by a time-based one")
	}
}
