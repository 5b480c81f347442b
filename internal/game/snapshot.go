package game

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// View names what the player is looking at.
type View string

const (
	ViewPlaying     View = "playing"
	ViewPaused      View = "paused"
	ViewWinBanner   View = "win_banner"
	ViewGameOver    View = "game_over"
	ViewPausedSmall View = "paused_small_window"
)

// Snapshot captures the game state. Screenshots carry it as a header line.
type Snapshot struct {
	Tick    uint64
	Score   int
	Best    int
	Moves   int
	Grid    engine.Grid
	MaxTile int
	Won     bool
	Status  engine.Status
	View    View
}

// String is a one-line summary, e.g. "score=120 best=400 moves=31 max=32 status=in_progress view=playing".
func (s Snapshot) String() string {
	return fmt.Sprintf("score=%d best=%d moves=%d max=%d status=%s view=%s",
		s.Score, s.Best, s.Moves, s.MaxTile, s.Status, s.View)
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	view := ViewPlaying
	switch {
	case g.tooSmall:
		view = ViewPausedSmall
	case g.session.IsOver():
		view = ViewGameOver
	case g.paused:
		view = ViewPaused
	case g.winBanner:
		view = ViewWinBanner
	}

	return Snapshot{
		Tick:    g.tick,
		Score:   g.session.Score(),
		Best:    g.Best(),
		Moves:   g.session.Moves(),
		Grid:    g.session.Grid(),
		MaxTile: g.session.MaxTile(),
		Won:     g.session.HasWon(),
		Status:  g.session.Status(),
		View:    view,
	}
}
