// Package game adapts an engine.Session to the fixed-tick loop used by the
// terminal platform: abstract input in, character screen out.
package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

// ID is the identifier used for score storage and logs.
const ID = "2048"

// Minimum screen size: HUD (3 lines) + gap + board (9 lines) + status line.
const (
	MinScreenW = boardW + 4
	MinScreenH = hudHeight + 1 + boardH + 1
)

// Game is a single 2048 game driven by ticks.
type Game struct {
	opts    engine.Options
	session *engine.Session
	tick    uint64

	popTicks int // highlight length at the current tick rate
	screenW  int
	screenH  int

	best int

	paused    bool
	tooSmall  bool
	winBanner bool // "you reached 2048" overlay waiting for Confirm
	winShown  bool // banner already shown this game

	pop *popEffect

	start *engine.Grid // practice position used by Reset instead of a fresh board
}

// New creates a game that plays by opts. Reset must be called before Step.
func New(opts engine.Options) *Game {
	return &Game{opts: opts}
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Options returns the rules the game was created with.
func (g *Game) Options() engine.Options {
	return g.opts
}

// StartFrom makes every following Reset begin at grid with a score of zero
// instead of a fresh two-tile board. Spawns still come from the seed.
func (g *Game) StartFrom(grid engine.Grid) error {
	if err := grid.Validate(); err != nil {
		return err
	}
	g.start = &grid
	return nil
}

// Reset starts a new game seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	eng := engine.New(rand.New(rand.NewSource(cfg.Seed)), g.opts)
	g.session = engine.NewSession(eng)
	if g.start != nil {
		// StartFrom validated the grid.
		if s, err := engine.SessionFromGrid(eng, *g.start, 0); err == nil {
			g.session = s
		}
	}
	g.tick = 0
	g.popTicks = cfg.Ticks(popDuration)
	g.paused = false
	g.winBanner = false
	g.winShown = g.session.HasWon()
	g.pop = nil
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < MinScreenW || h < MinScreenH
}

// SetBest sets the best score shown in the HUD. The displayed value never
// drops below the current score.
func (g *Game) SetBest(best int) {
	g.best = max(best, 0)
}

// Best returns the best score including the current game.
func (g *Game) Best() int {
	if g.session == nil {
		return g.best
	}
	return max(g.best, g.session.Score())
}

// Step advances the game by one tick, applying at most one move.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.pop.step()
	if g.pop.done() {
		g.pop = nil
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.session.IsOver() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.winBanner {
		if in.Has(core.ActionConfirm) {
			g.winBanner = false
		}
		return core.StepResult{State: g.State()}
	}

	if g.session.IsOver() {
		return core.StepResult{State: g.State()}
	}

	if dir, ok := directionFor(in); ok {
		g.move(dir)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) move(dir engine.Direction) {
	res := g.session.Move(dir)
	if !res.Moved {
		return
	}

	if res.Spawn != nil {
		g.pop = newPopEffect(res.Spawn.Pos, g.popTicks)
	}

	if res.Won && !g.winShown && !g.session.IsOver() {
		g.winBanner = true
		g.winShown = true
	}
}

// directionFor picks one direction from the frame. When several are held the
// order is up, down, left, right.
func directionFor(in core.InputFrame) (engine.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return engine.Up, true
	case in.Has(core.ActionDown):
		return engine.Down, true
	case in.Has(core.ActionLeft):
		return engine.Left, true
	case in.Has(core.ActionRight):
		return engine.Right, true
	}
	return engine.Left, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.IsOver(),
		Paused:   g.paused || g.tooSmall || g.winBanner,
	}
}

// Result summarizes the game for storage.
type Result struct {
	Score     int
	MaxTile   int
	Moves     int
	Won       bool
	WonAtMove int
}

// Result returns the current totals of the game.
func (g *Game) Result() Result {
	return Result{
		Score:     g.session.Score(),
		MaxTile:   g.session.MaxTile(),
		Moves:     g.session.Moves(),
		Won:       g.session.HasWon(),
		WonAtMove: g.session.WonAtMove(),
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/hjkl: Move | P: Pause | Enter: Continue | R: New game | Q: Quit"
}
