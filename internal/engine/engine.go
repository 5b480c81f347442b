// Package engine implements the 2048 sliding-merge rules on a fixed 4x4 grid.
//
// All four directions are reduced to one canonical compact-and-merge-left
// routine by rotating the grid in quarter turns. Randomness comes from an
// injected *rand.Rand so games are reproducible from a seed.
package engine

import "math/rand"

// DefaultSpawnFourProbability is the classic chance of a new tile being a 4.
const DefaultSpawnFourProbability = 0.10

// Options tunes tile spawning and the win condition.
type Options struct {
	SpawnFourProbability float64 // 0 selects the default
	WinTile              int     // 0 selects WinTile
}

// DefaultOptions returns the classic rules.
func DefaultOptions() Options {
	return Options{
		SpawnFourProbability: DefaultSpawnFourProbability,
		WinTile:              WinTile,
	}
}

// Engine applies moves and spawns tiles. It holds no grid; callers own
// their grid and score. An Engine is not safe for concurrent use because
// the random source is not.
type Engine struct {
	rng  *rand.Rand
	opts Options
}

// MoveResult describes the outcome of Move.
type MoveResult struct {
	Grid   Grid
	Score  int   // total score after the move
	Gained int   // merge sum of this move
	Moved  bool  // false means the input is ignored: nothing changed and nothing spawned
	Won    bool  // a cell equals the win tile
	Spawn  *Tile // tile added after the move, nil if none
}

// New creates an engine drawing from rng.
func New(rng *rand.Rand, opts Options) *Engine {
	if opts.SpawnFourProbability <= 0 || opts.SpawnFourProbability > 1 {
		opts.SpawnFourProbability = DefaultSpawnFourProbability
	}
	if opts.WinTile <= 0 {
		opts.WinTile = WinTile
	}
	return &Engine{rng: rng, opts: opts}
}

// NewSeeded creates an engine with its own source seeded by seed.
func NewSeeded(seed int64, opts Options) *Engine {
	return New(rand.New(rand.NewSource(seed)), opts)
}

// Options returns the effective options.
func (e *Engine) Options() Options {
	return e.opts
}

// NewGame returns an empty grid seeded with two random tiles.
func (e *Engine) NewGame() Grid {
	var g Grid
	g = e.SpawnTile(g)
	g = e.SpawnTile(g)
	return g
}

// SpawnTile places a 2 (or a 4, with the configured probability) on a
// uniformly chosen empty cell. A full grid is returned unchanged.
func (e *Engine) SpawnTile(g Grid) Grid {
	g, _ = e.spawn(g)
	return g
}

func (e *Engine) spawn(g Grid) (Grid, *Tile) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return g, nil
	}

	pos := empty[e.rng.Intn(len(empty))]

	value := 2
	if e.rng.Float64() < e.opts.SpawnFourProbability {
		value = 4
	}

	g[pos.Row][pos.Col] = value
	return g, &Tile{Pos: pos, Value: value}
}

// Move slides the grid in dir. When nothing changes, the grid and score come
// back untouched and no tile is spawned. Otherwise the merge sum is added to
// score and one new tile is spawned.
func (e *Engine) Move(g Grid, score int, dir Direction) MoveResult {
	next, gained, moved := Slide(g, dir)
	if !moved {
		return MoveResult{
			Grid:  g,
			Score: score,
			Won:   g.HasTile(e.opts.WinTile),
		}
	}

	next, spawned := e.spawn(next)

	return MoveResult{
		Grid:   next,
		Score:  score + gained,
		Gained: gained,
		Moved:  true,
		Won:    next.HasTile(e.opts.WinTile),
		Spawn:  spawned,
	}
}
