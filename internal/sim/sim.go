// Package sim plays many headless games in parallel. Every game owns its
// engine and random source, so results depend only on the seed.
package sim

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// DefaultMaxMoves bounds a single game so a pathological policy cannot spin forever.
const DefaultMaxMoves = 100_000

// Config describes a batch of simulated games.
type Config struct {
	Games    int
	Seed     int64 // game i uses Seed+i
	Workers  int   // 0 means GOMAXPROCS
	MaxMoves int   // 0 means DefaultMaxMoves
	Policy   Policy
	Options  engine.Options
}

// GameResult is the outcome of one simulated game.
type GameResult struct {
	Index     int
	Seed      int64
	Score     int
	MaxTile   int
	Moves     int
	Won       bool
	WonAtMove int
	Finished  bool // false when the game hit MaxMoves
}

// Summary aggregates a batch.
type Summary struct {
	Policy     string
	Games      int
	Wins       int
	BestScore  int
	AvgScore   float64
	AvgMoves   float64
	AvgWinMove float64 // mean move at which winners first reached the win tile
	Unfinished int     // games stopped before game over: move limit or no playable direction
	TileCounts map[int]int // highest tile reached -> number of games
	Results    []GameResult
}

// WinRate returns the fraction of games that reached the win tile.
func (s Summary) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// MaxTiles returns the keys of TileCounts in ascending order.
func (s Summary) MaxTiles() []int {
	tiles := make([]int, 0, len(s.TileCounts))
	for t := range s.TileCounts {
		tiles = append(tiles, t)
	}
	sort.Ints(tiles)
	return tiles
}

// Run plays cfg.Games games concurrently and aggregates the results.
// The summary is independent of the worker count.
func Run(ctx context.Context, cfg Config) (Summary, error) {
	if cfg.Games <= 0 {
		return Summary{}, fmt.Errorf("sim: games must be positive, got %d", cfg.Games)
	}
	if cfg.Policy == nil {
		cfg.Policy = RandomPolicy{}
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]GameResult, cfg.Games)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range cfg.Games {
		eg.Go(func() error {
			res, err := Play(egCtx, cfg, cfg.Seed+int64(i))
			if err != nil {
				return err
			}
			res.Index = i
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Summary{}, err
	}

	return summarize(cfg.Policy.Name(), results), nil
}

// Play runs a single game with the given seed until it is lost, hits the
// move limit or the policy offers no direction that changes the grid.
func Play(ctx context.Context, cfg Config, seed int64) (GameResult, error) {
	policy := cfg.Policy
	if policy == nil {
		policy = RandomPolicy{}
	}
	limit := cfg.MaxMoves
	if limit <= 0 {
		limit = DefaultMaxMoves
	}

	s := engine.NewSession(engine.NewSeeded(seed, cfg.Options))
	rng := rand.New(rand.NewSource(seed))

	for !s.IsOver() && s.Moves() < limit {
		if s.Moves()%256 == 0 {
			if err := ctx.Err(); err != nil {
				return GameResult{}, fmt.Errorf("sim: game %d: %w", seed, err)
			}
		}
		if !step(s, policy.Order(s.Grid(), rng)) {
			break
		}
	}

	return GameResult{
		Seed:      seed,
		Score:     s.Score(),
		MaxTile:   s.MaxTile(),
		Moves:     s.Moves(),
		Won:       s.HasWon(),
		WonAtMove: s.WonAtMove(),
		Finished:  s.IsOver(),
	}, nil
}

// step plays the first direction in order that changes the grid.
func step(s *engine.Session, order []engine.Direction) bool {
	for _, dir := range order {
		if s.Move(dir).Moved {
			return true
		}
	}
	return false
}

func summarize(policy string, results []GameResult) Summary {
	sum := Summary{
		Policy:     policy,
		Games:      len(results),
		TileCounts: make(map[int]int),
		Results:    results,
	}

	var totalScore, totalMoves, totalWinMoves int
	for _, r := range results {
		totalScore += r.Score
		totalMoves += r.Moves
		sum.BestScore = max(sum.BestScore, r.Score)
		sum.TileCounts[r.MaxTile]++
		if r.Won {
			sum.Wins++
			totalWinMoves += r.WonAtMove
		}
		if !r.Finished {
			sum.Unfinished++
		}
	}
	if sum.Wins > 0 {
		sum.AvgWinMove = float64(totalWinMoves) / float64(sum.Wins)
	}
	if n := len(results); n > 0 {
		sum.AvgScore = float64(totalScore) / float64(n)
		sum.AvgMoves = float64(totalMoves) / float64(n)
	}
	return sum
}
