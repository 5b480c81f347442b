package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/sim"
)

var (
	flagGames    int
	flagPolicy   string
	flagWorkers  int
	flagMaxMoves int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play headless games with a bot",
	Long: `Play many games without a terminal UI and summarize the results.
Game i uses seed+i, so a run is reproducible for a fixed --seed
regardless of the worker count.

Policies:
  random        - Try the four directions in a random order
  corner        - Keep the largest tiles in the bottom-left corner
  order:<dirs>  - Always try the listed directions in order, e.g. order:down,left,right

Unfinished games hit --max-moves or ran out of listed directions.

Examples:
  g2048 simulate
  g2048 simulate --games 1000 --policy corner --seed 1
  g2048 simulate --difficulty hard --workers 4
  g2048 simulate --policy order:down,left,right,up`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagGames, "games", 100, "Number of games to play")
	simulateCmd.Flags().StringVar(&flagPolicy, "policy", "corner", "Bot policy: "+strings.Join(sim.Policies, ", "))
	simulateCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Parallel workers (0 = one per CPU)")
	simulateCmd.Flags().IntVar(&flagMaxMoves, "max-moves", sim.DefaultMaxMoves, "Move limit per game")
	simulateCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg := appConfig
	if cmd.Flags().Changed("difficulty") {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyPreset(&cfg, preset)
	}

	policy, err := sim.ParsePolicy(flagPolicy)
	if err != nil {
		return err
	}
	if flagGames < 1 {
		return fmt.Errorf("--games must be at least 1, got %d", flagGames)
	}

	logger, err := stderrLogger(cfg)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("simulating", "games", flagGames, "policy", policy.Name(), "seed", seed, "workers", flagWorkers)
	start := time.Now()
	summary, err := sim.Run(ctx, sim.Config{
		Games:    flagGames,
		Seed:     seed,
		Workers:  flagWorkers,
		MaxMoves: flagMaxMoves,
		Policy:   policy,
		Options:  cfg.EngineOptions(),
	})
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("simulation interrupted: %w", context.Cause(ctx))
		}
		return err
	}
	logger.Info("simulation finished", "games", summary.Games, "elapsed", time.Since(start).Round(time.Millisecond))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Simulated %d games (policy %s, difficulty %s, seed %d)\n\n",
		summary.Games, summary.Policy, cfg.Difficulty, seed)
	fmt.Fprintln(out, summaryTable(summary))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Highest tile reached")
	fmt.Fprintln(out, tileTable(summary))
	return nil
}

func summaryTable(s sim.Summary) string {
	winMove := "-"
	if s.Wins > 0 {
		winMove = fmt.Sprintf("%.1f", s.AvgWinMove)
	}
	return newTable("Games", "Wins", "Win rate", "Avg win move", "Unfinished", "Best", "Avg score", "Avg moves").Row(
		strconv.Itoa(s.Games),
		strconv.Itoa(s.Wins),
		fmt.Sprintf("%.1f%%", s.WinRate()*100),
		winMove,
		strconv.Itoa(s.Unfinished),
		strconv.Itoa(s.BestScore),
		fmt.Sprintf("%.1f", s.AvgScore),
		fmt.Sprintf("%.1f", s.AvgMoves),
	).String()
}

func tileTable(s sim.Summary) string {
	t := newTable("Tile", "Games", "Share")
	for _, tile := range s.MaxTiles() {
		n := s.TileCounts[tile]
		t.Row(strconv.Itoa(tile), strconv.Itoa(n), fmt.Sprintf("%.1f%%", float64(n)*100/float64(s.Games)))
	}
	return t.String()
}
