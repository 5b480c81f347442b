package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var (
	flagDifficulty string
	flagBoard      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game of 2048",
	Long: `Start a game of 2048.

Controls:
  Arrows/WASD/HJKL  - Slide tiles
  Enter/Space       - Dismiss the 2048 banner and keep going
  P/Esc             - Pause
  R                 - New game (the current one is saved first)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy    - 5% of new tiles are 4s
  normal  - 10% of new tiles are 4s
  hard    - 20% of new tiles are 4s

Practice positions:
  --board sets the starting grid, rows separated by "/" and cells by
  commas, "." or 0 for empty. Every new game restarts from it. These
  games are stored with the level "practice".

Examples:
  g2048 play
  g2048 play --board "1024,1024,.,./.,.,.,./.,.,.,./.,.,.,2"
  g2048 play --difficulty hard
  g2048 play --seed 42
  g2048 play --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagBoard, "board", "", "Start from this grid, e.g. \"2,2,0,0/0,0,0,0/0,0,0,0/0,0,0,0\"")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg := appConfig
	if cmd.Flags().Changed("difficulty") {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyPreset(&cfg, preset)
	}

	g, level, err := newPlayGame(cfg, flagBoard)
	if err != nil {
		return err
	}

	logger, closeLog, err := fileLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	store, closeStore := openGameStore(cfg, logger)
	defer closeStore()

	logger.Info("starting game", "difficulty", level, "seed", flagSeed)

	if err := tui.Run(g, store, runtimeConfig(cfg), tui.PlayOptions{
		Difficulty: level,
		Logger:     logger,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// practiceLevel labels stored games that began from a --board position.
const practiceLevel = "practice"

// newPlayGame builds the game and the level recorded with its results.
func newPlayGame(cfg config.Config, board string) (*game.Game, string, error) {
	g := game.New(cfg.EngineOptions())
	if board == "" {
		return g, string(cfg.Difficulty), nil
	}

	grid, err := engine.ParseGrid(board)
	if err != nil {
		return nil, "", fmt.Errorf("--board: %w", err)
	}
	if err := g.StartFrom(grid); err != nil {
		return nil, "", fmt.Errorf("--board: %w", err)
	}
	return g, practiceLevel, nil
}
