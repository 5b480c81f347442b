package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a difficulty picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a difficulty, Enter to play.
After a game ends you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start a game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  g2048 menu
  g2048 menu --fps 60
  g2048 menu --db ./2048.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg := appConfig

	logger, closeLog, err := fileLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	store, closeStore := openGameStore(cfg, logger)
	defer closeStore()

	rc := runtimeConfig(cfg)
	current := cfg.Difficulty

	for {
		res, err := tui.RunMenu(store, rc, current)
		if err != nil {
			return fmt.Errorf("running menu: %w", err)
		}
		rc = res.Config

		if res.Quit {
			return nil
		}

		if res.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH)
			if sbErr != nil {
				logger.Error("scoreboard failed", "error", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		current = res.Difficulty
		gameCfg := cfg
		config.ApplyPreset(&gameCfg, current)

		// Fresh seed per game unless the user pinned one.
		if flagSeed == 0 {
			rc.Seed = time.Now().UnixNano()
		}

		logger.Info("starting game", "difficulty", current, "seed", rc.Seed)
		g := game.New(gameCfg.EngineOptions())
		if err := tui.Run(g, store, rc, tui.PlayOptions{
			Difficulty: string(current),
			Logger:     logger,
		}); err != nil {
			logger.Error("game failed", "error", err)
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
