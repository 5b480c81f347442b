package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/stats"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show totals and achievements",
	Long: `Display aggregate statistics over every stored game and the
achievements they unlock.

Examples:
  g2048 stats
  g2048 stats --db ./2048.db`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, _ []string) error {
	store, err := openStore(appConfig)
	if err != nil {
		return err
	}
	defer store.Close()

	hub, err := store.Stats()
	if err != nil {
		return fmt.Errorf("reading stats: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, formatStats(hub))
	return nil
}

// formatStats renders the hub totals followed by the achievement list.
func formatStats(hub storage.HubStats) string {
	last := "never"
	if !hub.LastPlayed.IsZero() {
		last = hub.LastPlayed.Local().Format("2006-01-02 15:04")
	}

	s := "Statistics - 2048\n\n"
	s += fmt.Sprintf("  Games played: %d\n", hub.GamesPlayed)
	s += fmt.Sprintf("  Wins:         %d\n", hub.Wins)
	s += fmt.Sprintf("  Best score:   %d\n", hub.BestScore)
	s += fmt.Sprintf("  Avg score:    %.1f\n", hub.AvgScore)
	s += fmt.Sprintf("  Total score:  %d\n", hub.TotalScore)
	s += fmt.Sprintf("  Best tile:    %d\n", hub.BestTile)
	s += fmt.Sprintf("  Last played:  %s\n", last)

	list := stats.Evaluate(hub)
	s += fmt.Sprintf("\nAchievements (%d/%d)\n\n", stats.Unlocked(list), len(list))
	for _, a := range list {
		mark := "[ ]"
		if a.Unlocked {
			mark = "[x]"
		}
		s += fmt.Sprintf("  %s %-14s %s\n", mark, a.Title, a.Description)
	}
	return s
}
