package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best games",
	Long: `Display the highest scoring games stored in the database.

Examples:
  g2048 scores
  g2048 scores --limit 25
  g2048 scores --db ./2048.db
  g2048 scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every stored game")
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func runScores(cmd *cobra.Command, _ []string) error {
	if flagLimit < 1 {
		return fmt.Errorf("--limit must be at least 1, got %d", flagLimit)
	}

	store, err := openStore(appConfig)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		return clearScores(cmd.OutOrStdout(), store)
	}

	games, err := store.TopGames(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "High Scores - 2048")
	fmt.Fprintln(out)

	if len(games) == 0 {
		fmt.Fprintln(out, "No games recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'g2048 play' to set the first high score!")
		return nil
	}

	fmt.Fprintln(out, scoresTable(games))

	best, err := store.BestScore()
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d\n", best)
	}
	return nil
}

// clearScores deletes the history and reports how many games were removed.
func clearScores(w io.Writer, store *storage.Store) error {
	before, err := store.Stats()
	if err != nil {
		return fmt.Errorf("reading stats: %w", err)
	}
	if err := store.ClearGames(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Deleted %d stored games.\n", before.GamesPlayed)
	return nil
}

// scoresTable renders stored games ranked in the order given.
func scoresTable(games []storage.GameRecord) string {
	rows := make([][]string, 0, len(games))
	for i, g := range games {
		won := ""
		if g.Won {
			won = "yes"
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(g.Score),
			strconv.Itoa(g.MaxTile),
			strconv.Itoa(g.Moves),
			won,
			g.Difficulty,
			g.CreatedAt.Local().Format("2006-01-02 15:04"),
		})
	}
	return newTable("Rank", "Score", "Max", "Moves", "Won", "Level", "Date").Rows(rows...).String()
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}
