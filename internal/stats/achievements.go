// Package stats derives achievements from stored game statistics.
package stats

import "github.com/vovakirdan/tui-2048/internal/storage"

// Achievement is a milestone unlocked by the stored history.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Unlocked    bool
}

type rule struct {
	id          string
	title       string
	description string
	unlocked    func(storage.HubStats) bool
}

var rules = []rule{
	{
		id:          "first_game",
		title:       "First Steps",
		description: "Play your first game",
		unlocked:    func(s storage.HubStats) bool { return s.GamesPlayed >= 1 },
	},
	{
		id:          "tile_2048",
		title:       "2048!",
		description: "Reach the 2048 tile",
		unlocked:    func(s storage.HubStats) bool { return s.BestTile >= 2048 },
	},
	{
		id:          "puzzle_solver",
		title:       "Puzzle Solver",
		description: "Score 1000+ in a single game",
		unlocked:    func(s storage.HubStats) bool { return s.BestScore >= 1000 },
	},
	{
		id:          "perfect_score",
		title:       "Perfect Score",
		description: "Collect 1000+ points across all games",
		unlocked:    func(s storage.HubStats) bool { return s.TotalScore >= 1000 },
	},
}

// Evaluate returns every achievement with its unlocked flag set from st.
func Evaluate(st storage.HubStats) []Achievement {
	out := make([]Achievement, 0, len(rules))
	for _, r := range rules {
		out = append(out, Achievement{
			ID:          r.id,
			Title:       r.title,
			Description: r.description,
			Unlocked:    r.unlocked(st),
		})
	}
	return out
}

// Unlocked counts unlocked achievements.
func Unlocked(list []Achievement) int {
	n := 0
	for _, a := range list {
		if a.Unlocked {
			n++
		}
	}
	return n
}

// NewlyUnlocked returns the achievements unlocked in after but not in before.
func NewlyUnlocked(before, after storage.HubStats) []Achievement {
	prev := Evaluate(before)
	var out []Achievement
	for i, a := range Evaluate(after) {
		if a.Unlocked && !prev[i].Unlocked {
			out = append(out, a)
		}
	}
	return out
}
