package tui

import (
	"sort"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

// fakeStore keeps games in memory.
type fakeStore struct {
	games []storage.GameRecord
}

func (f *fakeStore) SaveGame(rec storage.GameRecord) (int64, error) {
	rec.ID = int64(len(f.games) + 1)
	f.games = append(f.games, rec)
	return rec.ID, nil
}

func (f *fakeStore) TopGames(limit int) ([]storage.GameRecord, error) {
	top := append([]storage.GameRecord(nil), f.games...)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Score > top[j].Score })
	if len(top) > limit {
		top = top[:limit]
	}
	return top, nil
}

func (f *fakeStore) BestScore() (int, error) {
	best := 0
	for _, g := range f.games {
		best = max(best, g.Score)
	}
	return best, nil
}

func (f *fakeStore) Stats() (storage.HubStats, error) {
	var st storage.HubStats
	for _, g := range f.games {
		st.GamesPlayed++
		st.TotalScore += int64(g.Score)
		st.BestScore = max(st.BestScore, g.Score)
		st.BestTile = max(st.BestTile, g.MaxTile)
		if g.Won {
			st.Wins++
		}
	}
	if st.GamesPlayed > 0 {
		st.AvgScore = float64(st.TotalScore) / float64(st.GamesPlayed)
	}
	return st, nil
}
