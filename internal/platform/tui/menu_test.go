package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func menuKey(t *testing.T, m MenuModel, msg tea.KeyMsg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T, want MenuModel", next)
	}
	return mm, cmd
}

func TestMenuStartsOnCurrentDifficulty(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), config.DifficultyHard)

	m, cmd := menuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("select should quit the menu program")
	}
	if got := m.result(); got.Difficulty != config.DifficultyHard || got.Quit || got.WantsScoreboard {
		t.Errorf("result = %+v, want hard", got)
	}
}

func TestMenuNavigationClamps(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), config.DifficultyNormal)

	for range 5 {
		m, _ = menuKey(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d after moving up, want 0", m.cursor)
	}

	for range 5 {
		m, _ = menuKey(t, m, runeKey('j'))
	}
	if m.cursor != len(config.Difficulties)-1 {
		t.Errorf("cursor = %d after moving down, want last", m.cursor)
	}

	m, _ = menuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.result().Difficulty; got != config.DifficultyHard {
		t.Errorf("selected %q, want hard", got)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), config.DifficultyNormal)
	m, _ = menuKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if got := m.result(); !got.WantsScoreboard {
		t.Errorf("result = %+v, want scoreboard", got)
	}

	m = NewMenuModel(nil, core.DefaultConfig(), config.DifficultyNormal)
	m, _ = menuKey(t, m, runeKey('q'))
	if got := m.result(); !got.Quit {
		t.Errorf("result = %+v, want quit", got)
	}
	if m.View() != "" {
		t.Error("View should be empty after quit")
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), config.DifficultyNormal)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(MenuModel)

	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("config = %+v, want 120x40", cfg)
	}
}

func TestMenuViewShowsStats(t *testing.T) {
	store := &fakeStore{}
	store.SaveGame(storage.GameRecord{Score: 3100, MaxTile: 256, Moves: 300})

	view := NewMenuModel(store, core.DefaultConfig(), config.DifficultyNormal).View()
	for _, want := range []string{"Best: 3100", "Games: 1", "NORMAL", "EASY", "HARD"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, want %q", got, "  ab")
	}
	if got := centerText("too wide", 4); got != "too wide" {
		t.Errorf("centerText = %q, want unchanged", got)
	}
}
