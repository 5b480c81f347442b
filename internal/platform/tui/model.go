package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/stats"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Store is the persistence used by the TUI. *storage.Store implements it.
type Store interface {
	SaveGame(rec storage.GameRecord) (int64, error)
	TopGames(limit int) ([]storage.GameRecord, error)
	BestScore() (int, error)
	Stats() (storage.HubStats, error)
}

// PlayOptions carries the non-game settings of a play session.
type PlayOptions struct {
	Difficulty string
	Logger     *log.Logger // nil discards
}

// toastDuration is how long an achievement notice stays on screen.
const toastDuration = 3 * time.Second

// Model is the Bubble Tea model that runs a game.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      Store
	logger     *log.Logger
	keyMapper  *KeyMapper
	config     core.RuntimeConfig
	difficulty string
	sessionID  string
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	saved      bool // current game already stored

	toast      string
	toastTicks int
}

// NewModel creates a model for g. store may be nil to play without scores.
func NewModel(g *game.Game, store Store, cfg core.RuntimeConfig, opts PlayOptions) Model {
	cfg = cfg.WithTimeSeed()
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		keyMapper:  NewKeyMapper(),
		config:     cfg,
		difficulty: opts.Difficulty,
		inputFrame: core.NewInputFrame(),
	}
	m.startGame()
	return m
}

// startGame resets the game under a new session id.
func (m *Model) startGame() {
	m.game.Reset(m.config)
	m.game.SetBest(m.bestScore())
	m.sessionID = uuid.NewString()
	m.gameState = m.game.State()
	m.saved = false
	opts := m.game.Options()
	m.logger.Debug("game started",
		"session", m.sessionID,
		"seed", m.config.Seed,
		"difficulty", m.difficulty,
		"win_tile", opts.WinTile,
		"spawn_four", opts.SpawnFourProbability,
	)
}

func (m *Model) bestScore() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.BestScore()
	if err != nil {
		m.logger.Warn("cannot read best score", "error", err)
		return 0
	}
	return best
}

// Init names the terminal window and starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(m.game.Title()), tickCmd(m.config.TickRate))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		m.handleTick()
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveResult()
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleTick runs one simulation step with the input collected since the last tick.
func (m *Model) handleTick() {
	defer m.inputFrame.Clear()

	if m.toastTicks > 0 {
		m.toastTicks--
		if m.toastTicks == 0 {
			m.toast = ""
		}
	}

	// A new game can start at any time; the abandoned one is stored first.
	if m.inputFrame.Has(core.ActionRestart) {
		m.saveResult()
		m.config.Seed = 0
		m.config = m.config.WithTimeSeed()
		m.startGame()
		return
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.saved {
		m.saveResult()
	}
}

// saveResult stores the current game once. Games without a single move are skipped.
func (m *Model) saveResult() {
	if m.saved {
		return
	}
	m.saved = true

	res := m.game.Result()
	m.logger.Info("game finished",
		"session", m.sessionID,
		"score", res.Score,
		"max_tile", res.MaxTile,
		"moves", res.Moves,
		"won", res.Won,
		"won_at_move", res.WonAtMove,
		"over", m.gameState.GameOver,
	)

	if m.store == nil || res.Moves == 0 {
		return
	}

	before, err := m.store.Stats()
	if err != nil {
		m.logger.Warn("cannot read stats", "error", err)
	}

	_, err = m.store.SaveGame(storage.GameRecord{
		SessionID:  m.sessionID,
		Score:      res.Score,
		MaxTile:    res.MaxTile,
		Moves:      res.Moves,
		Won:        res.Won,
		Difficulty: m.difficulty,
	})
	if err != nil {
		m.logger.Error("cannot save game", "error", err)
		return
	}

	after, err := m.store.Stats()
	if err != nil {
		m.logger.Warn("cannot read stats", "error", err)
		return
	}
	if unlocked := stats.NewlyUnlocked(before, after); len(unlocked) > 0 {
		titles := make([]string, len(unlocked))
		for i, a := range unlocked {
			titles[i] = a.Title
			m.logger.Info("achievement unlocked", "id", a.ID)
		}
		m.toast = "Achievement unlocked: " + strings.Join(titles, ", ")
		m.toastTicks = m.config.Ticks(toastDuration)
	}
}

// saveScreenshot saves the current screen as plain text under ~/.arcade/screenshots.
// The first line summarizes the game state.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", game.ID, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	content := "# " + m.game.Snapshot().String() + "\n" + m.screen.String()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.toast != "" {
		m.screen.DrawTextCentered(m.screen.Height()-1, m.toast)
	}
	return RenderScreen(m.screen)
}

// SessionID returns the id of the current game.
func (m Model) SessionID() string {
	return m.sessionID
}

// Run starts the Bubble Tea program for g.
func Run(g *game.Game, store Store, cfg core.RuntimeConfig, opts PlayOptions) error {
	p := tea.NewProgram(
		NewModel(g, store, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
