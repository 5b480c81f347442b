package engine

// Status is the derived state of a session.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusLost
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "in_progress"
	}
}

// Session is one game: a grid, a score and the win/loss state machine.
//
// Winning is a latch: once the win tile has appeared, HasWon stays true even
// after that tile is merged away, and play continues. Losing is terminal.
// A session can have won and lost at the same time; Status reports lost.
type Session struct {
	eng   *Engine
	grid  Grid
	score int
	moves int
	won   bool
	wonAt int // accepted move count when the latch flipped
	over  bool
}

// NewSession starts a fresh game on eng.
func NewSession(eng *Engine) *Session {
	s := &Session{eng: eng}
	s.grid = eng.NewGame()
	s.refresh()
	return s
}

// SessionFromGrid resumes a game from an existing grid and score.
func SessionFromGrid(eng *Engine, g Grid, score int) (*Session, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	s := &Session{eng: eng, grid: g, score: max(score, 0)}
	s.refresh()
	return s, nil
}

func (s *Session) refresh() {
	if !s.won && s.grid.HasTile(s.eng.opts.WinTile) {
		s.won = true
		s.wonAt = s.moves
	}
	s.over = IsGameOver(s.grid)
}

// Move applies dir. After the game is lost every move is a no-op.
// The returned Won flag reflects the session latch, not just the current grid.
func (s *Session) Move(dir Direction) MoveResult {
	if s.over {
		return MoveResult{Grid: s.grid, Score: s.score, Won: s.won}
	}

	res := s.eng.Move(s.grid, s.score, dir)
	if !res.Moved {
		res.Won = s.won
		return res
	}

	s.grid = res.Grid
	s.score = res.Score
	s.moves++
	s.refresh()

	res.Won = s.won
	return res
}

// Grid returns a copy of the current grid.
func (s *Session) Grid() Grid { return s.grid }

// Score returns the accumulated score.
func (s *Session) Score() int { return s.score }

// Moves returns the number of accepted moves.
func (s *Session) Moves() int { return s.moves }

// HasWon reports whether the win tile has ever appeared.
func (s *Session) HasWon() bool { return s.won }

// WonAtMove returns the move count at which the session was won, or -1.
func (s *Session) WonAtMove() int {
	if !s.won {
		return -1
	}
	return s.wonAt
}

// IsOver reports whether no legal move remains.
func (s *Session) IsOver() bool { return s.over }

// MaxTile returns the highest tile on the board.
func (s *Session) MaxTile() int { return s.grid.MaxTile() }

// Status derives the session state.
func (s *Session) Status() Status {
	switch {
	case s.over:
		return StatusLost
	case s.won:
		return StatusWon
	default:
		return StatusInProgress
	}
}
