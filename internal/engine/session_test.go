package engine

import "testing"

func TestSessionStartsInProgress(t *testing.T) {
	s := NewSession(NewSeeded(1, DefaultOptions()))

	if s.Status() != StatusInProgress {
		t.Errorf("Status = %s, want in_progress", s.Status())
	}
	if s.Score() != 0 || s.Moves() != 0 {
		t.Errorf("score=%d moves=%d, want 0 and 0", s.Score(), s.Moves())
	}
	if countTiles(s.Grid()) != 2 {
		t.Errorf("new session should have two tiles:\n%v", s.Grid())
	}
	if s.WonAtMove() != -1 {
		t.Errorf("WonAtMove = %d, want -1", s.WonAtMove())
	}
}

func TestSessionNoOpMoveKeepsState(t *testing.T) {
	g := Grid{{2, 4, 0, 0}}
	s, err := SessionFromGrid(NewSeeded(2, DefaultOptions()), g, 8)
	if err != nil {
		t.Fatalf("SessionFromGrid: %v", err)
	}

	res := s.Move(Left)
	if res.Moved {
		t.Error("left on a left-packed row should not move")
	}
	if s.Moves() != 0 || s.Score() != 8 || s.Grid() != g {
		t.Errorf("state changed on a no-op: moves=%d score=%d\n%v", s.Moves(), s.Score(), s.Grid())
	}
}

func TestSessionWinLatch(t *testing.T) {
	g := Grid{
		{1024, 1024, 0, 0},
		{1024, 1024, 0, 0},
	}
	s, err := SessionFromGrid(NewSeeded(3, DefaultOptions()), g, 0)
	if err != nil {
		t.Fatalf("SessionFromGrid: %v", err)
	}

	first := s.Move(Left)
	if !first.Moved || !first.Won {
		t.Fatalf("first move moved=%v won=%v, want both true", first.Moved, first.Won)
	}
	if s.Status() != StatusWon || s.WonAtMove() != 1 {
		t.Errorf("Status = %s at move %d, want won at 1", s.Status(), s.WonAtMove())
	}

	// Merge the two 2048s into 4096; the latch must survive.
	second := s.Move(Up)
	if !second.Moved {
		t.Fatal("second move should merge the 2048 column")
	}
	if second.Grid.HasTile(WinTile) {
		t.Fatalf("expected no 2048 left on the grid:\n%v", second.Grid)
	}
	if !second.Won || !s.HasWon() {
		t.Error("won latch reset after the 2048 tile was merged away")
	}
	if s.MaxTile() != 4096 {
		t.Errorf("MaxTile = %d, want 4096", s.MaxTile())
	}
	if s.Score() != 2048+2048+4096 {
		t.Errorf("Score = %d, want %d", s.Score(), 2048+2048+4096)
	}
}

func TestSessionLost(t *testing.T) {
	g := Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	s, err := SessionFromGrid(NewSeeded(4, DefaultOptions()), g, 300)
	if err != nil {
		t.Fatalf("SessionFromGrid: %v", err)
	}

	if !s.IsOver() || s.Status() != StatusLost {
		t.Fatalf("Status = %s, want lost", s.Status())
	}
	for _, dir := range Directions {
		if res := s.Move(dir); res.Moved {
			t.Errorf("Move(%s) moved on a lost game", dir)
		}
	}
	if s.Score() != 300 {
		t.Errorf("Score = %d, want 300", s.Score())
	}
}

func TestSessionWonAndLost(t *testing.T) {
	g := Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2048, 4},
		{4, 2, 4, 2},
	}
	s, err := SessionFromGrid(NewSeeded(5, DefaultOptions()), g, 0)
	if err != nil {
		t.Fatalf("SessionFromGrid: %v", err)
	}

	if !s.HasWon() || !s.IsOver() {
		t.Errorf("HasWon=%v IsOver=%v, want both true", s.HasWon(), s.IsOver())
	}
	if s.Status() != StatusLost {
		t.Errorf("Status = %s, want lost to take precedence", s.Status())
	}
}

func TestSessionFromGridRejectsInvalid(t *testing.T) {
	if _, err := SessionFromGrid(NewSeeded(6, DefaultOptions()), Grid{{3}}, 0); err == nil {
		t.Error("SessionFromGrid should reject a 3 tile")
	}
}

// Playing a seeded game to the end must keep the board consistent after every move.
func TestSessionPlaysToCompletion(t *testing.T) {
	s := NewSession(NewSeeded(77, DefaultOptions()))

	prevScore := 0
	for step := 0; !s.IsOver() && step < 10000; step++ {
		moved := false
		for _, dir := range Directions {
			res := s.Move(dir)
			if res.Moved {
				moved = true
				break
			}
		}
		if !moved {
			t.Fatalf("no direction moved but IsOver=false:\n%v", s.Grid())
		}
		if s.Score() < prevScore {
			t.Fatalf("score decreased from %d to %d", prevScore, s.Score())
		}
		prevScore = s.Score()
		if err := s.Grid().Validate(); err != nil {
			t.Fatalf("invalid grid after move %d: %v", s.Moves(), err)
		}
	}

	if !s.IsOver() {
		t.Fatal("game did not finish")
	}
	if !s.Grid().IsFull() {
		t.Error("a lost game must have a full grid")
	}
}
