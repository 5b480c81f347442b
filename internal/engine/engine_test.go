package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func countTiles(g Grid) int {
	n := 0
	for r := range Size {
		for c := range Size {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

func TestNewGameSpawnsTwoTiles(t *testing.T) {
	eng := NewSeeded(7, DefaultOptions())
	g := eng.NewGame()

	if n := countTiles(g); n != 2 {
		t.Fatalf("NewGame placed %d tiles, want 2:\n%v", n, g)
	}
	for r := range Size {
		for c := range Size {
			if v := g[r][c]; v != 0 && v != 2 && v != 4 {
				t.Errorf("NewGame cell (%d,%d) = %d, want 2 or 4", r, c, v)
			}
		}
	}
}

func TestDeterministicSpawn(t *testing.T) {
	e1 := NewSeeded(12345, DefaultOptions())
	e2 := NewSeeded(12345, DefaultOptions())

	g1, g2 := e1.NewGame(), e2.NewGame()
	if g1 != g2 {
		t.Fatalf("same seed should produce same initial grid:\n%v\nvs\n%v", g1, g2)
	}

	score1, score2 := 0, 0
	for i := range 50 {
		dir := Directions[i%len(Directions)]
		r1 := e1.Move(g1, score1, dir)
		r2 := e2.Move(g2, score2, dir)
		g1, score1 = r1.Grid, r1.Score
		g2, score2 = r2.Grid, r2.Score
		if g1 != g2 || score1 != score2 {
			t.Fatalf("move %d (%s) diverged:\n%v\nvs\n%v", i, dir, g1, g2)
		}
	}
}

func TestSpawnTileFullGridIsNoop(t *testing.T) {
	eng := NewSeeded(1, DefaultOptions())
	full := Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	if got := eng.SpawnTile(full); got != full {
		t.Errorf("SpawnTile on a full grid changed it:\n%v", got)
	}
}

func TestSpawnTileDistribution(t *testing.T) {
	eng := NewSeeded(99, DefaultOptions())
	g := Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 0, 4},
		{4, 2, 4, 2},
	}

	const trials = 20000
	fours := 0
	for range trials {
		out := eng.SpawnTile(g)
		switch out[2][2] {
		case 2:
		case 4:
			fours++
		default:
			t.Fatalf("SpawnTile placed %d in the only empty cell", out[2][2])
		}
		if countTiles(out) != 16 {
			t.Fatalf("SpawnTile touched more than the empty cell:\n%v", out)
		}
	}

	ratio := float64(fours) / trials
	if math.Abs(ratio-0.10) > 0.02 {
		t.Errorf("share of 4s = %.3f, want 0.10 +/- 0.02", ratio)
	}
}

func TestSpawnTileUniformPosition(t *testing.T) {
	eng := NewSeeded(2024, DefaultOptions())

	const trials = 16000
	var counts [Size][Size]int
	for range trials {
		var g Grid
		g = eng.SpawnTile(g)
		for r := range Size {
			for c := range Size {
				if g[r][c] != 0 {
					counts[r][c]++
				}
			}
		}
	}

	for r := range Size {
		for c := range Size {
			if counts[r][c] < 800 || counts[r][c] > 1200 {
				t.Errorf("cell (%d,%d) chosen %d times, want about 1000", r, c, counts[r][c])
			}
		}
	}
}

func TestSpawnFourProbabilityOption(t *testing.T) {
	eng := NewSeeded(5, Options{SpawnFourProbability: 1})
	var g Grid
	g = eng.SpawnTile(g)
	if g.MaxTile() != 4 {
		t.Errorf("probability 1 should always spawn 4, got\n%v", g)
	}

	if got := New(nil, Options{}).Options(); got != DefaultOptions() {
		t.Errorf("zero options = %+v, want defaults %+v", got, DefaultOptions())
	}
}

func TestMoveEndToEnd(t *testing.T) {
	eng := NewSeeded(3, DefaultOptions())
	start := Grid{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	res := eng.Move(start, 0, Left)

	if !res.Moved {
		t.Fatal("Move(Left) should report moved")
	}
	if res.Gained != 4 || res.Score != 4 {
		t.Errorf("Move(Left) gained=%d score=%d, want 4 and 4", res.Gained, res.Score)
	}
	if res.Spawn == nil {
		t.Fatal("Move(Left) should spawn a tile")
	}
	if res.Spawn.Pos == (Pos{0, 0}) {
		t.Fatal("tile spawned on the merged cell")
	}
	if res.Grid[res.Spawn.Row][res.Spawn.Col] != res.Spawn.Value {
		t.Errorf("spawned tile %+v not on grid:\n%v", *res.Spawn, res.Grid)
	}

	withoutSpawn := res.Grid
	withoutSpawn[res.Spawn.Row][res.Spawn.Col] = 0
	want := Grid{{4, 0, 0, 0}}
	if diff := cmp.Diff(want, withoutSpawn); diff != "" {
		t.Errorf("grid after move (-want +got):\n%s", diff)
	}
	if res.Won {
		t.Error("Move should not report won without a 2048 tile")
	}
}

func TestMoveNoChangeDoesNotSpawn(t *testing.T) {
	eng := NewSeeded(11, DefaultOptions())
	g := Grid{
		{2, 4, 8, 16},
		{4, 8, 16, 32},
		{0, 0, 0, 0},
		{8, 2, 0, 0},
	}

	res := eng.Move(g, 120, Left)

	if res.Moved {
		t.Error("Move(Left) should not report moved")
	}
	if res.Grid != g {
		t.Errorf("grid changed on a no-op move:\n%v", res.Grid)
	}
	if res.Score != 120 || res.Gained != 0 {
		t.Errorf("score = %d gained = %d, want 120 and 0", res.Score, res.Gained)
	}
	if res.Spawn != nil {
		t.Errorf("no-op move spawned %+v", *res.Spawn)
	}
}

func TestMoveScoreAccounting(t *testing.T) {
	eng := NewSeeded(8, DefaultOptions())

	tests := []struct {
		name   string
		grid   Grid
		gained int
	}{
		{"two 2s give 4", Grid{{2, 2, 0, 0}}, 4},
		{"two 512s give 1024", Grid{{512, 512, 0, 0}}, 1024},
		{"merges are summed", Grid{{2, 2, 4, 4}, {8, 8, 0, 0}, {0, 16, 0, 16}}, 4 + 8 + 16 + 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := eng.Move(tt.grid, 10, Left)
			if res.Gained != tt.gained {
				t.Errorf("gained = %d, want %d", res.Gained, tt.gained)
			}
			if res.Score != 10+tt.gained {
				t.Errorf("score = %d, want %d", res.Score, 10+tt.gained)
			}
		})
	}
}

func TestMoveReportsWin(t *testing.T) {
	eng := NewSeeded(4, DefaultOptions())
	res := eng.Move(Grid{{1024, 1024, 0, 0}}, 0, Right)

	if !res.Won {
		t.Error("merging two 1024s should report won")
	}
	if res.Grid[0][3] != 2048 {
		t.Errorf("expected 2048 at (0,3), got\n%v", res.Grid)
	}
}

func TestValidate(t *testing.T) {
	if err := (Grid{{2, 4, 0, 2048}, {65536}}).Validate(); err != nil {
		t.Errorf("Validate on a legal grid: %v", err)
	}

	for _, v := range []int{1, 3, 6, -2, 100} {
		g := Grid{{0, 0, v, 0}}
		err := g.Validate()
		if !errors.Is(err, ErrInvalidTile) {
			t.Errorf("Validate with %d = %v, want ErrInvalidTile", v, err)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, dir := range Directions {
		got, err := ParseDirection(dir.String())
		if err != nil || got != dir {
			t.Errorf("ParseDirection(%q) = %v, %v", dir.String(), got, err)
		}
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("ParseDirection should reject unknown names")
	}
}

func TestParseGrid(t *testing.T) {
	got, err := ParseGrid(" 2,2,0,0 / . 4 . 8 /0,0,0,0/1024,1024,., 2 ")
	if err != nil {
		t.Fatalf("ParseGrid() failed: %v", err)
	}
	want := Grid{
		{2, 2, 0, 0},
		{0, 4, 0, 8},
		{0, 0, 0, 0},
		{1024, 1024, 0, 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}

	tests := []string{
		"2,2,0,0/0,0,0,0/0,0,0,0",
		"2,2,0/0,0,0,0/0,0,0,0/0,0,0,0",
		"2,x,0,0/0,0,0,0/0,0,0,0/0,0,0,0",
		"3,0,0,0/0,0,0,0/0,0,0,0/0,0,0,0",
	}
	for _, in := range tests {
		if _, err := ParseGrid(in); err == nil {
			t.Errorf("ParseGrid(%q) succeeded, want error", in)
		}
	}
	if _, err := ParseGrid("3,0,0,0/0,0,0,0/0,0,0,0/0,0,0,0"); !errors.Is(err, ErrInvalidTile) {
		t.Errorf("ParseGrid with 3 = %v, want ErrInvalidTile", err)
	}
}
