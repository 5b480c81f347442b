package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Size is the board dimension.
const Size = 4

// WinTile is the tile value that latches the won state.
const WinTile = 2048

// ErrInvalidTile is returned by Validate for cells that are not empty and not a power of two >= 2.
var ErrInvalidTile = errors.New("invalid tile value")

// Grid is a 4x4 board. Zero means empty. Grid is an array, so assignment copies it;
// every engine operation returns a new Grid instead of mutating its argument.
type Grid [Size][Size]int

// Row is a single line of the board in canonical (left-moving) orientation.
type Row [Size]int

// Pos addresses a cell.
type Pos struct {
	Row, Col int
}

// Tile is a placed value.
type Tile struct {
	Pos
	Value int
}

// Direction represents a move direction.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists every direction in a stable order.
var Directions = [...]Direction{Left, Right, Up, Down}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection converts a name ("left", "up", ...) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	}
	return 0, fmt.Errorf("engine: unknown direction %q", s)
}

// EmptyCells returns the positions of all empty cells in row-major order.
func (g Grid) EmptyCells() []Pos {
	var cells []Pos
	for r := range Size {
		for c := range Size {
			if g[r][c] == 0 {
				cells = append(cells, Pos{Row: r, Col: c})
			}
		}
	}
	return cells
}

// IsFull reports whether no cell is empty.
func (g Grid) IsFull() bool {
	for r := range Size {
		for c := range Size {
			if g[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// MaxTile returns the highest tile value on the board.
func (g Grid) MaxTile() int {
	maxVal := 0
	for r := range Size {
		for c := range Size {
			if g[r][c] > maxVal {
				maxVal = g[r][c]
			}
		}
	}
	return maxVal
}

// HasTile reports whether any cell equals value.
func (g Grid) HasTile(value int) bool {
	for r := range Size {
		for c := range Size {
			if g[r][c] == value {
				return true
			}
		}
	}
	return false
}

// Validate checks that every non-empty cell holds a power of two >= 2.
func (g Grid) Validate() error {
	for r := range Size {
		for c := range Size {
			v := g[r][c]
			if v == 0 {
				continue
			}
			if v < 2 || v&(v-1) != 0 {
				return fmt.Errorf("engine: cell (%d,%d) holds %d: %w", r, c, v, ErrInvalidTile)
			}
		}
	}
	return nil
}

// ParseGrid reads a board written row by row: rows separated by "/", cells by
// commas or spaces, "." or "0" for empty. "2,2,0,0/0,0,0,0/0,0,4,0/0,0,0,0"
// is a valid board. The result is validated.
func ParseGrid(s string) (Grid, error) {
	var g Grid
	rows := strings.Split(strings.TrimSpace(s), "/")
	if len(rows) != Size {
		return Grid{}, fmt.Errorf("engine: board has %d rows, want %d", len(rows), Size)
	}
	for r, row := range rows {
		cells := strings.FieldsFunc(row, func(c rune) bool { return c == ',' || c == ' ' })
		if len(cells) != Size {
			return Grid{}, fmt.Errorf("engine: board row %d has %d cells, want %d", r, len(cells), Size)
		}
		for c, cell := range cells {
			if cell == "." {
				continue
			}
			v, err := strconv.Atoi(cell)
			if err != nil {
				return Grid{}, fmt.Errorf("engine: board cell (%d,%d): %w", r, c, err)
			}
			g[r][c] = v
		}
	}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// String renders the grid as four lines of right-aligned values, "." for empty cells.
func (g Grid) String() string {
	var sb strings.Builder
	for r := range Size {
		for c := range Size {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if g[r][c] == 0 {
				sb.WriteString(fmt.Sprintf("%5s", "."))
			} else {
				sb.WriteString(fmt.Sprintf("%5d", g[r][c]))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RotateCW returns the grid turned 90 degrees clockwise.
func RotateCW(g Grid) Grid {
	var out Grid
	for r := range Size {
		for c := range Size {
			out[c][Size-1-r] = g[r][c]
		}
	}
	return out
}

// RotateCCW returns the grid turned 90 degrees counter-clockwise.
func RotateCCW(g Grid) Grid {
	var out Grid
	for r := range Size {
		for c := range Size {
			out[Size-1-c][r] = g[r][c]
		}
	}
	return out
}

// rotate applies n clockwise quarter turns.
func rotate(g Grid, n int) Grid {
	for range n % 4 {
		g = RotateCW(g)
	}
	return g
}
