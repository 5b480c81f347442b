package engine

// MergeLeft compacts a row toward index 0 and merges equal neighbours in a
// single left-to-right pass. A tile produced by a merge cannot merge again in
// the same pass, so [2,2,4,0] becomes [4,4,0,0] and [2,2,2,2] becomes [4,4,0,0].
// It returns the new row and the sum of all merged values.
func MergeLeft(row Row) (Row, int) {
	var out Row
	gained := 0
	n := 0
	merged := false // out[n-1] was produced by a merge in this pass

	for _, v := range row {
		if v == 0 {
			continue
		}
		if n > 0 && !merged && out[n-1] == v {
			out[n-1] = v * 2
			gained += out[n-1]
			merged = true
			continue
		}
		out[n] = v
		n++
		merged = false
	}

	return out, gained
}

// mergeRows applies MergeLeft to every row of g.
func mergeRows(g Grid) (Grid, int, bool) {
	var out Grid
	gained := 0
	moved := false

	for r := range Size {
		row, score := MergeLeft(Row(g[r]))
		out[r] = row
		gained += score
		if Row(g[r]) != row {
			moved = true
		}
	}

	return out, gained, moved
}

// quarterTurns is the number of clockwise turns that bring a direction's
// movement onto the canonical left move.
func quarterTurns(dir Direction) int {
	switch dir {
	case Down:
		return 1
	case Right:
		return 2
	case Up:
		return 3
	default:
		return 0
	}
}

// Slide performs the deterministic part of a move: rotate, merge left, rotate back.
// No tile is spawned. It returns the new grid, the score gained and whether any cell changed.
func Slide(g Grid, dir Direction) (Grid, int, bool) {
	turns := quarterTurns(dir)
	merged, gained, moved := mergeRows(rotate(g, turns))
	if !moved {
		return g, 0, false
	}
	return rotate(merged, 4-turns), gained, true
}

// CanMove reports whether a move in dir would change the grid.
func CanMove(g Grid, dir Direction) bool {
	_, _, moved := Slide(g, dir)
	return moved
}

// IsGameOver reports whether the grid is full and no direction changes it.
// Every direction is actually attempted; neighbour heuristics are not used.
func IsGameOver(g Grid) bool {
	if !g.IsFull() {
		return false
	}
	for _, dir := range Directions {
		if CanMove(g, dir) {
			return false
		}
	}
	return true
}
