package game

import (
	"time"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// popDuration is the highlight length of a freshly spawned tile.
const popDuration = 200 * time.Millisecond

// popEffect highlights the tile spawned by the last move for a few ticks.
// A nil *popEffect means nothing is highlighted.
type popEffect struct {
	pos   engine.Pos
	ticks int
}

func newPopEffect(pos engine.Pos, ticks int) *popEffect {
	return &popEffect{pos: pos, ticks: ticks}
}

func (p *popEffect) step() {
	if p != nil {
		p.ticks--
	}
}

func (p *popEffect) done() bool {
	return p != nil && p.ticks <= 0
}

func (p *popEffect) at(row, col int) bool {
	return p != nil && p.pos.Row == row && p.pos.Col == col
}
