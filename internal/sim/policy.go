package sim

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// Policy picks the order in which directions are tried for the next move.
// The first direction that changes the grid is played.
type Policy interface {
	Name() string
	Order(g engine.Grid, rng *rand.Rand) []engine.Direction
}

// RandomPolicy tries the directions in a random order.
type RandomPolicy struct{}

// Name returns "random".
func (RandomPolicy) Name() string { return "random" }

// Order returns a shuffled list of all directions.
func (RandomPolicy) Order(_ engine.Grid, rng *rand.Rand) []engine.Direction {
	dirs := engine.Directions
	rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
	return dirs[:]
}

// CornerPolicy keeps big tiles in the bottom-left corner: down and left
// first, right when stuck, up only as a last resort.
type CornerPolicy struct{}

// Name returns "corner".
func (CornerPolicy) Name() string { return "corner" }

// Order prefers whichever of down and left merges more, then right, then up.
func (CornerPolicy) Order(g engine.Grid, _ *rand.Rand) []engine.Direction {
	_, downGain, _ := engine.Slide(g, engine.Down)
	_, leftGain, _ := engine.Slide(g, engine.Left)
	if leftGain > downGain {
		return []engine.Direction{engine.Left, engine.Down, engine.Right, engine.Up}
	}
	return []engine.Direction{engine.Down, engine.Left, engine.Right, engine.Up}
}

// FixedPolicy always tries the same directions in the same order.
type FixedPolicy struct {
	Dirs []engine.Direction
}

// Name returns "order:" followed by the directions, e.g. "order:down,left".
func (p FixedPolicy) Name() string {
	names := make([]string, len(p.Dirs))
	for i, d := range p.Dirs {
		names[i] = d.String()
	}
	return orderPrefix + strings.Join(names, ",")
}

// Order returns the configured directions.
func (p FixedPolicy) Order(engine.Grid, *rand.Rand) []engine.Direction {
	return p.Dirs
}

const orderPrefix = "order:"

// Policies lists the available policy names.
var Policies = []string{"random", "corner", orderPrefix + "<dirs>"}

// ParsePolicy returns the policy with the given name. "order:down,left,right"
// builds a FixedPolicy; directions may not repeat.
func ParsePolicy(name string) (Policy, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	switch lower {
	case "random":
		return RandomPolicy{}, nil
	case "corner":
		return CornerPolicy{}, nil
	}

	list, ok := strings.CutPrefix(lower, orderPrefix)
	if !ok {
		return nil, fmt.Errorf("sim: unknown policy %q (want %s)", name, strings.Join(Policies, ", "))
	}
	var p FixedPolicy
	seen := make(map[engine.Direction]bool)
	for _, part := range strings.Split(list, ",") {
		d, err := engine.ParseDirection(part)
		if err != nil {
			return nil, fmt.Errorf("sim: policy %q: %w", name, err)
		}
		if seen[d] {
			return nil, fmt.Errorf("sim: policy %q repeats %s", name, d)
		}
		seen[d] = true
		p.Dirs = append(p.Dirs, d)
	}
	return p, nil
}
