package ai

import (
	"math/rand"

	cerr "github.com/Numeratus/Battleship/internal/error"
	mb "github.com/Numeratus/Battleship/models/battleship"
)

// ProbabilisticPhased is the hard difficulty: a two-phase state
// machine. While hunting it restricts itself to checkerboard
// parity cells — every ship of length two or more covers at least
// one cell with an even row+column sum, so half the board suffices
// to find every ship. A hit switches it to targeting, where it
// drains a FIFO queue of neighbor candidates before hunting again.
type ProbabilisticPhased struct {
	gridSize int
	rng      *rand.Rand
	hunting  bool
	shots    map[mb.Coordinates]bool
	targets  []mb.Coordinates
}

var _ Strategy = (*ProbabilisticPhased)(nil)

func NewProbabilisticPhased(gridSize int, rng *rand.Rand) *ProbabilisticPhased {
	return &ProbabilisticPhased{
		gridSize: gridSize,
		rng:      rng,
		hunting:  true,
		shots:    make(map[mb.Coordinates]bool, gridSize*gridSize),
		targets:  make([]mb.Coordinates, 0, 4),
	}
}

func (pp *ProbabilisticPhased) IsHunting() bool {
	return pp.hunting
}

func (pp *ProbabilisticPhased) ChooseTarget() (mb.Coordinates, error) {
	if pp.hunting {
		return pp.huntTarget()
	}

	// Targeting phase: drain queued candidates, skipping stale ones.
	for len(pp.targets) > 0 {
		coord := pp.targets[0]
		pp.targets = pp.targets[1:]

		if !pp.shots[coord] {
			pp.shots[coord] = true
			return coord, nil
		}
	}

	// Queue exhausted; the same call flips back to hunting and
	// produces a hunting pick.
	pp.hunting = true
	return pp.huntTarget()
}

func (pp *ProbabilisticPhased) huntTarget() (mb.Coordinates, error) {
	pool := make([]mb.Coordinates, 0, pp.gridSize*pp.gridSize/2)
	for r := 0; r < pp.gridSize; r++ {
		for c := 0; c < pp.gridSize; c++ {
			coord := mb.NewCoordinates(r, c)
			if (r+c)%2 == 0 && !pp.shots[coord] {
				pool = append(pool, coord)
			}
		}
	}

	if len(pool) == 0 {
		// Checkerboard exhausted, widen to the full board.
		pool = untargetedPool(pp.gridSize, pp.shots)
	}
	if len(pool) == 0 {
		return mb.Coordinates{}, cerr.ErrBoardExhausted()
	}

	coord := pool[pp.rng.Intn(len(pool))]
	pp.shots[coord] = true
	return coord, nil
}

// ProcessResult enqueues the cross neighbors of a hit in fixed
// right, left, down, up order and enters the targeting phase. A
// hit while already targeting enqueues the same way and stays in
// targeting.
func (pp *ProbabilisticPhased) ProcessResult(coord mb.Coordinates, hit bool) {
	if !hit {
		return
	}

	pp.hunting = false
	neighbors := []mb.Coordinates{
		{Row: coord.Row, Col: coord.Col + 1},
		{Row: coord.Row, Col: coord.Col - 1},
		{Row: coord.Row + 1, Col: coord.Col},
		{Row: coord.Row - 1, Col: coord.Col},
	}
	for _, n := range neighbors {
		if n.InBounds(pp.gridSize) && !pp.shots[n] {
			pp.targets = append(pp.targets, n)
		}
	}
}
