package ai

import (
	"math/rand"

	cerr "github.com/Numeratus/Battleship/internal/error"
	mb "github.com/Numeratus/Battleship/models/battleship"
)

// RandomHunter draws uniformly at random from the cells it has
// not shot yet. It ignores feedback entirely, which makes it the
// easy difficulty.
type RandomHunter struct {
	gridSize int
	rng      *rand.Rand
	shots    map[mb.Coordinates]bool
}

var _ Strategy = (*RandomHunter)(nil)

func NewRandomHunter(gridSize int, rng *rand.Rand) *RandomHunter {
	return &RandomHunter{
		gridSize: gridSize,
		rng:      rng,
		shots:    make(map[mb.Coordinates]bool, gridSize*gridSize),
	}
}

func (rh *RandomHunter) ChooseTarget() (mb.Coordinates, error) {
	pool := untargetedPool(rh.gridSize, rh.shots)
	if len(pool) == 0 {
		return mb.Coordinates{}, cerr.ErrBoardExhausted()
	}

	coord := pool[rh.rng.Intn(len(pool))]
	rh.shots[coord] = true
	return coord, nil
}

func (rh *RandomHunter) ProcessResult(coord mb.Coordinates, hit bool) {}
