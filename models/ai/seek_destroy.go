package ai

import (
	"math/rand"

	cerr "github.com/Numeratus/Battleship/internal/error"
	mb "github.com/Numeratus/Battleship/models/battleship"
)

// SeekAndDestroy shoots at random until it hits, then works
// through the neighbors of each hit. Follow-up candidates go on a
// LIFO stack, so the most recent hit is investigated first.
type SeekAndDestroy struct {
	gridSize int
	rng      *rand.Rand
	shots    map[mb.Coordinates]bool
	targets  []mb.Coordinates
}

var _ Strategy = (*SeekAndDestroy)(nil)

func NewSeekAndDestroy(gridSize int, rng *rand.Rand) *SeekAndDestroy {
	return &SeekAndDestroy{
		gridSize: gridSize,
		rng:      rng,
		shots:    make(map[mb.Coordinates]bool, gridSize*gridSize),
		targets:  make([]mb.Coordinates, 0, 4),
	}
}

func (sd *SeekAndDestroy) ChooseTarget() (mb.Coordinates, error) {
	for len(sd.targets) > 0 {
		coord := sd.targets[len(sd.targets)-1]
		sd.targets = sd.targets[:len(sd.targets)-1]

		if !sd.shots[coord] {
			sd.shots[coord] = true
			return coord, nil
		}
	}

	// Queue empty, fall back to random selection.
	pool := untargetedPool(sd.gridSize, sd.shots)
	if len(pool) == 0 {
		return mb.Coordinates{}, cerr.ErrBoardExhausted()
	}

	coord := pool[sd.rng.Intn(len(pool))]
	sd.shots[coord] = true
	return coord, nil
}

// ProcessResult pushes the in-bounds neighbors of a hit in random
// order onto the stack. Misses change nothing.
func (sd *SeekAndDestroy) ProcessResult(coord mb.Coordinates, hit bool) {
	if !hit {
		return
	}

	neighbors := coord.Neighbors(sd.gridSize)
	sd.rng.Shuffle(len(neighbors), func(i, j int) {
		neighbors[i], neighbors[j] = neighbors[j], neighbors[i]
	})
	sd.targets = append(sd.targets, neighbors...)
}
