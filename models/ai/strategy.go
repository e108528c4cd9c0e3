// Package ai implements the machine targeting strategies. Each
// difficulty maps to one strategy; all of them remember their own
// shots and never pick the same coordinate twice.
package ai

import (
	"math/rand"

	cerr "github.com/Numeratus/Battleship/internal/error"
	mb "github.com/Numeratus/Battleship/models/battleship"
)

// Strategy decides the machine's next attack coordinate and
// adapts to hit/miss feedback. One instance serves one machine
// player for one match.
type Strategy interface {
	// ChooseTarget returns a coordinate never returned before by
	// this instance and records it as targeted. When every cell
	// of the board has been shot it fails with the
	// board-exhausted error, which indicates caller misuse.
	ChooseTarget() (mb.Coordinates, error)

	// ProcessResult informs the strategy of the outcome of an
	// attack. Safe to call with coordinates the strategy never
	// chose.
	ProcessResult(coord mb.Coordinates, hit bool)
}

// NewStrategy builds the strategy for a difficulty. All
// randomness flows through rng so tests can seed it.
func NewStrategy(difficulty, gridSize int, rng *rand.Rand) (Strategy, error) {
	switch difficulty {
	case mb.GameDifficultyEasy:
		return NewRandomHunter(gridSize, rng), nil
	case mb.GameDifficultyMedium:
		return NewSeekAndDestroy(gridSize, rng), nil
	case mb.GameDifficultyHard:
		return NewProbabilisticPhased(gridSize, rng), nil
	default:
		return nil, cerr.ErrInvalidGameDifficulty()
	}
}

// untargetedPool lists every coordinate of the board not yet in
// shots, in row-major order.
func untargetedPool(gridSize int, shots map[mb.Coordinates]bool) []mb.Coordinates {
	pool := make([]mb.Coordinates, 0, gridSize*gridSize-len(shots))
	for r := 0; r < gridSize; r++ {
		for c := 0; c < gridSize; c++ {
			coord := mb.NewCoordinates(r, c)
			if !shots[coord] {
				pool = append(pool, coord)
			}
		}
	}
	return pool
}
