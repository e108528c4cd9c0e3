package ai

import (
	"math/rand"
	"testing"

	mb "github.com/Numeratus/Battleship/models/battleship"
)

func testRng() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestNewStrategy(t *testing.T) {
	tests := []struct {
		name       string
		difficulty int
		expectErr  bool
	}{
		{name: "easy", difficulty: mb.GameDifficultyEasy},
		{name: "medium", difficulty: mb.GameDifficultyMedium},
		{name: "hard", difficulty: mb.GameDifficultyHard},
		{name: "invalid difficulty", difficulty: 99, expectErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			strategy, err := NewStrategy(test.difficulty, 5, testRng())
			if test.expectErr {
				if err == nil {
					t.Fatal("expected error for invalid difficulty")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if strategy == nil {
				t.Fatal("expected a strategy instance")
			}
		})
	}

	if _, ok := mustStrategy(t, mb.GameDifficultyEasy).(*RandomHunter); !ok {
		t.Fatal("easy must map to RandomHunter")
	}
	if _, ok := mustStrategy(t, mb.GameDifficultyMedium).(*SeekAndDestroy); !ok {
		t.Fatal("medium must map to SeekAndDestroy")
	}
	if _, ok := mustStrategy(t, mb.GameDifficultyHard).(*ProbabilisticPhased); !ok {
		t.Fatal("hard must map to ProbabilisticPhased")
	}
}

func mustStrategy(t *testing.T, difficulty int) Strategy {
	t.Helper()
	strategy, err := NewStrategy(difficulty, 5, testRng())
	if err != nil {
		t.Fatal(err)
	}
	return strategy
}

func TestRandomHunterCoverage(t *testing.T) {
	gridSize := 3
	rh := NewRandomHunter(gridSize, testRng())

	seen := make(map[mb.Coordinates]bool)
	for i := 0; i < gridSize*gridSize; i++ {
		coord, err := rh.ChooseTarget()
		if err != nil {
			t.Fatalf("unexpected error on call %d: %v", i, err)
		}
		if !coord.InBounds(gridSize) {
			t.Fatalf("coordinate out of bounds: %v", coord)
		}
		if seen[coord] {
			t.Fatalf("coordinate returned twice: %v", coord)
		}
		seen[coord] = true
	}

	if len(seen) != gridSize*gridSize {
		t.Fatalf("expected %d distinct coordinates, got %d", gridSize*gridSize, len(seen))
	}

	if _, err := rh.ChooseTarget(); err == nil {
		t.Fatal("expected board exhausted error after full coverage")
	}
}

func TestRandomHunterProcessResultNoOp(t *testing.T) {
	rh := NewRandomHunter(3, testRng())
	rh.ProcessResult(mb.NewCoordinates(1, 1), true)

	if len(rh.shots) != 0 {
		t.Fatal("process result must not mutate random hunter state")
	}
}

func TestSeekAndDestroyNeighborEnqueue(t *testing.T) {
	sd := NewSeekAndDestroy(3, testRng())
	sd.ProcessResult(mb.NewCoordinates(1, 1), true)

	expected := map[mb.Coordinates]bool{
		{Row: 0, Col: 1}: true,
		{Row: 2, Col: 1}: true,
		{Row: 1, Col: 0}: true,
		{Row: 1, Col: 2}: true,
	}

	if len(sd.targets) != len(expected) {
		t.Fatalf("expected %d queued targets, got %d", len(expected), len(sd.targets))
	}
	for _, coord := range sd.targets {
		if !expected[coord] {
			t.Fatalf("unexpected queued target: %v", coord)
		}
		delete(expected, coord)
	}
}

func TestSeekAndDestroyCornerEnqueue(t *testing.T) {
	sd := NewSeekAndDestroy(3, testRng())
	sd.ProcessResult(mb.NewCoordinates(0, 0), true)

	if len(sd.targets) != 2 {
		t.Fatalf("corner hit must queue 2 in-bounds neighbors, got %d", len(sd.targets))
	}
}

func TestSeekAndDestroyFollowsUpHit(t *testing.T) {
	sd := NewSeekAndDestroy(3, testRng())
	hit := mb.NewCoordinates(1, 1)
	sd.shots[hit] = true
	sd.ProcessResult(hit, true)

	coord, err := sd.ChooseTarget()
	if err != nil {
		t.Fatal(err)
	}

	neighbors := hit.Neighbors(3)
	isNeighbor := false
	for _, n := range neighbors {
		if n == coord {
			isNeighbor = true
		}
	}
	if !isNeighbor {
		t.Fatalf("after a hit the next target must neighbor the hit, got %v", coord)
	}
}

func TestSeekAndDestroyMissLeavesQueue(t *testing.T) {
	sd := NewSeekAndDestroy(3, testRng())
	sd.ProcessResult(mb.NewCoordinates(1, 1), false)

	if len(sd.targets) != 0 {
		t.Fatal("a miss must not queue follow-up targets")
	}
}

func TestSeekAndDestroyRandomFallback(t *testing.T) {
	gridSize := 2
	sd := NewSeekAndDestroy(gridSize, testRng())

	seen := make(map[mb.Coordinates]bool)
	for i := 0; i < gridSize*gridSize; i++ {
		coord, err := sd.ChooseTarget()
		if err != nil {
			t.Fatal(err)
		}
		if seen[coord] {
			t.Fatalf("coordinate returned twice: %v", coord)
		}
		seen[coord] = true
	}

	if _, err := sd.ChooseTarget(); err == nil {
		t.Fatal("expected board exhausted error")
	}
}

func TestProbabilisticPhasedHuntingParity(t *testing.T) {
	gridSize := 4
	pp := NewProbabilisticPhased(gridSize, testRng())

	// A 4x4 board has 8 parity-even cells; every hunting pick
	// before the pool empties must land on one of them.
	for i := 0; i < 8; i++ {
		coord, err := pp.ChooseTarget()
		if err != nil {
			t.Fatal(err)
		}
		if (coord.Row+coord.Col)%2 != 0 {
			t.Fatalf("hunting pick off the checkerboard: %v", coord)
		}
	}

	// Pool exhausted, fallback covers the rest of the board.
	for i := 0; i < 8; i++ {
		coord, err := pp.ChooseTarget()
		if err != nil {
			t.Fatal(err)
		}
		if (coord.Row+coord.Col)%2 == 0 {
			t.Fatalf("parity cell should already be shot: %v", coord)
		}
	}

	if _, err := pp.ChooseTarget(); err == nil {
		t.Fatal("expected board exhausted error")
	}
}

func TestProbabilisticPhasedTransition(t *testing.T) {
	pp := NewProbabilisticPhased(4, testRng())

	pp.ProcessResult(mb.NewCoordinates(1, 1), true)
	if pp.IsHunting() {
		t.Fatal("a hit must switch the strategy to targeting")
	}

	// Fixed enqueue order: right, left, down, up.
	expected := []mb.Coordinates{
		{Row: 1, Col: 2},
		{Row: 1, Col: 0},
		{Row: 2, Col: 1},
		{Row: 0, Col: 1},
	}

	for i, want := range expected {
		coord, err := pp.ChooseTarget()
		if err != nil {
			t.Fatal(err)
		}
		if coord != want {
			t.Fatalf("queue drain %d: expected %v, got %v", i, want, coord)
		}
	}

	// Queue drained; the next call flips back to hunting and
	// returns a hunting-phase pick in the same call.
	coord, err := pp.ChooseTarget()
	if err != nil {
		t.Fatal(err)
	}
	if !pp.IsHunting() {
		t.Fatal("empty queue must return the strategy to hunting")
	}
	if (coord.Row+coord.Col)%2 != 0 {
		t.Fatalf("post-transition pick off the checkerboard: %v", coord)
	}
}

func TestProbabilisticPhasedHitWhileTargeting(t *testing.T) {
	pp := NewProbabilisticPhased(4, testRng())

	pp.ProcessResult(mb.NewCoordinates(1, 1), true)
	pp.ProcessResult(mb.NewCoordinates(1, 2), true)

	if pp.IsHunting() {
		t.Fatal("a hit while targeting must keep the strategy targeting")
	}
	if len(pp.targets) <= 4 {
		t.Fatal("a hit while targeting must still enqueue its neighbors")
	}
}

func TestProbabilisticPhasedMissKeepsState(t *testing.T) {
	pp := NewProbabilisticPhased(4, testRng())

	pp.ProcessResult(mb.NewCoordinates(0, 0), false)
	if !pp.IsHunting() || len(pp.targets) != 0 {
		t.Fatal("a miss must not change phase or queue")
	}

	pp.ProcessResult(mb.NewCoordinates(1, 1), true)
	queued := len(pp.targets)
	pp.ProcessResult(mb.NewCoordinates(3, 3), false)
	if pp.IsHunting() || len(pp.targets) != queued {
		t.Fatal("a miss while targeting must not change phase or queue")
	}
}

// Strategies must stay consistent when told about coordinates
// they never chose.
func TestProcessResultForeignCoordinate(t *testing.T) {
	gridSize := 3
	strategies := []Strategy{
		NewRandomHunter(gridSize, testRng()),
		NewSeekAndDestroy(gridSize, testRng()),
		NewProbabilisticPhased(gridSize, testRng()),
	}

	for _, strategy := range strategies {
		strategy.ProcessResult(mb.NewCoordinates(2, 2), true)
		strategy.ProcessResult(mb.NewCoordinates(0, 0), false)

		seen := make(map[mb.Coordinates]bool)
		for i := 0; i < gridSize*gridSize; i++ {
			coord, err := strategy.ChooseTarget()
			if err != nil {
				t.Fatal(err)
			}
			if seen[coord] {
				t.Fatalf("coordinate returned twice: %v", coord)
			}
			seen[coord] = true
		}
	}
}

// No strategy may ever repeat a coordinate, whatever feedback it
// receives along the way.
func TestNoSelfRepeatUnderFeedback(t *testing.T) {
	gridSize := 5
	difficulties := []int{mb.GameDifficultyEasy, mb.GameDifficultyMedium, mb.GameDifficultyHard}

	for _, difficulty := range difficulties {
		strategy, err := NewStrategy(difficulty, gridSize, testRng())
		if err != nil {
			t.Fatal(err)
		}

		feedback := rand.New(rand.NewSource(7))
		seen := make(map[mb.Coordinates]bool)
		for i := 0; i < gridSize*gridSize; i++ {
			coord, err := strategy.ChooseTarget()
			if err != nil {
				t.Fatalf("difficulty %d call %d: %v", difficulty, i, err)
			}
			if seen[coord] {
				t.Fatalf("difficulty %d repeated coordinate %v", difficulty, coord)
			}
			seen[coord] = true

			strategy.ProcessResult(coord, feedback.Intn(3) == 0)
		}

		if _, err := strategy.ChooseTarget(); err == nil {
			t.Fatalf("difficulty %d: expected board exhausted error", difficulty)
		}
	}
}
