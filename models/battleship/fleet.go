package battleship

import (
	"math/rand"

	cerr "github.com/Numeratus/Battleship/internal/error"
)

const (
	OrientationHorizontal uint8 = iota
	OrientationVertical
)

func ParseOrientation(text string) (uint8, error) {
	switch text {
	case "h":
		return OrientationHorizontal, nil
	case "v":
		return OrientationVertical, nil
	default:
		return 0, cerr.ErrInvalidOrientation(text)
	}
}

// CalcPositions computes the footprint of a ship from its start
// coordinate. Horizontal ships occupy consecutive columns on the
// start row, vertical ships consecutive rows on the start column.
func CalcPositions(start Coordinates, size int, orientation uint8, gridSize int) ([]Coordinates, error) {
	if orientation == OrientationHorizontal {
		if start.Col < 0 || start.Row < 0 || start.Col+size > gridSize || start.Row >= gridSize {
			return nil, cerr.ErrShipOutOfGridBound(start.Row, start.Col, size)
		}

		positions := make([]Coordinates, 0, size)
		for i := 0; i < size; i++ {
			positions = append(positions, NewCoordinates(start.Row, start.Col+i))
		}
		return positions, nil
	}

	if start.Row < 0 || start.Col < 0 || start.Row+size > gridSize || start.Col >= gridSize {
		return nil, cerr.ErrShipOutOfGridBound(start.Row, start.Col, size)
	}

	positions := make([]Coordinates, 0, size)
	for i := 0; i < size; i++ {
		positions = append(positions, NewCoordinates(start.Row+i, start.Col))
	}
	return positions, nil
}

// Fleet owns the ships of one side. Position disjointness is
// enforced at placement time through the occupied set; Ship itself
// never checks it.
type Fleet struct {
	gridSize     int
	ships        []*Ship
	occupied     map[Coordinates]bool
	pendingSizes []int
}

func NewFleet(gridSize int, shipSizes []int) *Fleet {
	pending := make([]int, len(shipSizes))
	copy(pending, shipSizes)

	return &Fleet{
		gridSize:     gridSize,
		ships:        make([]*Ship, 0, len(shipSizes)),
		occupied:     make(map[Coordinates]bool),
		pendingSizes: pending,
	}
}

// NewRandomFleet places every ship of the fleet at random.
// Sampling retries until each footprint is in bounds and
// non-overlapping, which is practically immediate for the
// supported presets.
func NewRandomFleet(gridSize int, shipSizes []int, rng *rand.Rand) *Fleet {
	fleet := NewFleet(gridSize, shipSizes)
	fleet.PlaceRemainingRandom(rng)
	return fleet
}

func (f *Fleet) GridSize() int {
	return f.gridSize
}

func (f *Fleet) Ships() []*Ship {
	return f.ships
}

func (f *Fleet) PendingSizes() []int {
	return f.pendingSizes
}

func (f *Fleet) IsComplete() bool {
	return len(f.pendingSizes) == 0
}

func (f *Fleet) NextShipSize() (int, error) {
	if len(f.pendingSizes) == 0 {
		return 0, cerr.ErrAllShipsPlaced()
	}
	return f.pendingSizes[0], nil
}

// PlaceNextShip places the next pending ship of the fleet from a
// start coordinate and orientation. On any rejection the fleet is
// left unchanged and the caller retries with new input.
func (f *Fleet) PlaceNextShip(start Coordinates, orientation uint8) (*Ship, error) {
	size, err := f.NextShipSize()
	if err != nil {
		return nil, err
	}

	ship, err := f.placeShip(start, size, orientation)
	if err != nil {
		return nil, err
	}

	f.pendingSizes = f.pendingSizes[1:]
	return ship, nil
}

func (f *Fleet) placeShip(start Coordinates, size int, orientation uint8) (*Ship, error) {
	positions, err := CalcPositions(start, size, orientation, f.gridSize)
	if err != nil {
		return nil, err
	}

	for _, p := range positions {
		if f.occupied[p] {
			return nil, cerr.ErrShipOverlap(p.Row, p.Col)
		}
	}

	for _, p := range positions {
		f.occupied[p] = true
	}

	ship := NewShip(size, positions)
	f.ships = append(f.ships, ship)
	return ship, nil
}

// PlaceRemainingRandom finishes the fleet with random draws of
// start coordinate and orientation for every still-pending ship.
func (f *Fleet) PlaceRemainingRandom(rng *rand.Rand) {
	for len(f.pendingSizes) > 0 {
		size := f.pendingSizes[0]

		for {
			orientation := OrientationHorizontal
			if rng.Intn(2) == 1 {
				orientation = OrientationVertical
			}
			start := NewCoordinates(rng.Intn(f.gridSize), rng.Intn(f.gridSize))

			if _, err := f.placeShip(start, size, orientation); err == nil {
				break
			}
		}

		f.pendingSizes = f.pendingSizes[1:]
	}
}

// CheckHit applies the attack to every ship of the fleet and
// reports the ship that was struck, nil on a miss. Positions are
// disjoint, so at most one ship can report a hit.
func (f *Fleet) CheckHit(target Coordinates) *Ship {
	var hitShip *Ship
	for _, sh := range f.ships {
		if sh.CheckHit(target) {
			hitShip = sh
		}
	}
	return hitShip
}

func (f *Fleet) AllSunk() bool {
	if len(f.ships) == 0 {
		return false
	}

	for _, sh := range f.ships {
		if !sh.IsSunk() {
			return false
		}
	}
	return true
}

// OccupiedAt reports ship occupancy for reveal rendering of the
// owning side.
func (f *Fleet) OccupiedAt(c Coordinates) bool {
	return f.occupied[c]
}
