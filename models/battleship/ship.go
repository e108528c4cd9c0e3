package battleship

type Ship struct {
	size      int
	positions []Coordinates
	hits      map[Coordinates]bool
}

func NewShip(size int, positions []Coordinates) *Ship {
	return &Ship{
		size:      size,
		positions: positions,
		hits:      make(map[Coordinates]bool, size),
	}
}

func (sh *Ship) Size() int {
	return sh.size
}

func (sh *Ship) Positions() []Coordinates {
	return sh.positions
}

func (sh *Ship) Occupies(target Coordinates) bool {
	for _, p := range sh.positions {
		if p == target {
			return true
		}
	}
	return false
}

// Registers an attack against the ship. The hit is recorded
// only when target is one of the ship positions; a miss leaves
// the ship untouched.
func (sh *Ship) CheckHit(target Coordinates) bool {
	if sh.Occupies(target) {
		sh.hits[target] = true
		return true
	}
	return false
}

func (sh *Ship) IsSunk() bool {
	return len(sh.hits) == sh.size
}
