package battleship

const (
	PositionStateUnknown uint8 = iota
	PositionStateMiss
	PositionStateHit
)

type Grid [][]uint8

// Creates a new default grid.
// All indexes are zero/PositionStateUnknown.
func NewGrid(gridSize int) Grid {
	grid := make(Grid, gridSize)

	for i := 0; i < gridSize; i++ {
		grid[i] = make([]uint8, gridSize)
	}
	return grid
}

func (g Grid) At(c Coordinates) uint8 {
	return g[c.Row][c.Col]
}

func (g Grid) IsTargeted(c Coordinates) bool {
	return g[c.Row][c.Col] != PositionStateUnknown
}

func (g Grid) Update(c Coordinates, hit bool) {
	if hit {
		g[c.Row][c.Col] = PositionStateHit
		return
	}
	g[c.Row][c.Col] = PositionStateMiss
}
