package battleship

import (
	"fmt"
	"strconv"
	"strings"
)

type Coordinates struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewCoordinates(row, col int) Coordinates {
	return Coordinates{Row: row, Col: col}
}

// Renders the coordinate in the "A1" form used in
// user facing reports. Row maps to the letter, column
// to the 1-based number.
func (c Coordinates) String() string {
	return fmt.Sprintf("%c%d", 'A'+rune(c.Row), c.Col+1)
}

func (c Coordinates) InBounds(gridSize int) bool {
	return c.Row >= 0 && c.Row < gridSize && c.Col >= 0 && c.Col < gridSize
}

// Axis-aligned neighbors of c that fall inside the grid,
// in up, down, left, right order.
func (c Coordinates) Neighbors(gridSize int) []Coordinates {
	candidates := []Coordinates{
		{Row: c.Row - 1, Col: c.Col},
		{Row: c.Row + 1, Col: c.Col},
		{Row: c.Row, Col: c.Col - 1},
		{Row: c.Row, Col: c.Col + 1},
	}

	neighbors := make([]Coordinates, 0, 4)
	for _, n := range candidates {
		if n.InBounds(gridSize) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// ParseCoordinates converts coordinate text like "A1" into grid
// indexes. The letter selects the row, the number the 1-based
// column. Malformed or out-of-range text yields ok=false; the
// caller re-prompts, so no error value is produced here.
func ParseCoordinates(text string, gridSize int) (Coordinates, bool) {
	text = strings.ToUpper(strings.TrimSpace(text))
	if len(text) < 2 {
		return Coordinates{}, false
	}

	rowRune := text[0]
	if rowRune < 'A' || rowRune >= 'A'+byte(gridSize) {
		return Coordinates{}, false
	}

	col, err := strconv.Atoi(text[1:])
	if err != nil {
		return Coordinates{}, false
	}
	col--

	coord := Coordinates{Row: int(rowRune - 'A'), Col: col}
	if !coord.InBounds(gridSize) {
		return Coordinates{}, false
	}
	return coord, true
}
