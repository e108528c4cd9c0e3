package battleship

import "testing"

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		gridSize int
		expected Coordinates
		ok       bool
	}{
		{name: "top left", text: "A1", gridSize: 5, expected: Coordinates{0, 0}, ok: true},
		{name: "mid board", text: "C4", gridSize: 5, expected: Coordinates{2, 3}, ok: true},
		{name: "lowercase accepted", text: "b3", gridSize: 5, expected: Coordinates{1, 2}, ok: true},
		{name: "bottom right", text: "E5", gridSize: 5, expected: Coordinates{4, 4}, ok: true},
		{name: "two digit column", text: "A10", gridSize: 5, ok: false},
		{name: "row letter out of range", text: "F1", gridSize: 5, ok: false},
		{name: "column zero", text: "A0", gridSize: 5, ok: false},
		{name: "reversed", text: "1A", gridSize: 5, ok: false},
		{name: "too short", text: "A", gridSize: 5, ok: false},
		{name: "empty", text: "", gridSize: 5, ok: false},
		{name: "garbage", text: "hello", gridSize: 5, ok: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			coord, ok := ParseCoordinates(test.text, test.gridSize)
			if ok != test.ok {
				t.Fatalf("expected ok=%v, got %v", test.ok, ok)
			}
			if ok && coord != test.expected {
				t.Fatalf("expected %v, got %v", test.expected, coord)
			}
		})
	}
}

func TestCoordinatesString(t *testing.T) {
	if s := NewCoordinates(0, 0).String(); s != "A1" {
		t.Fatalf("expected A1, got %s", s)
	}
	if s := NewCoordinates(2, 3).String(); s != "C4" {
		t.Fatalf("expected C4, got %s", s)
	}
}

func TestNeighbors(t *testing.T) {
	tests := []struct {
		name     string
		coord    Coordinates
		gridSize int
		expected int
	}{
		{name: "center has four", coord: Coordinates{1, 1}, gridSize: 3, expected: 4},
		{name: "corner has two", coord: Coordinates{0, 0}, gridSize: 3, expected: 2},
		{name: "edge has three", coord: Coordinates{0, 1}, gridSize: 3, expected: 3},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			neighbors := test.coord.Neighbors(test.gridSize)
			if len(neighbors) != test.expected {
				t.Fatalf("expected %d neighbors, got %d", test.expected, len(neighbors))
			}
			for _, n := range neighbors {
				if !n.InBounds(test.gridSize) {
					t.Fatalf("neighbor out of bounds: %v", n)
				}
			}
		})
	}
}
