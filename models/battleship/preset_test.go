package battleship

import (
	"reflect"
	"testing"
)

func TestPresetByName(t *testing.T) {
	tests := []struct {
		name          string
		preset        string
		gridSize      int
		shipSizes     []int
		expectErr     bool
	}{
		{name: "small", preset: BoardPresetSmall, gridSize: 5, shipSizes: []int{2, 2, 3}},
		{name: "medium", preset: BoardPresetMedium, gridSize: 6, shipSizes: []int{2, 2, 2, 3}},
		{name: "big", preset: BoardPresetBig, gridSize: 8, shipSizes: []int{2, 2, 2, 3, 4}},
		{name: "unknown", preset: "gigantic", expectErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			preset, err := PresetByName(test.preset)
			if test.expectErr {
				if err == nil {
					t.Fatal("expected error for unknown preset")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}

			if preset.GridSize != test.gridSize {
				t.Fatalf("expected grid size %d, got %d", test.gridSize, preset.GridSize)
			}
			if !reflect.DeepEqual(preset.ShipSizes, test.shipSizes) {
				t.Fatalf("expected ship sizes %v, got %v", test.shipSizes, preset.ShipSizes)
			}
		})
	}
}
