package battleship

import (
	cerr "github.com/Numeratus/Battleship/internal/error"
)

const (
	BoardPresetSmall  = "small"
	BoardPresetMedium = "medium"
	BoardPresetBig    = "big"
)

// BoardPreset is a predefined board configuration: the grid is
// GridSize x GridSize and ShipSizes lists the lengths of the
// fleet placed on it.
type BoardPreset struct {
	Name      string `json:"name"`
	GridSize  int    `json:"grid_size"`
	ShipSizes []int  `json:"ship_sizes"`
}

var boardPresets = map[string]BoardPreset{
	BoardPresetSmall:  {Name: BoardPresetSmall, GridSize: 5, ShipSizes: []int{2, 2, 3}},
	BoardPresetMedium: {Name: BoardPresetMedium, GridSize: 6, ShipSizes: []int{2, 2, 2, 3}},
	BoardPresetBig:    {Name: BoardPresetBig, GridSize: 8, ShipSizes: []int{2, 2, 2, 3, 4}},
}

func PresetByName(name string) (BoardPreset, error) {
	preset, prs := boardPresets[name]
	if !prs {
		return BoardPreset{}, cerr.ErrInvalidBoardPreset(name)
	}
	return preset, nil
}
