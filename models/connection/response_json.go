package connection

import (
	mb "github.com/Numeratus/Battleship/models/battleship"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespCreateGame struct {
	GameUuid   string `json:"game_uuid"`
	PlayerUuid string `json:"player_uuid"`
	GridSize   int    `json:"grid_size"`
	ShipSizes  []int  `json:"ship_sizes"`
}

type RespPlaceShip struct {
	Positions    []mb.Coordinates `json:"positions"`
	PendingSizes []int            `json:"pending_sizes"`
	FleetReady   bool             `json:"fleet_ready"`
}

// Reveal of the whole randomly placed fleet, one position list
// per ship, for the owning side's rendering.
type RespPlaceFleetRandom struct {
	ShipPositions [][]mb.Coordinates `json:"ship_positions"`
}

type RespShot struct {
	Coord             mb.Coordinates   `json:"coord"`
	PositionState     uint8            `json:"position_state"`
	ShipSunk          bool             `json:"ship_sunk"`
	SunkShipPositions []mb.Coordinates `json:"sunk_ship_positions,omitempty"`
}

// One full round: the human shot and, unless the human just won,
// the machine's reply.
type RespAttack struct {
	PlayerShot  RespShot  `json:"player_shot"`
	MachineShot *RespShot `json:"machine_shot,omitempty"`
	GameOver    bool      `json:"game_over"`
	MatchStatus int       `json:"match_status"`
}

type RespEndGame struct {
	PlayerMatchStatus int `json:"player_match_status"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
