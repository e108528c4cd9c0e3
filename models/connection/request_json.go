package connection

type ReqCreateGame struct {
	GameDifficulty int    `json:"game_difficulty"`
	BoardPreset    string `json:"board_preset"`
}

// Interactive placement: coordinate text like "A1" plus an
// orientation letter. The size comes from the next pending ship
// of the preset, in order.
type ReqPlaceShip struct {
	GameUuid    string `json:"game_uuid"`
	Coordinates string `json:"coordinates"`
	Orientation string `json:"orientation"`
}

type ReqPlaceFleetRandom struct {
	GameUuid string `json:"game_uuid"`
}

type ReqAttack struct {
	GameUuid string `json:"game_uuid"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
}

type ReqRematch struct {
	GameUuid string `json:"game_uuid"`
}
