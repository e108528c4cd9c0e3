package api

import (
	"encoding/json"
	"math/rand"

	cerr "github.com/Numeratus/Battleship/internal/error"
	"github.com/Numeratus/Battleship/models/ai"
	mb "github.com/Numeratus/Battleship/models/battleship"
	mc "github.com/Numeratus/Battleship/models/connection"
)

type RequestHandler interface {
	HandleCreateGame(gameManager mb.GameManager, rng *rand.Rand) (*mb.Game, mc.Message[mc.RespCreateGame])
	HandlePlaceShip(game *mb.Game) mc.Message[mc.RespPlaceShip]
	HandlePlaceFleetRandom(game *mb.Game) mc.Message[mc.RespPlaceFleetRandom]
	HandleAttack(game *mb.Game) mc.Message[mc.RespAttack]
	HandleRematch(game *mb.Game, rng *rand.Rand) mc.Message[mc.NoPayload]
}

// Every incoming valid request has this structure. The payload is
// dispatched to one of the RequestHandler methods by the message
// code.
type Request struct {
	payload []byte
}

var _ RequestHandler = (*Request)(nil)

func NewRequest(payload ...[]byte) *Request {
	req := Request{}
	if len(payload) != 0 {
		req.payload = payload[0]
	}
	return &req
}

// HandleCreateGame builds a new human-vs-machine game: validated
// difficulty and preset, a fresh strategy for the machine player
// and a randomly placed machine fleet.
func (r *Request) HandleCreateGame(gameManager mb.GameManager, rng *rand.Rand) (*mb.Game, mc.Message[mc.RespCreateGame]) {
	resp := mc.NewMessage[mc.RespCreateGame](mc.CodeCreateGame)

	var req mc.Message[mc.ReqCreateGame]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), "malformed create game payload")
		return nil, resp
	}

	preset, err := mb.PresetByName(req.Payload.BoardPreset)
	if err != nil {
		resp.AddError(err.Error(), "invalid board preset")
		return nil, resp
	}

	selector, err := ai.NewStrategy(req.Payload.GameDifficulty, preset.GridSize, rng)
	if err != nil {
		resp.AddError(err.Error(), "invalid difficulty")
		return nil, resp
	}

	game, err := gameManager.CreateGame(req.Payload.GameDifficulty, preset.Name, selector, rng)
	if err != nil {
		resp.AddError(err.Error(), "failed to create game")
		return nil, resp
	}

	resp.AddPayload(mc.RespCreateGame{
		GameUuid:   game.Uuid(),
		PlayerUuid: game.HumanPlayer().Uuid(),
		GridSize:   game.GridSize(),
		ShipSizes:  preset.ShipSizes,
	})
	return game, resp
}

// HandlePlaceShip places the next pending ship of the human fleet
// from coordinate text and an orientation letter. Rejections come
// back in the error field and the client retries.
func (r *Request) HandlePlaceShip(game *mb.Game) mc.Message[mc.RespPlaceShip] {
	resp := mc.NewMessage[mc.RespPlaceShip](mc.CodePlaceShip)

	var req mc.Message[mc.ReqPlaceShip]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), "malformed place ship payload")
		return resp
	}

	start, ok := mb.ParseCoordinates(req.Payload.Coordinates, game.GridSize())
	if !ok {
		resp.AddError(cerr.ErrInvalidCoordinateText(req.Payload.Coordinates).Error(), "invalid coordinate")
		return resp
	}

	orientation, err := mb.ParseOrientation(req.Payload.Orientation)
	if err != nil {
		resp.AddError(err.Error(), "invalid orientation")
		return resp
	}

	ship, err := game.PlaceHumanShip(start, orientation)
	if err != nil {
		resp.AddError(err.Error(), "invalid placement")
		return resp
	}

	resp.AddPayload(mc.RespPlaceShip{
		Positions:    ship.Positions(),
		PendingSizes: game.HumanPlayer().Fleet().PendingSizes(),
		FleetReady:   game.IsReadyToStart(),
	})
	return resp
}

func (r *Request) HandlePlaceFleetRandom(game *mb.Game) mc.Message[mc.RespPlaceFleetRandom] {
	resp := mc.NewMessage[mc.RespPlaceFleetRandom](mc.CodePlaceFleetRandom)

	game.PlaceHumanFleetRandom()

	ships := game.HumanPlayer().Fleet().Ships()
	positions := make([][]mb.Coordinates, 0, len(ships))
	for _, sh := range ships {
		positions = append(positions, sh.Positions())
	}

	resp.AddPayload(mc.RespPlaceFleetRandom{ShipPositions: positions})
	return resp
}

// HandleAttack resolves one full round: the human shot and, when
// the game is still running afterwards, the machine's reply. An
// already-attacked cell is a no-penalty retry: the machine does
// not get a turn out of it.
func (r *Request) HandleAttack(game *mb.Game) mc.Message[mc.RespAttack] {
	resp := mc.NewMessage[mc.RespAttack](mc.CodeAttack)

	var req mc.Message[mc.ReqAttack]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), "malformed attack payload")
		return resp
	}

	playerOutcome, err := game.PlayerAttack(mb.NewCoordinates(req.Payload.Row, req.Payload.Col))
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrAttackFailed)
		return resp
	}

	payload := mc.RespAttack{
		PlayerShot:  shotFromOutcome(playerOutcome),
		MatchStatus: game.HumanPlayer().MatchStatus(),
		GameOver:    game.IsFinished(),
	}

	if !game.IsFinished() {
		machineOutcome, err := game.MachineTurn()
		if err != nil {
			resp.AddError(err.Error(), "machine turn failed")
			return resp
		}

		machineShot := shotFromOutcome(machineOutcome)
		payload.MachineShot = &machineShot
		payload.MatchStatus = game.HumanPlayer().MatchStatus()
		payload.GameOver = game.IsFinished()
	}

	resp.AddPayload(payload)
	return resp
}

func (r *Request) HandleRematch(game *mb.Game, rng *rand.Rand) mc.Message[mc.NoPayload] {
	resp := mc.NewMessage[mc.NoPayload](mc.CodeRematch)

	selector, err := ai.NewStrategy(game.Difficulty(), game.GridSize(), rng)
	if err != nil {
		resp.AddError(err.Error(), "failed to build strategy for rematch")
		return resp
	}

	game.Rematch(selector)
	return resp
}

func shotFromOutcome(outcome mb.AttackOutcome) mc.RespShot {
	state := mb.PositionStateMiss
	if outcome.Hit {
		state = mb.PositionStateHit
	}

	return mc.RespShot{
		Coord:             outcome.Coord,
		PositionState:     state,
		ShipSunk:          outcome.ShipSunk,
		SunkShipPositions: outcome.SunkShipPositions,
	}
}
