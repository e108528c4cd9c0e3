package battleship

import (
	"math/rand"

	cerr "github.com/Numeratus/Battleship/internal/error"

	"github.com/google/uuid"
)

const (
	GameDifficultyEasy int = iota
	GameDifficultyMedium
	GameDifficultyHard
)

// TargetSelector is the capability the machine player needs from
// a targeting strategy: pick the next coordinate to attack and
// learn from the result. Concrete strategies live in models/ai;
// the game only depends on this contract.
type TargetSelector interface {
	ChooseTarget() (Coordinates, error)
	ProcessResult(coord Coordinates, hit bool)
}

// AttackOutcome reports one resolved shot.
type AttackOutcome struct {
	Coord             Coordinates
	Hit               bool
	ShipSunk          bool
	SunkShipPositions []Coordinates
	FleetSunk         bool
}

type Game struct {
	uuid       string
	isFinished bool
	difficulty int
	preset     BoardPreset
	human      *BattleshipPlayer
	machine    *BattleshipPlayer
	selector   TargetSelector
	rng        *rand.Rand
}

// NewGame sets up a human-vs-machine match. The machine fleet is
// placed at random immediately; the human fleet starts empty and
// is filled through PlaceHumanShip or PlaceHumanFleetRandom.
func NewGame(difficulty int, preset BoardPreset, selector TargetSelector, rng *rand.Rand) *Game {
	return &Game{
		uuid:       uuid.NewString()[:6],
		isFinished: false,
		difficulty: difficulty,
		preset:     preset,
		human:      NewPlayer(false, NewFleet(preset.GridSize, preset.ShipSizes)),
		machine:    NewPlayer(true, NewRandomFleet(preset.GridSize, preset.ShipSizes, rng)),
		selector:   selector,
		rng:        rng,
	}
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) GridSize() int {
	return g.preset.GridSize
}

func (g *Game) Preset() BoardPreset {
	return g.preset
}

func (g *Game) Difficulty() int {
	return g.difficulty
}

func (g *Game) HumanPlayer() *BattleshipPlayer {
	return g.human
}

func (g *Game) MachinePlayer() *BattleshipPlayer {
	return g.machine
}

func (g *Game) IsFinished() bool {
	return g.isFinished
}

func (g *Game) FinishGame() {
	g.isFinished = true
}

// IsReadyToStart reports whether the human fleet placement is
// complete; attacks are rejected until then.
func (g *Game) IsReadyToStart() bool {
	return g.human.Fleet().IsComplete()
}

func (g *Game) PlaceHumanShip(start Coordinates, orientation uint8) (*Ship, error) {
	return g.human.Fleet().PlaceNextShip(start, orientation)
}

func (g *Game) PlaceHumanFleetRandom() {
	g.human.Fleet().PlaceRemainingRandom(g.rng)
}

// PlayerAttack resolves the human shot against the machine fleet.
// Sinking the whole machine fleet wins the match for the human
// and finishes the game.
func (g *Game) PlayerAttack(target Coordinates) (AttackOutcome, error) {
	if g.isFinished {
		return AttackOutcome{}, cerr.ErrGameAlreadyFinished(g.uuid)
	}
	if !g.IsReadyToStart() {
		return AttackOutcome{}, cerr.ErrFleetNotReady()
	}

	outcome, err := g.resolveAttack(g.machine, target)
	if err != nil {
		return AttackOutcome{}, err
	}

	if outcome.FleetSunk {
		g.human.SetMatchStatus(PlayerMatchStatusWon)
		g.machine.SetMatchStatus(PlayerMatchStatusLost)
		g.FinishGame()
	}
	return outcome, nil
}

// MachineTurn asks the strategy for a target, resolves it against
// the human fleet and feeds the result back into the strategy.
func (g *Game) MachineTurn() (AttackOutcome, error) {
	if g.isFinished {
		return AttackOutcome{}, cerr.ErrGameAlreadyFinished(g.uuid)
	}

	target, err := g.selector.ChooseTarget()
	if err != nil {
		// The strategy ran out of cells, which means the caller
		// kept the game running past any winnable state.
		g.FinishGame()
		return AttackOutcome{}, err
	}

	outcome, err := g.resolveAttack(g.human, target)
	if err != nil {
		return AttackOutcome{}, err
	}
	g.selector.ProcessResult(target, outcome.Hit)

	if outcome.FleetSunk {
		g.machine.SetMatchStatus(PlayerMatchStatusWon)
		g.human.SetMatchStatus(PlayerMatchStatusLost)
		g.FinishGame()
	}
	return outcome, nil
}

func (g *Game) resolveAttack(defender *BattleshipPlayer, target Coordinates) (AttackOutcome, error) {
	hitShip, err := defender.ReceiveAttack(target)
	if err != nil {
		return AttackOutcome{}, err
	}

	outcome := AttackOutcome{Coord: target, Hit: hitShip != nil}
	if hitShip != nil && hitShip.IsSunk() {
		outcome.ShipSunk = true
		outcome.SunkShipPositions = hitShip.Positions()
	}
	outcome.FleetSunk = defender.Fleet().AllSunk()
	return outcome, nil
}

// Rematch resets both sides on the same preset and difficulty.
// The caller supplies a fresh selector so the strategy memory
// starts clean.
func (g *Game) Rematch(selector TargetSelector) {
	g.human.Reset(NewFleet(g.preset.GridSize, g.preset.ShipSizes))
	g.machine.Reset(NewRandomFleet(g.preset.GridSize, g.preset.ShipSizes, g.rng))
	g.selector = selector
	g.isFinished = false
}
