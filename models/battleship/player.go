package battleship

import (
	cerr "github.com/Numeratus/Battleship/internal/error"

	"github.com/google/uuid"
)

const (
	PlayerMatchStatusLost      = -1
	PlayerMatchStatusUndefined = 0
	PlayerMatchStatusWon       = 1
)

// BattleshipPlayer is one side of a match: its fleet plus the
// grid recording every shot the opponent has fired at it. The
// incoming grid doubles as the opponent's view of this board,
// since both hold exactly the hit/miss history.
type BattleshipPlayer struct {
	uuid        string
	isMachine   bool
	matchStatus int
	fleet       *Fleet
	incoming    Grid
}

func NewPlayer(isMachine bool, fleet *Fleet) *BattleshipPlayer {
	return &BattleshipPlayer{
		uuid:        uuid.NewString()[:10],
		isMachine:   isMachine,
		matchStatus: PlayerMatchStatusUndefined,
		fleet:       fleet,
		incoming:    NewGrid(fleet.GridSize()),
	}
}

func (p *BattleshipPlayer) Uuid() string {
	return p.uuid
}

func (p *BattleshipPlayer) IsMachine() bool {
	return p.isMachine
}

func (p *BattleshipPlayer) Fleet() *Fleet {
	return p.fleet
}

func (p *BattleshipPlayer) IncomingGrid() Grid {
	return p.incoming
}

func (p *BattleshipPlayer) MatchStatus() int {
	return p.matchStatus
}

func (p *BattleshipPlayer) SetMatchStatus(status int) {
	p.matchStatus = status
}

// ReceiveAttack resolves a shot against this player. Re-attacking
// an already-shot cell is rejected without touching any state; the
// caller treats it as a no-penalty retry, not a wasted turn.
func (p *BattleshipPlayer) ReceiveAttack(target Coordinates) (*Ship, error) {
	if !target.InBounds(p.fleet.GridSize()) {
		return nil, cerr.ErrXorYOutOfGridBound(target.Row, target.Col)
	}

	if p.incoming.IsTargeted(target) {
		return nil, cerr.ErrAttackPositionAlreadyFilled(target.Row, target.Col)
	}

	hitShip := p.fleet.CheckHit(target)
	p.incoming.Update(target, hitShip != nil)
	return hitShip, nil
}

// Reset replaces the fleet and clears the shot record for a
// rematch. Match status goes back to undefined.
func (p *BattleshipPlayer) Reset(fleet *Fleet) {
	p.fleet = fleet
	p.incoming = NewGrid(fleet.GridSize())
	p.matchStatus = PlayerMatchStatusUndefined
}
