package battleship

import (
	"math/rand"
	"sync"

	cerr "github.com/Numeratus/Battleship/internal/error"
)

type GameManager interface {
	CreateGame(difficulty int, presetName string, selector TargetSelector, rng *rand.Rand) (*Game, error)
	FindGame(gameUuid string) (*Game, error)
	TerminateGame(gameUuid string)
}

type BattleshipGameManager struct {
	games map[string]*Game
	mu    sync.RWMutex
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager() *BattleshipGameManager {
	return &BattleshipGameManager{
		games: make(map[string]*Game, 10),
	}
}

func (bgm *BattleshipGameManager) CreateGame(difficulty int, presetName string, selector TargetSelector, rng *rand.Rand) (*Game, error) {
	preset, err := PresetByName(presetName)
	if err != nil {
		return nil, err
	}

	game := NewGame(difficulty, preset, selector, rng)

	bgm.mu.Lock()
	bgm.games[game.Uuid()] = game
	bgm.mu.Unlock()

	return game, nil
}

func (bgm *BattleshipGameManager) FindGame(gameUuid string) (*Game, error) {
	bgm.mu.RLock()
	game, prs := bgm.games[gameUuid]
	bgm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrGameNotExists(gameUuid)
	}

	return game, nil
}

func (bgm *BattleshipGameManager) TerminateGame(gameUuid string) {
	bgm.mu.Lock()
	delete(bgm.games, gameUuid)
	bgm.mu.Unlock()
}
