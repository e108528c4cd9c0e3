package error

import "fmt"

const (
	ConstErrAttackFailed = "attack operation failed"
)

func ErrGameNotExists(gameUuid string) error {
	return fmt.Errorf("game with this uuid does not exist, uuid: %s", gameUuid)
}

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("session with this id does not exist, id: %s", sessionId)
}

func ErrInvalidGameDifficulty() error {
	return fmt.Errorf("difficulty must be easy, medium or hard")
}

func ErrInvalidBoardPreset(name string) error {
	return fmt.Errorf("board preset with this name does not exist, name: %s", name)
}

func ErrInvalidOrientation(orientation string) error {
	return fmt.Errorf("orientation must be 'h' or 'v', got: %s", orientation)
}

func ErrInvalidCoordinateText(text string) error {
	return fmt.Errorf("coordinate text is malformed or out of grid range: %s", text)
}

func ErrXorYOutOfGridBound(x, y int) error {
	return fmt.Errorf("incoming x or y is out of game grid bound\tx: %d\ty: %d", x, y)
}

func ErrShipOutOfGridBound(row, col, size int) error {
	return fmt.Errorf("ship footprint falls outside the grid\trow: %d\tcol: %d\tsize: %d", row, col, size)
}

func ErrShipOverlap(row, col int) error {
	return fmt.Errorf("ship footprint overlaps an already occupied position\trow: %d\tcol: %d", row, col)
}

func ErrAllShipsPlaced() error {
	return fmt.Errorf("every ship of the fleet is already placed")
}

func ErrFleetNotReady() error {
	return fmt.Errorf("fleet placement is not complete yet")
}

func ErrAttackPositionAlreadyFilled(row, col int) error {
	return fmt.Errorf("current position in grid already taken\trow: %d\tcol: %d", row, col)
}

func ErrBoardExhausted() error {
	return fmt.Errorf("no untargeted coordinate remains on the board")
}

func ErrGameAlreadyFinished(gameUuid string) error {
	return fmt.Errorf("game is already finished, uuid: %s", gameUuid)
}
