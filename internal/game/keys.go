package game

import "errors"

// Input keys. Matching is case-sensitive.
const (
	KeyUp    = 'W'
	KeyLeft  = 'A'
	KeyDown  = 'S'
	KeyRight = 'D'
	KeyShoot = 'F'
)

var (
	// ErrInvalidKey is returned for keys outside the W/A/S/D alphabet.
	ErrInvalidKey = errors.New("invalid key")
	// errBlocked marks a move that would leave the grid.
	errBlocked = errors.New("move leaves the grid")
)

// Direction maps a movement key to a row/column delta.
func Direction(key rune) (dx, dy int, err error) {
	switch key {
	case KeyUp:
		return -1, 0, nil
	case KeyLeft:
		return 0, -1, nil
	case KeyDown:
		return 1, 0, nil
	case KeyRight:
		return 0, 1, nil
	default:
		return 0, 0, ErrInvalidKey
	}
}
