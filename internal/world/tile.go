// Package world provides the cave grid and its generation.
package world

// Cell represents the content marker of a single grid square.
type Cell rune

const (
	// CellEmpty is an empty square.
	CellEmpty Cell = '_'
	// CellGold holds the treasure.
	CellGold Cell = 'G'
	// CellPit is a bottomless pit.
	CellPit Cell = 'P'
	// CellMonster is the square the Wumpus currently occupies.
	CellMonster Cell = 'W'
)

// IsEmpty returns true if nothing occupies the cell.
func (c Cell) IsEmpty() bool {
	return c == CellEmpty
}

// IsHazard returns true for cells that are dangerous to the player.
func (c Cell) IsHazard() bool {
	return c == CellPit || c == CellMonster
}

// String returns the display character as a string.
func (c Cell) String() string {
	return string(rune(c))
}
