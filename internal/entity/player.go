// Package entity provides the player and the actions it can take on the grid.
package entity

import "github.com/samdwyer/wumpus/internal/world"

// PlayerSymbol is drawn over whatever cell the player stands on.
const PlayerSymbol = 'P'

// Player represents the hunter exploring the cave.
type Player struct {
	X, Y   int  // Current position; X is the row, Y is the column
	Symbol rune // Display symbol
}

// NewPlayer creates a player at the given position.
func NewPlayer(x, y int) *Player {
	return &Player{
		X:      x,
		Y:      y,
		Symbol: PlayerSymbol,
	}
}

// Move places the player at (x, y). No bounds or collision check is made;
// callers validate the target first.
func (p *Player) Move(x, y int) {
	p.X = x
	p.Y = y
}

// Position returns the current coordinates.
func (p *Player) Position() world.Position {
	return world.Position{X: p.X, Y: p.Y}
}

// IsAdjacentToMonster returns true when the Wumpus is one orthogonal step away.
func (p *Player) IsAdjacentToMonster(g *world.Grid) bool {
	m, ok := g.MonsterPosition()
	if !ok {
		return false
	}
	dx, dy := abs(p.X-m.X), abs(p.Y-m.Y)
	return (dx == 1 && dy == 0) || (dx == 0 && dy == 1)
}

// IsAdjacentToMonsterLegacy compares the player against the grid's dimensions
// instead of the monster. It only fires next to the (size, size) corner, which
// lies just outside the board, and is kept for the classic rule set.
func (p *Player) IsAdjacentToMonsterLegacy(g *world.Grid) bool {
	n := g.Size()
	return (abs(p.X-n) == 1 && p.Y == n) || (p.X == n && abs(p.Y-n) == 1)
}

// IsAdjacentToPit scans the 3x3 neighbourhood around the player, clamped at
// the grid edges, for a pit.
func (p *Player) IsAdjacentToPit(g *world.Grid) bool {
	last := g.Size() - 1
	for x := max(0, p.X-1); x <= min(last, p.X+1); x++ {
		for y := max(0, p.Y-1); y <= min(last, p.Y+1); y++ {
			if c, ok := g.Cell(x, y); ok && c == world.CellPit {
				return true
			}
		}
	}
	return false
}

// StandingOn returns the cell under the player.
func (p *Player) StandingOn(g *world.Grid) (world.Cell, bool) {
	return g.Cell(p.X, p.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
