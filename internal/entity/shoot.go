package entity

import "github.com/samdwyer/wumpus/internal/world"

// ShotOutcome classifies where an arrow stopped.
type ShotOutcome int

const (
	// ShotHitWall means the arrow left the grid.
	ShotHitWall ShotOutcome = iota
	// ShotHitPit means the arrow fell into a pit.
	ShotHitPit
	// ShotHitGold means the arrow struck the treasure.
	ShotHitGold
	// ShotHitMonster means the arrow killed the Wumpus.
	ShotHitMonster
)

// String returns a human-readable outcome name.
func (o ShotOutcome) String() string {
	switch o {
	case ShotHitWall:
		return "wall"
	case ShotHitPit:
		return "pit"
	case ShotHitGold:
		return "gold"
	case ShotHitMonster:
		return "monster"
	default:
		return "unknown"
	}
}

// ShotResult describes a fired arrow.
type ShotResult struct {
	Outcome ShotOutcome
	Stop    world.Position // Last cell the arrow reached; off-grid for walls
	Range   int            // Cells travelled
}

// Hit returns true if the arrow killed the Wumpus.
func (r ShotResult) Hit() bool {
	return r.Outcome == ShotHitMonster
}

// Shoot fires an arrow from the player's cell along (dx, dy), which must be a
// unit axis vector; any other vector hits the wall without leaving the
// player's cell. The arrow flies until it meets a non-empty cell or leaves
// the grid. Only the monster counts as a hit. The grid is not modified.
func (p *Player) Shoot(dx, dy int, g *world.Grid) ShotResult {
	pos := p.Position()
	if abs(dx)+abs(dy) != 1 {
		return ShotResult{Outcome: ShotHitWall, Stop: pos}
	}

	travelled := 0
	for {
		pos = pos.Add(dx, dy)
		travelled++

		c, ok := g.Cell(pos.X, pos.Y)
		if !ok {
			return ShotResult{Outcome: ShotHitWall, Stop: pos, Range: travelled}
		}
		switch c {
		case world.CellMonster:
			return ShotResult{Outcome: ShotHitMonster, Stop: pos, Range: travelled}
		case world.CellPit:
			return ShotResult{Outcome: ShotHitPit, Stop: pos, Range: travelled}
		case world.CellGold:
			return ShotResult{Outcome: ShotHitGold, Stop: pos, Range: travelled}
		}
	}
}
