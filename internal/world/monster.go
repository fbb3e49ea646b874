package world

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wumpus/internal/telemetry"
)

// DefaultMonsterMoveChance is the probability that the Wumpus moves on a turn.
const DefaultMonsterMoveChance = 0.75

// MonsterStep describes the outcome of one monster movement roll.
type MonsterStep struct {
	From  Position // Cell the monster was on before the roll
	To    Position // Cell the monster occupies after the roll
	Moved bool     // False when the roll failed or there was no monster
}

// StepMonster rolls against chance and, on success, relocates the Wumpus to a
// random in-bounds cardinal neighbour of origin. Candidates are redrawn until
// one lies on the grid; pits and gold are not avoided. The monster's previous
// cell is cleared to empty.
//
// Origin is normally the monster's own cell. Passing the player's position
// reproduces the classic behaviour where the Wumpus lands next to the player.
func (g *Grid) StepMonster(ctx context.Context, origin Position, chance float64) MonsterStep {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "monster.step")
	defer span.End()

	from, ok := g.MonsterPosition()
	if !ok {
		span.SetAttributes(attribute.String("warning", "no monster on grid"))
		return MonsterStep{}
	}

	if g.rng.Float64() >= chance || !g.hasNeighbour(origin) {
		span.SetAttributes(attribute.Bool("monster.moved", false))
		return MonsterStep{From: from, To: from}
	}

	to := g.randomNeighbour(origin)
	for !g.InBounds(to.X, to.Y) {
		to = g.randomNeighbour(origin)
	}

	g.SetCell(from.X, from.Y, CellEmpty)
	g.SetCell(to.X, to.Y, CellMonster)

	span.SetAttributes(
		attribute.Bool("monster.moved", true),
		attribute.Int("monster.from_x", from.X),
		attribute.Int("monster.from_y", from.Y),
		attribute.Int("monster.to_x", to.X),
		attribute.Int("monster.to_y", to.Y),
	)

	return MonsterStep{From: from, To: to, Moved: true}
}

// randomNeighbour picks one of the four cardinal neighbours of p uniformly.
func (g *Grid) randomNeighbour(p Position) Position {
	d := cardinals[g.rng.Intn(len(cardinals))]
	return p.Add(d.X, d.Y)
}

// hasNeighbour reports whether any cardinal neighbour of p is on the grid.
func (g *Grid) hasNeighbour(p Position) bool {
	for _, d := range cardinals {
		n := p.Add(d.X, d.Y)
		if g.InBounds(n.X, n.Y) {
			return true
		}
	}
	return false
}
