package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wumpus/internal/telemetry"
)

const (
	// DefaultSize is the side length of the classic cave.
	DefaultSize = 4

	// MinSize is the smallest grid that fits gold, two pits and the monster.
	MinSize = 2

	pitCount = 2
)

// Position is a grid coordinate. X is the row, Y is the column.
type Position struct {
	X, Y int
}

// Add returns the position offset by the given delta.
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Cardinal directions as row/column deltas, in the order the monster samples them.
var cardinals = [4]Position{
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: 0, Y: 1},
}

// Grid represents the cave: a square array of cells.
type Grid struct {
	size  int
	cells [][]Cell
	rng   *rand.Rand
}

// NewGrid creates a size×size grid filled with empty cells.
// A nil rng is replaced by a time-seeded source.
func NewGrid(size int, rng *rand.Rand) *Grid {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	size = max(size, 0)

	cells := make([][]Cell, size)
	for x := range cells {
		cells[x] = make([]Cell, size)
		for y := range cells[x] {
			cells[x][y] = CellEmpty
		}
	}

	return &Grid{
		size:  size,
		cells: cells,
		rng:   rng,
	}
}

// Size returns the side length of the grid.
func (g *Grid) Size() int {
	return g.size
}

// InBounds returns true if (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// Cell returns the cell at (x, y). The second result is false when the
// coordinate is off the grid.
func (g *Grid) Cell(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}
	return g.cells[x][y], true
}

// SetCell overwrites the cell at (x, y). Off-grid writes are ignored.
func (g *Grid) SetCell(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[x][y] = c
}

// Find returns the first position holding c in row-major order.
func (g *Grid) Find(c Cell) (Position, bool) {
	for x := 0; x < g.size; x++ {
		for y := 0; y < g.size; y++ {
			if g.cells[x][y] == c {
				return Position{X: x, Y: y}, true
			}
		}
	}
	return Position{}, false
}

// FindAll returns every position holding c in row-major order.
func (g *Grid) FindAll(c Cell) []Position {
	var found []Position
	for x := 0; x < g.size; x++ {
		for y := 0; y < g.size; y++ {
			if g.cells[x][y] == c {
				found = append(found, Position{X: x, Y: y})
			}
		}
	}
	return found
}

// MonsterPosition returns where the Wumpus is.
func (g *Grid) MonsterPosition() (Position, bool) {
	return g.Find(CellMonster)
}

// Snapshot returns a deep copy of the cells.
func (g *Grid) Snapshot() [][]Cell {
	out := make([][]Cell, g.size)
	for x := range g.cells {
		out[x] = append([]Cell(nil), g.cells[x]...)
	}
	return out
}

// Generate places one gold cell, two pits and the monster on distinct cells.
// Gold and pits are redrawn together until they do not collide, then the
// monster is redrawn until it avoids all three.
func (g *Grid) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "grid.generate")
	defer span.End()

	startTime := time.Now()
	attempts := 0

	var gold Position
	var pits [pitCount]Position
	for {
		attempts++
		gold = g.randomPosition()
		pits[0] = g.randomPosition()
		pits[1] = g.randomPosition()
		if gold != pits[0] && gold != pits[1] && pits[0] != pits[1] {
			break
		}
	}

	g.SetCell(gold.X, gold.Y, CellGold)
	for _, p := range pits {
		g.SetCell(p.X, p.Y, CellPit)
	}

	monster := g.randomPosition()
	for monster == gold || monster == pits[0] || monster == pits[1] {
		monster = g.randomPosition()
	}
	g.SetCell(monster.X, monster.Y, CellMonster)

	span.SetAttributes(
		attribute.Int("grid.size", g.size),
		attribute.Int("grid.placement_attempts", attempts),
		attribute.Int("grid.monster_x", monster.X),
		attribute.Int("grid.monster_y", monster.Y),
		attribute.Int64("grid.generation_us", time.Since(startTime).Microseconds()),
	)
}

// randomPosition draws a uniformly random coordinate on the grid.
func (g *Grid) randomPosition() Position {
	return Position{X: g.rng.Intn(g.size), Y: g.rng.Intn(g.size)}
}
