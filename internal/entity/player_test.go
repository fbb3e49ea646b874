package entity

import (
	"testing"

	"github.com/samdwyer/wumpus/internal/world"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(1, 2)
	if p.X != 1 || p.Y != 2 {
		t.Errorf("NewPlayer(1, 2) at (%d,%d)", p.X, p.Y)
	}
	if p.Symbol != PlayerSymbol {
		t.Errorf("Symbol = %q, want %q", p.Symbol, PlayerSymbol)
	}
}

func TestMoveIsUnconditional(t *testing.T) {
	tests := []struct{ x, y int }{
		{2, 3},
		{0, 0},
		{-1, 7},
		{100, -100},
	}

	p := NewPlayer(1, 1)
	for _, tt := range tests {
		p.Move(tt.x, tt.y)
		if p.X != tt.x || p.Y != tt.y {
			t.Errorf("Move(%d,%d) left player at (%d,%d)", tt.x, tt.y, p.X, p.Y)
		}
	}
}

func TestIsAdjacentToPitNeighbourhood(t *testing.T) {
	const size = 5
	center := world.Position{X: 2, Y: 2}

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			g := world.NewGrid(size, nil)
			g.SetCell(center.X+dx, center.Y+dy, world.CellPit)

			p := NewPlayer(center.X, center.Y)
			if !p.IsAdjacentToPit(g) {
				t.Errorf("pit at offset (%d,%d) not sensed", dx, dy)
			}
		}
	}
}

func TestIsAdjacentToPitOutsideNeighbourhood(t *testing.T) {
	g := world.NewGrid(5, nil)
	// Ring two steps away from (2,2).
	for i := 0; i < 5; i++ {
		g.SetCell(0, i, world.CellPit)
		g.SetCell(4, i, world.CellPit)
		g.SetCell(i, 0, world.CellPit)
		g.SetCell(i, 4, world.CellPit)
	}

	p := NewPlayer(2, 2)
	if p.IsAdjacentToPit(g) {
		t.Error("pits outside the 3x3 neighbourhood were sensed")
	}
}

func TestIsAdjacentToPitAtEdges(t *testing.T) {
	g := world.NewGrid(4, nil)
	g.SetCell(1, 1, world.CellPit)

	if !NewPlayer(0, 0).IsAdjacentToPit(g) {
		t.Error("diagonal pit from the corner not sensed")
	}
	if NewPlayer(3, 3).IsAdjacentToPit(g) {
		t.Error("distant pit sensed from the far corner")
	}
}

func TestIsAdjacentToMonster(t *testing.T) {
	tests := []struct {
		name    string
		monster world.Position
		want    bool
	}{
		{"north", world.Position{X: 1, Y: 2}, true},
		{"south", world.Position{X: 3, Y: 2}, true},
		{"west", world.Position{X: 2, Y: 1}, true},
		{"east", world.Position{X: 2, Y: 3}, true},
		{"diagonal", world.Position{X: 1, Y: 1}, false},
		{"two away", world.Position{X: 0, Y: 2}, false},
		{"same cell", world.Position{X: 2, Y: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := world.NewGrid(5, nil)
			g.SetCell(tt.monster.X, tt.monster.Y, world.CellMonster)
			if got := NewPlayer(2, 2).IsAdjacentToMonster(g); got != tt.want {
				t.Errorf("IsAdjacentToMonster() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsAdjacentToMonsterLegacy(t *testing.T) {
	g := world.NewGrid(4, nil)
	g.SetCell(1, 2, world.CellMonster)

	// Next to the monster, but the classic check ignores it.
	if NewPlayer(2, 2).IsAdjacentToMonsterLegacy(g) {
		t.Error("legacy smell fired away from the (4,4) corner")
	}
	// Only coordinates around (size, size) trigger it.
	if !NewPlayer(3, 4).IsAdjacentToMonsterLegacy(g) {
		t.Error("legacy smell did not fire at (3,4)")
	}
}
