package game

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/samdwyer/wumpus/internal/command"
	"github.com/samdwyer/wumpus/internal/ui"
	"github.com/samdwyer/wumpus/internal/world"
)

// stillConfig is the classic setup with a Wumpus that never moves.
func stillConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 1
	cfg.MonsterMoveChance = 0
	return cfg
}

func newTestGame(t *testing.T, cfg Config, input string, opts ...Option) (*Game, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	g, err := New(cfg, ui.NewStream(strings.NewReader(input), &out), opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return g, &out
}

func gridWith(size int, cells map[world.Position]world.Cell) *world.Grid {
	g := world.NewGrid(size, nil)
	for p, c := range cells {
		g.SetCell(p.X, p.Y, c)
	}
	return g
}

func sameCells(a, b [][]world.Cell) bool {
	for x := range a {
		for y := range a[x] {
			if a[x][y] != b[x][y] {
				return false
			}
		}
	}
	return true
}

func TestShootMonsterAlongRowWins(t *testing.T) {
	grid := gridWith(4, map[world.Position]world.Cell{
		{X: 0, Y: 0}: world.CellMonster,
		{X: 2, Y: 2}: world.CellPit,
		{X: 3, Y: 0}: world.CellPit,
		{X: 1, Y: 3}: world.CellGold,
	})
	g, out := newTestGame(t, stillConfig(), "FA", WithGrid(grid), WithPlayerAt(0, 3))

	state, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if state != StateWon {
		t.Fatalf("Run() state = %v, want won", state)
	}
	if !strings.Contains(out.String(), "You shot the Wumpus") {
		t.Errorf("win message missing from output:\n%s", out.String())
	}
	if g.Arrows() != 0 {
		t.Errorf("Arrows() = %d, want 0", g.Arrows())
	}
	if g.History().Len() != 1 || g.History().Count(command.KindShoot) != 1 {
		t.Errorf("history = %+v", g.History().All())
	}
}

func TestShootIntoEmptyDirectionMisses(t *testing.T) {
	grid := gridWith(4, map[world.Position]world.Cell{
		{X: 3, Y: 3}: world.CellMonster,
	})
	g, out := newTestGame(t, stillConfig(), "FD", WithGrid(grid))

	state, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if state != StateQuit {
		t.Errorf("Run() state = %v, want quit after input ends", state)
	}
	if !strings.Contains(out.String(), "The arrow hit a wall") {
		t.Errorf("miss message missing:\n%s", out.String())
	}
	if g.Arrows() != 0 {
		t.Errorf("Arrows() = %d, want 0", g.Arrows())
	}
}

func TestArrowsGoNegativeByDefault(t *testing.T) {
	grid := gridWith(4, map[world.Position]world.Cell{
		{X: 3, Y: 3}: world.CellMonster,
	})
	g, _ := newTestGame(t, stillConfig(), "FDFDFW", WithGrid(grid))

	if _, err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if g.Arrows() != -2 {
		t.Errorf("Arrows() = %d, want -2", g.Arrows())
	}
}

func TestEnforceArrows(t *testing.T) {
	cfg := stillConfig()
	cfg.Arrows = 0
	cfg.Rules.EnforceArrows = true

	grid := gridWith(4, map[world.Position]world.Cell{
		{X: 0, Y: 0}: world.CellMonster,
	})
	// F is refused, so A is read as a move.
	g, out := newTestGame(t, cfg, "FA", WithGrid(grid), WithPlayerAt(0, 3))

	state, _ := g.Run(context.Background())
	if state == StateWon {
		t.Fatal("shot fired with an empty quiver")
	}
	if !strings.Contains(out.String(), "You have no arrows left.") {
		t.Errorf("no-arrows message missing:\n%s", out.String())
	}
	if p := g.Player().Position(); p != (world.Position{X: 0, Y: 2}) {
		t.Errorf("player at %v, want (0,2)", p)
	}
	if g.History().Count(command.KindShoot) != 0 {
		t.Error("refused shot recorded in history")
	}
}

func TestInvalidKeyChangesNothing(t *testing.T) {
	grid := gridWith(4, map[world.Position]world.Cell{
		{X: 2, Y: 2}: world.CellMonster,
		{X: 1, Y: 1}: world.CellPit,
	})
	g, out := newTestGame(t, stillConfig(), "Q", WithGrid(grid))
	g.Start(context.Background())

	before := g.Grid().Snapshot()
	startPos := g.Player().Position()

	if err := g.Turn(context.Background()); err != nil {
		t.Fatalf("Turn() error = %v", err)
	}

	if g.Player().Position() != startPos {
		t.Errorf("player moved to %v", g.Player().Position())
	}
	if !sameCells(before, g.Grid().Snapshot()) {
		t.Error("grid changed after an invalid key")
	}
	if g.History().Len() != 0 {
		t.Errorf("history has %d entries, want 0", g.History().Len())
	}

	text := out.String()
	if !strings.Contains(text, "Invalid move.") {
		t.Errorf("invalid move message missing:\n%s", text)
	}
	if n := strings.Count(text, "Enter your move"); n != 2 {
		t.Errorf("prompt shown %d times, want 2", n)
	}
}

func TestBlankKeysAreInvalid(t *testing.T) {
	grid := gridWith(4, map[world.Position]world.Cell{
		{X: 2, Y: 2}: world.CellMonster,
	})
	g, out := newTestGame(t, stillConfig(), " \t", WithGrid(grid))

	if _, err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if n := strings.Count(out.String(), "Invalid move."); n != 2 {
		t.Errorf("invalid move shown %d times, want 2:\n%s", n, out.String())
	}
	if g.TurnCount() != 1 {
		t.Errorf("TurnCount() = %d, want 1", g.TurnCount())
	}
}

type brokenOutput struct{}

func (brokenOutput) Write([]byte) (int, error) { return 0, errors.New("stdout closed") }

func TestRunStopsWhenOutputFails(t *testing.T) {
	grid := gridWith(4, map[world.Position]world.Cell{
		{X: 2, Y: 2}: world.CellMonster,
	})
	g, err := New(stillConfig(), ui.NewStream(strings.NewReader("DDDD"), brokenOutput{}), WithGrid(grid))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	state, err := g.Run(context.Background())
	if err == nil {
		t.Fatal("Run() kept playing with a broken output")
	}
	if state != StatePlaying {
		t.Errorf("state = %v, want playing", state)
	}
	if g.History().Len() != 0 {
		t.Errorf("history has %d entries, want 0", g.History().Len())
	}
}

func TestInvalidKeysStayInOneTurn(t *testing.T) {
	cfg := stillConfig()
	cfg.MonsterMoveChance = 1

	grid := gridWith(4, map[world.Position]world.Cell{
		{X: 2, Y: 2}: world.CellMonster,
	})
	g, out := newTestGame(t, cfg, "QqwXFZ", WithGrid(grid))

	if _, err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if g.TurnCount() != 1 {
		t.Errorf("TurnCount() = %d, want 1", g.TurnCount())
	}
	if !strings.Contains(out.String(), "Invalid direction.") {
		t.Errorf("invalid direction message missing:\n%s", out.String())
	}
	if g.Arrows() != 1 {
		t.Errorf("Arrows() = %d, an invalid aim must not spend an arrow", g.Arrows())
	}
}

func TestMoveKeys(t *testing.T) {
	tests := []struct {
		key  string
		want world.Position
	}{
		{"W", world.Position{X: 0, Y: 1}},
		{"S", world.Position{X: 2, Y: 1}},
		{"A", world.Position{X: 1, Y: 0}},
		{"D", world.Position{X: 1, Y: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			grid := gridWith(4, map[world.Position]world.Cell{
				{X: 3, Y: 3}: world.CellMonster,
			})
			g, _ := newTestGame(t, stillConfig(), tt.key, WithGrid(grid), WithPlayerAt(1, 1))
			if _, err := g.Run(context.Background()); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if p := g.Player().Position(); p != tt.want {
				t.Errorf("player at %v, want %v", p, tt.want)
			}
			last, ok := g.History().Last()
			if !ok || last.Kind != command.KindMove || last.X != tt.want.X || last.Y != tt.want.Y {
				t.Errorf("last command = %+v", last)
			}
		})
	}
}

func TestMoveOffGridIsRejected(t *testing.T) {
	grid := gridWith(4, map[world.Position]world.Cell{
		{X: 3, Y: 3}: world.CellMonster,
	})
	g, out := newTestGame(t, stillConfig(), "WA", WithGrid(grid))

	if _, err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if p := g.Player().Position(); p != (world.Position{}) {
		t.Errorf("player at %v, want (0,0)", p)
	}
	if n := strings.Count(out.String(), "You bump into a wall."); n != 2 {
		t.Errorf("bump message shown %d times, want 2", n)
	}
	if g.History().Len() != 0 {
		t.Error("rejected moves recorded in history")
	}
}

func TestHazardsHarmlessByDefault(t *testing.T) {
	grid := gridWith(4, map[world.Position]world.Cell{
		{X: 0, Y: 1}: world.CellPit,
		{X: 3, Y: 3}: world.CellMonster,
	})
	g, out := newTestGame(t, stillConfig(), "D", WithGrid(grid))

	state, _ := g.Run(context.Background())
	if state != StateQuit {
		t.Errorf("state = %v, want quit", state)
	}
	if p := g.Player().Position(); p != (world.Position{X: 0, Y: 1}) {
		t.Errorf("player at %v, want on the pit", p)
	}
	if strings.Contains(out.String(), "Game over") {
		t.Error("game ended on a pit without the lethal rule")
	}
}

func TestLethalHazards(t *testing.T) {
	tests := []struct {
		name string
		cell world.Cell
		msg  string
	}{
		{"pit", world.CellPit, "You fell into a pit."},
		{"monster", world.CellMonster, "The Wumpus got you."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := stillConfig()
			cfg.Rules.LethalHazards = true

			cells := map[world.Position]world.Cell{{X: 0, Y: 1}: tt.cell}
			if tt.cell != world.CellMonster {
				cells[world.Position{X: 3, Y: 3}] = world.CellMonster
			}
			g, out := newTestGame(t, cfg, "DD", WithGrid(gridWith(4, cells)))

			state, err := g.Run(context.Background())
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if state != StateLost {
				t.Errorf("state = %v, want lost", state)
			}
			if !strings.Contains(out.String(), tt.msg) {
				t.Errorf("output missing %q:\n%s", tt.msg, out.String())
			}
			if g.History().Len() != 1 {
				t.Errorf("history has %d entries, the game should stop after one move", g.History().Len())
			}
		})
	}
}

func TestLethalMonsterStep(t *testing.T) {
	cfg := stillConfig()
	cfg.Size = 2
	cfg.MonsterMoveChance = 1
	cfg.Rules.LethalHazards = true

	// Seed 0 sends the Wumpus west from (0,1) onto the player's corner.
	grid := world.NewGrid(2, rand.New(rand.NewSource(0)))
	grid.SetCell(0, 1, world.CellMonster)
	g, out := newTestGame(t, cfg, "", WithGrid(grid))

	state, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if state != StateLost {
		t.Fatalf("state = %v, want lost", state)
	}
	if !strings.Contains(out.String(), "The Wumpus got you.") {
		t.Errorf("eaten message missing:\n%s", out.String())
	}
	if pos, _ := g.Grid().MonsterPosition(); pos != g.Player().Position() {
		t.Errorf("monster at %v, player at %v", pos, g.Player().Position())
	}
	if g.History().Len() != 0 {
		t.Errorf("history has %d entries, the player never got to act", g.History().Len())
	}
}

func TestHints(t *testing.T) {
	tests := []struct {
		name  string
		cfg   func(c *Config)
		smell bool
		draft bool
		cells map[world.Position]world.Cell
	}{
		{
			name:  "monster and pit nearby",
			cfg:   func(c *Config) {},
			cells: map[world.Position]world.Cell{{X: 0, Y: 1}: world.CellMonster, {X: 1, Y: 1}: world.CellPit},
			smell: true,
			draft: true,
		},
		{
			name:  "legacy smell ignores the monster",
			cfg:   func(c *Config) { c.Rules.LegacySmell = true },
			cells: map[world.Position]world.Cell{{X: 0, Y: 1}: world.CellMonster, {X: 1, Y: 1}: world.CellPit},
			smell: false,
			draft: true,
		},
		{
			name:  "nothing nearby",
			cfg:   func(c *Config) {},
			cells: map[world.Position]world.Cell{{X: 3, Y: 3}: world.CellMonster, {X: 2, Y: 3}: world.CellPit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := stillConfig()
			tt.cfg(&cfg)
			g, out := newTestGame(t, cfg, "", WithGrid(gridWith(4, tt.cells)))
			g.Start(context.Background())

			text := out.String()
			if got := strings.Contains(text, "I smell a Wumpus"); got != tt.smell {
				t.Errorf("smell = %v, want %v", got, tt.smell)
			}
			if got := strings.Contains(text, "I feel a draft"); got != tt.draft {
				t.Errorf("draft = %v, want %v", got, tt.draft)
			}
		})
	}
}

func TestBoardRedrawAfterCommand(t *testing.T) {
	grid := gridWith(2, map[world.Position]world.Cell{
		{X: 1, Y: 1}: world.CellMonster,
	})
	cfg := stillConfig()
	cfg.Size = 2
	g, out := newTestGame(t, cfg, "S", WithGrid(grid))

	if _, err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Initial frame, then the frame after moving down.
	text := out.String()
	if !strings.Contains(text, "P _\n_ W\nArrows: 1\n") {
		t.Errorf("initial frame missing:\n%s", text)
	}
	if !strings.Contains(text, "_ _\nP W\nArrows: 1\nI smell a Wumpus\n") {
		t.Errorf("second frame missing:\n%s", text)
	}
}

func TestMonsterFromPlayerOrigin(t *testing.T) {
	cfg := stillConfig()
	cfg.MonsterMoveChance = 1
	cfg.Rules.MonsterOrigin = OriginPlayer

	grid := gridWith(4, map[world.Position]world.Cell{
		{X: 3, Y: 3}: world.CellMonster,
	})
	g, _ := newTestGame(t, cfg, "", WithGrid(grid))

	if _, err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	monsters := g.Grid().FindAll(world.CellMonster)
	if len(monsters) != 1 {
		t.Fatalf("%d monsters on grid, want 1", len(monsters))
	}
	m := monsters[0]
	if m != (world.Position{X: 1, Y: 0}) && m != (world.Position{X: 0, Y: 1}) {
		t.Errorf("monster at %v, want next to the player", m)
	}
}

func TestGeneratedGame(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42
	g, out := newTestGame(t, cfg, "")

	state, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if state != StateQuit {
		t.Errorf("state = %v, want quit", state)
	}
	if len(g.Grid().FindAll(world.CellMonster)) != 1 {
		t.Error("generated grid should hold one monster")
	}
	if !strings.HasPrefix(out.String(), "Welcome to Wumpus World!") {
		t.Errorf("output starts with %q", strings.SplitN(out.String(), "\n", 2)[0])
	}
	if !strings.Contains(out.String(), "Goodbye.") {
		t.Error("goodbye message missing")
	}
}

func TestTurnAfterGameOverIsNoop(t *testing.T) {
	grid := gridWith(4, map[world.Position]world.Cell{
		{X: 0, Y: 1}: world.CellMonster,
	})
	g, _ := newTestGame(t, stillConfig(), "FDD", WithGrid(grid))

	if state, _ := g.Run(context.Background()); state != StateWon {
		t.Fatalf("state = %v, want won", state)
	}
	turns := g.TurnCount()
	if err := g.Turn(context.Background()); err != nil {
		t.Fatalf("Turn() error = %v", err)
	}
	if g.TurnCount() != turns || g.Player().Position() != (world.Position{}) {
		t.Error("Turn() acted after the game ended")
	}
}

func TestNewRejectsTinyGrid(t *testing.T) {
	cfg := stillConfig()
	cfg.Size = 1
	if _, err := New(cfg, ui.NewStream(strings.NewReader(""), &bytes.Buffer{})); err == nil {
		t.Error("New() accepted a 1x1 cave")
	}
}
