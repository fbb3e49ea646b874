package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/wumpus/internal/command"
	"github.com/samdwyer/wumpus/internal/entity"
	"github.com/samdwyer/wumpus/internal/gamedata"
	"github.com/samdwyer/wumpus/internal/telemetry"
	"github.com/samdwyer/wumpus/internal/ui"
	"github.com/samdwyer/wumpus/internal/world"
)

// Game holds the entire game state.
type Game struct {
	cfg      Config
	term     ui.Terminal
	renderer *ui.Renderer
	msgs     *gamedata.Messages
	logger   *zap.Logger

	grid      *world.Grid
	generated bool // grid supplied by the caller, skip generation
	player    *entity.Player
	arrows    int
	history   *command.History
	state     State
	turn      int
}

// Option customizes a new Game.
type Option func(*Game)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithGrid uses a prepared grid instead of generating one. Monster movement
// then draws from the grid's own random source rather than Config.Seed.
func WithGrid(grid *world.Grid) Option {
	return func(g *Game) {
		g.grid = grid
		g.generated = true
	}
}

// WithPlayerAt places the player somewhere other than (0,0).
func WithPlayerAt(x, y int) Option {
	return func(g *Game) {
		g.player.Move(x, y)
	}
}

// New creates a new game instance that talks to the player through term.
func New(cfg Config, term ui.Terminal, opts ...Option) (*Game, error) {
	msgs, err := gamedata.LoadMessages()
	if err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g := &Game{
		cfg:      cfg,
		term:     term,
		renderer: ui.NewRenderer(term),
		msgs:     msgs,
		logger:   zap.NewNop(),
		grid:     world.NewGrid(cfg.Size, rng),
		player:   entity.NewPlayer(0, 0),
		arrows:   cfg.Arrows,
		state:    StateInitializing,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.grid.Size() < world.MinSize {
		return nil, fmt.Errorf("grid size %d is below the minimum of %d", g.grid.Size(), world.MinSize)
	}
	g.history = command.NewHistory(g.logger)
	g.logger = g.logger.With(zap.Int64("seed", seed))

	return g, nil
}

// Run executes the main game loop until the game is won, lost or abandoned.
func (g *Game) Run(ctx context.Context) (State, error) {
	g.Start(ctx)

	for !g.state.IsOver() {
		if err := g.Turn(ctx); err != nil {
			return g.state, err
		}
	}

	g.logger.Info("game over",
		zap.Stringer("state", g.state),
		zap.Int("turns", g.turn),
		zap.Int("commands", g.history.Len()),
		zap.Int("arrows_left", g.arrows),
	)
	return g.state, nil
}

// Start generates the cave and draws the first frame.
func (g *Game) Start(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	g.term.Println(g.msgs.Welcome)
	if !g.generated {
		g.grid.Generate(ctx)
	}
	g.state = StatePlaying

	span.SetAttributes(
		attribute.Int("grid.size", g.grid.Size()),
		attribute.Int("player.start_x", g.player.X),
		attribute.Int("player.start_y", g.player.Y),
		attribute.Int("arrows", g.arrows),
	)
	g.logger.Info("game started",
		zap.Int("size", g.grid.Size()),
		zap.Int("arrows", g.arrows),
		zap.String("monster_origin", g.cfg.Rules.MonsterOrigin),
		zap.Bool("lethal_hazards", g.cfg.Rules.LethalHazards),
	)

	g.refresh()
}

// Turn plays one round: the Wumpus may move, then the player acts.
func (g *Game) Turn(ctx context.Context) error {
	if g.state != StatePlaying {
		return nil
	}
	g.turn++

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.turn")
	defer span.End()
	span.SetAttributes(attribute.Int("turn", g.turn))

	g.moveMonster(ctx)
	if g.state != StatePlaying {
		return nil
	}

	cmd, err := g.readCommand()
	if errors.Is(err, ui.ErrQuit) {
		g.term.Println("")
		g.term.Println(g.msgs.Goodbye)
		g.state = StateQuit
		return nil
	}
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("turn %d: %w", g.turn, err)
	}

	g.execute(ctx, cmd)
	span.SetAttributes(
		attribute.String("command", cmd.Kind.String()),
		attribute.String("state", g.state.String()),
	)
	return nil
}

// moveMonster lets the Wumpus wander before the player acts.
func (g *Game) moveMonster(ctx context.Context) {
	origin, ok := g.grid.MonsterPosition()
	if g.cfg.Rules.MonsterOrigin == OriginPlayer {
		origin, ok = g.player.Position(), true
	}
	if !ok {
		return
	}

	step := g.grid.StepMonster(ctx, origin, g.cfg.MonsterMoveChance)
	if !step.Moved {
		return
	}
	g.logger.Debug("monster moved",
		zap.Int("turn", g.turn),
		zap.Int("from_x", step.From.X),
		zap.Int("from_y", step.From.Y),
		zap.Int("to_x", step.To.X),
		zap.Int("to_y", step.To.Y),
	)

	if g.cfg.Rules.LethalHazards && step.To == g.player.Position() {
		g.lose(g.msgs.Eaten, "caught by monster")
	}
}

// readCommand prompts until the player enters a valid action. Invalid keys
// and blocked moves re-prompt without changing any state.
func (g *Game) readCommand() (command.Command, error) {
	for {
		g.term.Print(g.msgs.MovePrompt)
		key, err := g.term.ReadKey()
		if err != nil {
			return command.Command{}, err
		}
		g.term.Println("")

		var cmd command.Command
		if key == KeyShoot {
			cmd, err = g.aim()
		} else {
			cmd, err = g.step(key)
		}
		if errors.Is(err, ErrInvalidKey) || errors.Is(err, errBlocked) {
			g.logger.Debug("input rejected", zap.String("key", string(key)), zap.Error(err))
			continue
		}
		if err != nil {
			return command.Command{}, err
		}
		return cmd, nil
	}
}

// aim reads the shooting direction.
func (g *Game) aim() (command.Command, error) {
	if g.cfg.Rules.EnforceArrows && g.arrows <= 0 {
		g.term.Println(g.msgs.NoArrows)
		return command.Command{}, ErrInvalidKey
	}

	g.term.Print(g.msgs.ShootPrompt)
	key, err := g.term.ReadKey()
	if err != nil {
		return command.Command{}, err
	}
	g.term.Println("")

	dx, dy, err := Direction(key)
	if err != nil {
		g.term.Println(g.msgs.InvalidDirection)
		return command.Command{}, err
	}
	return command.Shoot(dx, dy), nil
}

// step turns a movement key into a move command for an on-grid target.
func (g *Game) step(key rune) (command.Command, error) {
	dx, dy, err := Direction(key)
	if err != nil {
		g.term.Println(g.msgs.InvalidMove)
		return command.Command{}, err
	}

	target := g.player.Position().Add(dx, dy)
	if !g.grid.InBounds(target.X, target.Y) {
		g.term.Println(g.msgs.Bump)
		return command.Command{}, errBlocked
	}
	return command.Move(target.X, target.Y), nil
}

// execute runs cmd, records it, redraws and resolves its outcome.
func (g *Game) execute(ctx context.Context, cmd command.Command) {
	res := command.Execute(ctx, cmd, g.player, g.grid)
	g.history.Append(cmd, g.turn)

	if res.Kind == command.KindShoot {
		g.arrows--
	}
	g.refresh()

	switch res.Kind {
	case command.KindShoot:
		g.resolveShot(*res.Shot)
	case command.KindMove:
		g.checkFooting()
	}
}

// resolveShot reports where the arrow landed.
func (g *Game) resolveShot(shot entity.ShotResult) {
	g.logger.Info("arrow fired",
		zap.Int("turn", g.turn),
		zap.Stringer("outcome", shot.Outcome),
		zap.Int("range", shot.Range),
		zap.Int("arrows_left", g.arrows),
	)

	switch shot.Outcome {
	case entity.ShotHitMonster:
		g.term.Println(g.msgs.Win)
		g.state = StateWon
	case entity.ShotHitPit:
		g.term.Println(g.msgs.MissPit)
	case entity.ShotHitGold:
		g.term.Println(g.msgs.MissGold)
	default:
		g.term.Println(g.msgs.MissWall)
	}
}

// checkFooting ends the game when the player walked into a hazard and the
// lethal rule is on. Otherwise hazards under the player have no effect.
func (g *Game) checkFooting() {
	if !g.cfg.Rules.LethalHazards {
		return
	}
	c, _ := g.player.StandingOn(g.grid)
	if !c.IsHazard() {
		return
	}
	if c == world.CellPit {
		g.lose(g.msgs.FellInPit, "fell into pit")
		return
	}
	g.lose(g.msgs.Eaten, "walked into monster")
}

func (g *Game) lose(msg, reason string) {
	g.term.Println(msg)
	g.state = StateLost
	g.logger.Info("player lost", zap.String("reason", reason), zap.Int("turn", g.turn))
}

// refresh redraws the board, the arrow count and the hazard hints.
func (g *Game) refresh() {
	footer := append([]string{g.msgs.ArrowLine(g.arrows)}, g.hints()...)
	g.renderer.Render(g.grid, g.player, footer...)
}

// hints returns the proximity warnings for the player's position.
func (g *Game) hints() []string {
	var out []string

	smell := g.player.IsAdjacentToMonster(g.grid)
	if g.cfg.Rules.LegacySmell {
		smell = g.player.IsAdjacentToMonsterLegacy(g.grid)
	}
	if smell {
		out = append(out, g.msgs.Smell)
	}
	if g.player.IsAdjacentToPit(g.grid) {
		out = append(out, g.msgs.Draft)
	}
	return out
}

// State returns the current game state.
func (g *Game) State() State {
	return g.state
}

// Player returns the player.
func (g *Game) Player() *entity.Player {
	return g.player
}

// Grid returns the cave.
func (g *Game) Grid() *world.Grid {
	return g.grid
}

// Arrows returns the arrows left. It goes negative unless EnforceArrows is set.
func (g *Game) Arrows() int {
	return g.arrows
}

// History returns the command log.
func (g *Game) History() *command.History {
	return g.history
}

// TurnCount returns how many turns have started.
func (g *Game) TurnCount() int {
	return g.turn
}
