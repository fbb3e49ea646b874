// Package command records player actions as values and executes them
// against the player and the grid.
package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wumpus/internal/entity"
	"github.com/samdwyer/wumpus/internal/telemetry"
	"github.com/samdwyer/wumpus/internal/world"
)

// Kind tags which variant a Command holds.
type Kind int

const (
	// KindMove relocates the player to (X, Y).
	KindMove Kind = iota
	// KindShoot fires an arrow along (DX, DY).
	KindShoot
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindMove:
		return "move"
	case KindShoot:
		return "shoot"
	default:
		return "unknown"
	}
}

// Command is a recorded player intent. Only the fields of its Kind are set.
type Command struct {
	ID       uuid.UUID
	Kind     Kind
	X, Y     int // Move target
	DX, DY   int // Shoot direction
	Turn     int // Turn the command was issued on, set by History.Append
	IssuedAt time.Time
}

// Move creates a command that places the player at (x, y).
func Move(x, y int) Command {
	return Command{
		ID:       uuid.New(),
		Kind:     KindMove,
		X:        x,
		Y:        y,
		IssuedAt: time.Now(),
	}
}

// Shoot creates a command that fires an arrow along (dx, dy).
func Shoot(dx, dy int) Command {
	return Command{
		ID:       uuid.New(),
		Kind:     KindShoot,
		DX:       dx,
		DY:       dy,
		IssuedAt: time.Now(),
	}
}

// String describes the command for logs.
func (c Command) String() string {
	switch c.Kind {
	case KindMove:
		return fmt.Sprintf("move to (%d,%d)", c.X, c.Y)
	case KindShoot:
		return fmt.Sprintf("shoot along (%d,%d)", c.DX, c.DY)
	default:
		return "unknown command"
	}
}

// Result holds the side effects of executing a command.
type Result struct {
	Kind Kind
	// Shot is set for KindShoot.
	Shot *entity.ShotResult
}

// Execute applies the command to the player and grid.
func Execute(ctx context.Context, c Command, p *entity.Player, g *world.Grid) Result {
	tracer := telemetry.Tracer("command")
	_, span := tracer.Start(ctx, "command.execute")
	defer span.End()

	span.SetAttributes(
		attribute.String("command.id", c.ID.String()),
		attribute.String("command.kind", c.Kind.String()),
	)

	switch c.Kind {
	case KindMove:
		p.Move(c.X, c.Y)
		span.SetAttributes(
			attribute.Int("player.x", p.X),
			attribute.Int("player.y", p.Y),
		)
		return Result{Kind: KindMove}

	case KindShoot:
		shot := p.Shoot(c.DX, c.DY, g)
		span.SetAttributes(
			attribute.String("shot.outcome", shot.Outcome.String()),
			attribute.Int("shot.range", shot.Range),
		)
		return Result{Kind: KindShoot, Shot: &shot}

	default:
		span.SetAttributes(attribute.Bool("failed", true))
		return Result{Kind: c.Kind}
	}
}
