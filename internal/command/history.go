package command

import (
	"go.uber.org/zap"
)

// History is an append-only, ordered log of executed commands.
type History struct {
	entries []Command
	logger  *zap.Logger
}

// NewHistory creates an empty history that audits each entry to logger.
func NewHistory(logger *zap.Logger) *History {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &History{logger: logger.Named("history")}
}

// Append records c as issued on the given turn and returns the stored copy.
func (h *History) Append(c Command, turn int) Command {
	c.Turn = turn
	h.entries = append(h.entries, c)

	h.logger.Info("command recorded",
		zap.String("id", c.ID.String()),
		zap.String("kind", c.Kind.String()),
		zap.Stringer("command", c),
		zap.Int("turn", turn),
		zap.Int("seq", len(h.entries)),
		zap.Time("issued_at", c.IssuedAt),
	)
	return c
}

// Len returns the number of recorded commands.
func (h *History) Len() int {
	return len(h.entries)
}

// All returns a copy of the recorded commands in order.
func (h *History) All() []Command {
	return append([]Command(nil), h.entries...)
}

// Last returns the most recent command.
func (h *History) Last() (Command, bool) {
	if len(h.entries) == 0 {
		return Command{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Count returns how many recorded commands have the given kind.
func (h *History) Count(k Kind) int {
	n := 0
	for _, c := range h.entries {
		if c.Kind == k {
			n++
		}
	}
	return n
}
