package ui

import (
	"strings"

	"github.com/samdwyer/wumpus/internal/entity"
	"github.com/samdwyer/wumpus/internal/world"
)

// Renderer draws the board as plain text.
type Renderer struct {
	term Terminal
}

// NewRenderer creates a renderer for the given terminal.
func NewRenderer(term Terminal) *Renderer {
	return &Renderer{term: term}
}

// Render clears the terminal and redraws the board followed by footer lines.
func (r *Renderer) Render(grid *world.Grid, player *entity.Player, footer ...string) {
	r.term.Clear()
	for _, row := range Board(grid, player) {
		r.term.Println(row)
	}
	for _, line := range footer {
		r.term.Println(line)
	}
}

// Board returns one line per grid row with cells separated by spaces. The
// player's symbol replaces the content of the cell it stands on.
func Board(grid *world.Grid, player *entity.Player) []string {
	n := grid.Size()
	rows := make([]string, 0, n)
	cells := make([]string, n)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			if player != nil && player.X == x && player.Y == y {
				cells[y] = string(player.Symbol)
				continue
			}
			c, _ := grid.Cell(x, y)
			cells[y] = c.String()
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return rows
}
