package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/samdwyer/wumpus/internal/entity"
	"github.com/samdwyer/wumpus/internal/world"
)

func TestBoard(t *testing.T) {
	g := world.NewGrid(3, nil)
	g.SetCell(0, 2, world.CellMonster)
	g.SetCell(1, 1, world.CellPit)
	g.SetCell(2, 0, world.CellGold)

	got := Board(g, entity.NewPlayer(1, 0))
	want := []string{
		"_ _ W",
		"P P _",
		"G _ _",
	}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("Board() =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestBoardPlayerHidesCell(t *testing.T) {
	g := world.NewGrid(2, nil)
	g.SetCell(0, 0, world.CellMonster)

	got := Board(g, entity.NewPlayer(0, 0))
	if got[0] != "P _" {
		t.Errorf("row 0 = %q, want %q", got[0], "P _")
	}
}

func TestRender(t *testing.T) {
	var out bytes.Buffer
	term := NewStream(strings.NewReader(""), &out)
	r := NewRenderer(term)

	g := world.NewGrid(2, nil)
	r.Render(g, entity.NewPlayer(1, 1), "Arrows: 1", "I feel a draft")

	want := "_ _\n_ P\nArrows: 1\nI feel a draft\n"
	if out.String() != want {
		t.Errorf("Render() wrote %q, want %q", out.String(), want)
	}
}
