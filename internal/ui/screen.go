package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Screen is a Terminal drawn on a tcell screen. Text is kept as a list of
// lines; when it outgrows the screen the oldest lines scroll off.
type Screen struct {
	screen tcell.Screen
	style  tcell.Style
	lines  []string
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenFrom(s)
}

// NewScreenFrom initializes s and wraps it. Tests pass a simulation screen.
func NewScreenFrom(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	style := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	s.SetStyle(style)
	s.Clear()
	return &Screen{screen: s, style: style, lines: []string{""}}, nil
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// Clear drops all text.
func (s *Screen) Clear() {
	s.lines = []string{""}
	s.draw()
}

// Print appends text to the current line.
func (s *Screen) Print(str string) {
	parts := strings.Split(str, "\n")
	last := len(s.lines) - 1
	s.lines[last] += parts[0]
	s.lines = append(s.lines, parts[1:]...)
	s.draw()
}

// Println appends text and ends the line.
func (s *Screen) Println(str string) {
	s.Print(str + "\n")
}

// ReadKey waits for a printable key and echoes it. Escape and Ctrl-C quit.
func (s *Screen) ReadKey() (rune, error) {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			// Screen finalized
			return 0, ErrQuit
		case *tcell.EventResize:
			s.screen.Sync()
			s.draw()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return 0, ErrQuit
			case tcell.KeyRune:
				r := ev.Rune()
				s.lines[len(s.lines)-1] += string(r)
				s.draw()
				return r, nil
			}
		}
	}
}

// Lines returns the text currently held by the screen.
func (s *Screen) Lines() []string {
	return append([]string(nil), s.lines...)
}

// draw repaints the visible tail of the text buffer.
func (s *Screen) draw() {
	s.screen.Clear()

	_, height := s.screen.Size()
	visible := s.lines
	if height > 0 && len(visible) > height {
		visible = visible[len(visible)-height:]
	}

	for y, line := range visible {
		x := 0
		for _, ch := range line {
			s.screen.SetContent(x, y, ch, nil, s.style)
			x++
		}
		if y == len(visible)-1 {
			s.screen.ShowCursor(x, y)
		}
	}

	s.screen.Show()
}
