// Package ui provides the plain-text frontends for the game: a line stream
// over stdin/stdout and a full-screen tcell terminal.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrQuit is returned by ReadKey when the player quits or input ends.
var ErrQuit = errors.New("ui: input closed")

// Terminal is what the game needs from a frontend.
type Terminal interface {
	// Clear wipes the display before a full redraw.
	Clear()
	// Print writes text; '\n' starts a new line.
	Print(s string)
	// Println writes text followed by a newline.
	Println(s string)
	// ReadKey blocks until a single character is typed.
	ReadKey() (rune, error)
}

// Stream is a Terminal over an io.Reader and io.Writer.
type Stream struct {
	in  *bufio.Reader
	out io.Writer
	err error

	// ANSIClear emits an erase-display sequence on Clear.
	ANSIClear bool
}

// NewStream creates a stream terminal.
func NewStream(r io.Reader, w io.Writer) *Stream {
	return &Stream{
		in:  bufio.NewReader(r),
		out: w,
	}
}

// Clear erases the display when ANSIClear is set.
func (s *Stream) Clear() {
	if s.ANSIClear {
		s.Print("\x1b[H\x1b[2J")
	}
}

// Print writes s to the output.
func (s *Stream) Print(str string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.out, str)
}

// Println writes s and a newline.
func (s *Stream) Println(str string) {
	s.Print(str + "\n")
}

// ReadKey returns the next character other than a line ending. Line-buffered
// input delivers the Enter key after every character, so '\r' and '\n' are
// skipped; anything else is returned for the game to judge. Once a write has
// failed ReadKey reports that error instead of waiting for input nobody can
// be prompted for.
func (s *Stream) ReadKey() (rune, error) {
	for {
		if s.err != nil {
			return 0, fmt.Errorf("write output: %w", s.err)
		}
		r, _, err := s.in.ReadRune()
		if errors.Is(err, io.EOF) {
			return 0, ErrQuit
		}
		if err != nil {
			return 0, fmt.Errorf("read key: %w", err)
		}
		if r == '\r' || r == '\n' {
			continue
		}
		return r, nil
	}
}
