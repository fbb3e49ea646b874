package logging

import (
	"io"
	"os"
)

// stderr is swapped out by tests.
var stderr io.Writer = os.Stderr
