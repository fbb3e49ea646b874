package gamedata

import (
	"encoding/json"
	"fmt"
	"io/fs"
)

// Load decodes an embedded JSON file into T.
func Load[T any](filename string) (T, error) {
	return loadFrom[T](dataFS, filename)
}

// loadFrom decodes a JSON file from fsys into T. Unknown keys are rejected so
// a typo in the catalog fails loudly instead of leaving a message empty.
func loadFrom[T any](fsys fs.FS, filename string) (T, error) {
	var result T

	f, err := fsys.Open(filename)
	if err != nil {
		return result, fmt.Errorf("open embedded %s: %w", filename, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		return result, fmt.Errorf("decode %s: %w", filename, err)
	}
	return result, nil
}
