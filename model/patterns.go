package model

import (
	"sort"

	"github.com/pkg/errors"
)

// ErrUnknownPattern is returned when no pattern has the requested name
var ErrUnknownPattern = errors.New("unknown pattern")

// patterns holds live cells relative to the pattern's top-left corner
var patterns = map[string][]Position{
	"blinker": {{0, 0}, {0, 1}, {0, 2}},
	"block":   {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	"glider":  {{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
	"toad":    {{0, 1}, {0, 2}, {0, 3}, {1, 0}, {1, 1}, {1, 2}},
	"beacon":  {{0, 0}, {0, 1}, {1, 0}, {2, 3}, {3, 2}, {3, 3}},
}

// Patterns returns the names of the known patterns, sorted
func Patterns() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PatternGame builds a flat grid with the named pattern centred in it
func PatternGame(name string, width, height int) (*Grid, error) {
	cells, ok := patterns[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[PatternGame] %q", name)
	}

	var rows, columns int
	for _, pos := range cells {
		rows = max(rows, pos.Row+1)
		columns = max(columns, pos.Column+1)
	}

	var (
		top    = (height - rows) / 2
		left   = (width - columns) / 2
		placed = make([]Position, len(cells))
	)
	for i, pos := range cells {
		placed[i] = Position{Row: top + pos.Row, Column: left + pos.Column}
	}

	grid, err := MakeGame(width, height, placed)
	if err != nil {
		return nil, errors.Wrapf(err, "[PatternGame] %q does not fit", name)
	}
	return grid, nil
}
