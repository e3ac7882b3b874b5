package model

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	boundaryFlat  = "flat"
	boundaryRound = "round"
)

// ErrUnknownBoundary is returned when a boundary name cannot be parsed
var ErrUnknownBoundary = errors.New("unknown boundary")

// Position is a (row, column) coordinate on a grid
type Position struct {
	Row    int
	Column int
}

// Boundary resolves a possibly out-of-bounds coordinate on a width x height grid
// to a position on the grid. ok is false when no such position exists.
type Boundary interface {
	Resolve(width, height, row, column int) (pos Position, ok bool)
	String() string
}

// Flat is a finite grid: coordinates off the grid have no cell
type Flat struct{}

// Resolve returns the coordinate unchanged when it lies on the grid
func (Flat) Resolve(width, height, row, column int) (Position, bool) {
	if row < 0 || row >= height || column < 0 || column >= width {
		return Position{}, false
	}
	return Position{Row: row, Column: column}, true
}

func (Flat) String() string { return boundaryFlat }

// Round is a toroidal grid: each edge is adjacent to the opposite edge
type Round struct{}

// Resolve wraps the coordinate onto the grid, it always succeeds for a non-empty grid
func (Round) Resolve(width, height, row, column int) (Position, bool) {
	if width <= 0 || height <= 0 {
		return Position{}, false
	}
	return Position{Row: wrap(row, height), Column: wrap(column, width)}, true
}

func (Round) String() string { return boundaryRound }

func wrap(value, size int) int {
	return (value%size + size) % size
}

// ParseBoundary returns the boundary with the given name ("flat" or "round").
// An empty name selects Flat.
func ParseBoundary(name string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", boundaryFlat:
		return Flat{}, nil
	case boundaryRound:
		return Round{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownBoundary, "[ParseBoundary] %q", name)
	}
}
