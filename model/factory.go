package model

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidDimensions is returned for a non-positive width or height
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrInvalidCoordinate is returned for a live cell outside the grid
	ErrInvalidCoordinate = errors.New("invalid coordinate")
)

// MakeGame builds a flat height x width grid where only the given positions are alive
func MakeGame(width, height int, alive []Position) (*Grid, error) {
	cells, err := deadCells(width, height)
	if err != nil {
		return nil, errors.Wrapf(err, "[MakeGame] %dx%d", width, height)
	}

	for _, pos := range alive {
		if pos.Row < 0 || pos.Row >= height || pos.Column < 0 || pos.Column >= width {
			return nil, errors.Wrapf(ErrInvalidCoordinate, "[MakeGame] (%d, %d) outside %dx%d grid", pos.Row, pos.Column, width, height)
		}
		cells[pos.Row][pos.Column] = LivingCell()
	}

	return &Grid{cells: cells, boundary: Flat{}}, nil
}

// RandomGame builds a flat grid where each cell is alive with probability density
func RandomGame(width, height int, density float64, rng *rand.Rand) (*Grid, error) {
	cells, err := deadCells(width, height)
	if err != nil {
		return nil, errors.Wrapf(err, "[RandomGame] %dx%d", width, height)
	}

	for row := range cells {
		for column := range cells[row] {
			if rng.Float64() < density {
				cells[row][column] = LivingCell()
			}
		}
	}

	return &Grid{cells: cells, boundary: Flat{}}, nil
}

func deadCells(width, height int) ([][]Cell, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}
	return cells, nil
}
