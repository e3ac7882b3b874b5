package model

import (
	"crypto/md5"
	"fmt"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrEmptyGrid is returned when a grid is built without any cells
	ErrEmptyGrid = errors.New("grid has no cells")
	// ErrRaggedRows is returned when the rows of a grid differ in length
	ErrRaggedRows = errors.New("grid rows differ in length")
)

// neighbourOffsets lists the Moore neighbourhood in raster order
var neighbourOffsets = [8]Position{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is an immutable snapshot of one generation.
// Advancing a generation always builds a new Grid.
type Grid struct {
	cells    [][]Cell
	boundary Boundary
}

// NewGrid creates a grid from a row-major cell matrix. The matrix is copied.
// A nil boundary selects Flat.
func NewGrid(cells [][]Cell, boundary Boundary) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	width := len(cells[0])
	copied := make([][]Cell, len(cells))
	for row := range cells {
		if len(cells[row]) != width {
			return nil, errors.Wrapf(ErrRaggedRows, "[NewGrid] row %d has %d cells, want %d", row, len(cells[row]), width)
		}
		copied[row] = append([]Cell(nil), cells[row]...)
	}

	if boundary == nil {
		boundary = Flat{}
	}
	return &Grid{cells: copied, boundary: boundary}, nil
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return len(g.cells[0])
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return len(g.cells)
}

// Boundary returns the boundary used for neighbour lookups
func (g *Grid) Boundary() Boundary {
	return g.boundary
}

// WithBoundary returns a grid with the same cells and a different boundary
func (g *Grid) WithBoundary(boundary Boundary) *Grid {
	if boundary == nil {
		boundary = Flat{}
	}
	// cells are shared, no grid writes them after construction
	return &Grid{cells: g.cells, boundary: boundary}
}

// CellAt returns the cell at the given position. Out-of-range positions have
// no cell, whatever the grid's boundary.
func (g *Grid) CellAt(row, column int) (Cell, bool) {
	if row < 0 || row >= g.GetHeight() || column < 0 || column >= g.GetWidth() {
		return Cell{}, false
	}
	return g.cells[row][column], true
}

// NeighbourPositions resolves the Moore neighbourhood of a cell through the
// grid's boundary, dropping positions that do not exist.
// The order is fixed: the row above left to right, left, right, then the row below.
func (g *Grid) NeighbourPositions(row, column int) []Position {
	var (
		width     = g.GetWidth()
		height    = g.GetHeight()
		positions = make([]Position, 0, len(neighbourOffsets))
	)
	for _, offset := range neighbourOffsets {
		if pos, ok := g.boundary.Resolve(width, height, row+offset.Row, column+offset.Column); ok {
			positions = append(positions, pos)
		}
	}
	return positions
}

// NeighboursFor returns the neighbouring cells in NeighbourPositions order
func (g *Grid) NeighboursFor(row, column int) []Cell {
	positions := g.NeighbourPositions(row, column)
	neighbours := make([]Cell, len(positions))
	for i, pos := range positions {
		neighbours[i] = g.cells[pos.Row][pos.Column]
	}
	return neighbours
}

// NextGeneration calculates the next generation. The new grid keeps this grid's boundary.
func (g *Grid) NextGeneration() *Grid {
	next := g.blank()
	g.advanceRows(next, 0, g.GetHeight())
	return next
}

// NextGenerationParallel calculates the next generation using parallel processing.
// workers <= 0 uses one worker per CPU. The result equals NextGeneration.
func (g *Grid) NextGenerationParallel(workers int) *Grid {
	next := g.blank()

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	var (
		eg            errgroup.Group
		height        = g.GetHeight()
		rowsPerWorker = (height + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, height)
		)
		if startRow >= height {
			break
		}

		// each worker writes a disjoint set of rows of next
		eg.Go(func() error {
			g.advanceRows(next, startRow, endRow)
			return nil
		})
	}

	// workers never fail
	_ = eg.Wait()

	return next
}

func (g *Grid) blank() *Grid {
	cells := make([][]Cell, g.GetHeight())
	for i := range cells {
		cells[i] = make([]Cell, g.GetWidth())
	}
	return &Grid{cells: cells, boundary: g.boundary}
}

// advanceRows fills rows [startRow, endRow) of next, which must not be shared yet
func (g *Grid) advanceRows(next *Grid, startRow, endRow int) {
	for row := startRow; row < endRow; row++ {
		for column := range g.GetWidth() {
			next.cells[row][column] = g.cells[row][column].NextGeneration(g.NeighboursFor(row, column))
		}
	}
}

// Equal reports whether both grids hold the same cells. Boundaries are not compared.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.GetHeight() != other.GetHeight() || g.GetWidth() != other.GetWidth() {
		return false
	}
	for row := range g.cells {
		for column := range g.cells[row] {
			if g.cells[row][column] != other.cells[row][column] {
				return false
			}
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, row := range g.cells {
		count += countLiving(row)
	}
	return
}

// Hash returns an MD5 hash of the grid state
func (g *Grid) Hash() string {
	h := md5.New()
	for _, row := range g.cells {
		for _, cell := range row {
			if cell.IsAlive() {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders one line per row, '#' for living cells and ' ' for dead ones
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.GetHeight() * (g.GetWidth() + 1))
	for row, cells := range g.cells {
		if row > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range cells {
			b.WriteRune(cell.Char())
		}
	}
	return b.String()
}
