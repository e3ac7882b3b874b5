package model

import "github.com/sheikhrachel/go-life/rules"

const (
	cellCharAlive = '#'
	cellCharDead  = ' '
)

// Cell is a single binary-state unit of the grid. Cells are compared by value.
type Cell struct {
	alive bool
}

// LivingCell returns an alive cell
func LivingCell() Cell { return Cell{alive: true} }

// DeadCell returns a dead cell
func DeadCell() Cell { return Cell{} }

// IsAlive reports whether the cell is alive
func (c Cell) IsAlive() bool { return c.alive }

// NextGeneration returns the state of the cell in the next generation given its neighbours.
// Only the number of living neighbours matters.
func (c Cell) NextGeneration(neighbours []Cell) Cell {
	return Cell{alive: rules.ApplyConwayRules(countLiving(neighbours), c.alive)}
}

// Char returns the single glyph used to render the cell
func (c Cell) Char() rune {
	if c.alive {
		return cellCharAlive
	}
	return cellCharDead
}

func countLiving(cells []Cell) (count int) {
	for _, cell := range cells {
		if cell.alive {
			count++
		}
	}
	return
}
