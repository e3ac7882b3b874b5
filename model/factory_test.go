package model

import (
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
)

func TestMakeGameBlinker(t *testing.T) {
	g, err := MakeGame(3, 3, []Position{{0, 1}, {1, 1}, {2, 1}})
	if err != nil {
		t.Fatalf("MakeGame: %v", err)
	}

	expected, err := NewGrid([][]Cell{
		{DeadCell(), LivingCell(), DeadCell()},
		{DeadCell(), LivingCell(), DeadCell()},
		{DeadCell(), LivingCell(), DeadCell()},
	}, nil)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	if !g.Equal(expected) {
		t.Fatalf("got\n%s\nwant\n%s", g, expected)
	}
}

func TestMakeGameHorizontalBlinker(t *testing.T) {
	g, err := MakeGame(3, 3, []Position{{1, 0}, {1, 1}, {1, 2}})
	if err != nil {
		t.Fatalf("MakeGame: %v", err)
	}

	expected, err := NewGrid([][]Cell{
		{DeadCell(), DeadCell(), DeadCell()},
		{LivingCell(), LivingCell(), LivingCell()},
		{DeadCell(), DeadCell(), DeadCell()},
	}, nil)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	if !g.Equal(expected) {
		t.Fatalf("got\n%s\nwant\n%s", g, expected)
	}
}

func TestMakeGameHonoursDimensions(t *testing.T) {
	g, err := MakeGame(5, 2, []Position{{1, 4}})
	if err != nil {
		t.Fatalf("MakeGame: %v", err)
	}
	if g.GetWidth() != 5 || g.GetHeight() != 2 {
		t.Fatalf("dimensions = %dx%d, want 5x2", g.GetWidth(), g.GetHeight())
	}
	if cell, _ := g.CellAt(1, 4); !cell.IsAlive() {
		t.Fatal("cell (1, 4) should be alive")
	}
	if g.CountLivingCells() != 1 {
		t.Fatalf("living cells = %d, want 1", g.CountLivingCells())
	}
	if _, ok := g.Boundary().(Flat); !ok {
		t.Fatalf("boundary = %v, want flat", g.Boundary())
	}
}

func TestMakeGameAllowsDuplicates(t *testing.T) {
	g, err := MakeGame(2, 2, []Position{{0, 0}, {0, 0}})
	if err != nil {
		t.Fatalf("MakeGame: %v", err)
	}
	if g.CountLivingCells() != 1 {
		t.Fatalf("living cells = %d, want 1", g.CountLivingCells())
	}
}

func TestMakeGameRejectsOutOfRangeCoordinate(t *testing.T) {
	for _, pos := range []Position{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if _, err := MakeGame(3, 3, []Position{{1, 1}, pos}); !errors.Is(err, ErrInvalidCoordinate) {
			t.Errorf("MakeGame with %v error = %v, want ErrInvalidCoordinate", pos, err)
		}
	}
}

func TestMakeGameRejectsInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		if _, err := MakeGame(dims[0], dims[1], nil); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("MakeGame(%d, %d) error = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
}

func TestRandomGame(t *testing.T) {
	a, err := RandomGame(20, 10, 0.5, rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatalf("RandomGame: %v", err)
	}
	b, err := RandomGame(20, 10, 0.5, rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatalf("RandomGame: %v", err)
	}
	if !a.Equal(b) {
		t.Fatal("same seed should give the same grid")
	}
	if a.GetWidth() != 20 || a.GetHeight() != 10 {
		t.Fatalf("dimensions = %dx%d, want 20x10", a.GetWidth(), a.GetHeight())
	}

	empty, _ := RandomGame(4, 4, 0, rand.New(rand.NewPCG(3, 4)))
	if empty.CountLivingCells() != 0 {
		t.Fatal("density 0 should give an empty grid")
	}
	full, _ := RandomGame(4, 4, 1, rand.New(rand.NewPCG(3, 4)))
	if full.CountLivingCells() != 16 {
		t.Fatal("density 1 should give a full grid")
	}

	if _, err := RandomGame(0, 4, 0.5, rand.New(rand.NewPCG(3, 4))); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("error = %v, want ErrInvalidDimensions", err)
	}
}

func TestPatternGameBlinker(t *testing.T) {
	g, err := PatternGame("blinker", 5, 5)
	if err != nil {
		t.Fatalf("PatternGame: %v", err)
	}
	want, _ := MakeGame(5, 5, []Position{{2, 1}, {2, 2}, {2, 3}})
	if !g.Equal(want) {
		t.Fatalf("got\n%s\nwant\n%s", g, want)
	}
}

func TestPatternGameGliderTravels(t *testing.T) {
	g, err := PatternGame("glider", 8, 8)
	if err != nil {
		t.Fatalf("PatternGame: %v", err)
	}
	moved := g
	for range 4 {
		moved = moved.NextGeneration()
	}

	// after four generations a glider is the same shape one cell down and right
	var shifted []Position
	for row := range g.GetHeight() {
		for column := range g.GetWidth() {
			if cell, _ := g.CellAt(row, column); cell.IsAlive() {
				shifted = append(shifted, Position{Row: row + 1, Column: column + 1})
			}
		}
	}
	want, err := MakeGame(8, 8, shifted)
	if err != nil {
		t.Fatalf("MakeGame: %v", err)
	}
	if !moved.Equal(want) {
		t.Fatalf("got\n%s\nwant\n%s", moved, want)
	}
}

func TestPatternGameStillLifeAndOscillators(t *testing.T) {
	for _, name := range []string{"block", "beacon", "toad", "blinker"} {
		g, err := PatternGame(name, 10, 10)
		if err != nil {
			t.Fatalf("PatternGame(%s): %v", name, err)
		}
		if back := g.NextGeneration().NextGeneration(); !back.Equal(g) {
			t.Errorf("%s should repeat every two generations, got\n%s", name, back)
		}
	}
}

func TestPatternGameErrors(t *testing.T) {
	if _, err := PatternGame("spaceship", 10, 10); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("error = %v, want ErrUnknownPattern", err)
	}
	if _, err := PatternGame("beacon", 3, 3); !errors.Is(err, ErrInvalidCoordinate) {
		t.Fatalf("error = %v, want ErrInvalidCoordinate", err)
	}
}

func TestPatterns(t *testing.T) {
	names := Patterns()
	if len(names) != len(patterns) {
		t.Fatalf("got %d names, want %d", len(names), len(patterns))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}
