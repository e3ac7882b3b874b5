package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// newRandomSource seeds from the config, or from the clock when no seed is set
func newRandomSource(config utils.Config) *rand.Rand {
	seed := uint64(config.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, 0))
}

// randomGames returns a function producing a new random grid on every call
func randomGames(config utils.Config, rng *rand.Rand) func() (*model.Grid, error) {
	return func() (*model.Grid, error) {
		return model.RandomGame(config.Width, config.Height, config.RandomDensity, rng)
	}
}

// initializeGame builds the initial grid from a pattern or random cells
func initializeGame(config utils.Config, random func() (*model.Grid, error)) (*model.Grid, error) {
	boundary, err := model.ParseBoundary(config.Boundary)
	if err != nil {
		return nil, err
	}

	var grid *model.Grid
	if config.Pattern != "" {
		grid, err = model.PatternGame(config.Pattern, config.Width, config.Height)
	} else {
		grid, err = random()
	}
	if err != nil {
		return nil, err
	}
	return grid.WithBoundary(boundary), nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid) {
	start := "random"
	if config.Pattern != "" {
		start = config.Pattern
	}
	fmt.Printf("Grid: %dx%d %s | Start: %s | Initial living cells: %d\n",
		grid.GetWidth(), grid.GetHeight(), grid.Boundary(), start, grid.CountLivingCells())
	fmt.Printf("Interval: %v | Parallel: %v | Auto restart: %v\n",
		config.FrameRate, config.UseParallel, config.AutoRestart)
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}
