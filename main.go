package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/integrii/flaggy"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/simulation"
	"github.com/sheikhrachel/go-life/utils"
)

const defaultConfigFile = "config.json"

func main() {
	config, err := parseOptions(os.Args[1:])
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	random := randomGames(config, newRandomSource(config))
	grid, err := initializeGame(config, random)
	if err != nil {
		log.Fatalf("failed to create initial grid: %v", err)
	}
	displayGameInfo(config, grid)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sim := simulation.New(
		config,
		grid,
		model.NewTerminalRenderer(config.Color),
		simulation.WithReseed(random),
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error { return sim.Run(ctx) })

	if err := eg.Wait(); err != nil {
		log.Fatalf("simulation failed: %v", err)
	}
	displayFinalStats(sim)
}

// parseOptions loads the config file, if any, then applies command line overrides
func parseOptions(args []string) (utils.Config, error) {
	configFile := ""
	config := utils.DefaultConfig()

	parser := flaggy.NewParser("go-life")
	parser.Description = "Conway's Game of Life in the terminal"
	parser.ShowHelpOnUnexpected = true

	// flags are parsed again over a loaded config file so they take precedence
	parser.String(&configFile, "c", "config", "Path to a JSON config file (default "+defaultConfigFile+" if present)")
	bindConfigFlags(parser, &config)
	if err := parser.ParseArgs(args); err != nil {
		return config, err
	}

	if configFile == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			configFile = defaultConfigFile
		}
	}
	if configFile != "" {
		loaded, err := utils.LoadConfig(configFile)
		if err != nil {
			return config, err
		}
		config = loaded

		overrides := flaggy.NewParser("go-life")
		overrides.String(&configFile, "c", "config", "")
		bindConfigFlags(overrides, &config)
		if err := overrides.ParseArgs(args); err != nil {
			return config, err
		}
	}

	if _, err := model.ParseBoundary(config.Boundary); err != nil {
		return config, err
	}
	return config, config.Validate()
}

func bindConfigFlags(parser *flaggy.Parser, config *utils.Config) {
	parser.Int(&config.Width, "x", "width", "Width of the grid")
	parser.Int(&config.Height, "y", "height", "Height of the grid")
	parser.Duration(&config.FrameRate, "i", "interval", "Interval between generations, for example 100ms")
	parser.Int(&config.MaxGenerations, "s", "maxGenerations", "Stop after this many generations (0 runs until interrupted)")
	parser.String(&config.Boundary, "b", "boundary", "Grid boundary [flat|round]")
	parser.String(&config.Pattern, "p", "pattern", "Start from a pattern ["+strings.Join(model.Patterns(), "|")+"] instead of random cells")
	parser.Float64(&config.RandomDensity, "d", "density", "Probability of a random cell starting alive")
	parser.Int64(&config.Seed, "sd", "seed", "Random seed (0 picks one from the clock)")
	parser.Bool(&config.AutoRestart, "r", "autoRestart", "Reseed randomly on extinction or stagnation")
	parser.Int(&config.StagnationThreshold, "st", "stagnation", "Generations of repetition before stopping or restarting (0 disables)")
	parser.Bool(&config.UseParallel, "pl", "parallel", "Advance generations on all CPUs")
	parser.Bool(&config.Color, "cl", "color", "Color living cells")
}

// displayFinalStats shows the summary once the loop ends
func displayFinalStats(sim *simulation.Simulation) {
	stats := sim.Stats()
	fmt.Printf("\nStopped: %s\n", sim.StopReason())
	fmt.Printf("Final stats: %d generations in %.1f seconds, %d restarts\n",
		sim.Generation(), stats.Runtime().Seconds(), stats.Restarts)
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
