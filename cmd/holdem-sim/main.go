package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/sim"
	"github.com/lox/holdem-engine/poker"
)

type CLI struct {
	Config  string `short:"c" default:"holdem-sim.hcl" help:"Path to HCL configuration file"`
	Hands   int    `help:"Override number of hands to simulate"`
	Players int    `help:"Override number of players at the table"`
	Seed    int64  `help:"Override RNG seed (0 for random)"`
	Verbose bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem-sim"),
		kong.Description("Deal many hands of Hold'em and report showdown statistics."))

	config, err := sim.LoadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		ctx.Exit(1)
	}
	if cli.Hands > 0 {
		config.Simulation.Hands = cli.Hands
	}
	if cli.Players > 0 {
		config.Simulation.Players = cli.Players
	}
	if cli.Seed != 0 {
		config.Simulation.Seed = cli.Seed
	}
	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		ctx.Exit(1)
	}

	level := log.InfoLevel
	if cli.Verbose || config.Simulation.LogLevel == "debug" {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	runner := sim.NewRunner(config.Simulation, logger)
	results, err := runner.Run()
	if err != nil {
		logger.Error("simulation failed", "err", err)
		ctx.Exit(1)
	}

	printResults(results)
}

func printResults(results *sim.Results) {
	fmt.Printf("\nWinning hand categories over %d hands:\n\n", results.Hands)

	ranks := make([]poker.HandRank, 0, len(results.Categories))
	for rank := range results.Categories {
		ranks = append(ranks, rank)
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, rank := range ranks {
		count := results.Categories[rank]
		fmt.Fprintf(w, "%s\t%d\t%.2f%%\n", rank, count, float64(count)/float64(results.Hands)*100)
	}
	w.Flush()

	fmt.Printf("\nSeat wins (ties excluded): %v, ties: %d\n", results.SeatWins, results.Ties)
}
