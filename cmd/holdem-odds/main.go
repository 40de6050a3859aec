package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/holdem-engine/internal/randutil"
	"github.com/lox/holdem-engine/poker"
)

type CLI struct {
	Hand       string `arg:"" help:"Hole cards in compact notation (e.g. 'AcKd')" required:""`
	Board      string `short:"b" help:"Community board cards (e.g. 'Td7s8h')"`
	Opponents  int    `short:"o" help:"Number of random opponents" default:"1"`
	Iterations int    `short:"i" help:"Number of Monte Carlo iterations" default:"10000"`
	Seed       *int64 `help:"Random seed for reproducible results"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem-odds"),
		kong.Description("Evaluate a Hold'em hand and estimate its equity against random opponents."))

	// Dumb terminals and pipes get plain output.
	if termenv.ColorProfile() == termenv.Ascii {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	var seed int64
	if cli.Seed != nil {
		seed = *cli.Seed
	} else {
		seed = time.Now().UnixNano()
	}
	rng := randutil.New(seed)

	hole, err := poker.ParseCards(cli.Hand)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing hand: %v\n", err)
		ctx.Exit(1)
	}
	if len(hole) != 2 {
		fmt.Fprintf(os.Stderr, "Hand must contain exactly 2 cards, got %d\n", len(hole))
		ctx.Exit(1)
	}

	var board []poker.Card
	if cli.Board != "" {
		board, err = poker.ParseCards(cli.Board)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing board: %v\n", err)
			ctx.Exit(1)
		}
		if len(board) > 5 {
			fmt.Fprintf(os.Stderr, "Board cannot have more than 5 cards\n")
			ctx.Exit(1)
		}
	}

	fmt.Println(headerStyle.Render("Hand: ") + handStyle.Render(formatCards(hole)))
	if len(board) > 0 {
		fmt.Println(headerStyle.Render("Board: ") + handStyle.Render(formatCards(board)))
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	if len(board) == 0 {
		strength, err := poker.PreflopStrength(hole)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			ctx.Exit(1)
		}
		percentile, err := poker.PreflopPercentile(hole)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			ctx.Exit(1)
		}
		category := poker.CategorizeHoleCards(hole[0], hole[1])

		fmt.Fprintf(w, "Class\t%s\n", categoryStyle.Render(poker.HandKey(hole[0], hole[1])))
		fmt.Fprintf(w, "Category\t%s\n", categoryStyle.Render(string(category)))
		fmt.Fprintf(w, "Strength\t%s\n", percentStyle.Render(fmt.Sprintf("%.2f", strength)))
		fmt.Fprintf(w, "Percentile\t%s\n", percentStyle.Render(fmt.Sprintf("%.1f%%", percentile*100)))
	} else {
		eval, err := poker.EvaluateHand(hole, board)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error evaluating hand: %v\n", err)
			ctx.Exit(1)
		}
		fmt.Fprintf(w, "Best hand\t%s\n", categoryStyle.Render(eval.String()))
	}

	equity, err := poker.EstimateEquity(hole, board, cli.Opponents, cli.Iterations, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error estimating equity: %v\n", err)
		ctx.Exit(1)
	}
	fmt.Fprintf(w, "Equity vs %d\t%s\n", cli.Opponents, percentStyle.Render(fmt.Sprintf("%.1f%%", equity*100)))
	w.Flush()
}

func formatCards(cards []poker.Card) string {
	out := ""
	for i, card := range cards {
		if i > 0 {
			out += " "
		}
		out += card.String()
	}
	return out
}
