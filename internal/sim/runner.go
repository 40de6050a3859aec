// Package sim deals complete hands of Texas Hold'em to a table of players
// and aggregates showdown statistics, exercising the deck and evaluator the
// way a real game loop would.
package sim

import (
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/randutil"
	"github.com/lox/holdem-engine/poker"
)

// Results aggregates the outcomes of a simulation run.
type Results struct {
	Hands      int
	Categories map[poker.HandRank]int
	SeatWins   []int
	Ties       int
	Elapsed    time.Duration
}

// Runner drives repeated deals from a single deck.
type Runner struct {
	settings Settings
	logger   *log.Logger
	rng      *rand.Rand
}

// NewRunner creates a runner for the given settings. A zero seed picks a
// wall-clock seed.
func NewRunner(settings Settings, logger *log.Logger) *Runner {
	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Runner{
		settings: settings,
		logger:   logger,
		rng:      randutil.New(seed),
	}
}

// Run deals the configured number of hands and tallies the winning hand
// categories and per-seat win counts.
func (r *Runner) Run() (*Results, error) {
	start := time.Now()
	deck := poker.NewDeck(r.rng)

	results := &Results{
		Categories: make(map[poker.HandRank]int),
		SeatWins:   make([]int, r.settings.Players),
	}

	holes := make([][]poker.Card, r.settings.Players)
	evals := make([]poker.HandEvaluation, r.settings.Players)

	for hand := 0; hand < r.settings.Hands; hand++ {
		deck.Reset()

		for seat := range holes {
			holes[seat] = deck.Deal(2)
		}
		board := deck.Deal(5)

		for seat, hole := range holes {
			eval, err := poker.EvaluateHand(hole, board)
			if err != nil {
				return nil, fmt.Errorf("hand %d seat %d: %w", hand, seat, err)
			}
			evals[seat] = eval
		}

		winner, tied := showdown(evals)
		results.Categories[evals[winner].Rank]++
		if tied {
			results.Ties++
		} else {
			results.SeatWins[winner]++
		}
		results.Hands++

		if r.logger != nil && (hand+1)%5000 == 0 {
			r.logger.Debug("simulation progress", "hands", hand+1, "total", r.settings.Hands)
		}
	}

	results.Elapsed = time.Since(start)
	if r.logger != nil {
		r.logger.Info("simulation complete",
			"hands", results.Hands,
			"players", r.settings.Players,
			"ties", results.Ties,
			"elapsed", results.Elapsed)
	}
	return results, nil
}

// showdown finds the winning seat and whether the top hand is shared.
func showdown(evals []poker.HandEvaluation) (winner int, tied bool) {
	for seat := 1; seat < len(evals); seat++ {
		switch poker.CompareHands(evals[seat], evals[winner]) {
		case 1:
			winner = seat
			tied = false
		case 0:
			tied = true
		}
	}
	return winner, tied
}
