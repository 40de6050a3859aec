package poker

import (
	"context"
	"fmt"
	rand "math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-engine/internal/randutil"
)

// parallelThreshold is the sample count above which the worker fan-out is
// worth its setup cost.
const parallelThreshold = 500

// workerResult holds the tallies from one Monte Carlo worker
type workerResult struct {
	wins    int
	ties    int
	samples int
}

// EstimateEquity estimates the probability that the hole cards win at
// showdown against the given number of random opponents, by Monte Carlo
// simulation over the unseen cards. Ties count as half a win. The result is
// deterministic for a seeded rng.
func EstimateEquity(hole, board []Card, opponents, samples int, rng *rand.Rand) (float64, error) {
	if len(hole) != 2 {
		return 0, fmt.Errorf("estimate equity: need exactly 2 hole cards, got %d", len(hole))
	}
	if len(board) > 5 {
		return 0, fmt.Errorf("estimate equity: board cannot exceed 5 cards, got %d", len(board))
	}
	if opponents < 1 {
		return 0, fmt.Errorf("estimate equity: need at least 1 opponent, got %d", opponents)
	}
	if samples < 1 {
		return 0, fmt.Errorf("estimate equity: need at least 1 sample, got %d", samples)
	}
	if rng == nil {
		rng = randutil.New(rand.Int64())
	}

	available, err := unseenCards(hole, board)
	if err != nil {
		return 0, fmt.Errorf("estimate equity: %w", err)
	}
	if needed := opponents*2 + (5 - len(board)); needed > len(available) {
		return 0, fmt.Errorf("estimate equity: %d opponents need %d cards, only %d unseen", opponents, needed, len(available))
	}

	if samples < parallelThreshold {
		tally := runEquityWorker(hole, board, available, opponents, samples, rng)
		return equityFromTally(tally), nil
	}

	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}

	g, ctx := errgroup.WithContext(context.Background())
	results := make(chan workerResult, workers)

	for w := 0; w < workers; w++ {
		workerSamples := samples / workers
		if w < samples%workers {
			workerSamples++
		}

		// Independent RNG per worker keeps runs reproducible without contention.
		workerRNG := randutil.New(rng.Int64())

		g.Go(func() error {
			result := runEquityWorker(hole, board, available, opponents, workerSamples, workerRNG)
			select {
			case results <- result:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("estimate equity: %w", err)
	}
	close(results)

	var total workerResult
	for result := range results {
		total.wins += result.wins
		total.ties += result.ties
		total.samples += result.samples
	}
	return equityFromTally(total), nil
}

func equityFromTally(t workerResult) float64 {
	if t.samples == 0 {
		return 0
	}
	return (float64(t.wins) + float64(t.ties)/2.0) / float64(t.samples)
}

// unseenCards returns the 52-card universe minus the given cards, erroring
// on duplicates among them.
func unseenCards(hole, board []Card) ([]Card, error) {
	var used cardSet
	for _, card := range hole {
		if used.contains(card) {
			return nil, fmt.Errorf("%w %v", ErrDuplicateCard, card)
		}
		used.add(card)
	}
	for _, card := range board {
		if used.contains(card) {
			return nil, fmt.Errorf("%w %v", ErrDuplicateCard, card)
		}
		used.add(card)
	}

	available := make([]Card, 0, 52-len(hole)-len(board))
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			card := Card{Rank: rank, Suit: suit}
			if !used.contains(card) {
				available = append(available, card)
			}
		}
	}
	return available, nil
}

func runEquityWorker(hole, board, available []Card, opponents, samples int, rng *rand.Rand) workerResult {
	var result workerResult

	boardNeeded := 5 - len(board)
	draws := opponents*2 + boardNeeded

	scratch := make([]Card, len(available))
	finalBoard := make([]Card, 0, 5)
	oppHole := make([]Card, 2)

	for i := 0; i < samples; i++ {
		// Partial Fisher-Yates: only the drawn prefix needs shuffling.
		copy(scratch, available)
		for j := 0; j < draws; j++ {
			k := j + rng.IntN(len(scratch)-j)
			scratch[j], scratch[k] = scratch[k], scratch[j]
		}

		finalBoard = append(finalBoard[:0], board...)
		finalBoard = append(finalBoard, scratch[:boardNeeded]...)

		heroEval, err := EvaluateHand(hole, finalBoard)
		if err != nil {
			continue
		}

		won, tied := true, false
		for opp := 0; opp < opponents; opp++ {
			copy(oppHole, scratch[boardNeeded+opp*2:boardNeeded+opp*2+2])
			oppEval, err := EvaluateHand(oppHole, finalBoard)
			if err != nil {
				continue
			}
			switch CompareHands(heroEval, oppEval) {
			case -1:
				won, tied = false, false
			case 0:
				if won {
					tied = true
				}
			}
			if !won {
				break
			}
		}

		if won && tied {
			result.ties++
		} else if won {
			result.wins++
		}
		result.samples++
	}

	return result
}
