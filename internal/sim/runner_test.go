package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerTalliesEveryHand(t *testing.T) {
	t.Parallel()

	runner := NewRunner(Settings{Hands: 200, Players: 4, Seed: 1}, nil)
	results, err := runner.Run()
	require.NoError(t, err)

	assert.Equal(t, 200, results.Hands)
	assert.Len(t, results.SeatWins, 4)

	categoryTotal := 0
	for _, count := range results.Categories {
		categoryTotal += count
	}
	assert.Equal(t, 200, categoryTotal, "every hand records exactly one winning category")

	winTotal := results.Ties
	for _, wins := range results.SeatWins {
		winTotal += wins
	}
	assert.Equal(t, 200, winTotal, "every hand has a single winner or is a tie")
}

func TestRunnerIsDeterministicForSeed(t *testing.T) {
	t.Parallel()

	a, err := NewRunner(Settings{Hands: 100, Players: 3, Seed: 7}, nil).Run()
	require.NoError(t, err)
	b, err := NewRunner(Settings{Hands: 100, Players: 3, Seed: 7}, nil).Run()
	require.NoError(t, err)

	assert.Equal(t, a.Categories, b.Categories)
	assert.Equal(t, a.SeatWins, b.SeatWins)
	assert.Equal(t, a.Ties, b.Ties)
}
