package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strength(t *testing.T, s string) float64 {
	t.Helper()
	v, err := PreflopStrength(mustCards(t, s))
	require.NoError(t, err)
	return v
}

func TestPreflopStrengthBounds(t *testing.T) {
	t.Parallel()

	// Pocket aces sit at the top of the range.
	assert.GreaterOrEqual(t, strength(t, "AsAh"), 0.9)

	// Every legal two-card hand stays inside the unit interval.
	var all []Card
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			all = append(all, NewCard(rank, suit))
		}
	}
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			v, err := PreflopStrength([]Card{all[i], all[j]})
			require.NoError(t, err)
			assert.GreaterOrEqual(t, v, 0.0, "%v %v", all[i], all[j])
			assert.LessOrEqual(t, v, 1.0, "%v %v", all[i], all[j])
		}
	}
}

func TestPreflopStrengthOrdering(t *testing.T) {
	t.Parallel()

	// Pairs beat unpaired hands with the same high card.
	assert.Greater(t, strength(t, "KsKh"), strength(t, "KsQh"))

	// Suited beats offsuit.
	assert.Greater(t, strength(t, "AsKs"), strength(t, "AsKh"))

	// Connected beats gapped.
	assert.Greater(t, strength(t, "9s8h"), strength(t, "9s5h"))

	// High pairs beat low pairs.
	assert.Greater(t, strength(t, "AsAh"), strength(t, "7s7h"))

	// Premium beats trash.
	assert.Greater(t, strength(t, "AsKs"), strength(t, "7c2h"))
}

func TestPreflopStrengthIsPure(t *testing.T) {
	t.Parallel()

	a := strength(t, "QdJd")
	b := strength(t, "JdQd")
	assert.Equal(t, a, b, "strength should not depend on card order")
}

func TestPreflopStrengthRequiresTwoCards(t *testing.T) {
	t.Parallel()

	_, err := PreflopStrength(mustCards(t, "As"))
	assert.Error(t, err)
	_, err = PreflopStrength(mustCards(t, "AsKsQs"))
	assert.Error(t, err)
	_, err = PreflopStrength(nil)
	assert.Error(t, err)
}

func TestPreflopPercentile(t *testing.T) {
	t.Parallel()

	aces, err := PreflopPercentile(mustCards(t, "AsAh"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, aces)

	worst, err := PreflopPercentile(mustCards(t, "7s2h"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, worst)

	suited, err := PreflopPercentile(mustCards(t, "AsKs"))
	require.NoError(t, err)
	offsuit, err := PreflopPercentile(mustCards(t, "AsKh"))
	require.NoError(t, err)
	assert.Greater(t, suited, offsuit)

	_, err = PreflopPercentile(mustCards(t, "As"))
	assert.Error(t, err)
}

func TestPreflopPercentileCoversAllHands(t *testing.T) {
	t.Parallel()

	// Every one of the 1326 two-card combinations maps to a known class.
	var all []Card
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			all = append(all, NewCard(rank, suit))
		}
	}
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			_, err := PreflopPercentile([]Card{all[i], all[j]})
			require.NoError(t, err, "%v %v", all[i], all[j])
		}
	}
}

func TestHandKey(t *testing.T) {
	t.Parallel()
	tests := []struct {
		cards string
		want  string
	}{
		{"AsAh", "AA"},
		{"AsKs", "AKs"},
		{"KsAs", "AKs"},
		{"AcKh", "AKo"},
		{"7c2h", "72o"},
		{"Td9d", "T9s"},
	}

	for _, tc := range tests {
		cards := mustCards(t, tc.cards)
		assert.Equal(t, tc.want, HandKey(cards[0], cards[1]), "cards %s", tc.cards)
	}
}

func TestCategorizeHoleCards(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		cards    string
		expected HoleCardCategory
	}{
		{"pocket aces", "AsAh", CategoryPremium},
		{"pocket jacks", "JhJd", CategoryPremium},
		{"ace king suited", "AsKs", CategoryPremium},
		{"ace king offsuit", "AcKh", CategoryPremium},
		{"pocket tens", "TcTh", CategoryStrong},
		{"ace queen offsuit", "AcQh", CategoryStrong},
		{"ace jack suited", "AsJs", CategoryStrong},
		{"pocket nines", "9c9h", CategoryMedium},
		{"king queen suited", "KsQs", CategoryMedium},
		{"pocket twos", "2c2h", CategoryWeak},
		{"suited connectors", "7h6h", CategoryWeak},
		{"seven two offsuit", "7c2h", CategoryTrash},
		{"jack four offsuit", "Jh4c", CategoryTrash},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cards := mustCards(t, tc.cards)
			assert.Equal(t, tc.expected, CategorizeHoleCards(cards[0], cards[1]))
		})
	}
}
