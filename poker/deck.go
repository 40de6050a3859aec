package poker

import (
	rand "math/rand/v2"
	"time"

	"github.com/lox/holdem-engine/internal/randutil"
)

// Deck represents a standard 52-card deck. A Deck is a single-owner mutable
// resource: it is driven sequentially by one game loop and provides no
// internal locking.
type Deck struct {
	cards [52]Card
	next  int
	rng   *rand.Rand
}

// NewDeck creates a new shuffled deck. Pass a seeded RNG for reproducible
// orderings; a nil rng seeds from the wall clock.
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = randutil.New(time.Now().UnixNano())
	}

	d := &Deck{rng: rng}

	i := 0
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}

	d.shuffle()
	return d
}

// shuffle permutes the full deck using Fisher-Yates and rewinds the cursor.
func (d *Deck) shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// DealOne deals a single card from the deck. The second return value is
// false when the deck is exhausted.
func (d *Deck) DealOne() (Card, bool) {
	if d.next >= len(d.cards) {
		return Card{}, false
	}
	card := d.cards[d.next]
	d.next++
	return card, true
}

// Deal deals up to n cards from the deck. When fewer than n cards remain it
// returns only the remainder; callers must check the length of the result.
func (d *Deck) Deal(n int) []Card {
	if n > d.CardsRemaining() {
		n = d.CardsRemaining()
	}
	if n <= 0 {
		return nil
	}

	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards
}

// Reset restores the deck to a full 52-card set and reshuffles it,
// discarding any dealt-card tracking.
func (d *Deck) Reset() {
	d.shuffle()
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return d.next >= len(d.cards)
}
