package poker

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// HandRank enumerates the categories of poker hands ordered from weakest to
// strongest. Higher values always beat lower values.
type HandRank int

const (
	HighCard HandRank = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns a human-readable hand description.
func (hr HandRank) String() string {
	switch hr {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// HandEvaluation is the immutable result of evaluating a player's cards:
// the best category reachable, the five cards that make it, and the
// tiebreak sequence used to order hands within the same category.
type HandEvaluation struct {
	Rank HandRank

	// Cards holds the winning five-card hand (fewer for partial hands).
	Cards []Card

	// Tiebreaks lists ranks most significant first: grouped ranks (pair,
	// trips, quads) before side cards, side cards descending.
	Tiebreaks []Rank
}

// Name returns the human-readable label for the hand's category.
func (e HandEvaluation) Name() string {
	return e.Rank.String()
}

// String returns the category followed by the cards, e.g. "Full House [K♠ K♥ K♦ 3♣ 3♠]".
func (e HandEvaluation) String() string {
	cardStrs := make([]string, len(e.Cards))
	for i, card := range e.Cards {
		cardStrs[i] = card.String()
	}
	return fmt.Sprintf("%s [%s]", e.Rank, strings.Join(cardStrs, " "))
}

// Errors reported for caller contract violations. Dealing shortfalls are
// soft conditions handled by the Deck; these indicate bugs in calling code.
var (
	ErrTooFewHoleCards = errors.New("at least two hole cards are required")
	ErrTooManyCards    = errors.New("at most seven cards can be evaluated")
	ErrDuplicateCard   = errors.New("duplicate card")
)

// EvaluateHand determines the best five-card hand from two hole cards plus
// up to five community cards. Every legal five-card subset is considered and
// the strongest kept; with fewer than five cards in total the hand
// classifies by the best pattern the cards can form. The result is
// deterministic and independent of input ordering.
func EvaluateHand(hole, community []Card) (HandEvaluation, error) {
	if len(hole) < 2 {
		return HandEvaluation{}, fmt.Errorf("evaluate hand: %w (got %d)", ErrTooFewHoleCards, len(hole))
	}
	if len(hole)+len(community) > 7 {
		return HandEvaluation{}, fmt.Errorf("evaluate hand: %w (got %d)", ErrTooManyCards, len(hole)+len(community))
	}

	all := make([]Card, 0, len(hole)+len(community))
	all = append(all, hole...)
	all = append(all, community...)

	var seen cardSet
	for _, card := range all {
		if card.Rank < Two || card.Rank > Ace || card.Suit < Spades || card.Suit > Clubs {
			return HandEvaluation{}, fmt.Errorf("evaluate hand: invalid card %v", card)
		}
		if seen.contains(card) {
			return HandEvaluation{}, fmt.Errorf("evaluate hand: %w %v", ErrDuplicateCard, card)
		}
		seen.add(card)
	}

	// Canonical order makes the chosen subset independent of input order.
	slices.SortFunc(all, func(a, b Card) int {
		if a.Rank != b.Rank {
			return int(b.Rank) - int(a.Rank)
		}
		return int(a.Suit) - int(b.Suit)
	})

	if len(all) <= 5 {
		return classify(all), nil
	}

	var best HandEvaluation
	first := true
	subset := make([]Card, 0, 5)
	forEachFiveCardSubset(all, subset, func(five []Card) {
		candidate := classify(five)
		if first || CompareHands(candidate, best) > 0 {
			best = candidate
			first = false
		}
	})
	return best, nil
}

// forEachFiveCardSubset calls fn with every five-card subset of cards
// (6 or 7 cards in). Subsets are built by excluding one or two indices.
func forEachFiveCardSubset(cards, scratch []Card, fn func([]Card)) {
	if len(cards) == 6 {
		for skip := 0; skip < len(cards); skip++ {
			subset := scratch[:0]
			for i, card := range cards {
				if i != skip {
					subset = append(subset, card)
				}
			}
			fn(subset)
		}
		return
	}

	for skipA := 0; skipA < len(cards); skipA++ {
		for skipB := skipA + 1; skipB < len(cards); skipB++ {
			subset := scratch[:0]
			for i, card := range cards {
				if i != skipA && i != skipB {
					subset = append(subset, card)
				}
			}
			fn(subset)
		}
	}
}

// classify determines the category and tiebreaks for two to five cards,
// already sorted by descending rank. Flushes and straights require a full
// five cards; smaller sets classify by matching-rank counts only.
func classify(cards []Card) HandEvaluation {
	eval := HandEvaluation{Cards: slices.Clone(cards)}

	if len(cards) == 5 {
		flush := true
		for _, card := range cards[1:] {
			if card.Suit != cards[0].Suit {
				flush = false
				break
			}
		}
		high, straight := straightHigh(cards)

		switch {
		case flush && straight && high == Ace:
			eval.Rank = RoyalFlush
			eval.Tiebreaks = []Rank{high}
			return eval
		case flush && straight:
			eval.Rank = StraightFlush
			eval.Tiebreaks = []Rank{high}
			return eval
		}

		groups := groupByRank(cards)
		switch {
		case groups[0].count == 4:
			eval.Rank = FourOfAKind
		case groups[0].count == 3 && groups[1].count == 2:
			eval.Rank = FullHouse
		case flush:
			eval.Rank = Flush
		case straight:
			eval.Rank = Straight
			eval.Tiebreaks = []Rank{high}
			return eval
		case groups[0].count == 3:
			eval.Rank = ThreeOfAKind
		case groups[0].count == 2 && groups[1].count == 2:
			eval.Rank = TwoPair
		case groups[0].count == 2:
			eval.Rank = OnePair
		default:
			eval.Rank = HighCard
		}
		eval.Tiebreaks = tiebreaksFromGroups(groups)
		return eval
	}

	groups := groupByRank(cards)
	switch {
	case groups[0].count == 4:
		eval.Rank = FourOfAKind
	case groups[0].count == 3 && len(groups) > 1 && groups[1].count == 2:
		eval.Rank = FullHouse
	case groups[0].count == 3:
		eval.Rank = ThreeOfAKind
	case groups[0].count == 2 && len(groups) > 1 && groups[1].count == 2:
		eval.Rank = TwoPair
	case groups[0].count == 2:
		eval.Rank = OnePair
	default:
		eval.Rank = HighCard
	}
	eval.Tiebreaks = tiebreaksFromGroups(groups)
	return eval
}

// rankGroup records how many cards of one rank are present.
type rankGroup struct {
	rank  Rank
	count int
}

// groupByRank buckets cards by rank, ordered by count descending then rank
// descending, so the defining group of the hand always comes first.
func groupByRank(cards []Card) []rankGroup {
	var counts [15]int
	for _, card := range cards {
		counts[card.Rank]++
	}

	groups := make([]rankGroup, 0, len(cards))
	for rank := Ace; rank >= Two; rank-- {
		if counts[rank] > 0 {
			groups = append(groups, rankGroup{rank: rank, count: counts[rank]})
		}
	}
	slices.SortStableFunc(groups, func(a, b rankGroup) int {
		return b.count - a.count
	})
	return groups
}

// tiebreaksFromGroups flattens grouped ranks into the tiebreak sequence:
// defining groups first, then kickers in descending rank order.
func tiebreaksFromGroups(groups []rankGroup) []Rank {
	tiebreaks := make([]Rank, len(groups))
	for i, g := range groups {
		tiebreaks[i] = g.rank
	}
	return tiebreaks
}

// straightHigh reports whether five descending-sorted cards form a straight
// and returns its high rank. The wheel (A-2-3-4-5) counts with the Ace low,
// so its high card is the Five.
func straightHigh(cards []Card) (Rank, bool) {
	for i := 1; i < len(cards); i++ {
		if cards[i].Rank == cards[i-1].Rank {
			return 0, false
		}
	}

	// Wheel: sorted descending this reads A 5 4 3 2.
	if cards[0].Rank == Ace && cards[1].Rank == Five &&
		cards[2].Rank == Four && cards[3].Rank == Three && cards[4].Rank == Two {
		return Five, true
	}

	for i := 1; i < len(cards); i++ {
		if cards[i-1].Rank-cards[i].Rank != 1 {
			return 0, false
		}
	}
	return cards[0].Rank, true
}

// CompareHands compares two evaluations and returns 1 if a wins, -1 if b
// wins, and 0 on an exact tie. Categories compare first, then the tiebreak
// sequences lexicographically.
func CompareHands(a, b HandEvaluation) int {
	if a.Rank != b.Rank {
		if a.Rank > b.Rank {
			return 1
		}
		return -1
	}

	for i := 0; i < len(a.Tiebreaks) && i < len(b.Tiebreaks); i++ {
		if a.Tiebreaks[i] != b.Tiebreaks[i] {
			if a.Tiebreaks[i] > b.Tiebreaks[i] {
				return 1
			}
			return -1
		}
	}

	// Partial hands can carry shorter sequences; more cards wins the prefix tie.
	switch {
	case len(a.Tiebreaks) > len(b.Tiebreaks):
		return 1
	case len(a.Tiebreaks) < len(b.Tiebreaks):
		return -1
	}
	return 0
}
