package poker

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the suit symbol
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Aces are high (14) but count as 1 when
// completing the A-2-3-4-5 straight.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the one-character rank notation
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Nine:
		return string(rune('0' + r))
	case r == Ten:
		return "T"
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// Card represents a playing card. Cards are immutable values, equal when
// rank and suit both match.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the card with its suit symbol (e.g., "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// Code returns the two-character notation used by parsers (e.g., "As", "Td")
func (c Card) Code() string {
	return c.Rank.String() + suitCode(c.Suit)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

func suitCode(s Suit) string {
	switch s {
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	default:
		return "?"
	}
}

// ParseCard parses two-character notation like "As" or "td" into a Card.
// Ranks: A K Q J T 9-2, suits: s h d c. Case-insensitive.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card %q: must be two characters", s)
	}

	var rank Rank
	switch s[0] {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		rank = Rank(s[0] - '0')
	case 'T', 't':
		rank = Ten
	case 'J', 'j':
		rank = Jack
	case 'Q', 'q':
		rank = Queen
	case 'K', 'k':
		rank = King
	case 'A', 'a':
		rank = Ace
	default:
		return Card{}, fmt.Errorf("invalid rank %q in card %q", s[0], s)
	}

	var suit Suit
	switch s[1] {
	case 's', 'S':
		suit = Spades
	case 'h', 'H':
		suit = Hearts
	case 'd', 'D':
		suit = Diamonds
	case 'c', 'C':
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("invalid suit %q in card %q", s[1], s)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses concatenated card notation like "AsKsQsJsTs" into cards.
// Spaces between cards are allowed.
func ParseCards(s string) ([]Card, error) {
	var cards []Card
	cleaned := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' {
			cleaned = append(cleaned, s[i])
		}
	}
	if len(cleaned)%2 != 0 {
		return nil, fmt.Errorf("invalid card string %q: odd length", s)
	}
	for i := 0; i < len(cleaned); i += 2 {
		card, err := ParseCard(string(cleaned[i : i+2]))
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// cardSet is a bitset over the 52-card universe, used for duplicate
// detection and dead-card tracking. Index = (rank-2)*4 + suit.
type cardSet uint64

func cardIndex(c Card) int {
	return int(c.Rank-Two)*4 + int(c.Suit)
}

func (cs *cardSet) add(c Card) {
	*cs |= 1 << cardIndex(c)
}

func (cs cardSet) contains(c Card) bool {
	return cs&(1<<cardIndex(c)) != 0
}
