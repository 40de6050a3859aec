package poker

import "fmt"

// Weights for the preflop strength heuristic. The base scales with the high
// card, pairs jump toward the top of the range, and suitedness and
// connectivity nudge the score. All legal inputs land in [0, 1] with pocket
// aces at the maximum.
const (
	preflopHighCardWeight  = 0.50
	preflopPairBonus       = 0.30
	preflopPairScale       = 0.20
	preflopSuitedBonus     = 0.06
	preflopConnectorBonus  = 0.05
	preflopOneGapBonus     = 0.02
	preflopWideGapPenalty  = 0.05
	preflopWideGapDistance = 5
)

// PreflopStrength scores exactly two hole cards on [0, 1] before any
// community cards are known. The score is a pure heuristic: it orders pairs
// above unpaired hands of the same high card, suited above offsuit, and
// connected above gapped, but makes no equity claim.
func PreflopStrength(hole []Card) (float64, error) {
	if len(hole) != 2 {
		return 0, fmt.Errorf("preflop strength: need exactly 2 hole cards, got %d", len(hole))
	}

	high, low := hole[0].Rank, hole[1].Rank
	if high < low {
		high, low = low, high
	}

	score := float64(high) / float64(Ace) * preflopHighCardWeight

	if high == low {
		score += preflopPairBonus + float64(high)/float64(Ace)*preflopPairScale
		return clampUnit(score), nil
	}

	if hole[0].Suit == hole[1].Suit {
		score += preflopSuitedBonus
	}

	switch gap := int(high - low); {
	case gap == 1:
		score += preflopConnectorBonus
	case gap == 2:
		score += preflopOneGapBonus
	case gap >= preflopWideGapDistance:
		score -= preflopWideGapPenalty
	}

	return clampUnit(score), nil
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// HoleCardCategory represents the strength category of hole cards
type HoleCardCategory string

const (
	CategoryPremium HoleCardCategory = "Premium"
	CategoryStrong  HoleCardCategory = "Strong"
	CategoryMedium  HoleCardCategory = "Medium"
	CategoryWeak    HoleCardCategory = "Weak"
	CategoryTrash   HoleCardCategory = "Trash"
)

// CategorizeHoleCards provides a simple preflop hand categorization.
// Categories: Premium (JJ+, AK), Strong (TT, AQ/AJ), Medium (77-99, suited
// broadway), Weak (small pairs, suited connectors), Trash (everything else).
func CategorizeHoleCards(card1, card2 Card) HoleCardCategory {
	big, small := card1.Rank, card2.Rank
	if small > big {
		small, big = big, small
	}
	suited := card1.Suit == card2.Suit
	isPair := small == big

	if isPair && small >= Jack {
		return CategoryPremium
	}
	if big == Ace && small == King {
		return CategoryPremium
	}

	if isPair && small == Ten {
		return CategoryStrong
	}
	if big == Ace && (small == Queen || small == Jack) {
		return CategoryStrong
	}

	if isPair && small >= Seven {
		return CategoryMedium
	}
	if suited && small >= Ten {
		return CategoryMedium
	}

	if isPair {
		return CategoryWeak
	}
	if suited && big-small <= 2 {
		return CategoryWeak
	}

	return CategoryTrash
}
