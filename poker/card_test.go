package poker

import "testing"

func TestCardCreation(t *testing.T) {
	t.Parallel()

	aceSpades := NewCard(Ace, Spades)
	if aceSpades.Rank != Ace {
		t.Errorf("Expected rank Ace, got %d", aceSpades.Rank)
	}
	if aceSpades.Suit != Spades {
		t.Errorf("Expected suit Spades, got %d", aceSpades.Suit)
	}
	if aceSpades.String() != "A♠" {
		t.Errorf("Expected 'A♠', got %s", aceSpades.String())
	}
	if aceSpades.Code() != "As" {
		t.Errorf("Expected 'As', got %s", aceSpades.Code())
	}

	twoClubs := NewCard(Two, Clubs)
	if twoClubs.String() != "2♣" {
		t.Errorf("Expected '2♣', got %s", twoClubs.String())
	}
	if twoClubs.Code() != "2c" {
		t.Errorf("Expected '2c', got %s", twoClubs.Code())
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  bool
	}{
		{"ace of spades", "As", NewCard(Ace, Spades), false},
		{"two of hearts", "2h", NewCard(Two, Hearts), false},
		{"king of diamonds", "Kd", NewCard(King, Diamonds), false},
		{"ten of clubs", "Tc", NewCard(Ten, Clubs), false},
		{"lowercase", "qh", NewCard(Queen, Hearts), false},
		{"invalid rank", "Xs", Card{}, true},
		{"invalid suit", "Ax", Card{}, true},
		{"empty string", "", Card{}, true},
		{"too short", "A", Card{}, true},
		{"too long", "Asd", Card{}, true},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			card, err := ParseCard(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseCard(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if !tc.wantErr && card != tc.wantCard {
				t.Errorf("ParseCard(%q) = %v, want %v", tc.input, card, tc.wantCard)
			}
		})
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()

	cards, err := ParseCards("AsKs QsJsTs")
	if err != nil {
		t.Fatalf("ParseCards failed: %v", err)
	}
	if len(cards) != 5 {
		t.Fatalf("Expected 5 cards, got %d", len(cards))
	}
	if cards[0] != NewCard(Ace, Spades) || cards[4] != NewCard(Ten, Spades) {
		t.Errorf("Unexpected cards: %v", cards)
	}

	if _, err := ParseCards("AsK"); err == nil {
		t.Error("Expected error for odd-length string")
	}
	if _, err := ParseCards("AsXx"); err == nil {
		t.Error("Expected error for invalid card")
	}
}

func TestAll52CardsRoundTrip(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			card := NewCard(rank, suit)
			code := card.Code()

			if seen[code] {
				t.Errorf("Duplicate card: %s", code)
			}
			seen[code] = true

			parsed, err := ParseCard(code)
			if err != nil {
				t.Errorf("Failed to parse %s: %v", code, err)
			}
			if parsed != card {
				t.Errorf("Round-trip failed for %s", code)
			}
		}
	}
	if len(seen) != 52 {
		t.Errorf("Expected 52 distinct cards, got %d", len(seen))
	}
}
