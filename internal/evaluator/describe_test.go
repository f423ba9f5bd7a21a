package evaluator

import (
	"testing"

	"github.com/lox/holdem-advisor/internal/deck"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		cards string
		want  string
	}{
		{"Th Jh Qh Kh Ah", "Royal flush"},
		{"Ah 2h 3h 4h 5h", "Five-high straight flush"},
		{"5h 6h 7h 8h 9h", "Nine-high straight flush"},
		{"9s 9d 9h 9c 4s", "Four of a kind, Nines with Four kicker"},
		{"As Ad Ah Tc Ts", "Full house, Aces over Tens"},
		{"As Ks 9s 7s 2s", "Flush, Ace high (Ace, King, Nine, Seven, Two)"},
		{"As 2d 3h 4c 5s", "Five-high straight"},
		{"5s 6d 7h 8c 9s", "Nine-high straight"},
		{"9s 9d 9h Ac 2s", "Three of a kind, Nines with Ace, Two kickers"},
		{"4s 4d 3h 3c Ks", "Two pair, Fours and Threes with King kicker"},
		{"8s 8d Kh 7c 2s", "Pair of Eights with King, Seven, Two kickers"},
		{"As Kd 9h 7c 2s", "Ace-high (Ace, King, Nine, Seven, Two)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			score, err := Evaluate5(deck.MustParseCards(tt.cards))
			if err != nil {
				t.Fatal(err)
			}
			if got := score.Describe(); got != tt.want {
				t.Errorf("Describe() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescribeBest(t *testing.T) {
	desc, err := DescribeBest(deck.MustParseCards("6s 7d 8h 9c Ts 2d 2c"))
	if err != nil {
		t.Fatal(err)
	}
	if desc != "Ten-high straight" {
		t.Errorf("DescribeBest = %q, want %q", desc, "Ten-high straight")
	}
}
