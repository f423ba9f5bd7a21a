package evaluator

import (
	"errors"
	"testing"

	"github.com/lox/holdem-advisor/internal/deck"
	"github.com/lox/holdem-advisor/internal/randutil"
)

func mustEvaluate5(t *testing.T, cards string) HandScore {
	t.Helper()
	score, err := Evaluate5(deck.MustParseCards(cards))
	if err != nil {
		t.Fatalf("Evaluate5(%s): %v", cards, err)
	}
	return score
}

func TestEvaluate5Categories(t *testing.T) {
	tests := []struct {
		name      string
		cards     string
		category  Category
		tiebreaks []deck.Rank
	}{
		{
			name:      "high card",
			cards:     "As Kd 9h 7c 2s",
			category:  HighCard,
			tiebreaks: []deck.Rank{deck.Ace, deck.King, deck.Nine, deck.Seven, deck.Two},
		},
		{
			name:      "pair",
			cards:     "8s 8d Kh 7c 2s",
			category:  Pair,
			tiebreaks: []deck.Rank{deck.Eight, deck.King, deck.Seven, deck.Two},
		},
		{
			name:      "two pair orders pairs before kicker",
			cards:     "4s 4d 3h 3c Ks",
			category:  TwoPair,
			tiebreaks: []deck.Rank{deck.Four, deck.Three, deck.King},
		},
		{
			name:      "three of a kind",
			cards:     "9s 9d 9h Ac 2s",
			category:  ThreeOfAKind,
			tiebreaks: []deck.Rank{deck.Nine, deck.Ace, deck.Two},
		},
		{
			name:      "straight",
			cards:     "5s 6d 7h 8c 9s",
			category:  Straight,
			tiebreaks: []deck.Rank{deck.Nine},
		},
		{
			name:      "broadway straight",
			cards:     "Ts Jd Qh Kc As",
			category:  Straight,
			tiebreaks: []deck.Rank{deck.Ace},
		},
		{
			name:      "wheel counts ace low",
			cards:     "As 2d 3h 4c 5s",
			category:  Straight,
			tiebreaks: []deck.Rank{deck.Five},
		},
		{
			name:      "flush",
			cards:     "As Ks 9s 7s 2s",
			category:  Flush,
			tiebreaks: []deck.Rank{deck.Ace, deck.King, deck.Nine, deck.Seven, deck.Two},
		},
		{
			name:      "full house",
			cards:     "9s 9d 9h 4c 4s",
			category:  FullHouse,
			tiebreaks: []deck.Rank{deck.Nine, deck.Four},
		},
		{
			name:      "four of a kind",
			cards:     "9s 9d 9h 9c 4s",
			category:  FourOfAKind,
			tiebreaks: []deck.Rank{deck.Nine, deck.Four},
		},
		{
			name:      "straight flush",
			cards:     "5h 6h 7h 8h 9h",
			category:  StraightFlush,
			tiebreaks: []deck.Rank{deck.Nine},
		},
		{
			name:      "steel wheel",
			cards:     "Ah 2h 3h 4h 5h",
			category:  StraightFlush,
			tiebreaks: []deck.Rank{deck.Five},
		},
		{
			name:      "royal flush",
			cards:     "Th Jh Qh Kh Ah",
			category:  StraightFlush,
			tiebreaks: []deck.Rank{deck.Ace},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := mustEvaluate5(t, tt.cards)
			if score.Category != tt.category {
				t.Errorf("category = %v, want %v", score.Category, tt.category)
			}
			if len(score.TieBreaks) != len(tt.tiebreaks) {
				t.Fatalf("tiebreaks = %v, want %v", score.TieBreaks, tt.tiebreaks)
			}
			for i := range tt.tiebreaks {
				if score.TieBreaks[i] != tt.tiebreaks[i] {
					t.Errorf("tiebreaks = %v, want %v", score.TieBreaks, tt.tiebreaks)
					break
				}
			}
		})
	}
}

func TestWheelIsWeakestStraight(t *testing.T) {
	wheel := mustEvaluate5(t, "As 2d 3h 4c 5s")
	sixHigh := mustEvaluate5(t, "2s 3d 4h 5c 6s")
	broadway := mustEvaluate5(t, "Ts Jd Qh Kc Ad")

	if !sixHigh.Beats(wheel) {
		t.Errorf("six-high straight should beat the wheel")
	}
	if !broadway.Beats(wheel) {
		t.Errorf("broadway should beat the wheel")
	}
	if wheel.Compare(wheel) != 0 {
		t.Errorf("wheel should tie itself")
	}
}

func TestCategoryOrdering(t *testing.T) {
	// One representative per category, weakest to strongest
	ladder := []string{
		"As Kd 9h 7c 2s", // high card
		"8s 8d Kh 7c 2s", // pair
		"4s 4d 3h 3c Ks", // two pair
		"9s 9d 9h Ac 2s", // trips
		"5s 6d 7h 8c 9s", // straight
		"As Ks 9s 7s 2s", // flush
		"9s 9d 9h 4c 4s", // full house
		"9s 9d 9h 9c 4s", // quads
		"5h 6h 7h 8h 9h", // straight flush
	}

	for i := 1; i < len(ladder); i++ {
		lower := mustEvaluate5(t, ladder[i-1])
		higher := mustEvaluate5(t, ladder[i])
		if !higher.Beats(lower) {
			t.Errorf("%v should beat %v", higher.Category, lower.Category)
		}
		if lower.Beats(higher) {
			t.Errorf("comparison should be antisymmetric for %v vs %v", lower.Category, higher.Category)
		}
	}
}

func TestKickerBreaksTies(t *testing.T) {
	aceKicker := mustEvaluate5(t, "8s 8d Ah 7c 2s")
	kingKicker := mustEvaluate5(t, "8h 8c Kd 7s 2d")
	if !aceKicker.Beats(kingKicker) {
		t.Errorf("ace kicker should beat king kicker")
	}

	// Identical ranks in different suits are an exact tie
	spades := mustEvaluate5(t, "As Ks 9s 7s 2s")
	hearts := mustEvaluate5(t, "Ah Kh 9h 7h 2h")
	if spades.Compare(hearts) != 0 {
		t.Errorf("suit should never break a tie")
	}
}

func TestEvaluate5Errors(t *testing.T) {
	if _, err := Evaluate5(deck.MustParseCards("AsKd")); !errors.Is(err, ErrCardCount) {
		t.Errorf("expected ErrCardCount, got %v", err)
	}
	if _, err := Evaluate5(deck.MustParseCards("AsAsKdQh7c")); !errors.Is(err, ErrDuplicateCard) {
		t.Errorf("expected ErrDuplicateCard, got %v", err)
	}
}

func TestEvaluateBestErrors(t *testing.T) {
	if _, err := EvaluateBest(deck.MustParseCards("AsKdQh2c")); !errors.Is(err, ErrCardCount) {
		t.Errorf("expected ErrCardCount for 4 cards, got %v", err)
	}
	if _, err := EvaluateBest(deck.MustParseCards("AsKdQhJcTs9s8s7s")); !errors.Is(err, ErrCardCount) {
		t.Errorf("expected ErrCardCount for 8 cards, got %v", err)
	}
	if _, err := EvaluateBest(deck.MustParseCards("AsKdQhJcTs9sAs")); !errors.Is(err, ErrDuplicateCard) {
		t.Errorf("expected ErrDuplicateCard, got %v", err)
	}
}

func TestEvaluateBestFindsHiddenStraight(t *testing.T) {
	// The best 5 cards use both hole cards and three of the board
	score, err := EvaluateBest(deck.MustParseCards("6s 7d 8h 9c Ts 2d 2c"))
	if err != nil {
		t.Fatal(err)
	}
	if score.Category != Straight {
		t.Errorf("category = %v, want Straight", score.Category)
	}
	if score.TieBreaks[0] != deck.Ten {
		t.Errorf("straight high = %v, want Ten", score.TieBreaks[0])
	}
}

// TestEvaluateBestMatchesBruteForce checks EvaluateBest against an
// independent enumeration of all 21 five-card subsets for random 7-card
// hands.
func TestEvaluateBestMatchesBruteForce(t *testing.T) {
	rng := randutil.New(99)

	for trial := 0; trial < 200; trial++ {
		pool := deck.New(rng)
		cards, err := pool.Draw(7)
		if err != nil {
			t.Fatal(err)
		}

		got, err := EvaluateBest(cards)
		if err != nil {
			t.Fatal(err)
		}

		var best HandScore
		first := true
		for i := 0; i < 7; i++ {
			for j := i + 1; j < 7; j++ {
				subset := make([]deck.Card, 0, 5)
				for k := 0; k < 7; k++ {
					if k != i && k != j {
						subset = append(subset, cards[k])
					}
				}
				score, err := Evaluate5(subset)
				if err != nil {
					t.Fatal(err)
				}
				if first || score.Beats(best) {
					best = score
					first = false
				}
			}
		}

		if got.Compare(best) != 0 {
			t.Fatalf("EvaluateBest(%v) = %+v, brute force found %+v", cards, got, best)
		}
	}
}

// TestCompareIsTotalOrder samples random hands and checks antisymmetry and
// transitivity of HandScore comparison.
func TestCompareIsTotalOrder(t *testing.T) {
	rng := randutil.New(7)

	scores := make([]HandScore, 60)
	for i := range scores {
		pool := deck.New(rng)
		cards, err := pool.Draw(5)
		if err != nil {
			t.Fatal(err)
		}
		score, err := Evaluate5(cards)
		if err != nil {
			t.Fatal(err)
		}
		scores[i] = score
	}

	for _, a := range scores {
		for _, b := range scores {
			if a.Compare(b) != -b.Compare(a) {
				t.Fatalf("comparison not antisymmetric: %+v vs %+v", a, b)
			}
			for _, c := range scores {
				if a.Compare(b) > 0 && b.Compare(c) > 0 && a.Compare(c) <= 0 {
					t.Fatalf("comparison not transitive: %+v > %+v > %+v", a, b, c)
				}
			}
		}
	}
}

func TestDetermineWinners(t *testing.T) {
	board := deck.MustParseCards("As Ah Kd Kc 2s")

	holes := [][]deck.Card{
		deck.MustParseCards("AdKs"), // aces full of kings
		deck.MustParseCards("KhQc"), // kings full of aces
		deck.MustParseCards("QsQh"), // aces and kings, queen kicker
	}

	winners, scores, err := DetermineWinners(holes, board)
	if err != nil {
		t.Fatal(err)
	}
	if len(winners) != 1 || winners[0] != 0 {
		t.Errorf("winners = %v, want [0]", winners)
	}
	if scores[0].Category != FullHouse {
		t.Errorf("player 0 category = %v, want FullHouse", scores[0].Category)
	}
}

func TestDetermineWinnersChop(t *testing.T) {
	board := deck.MustParseCards("Ts Jd Qh Kc Ad")

	// Board plays for both; exact chop
	holes := [][]deck.Card{
		deck.MustParseCards("2s3s"),
		deck.MustParseCards("4h5h"),
	}

	winners, _, err := DetermineWinners(holes, board)
	if err != nil {
		t.Fatal(err)
	}
	if len(winners) != 2 {
		t.Errorf("winners = %v, want both players", winners)
	}
}

func TestDetermineWinnersRejectsDuplicates(t *testing.T) {
	board := deck.MustParseCards("As Ah Kd Kc 2s")
	holes := [][]deck.Card{
		deck.MustParseCards("AsKs"), // As also on board
		deck.MustParseCards("QsQh"),
	}
	if _, _, err := DetermineWinners(holes, board); !errors.Is(err, ErrDuplicateCard) {
		t.Errorf("expected ErrDuplicateCard, got %v", err)
	}
}
