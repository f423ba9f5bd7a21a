// Package evaluator scores Texas Hold'em hands. Evaluate5 classifies an
// exact 5-card hand into one of nine categories with full tie-break
// information; EvaluateBest picks the strongest 5-card combination out of
// 5 to 7 cards by exhaustive enumeration.
package evaluator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lox/holdem-advisor/internal/deck"
)

// Category enumerates poker hand categories ordered from weakest to strongest
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns a human-readable category name
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
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
	default:
		return "Unknown"
	}
}

var (
	// ErrCardCount is returned when a hand has fewer than 5 or more than 7 cards
	ErrCardCount = errors.New("hand must contain between 5 and 7 cards")

	// ErrDuplicateCard is returned when the same card appears twice
	ErrDuplicateCard = errors.New("duplicate card")
)

// HandScore is an evaluated hand: a category plus the tie-break ranks in
// comparison priority order (highest priority first, each rank descending
// within its group). Two scores compare first by category, then
// lexicographically by tie-breaks; equal scores are an exact chop.
//
// For the five-high straight the straight-defining rank is 5, not Ace,
// so the wheel loses to every other straight.
type HandScore struct {
	Category  Category
	TieBreaks []deck.Rank
}

// Compare returns 1 if s beats o, -1 if o beats s, and 0 on an exact tie
func (s HandScore) Compare(o HandScore) int {
	if s.Category != o.Category {
		if s.Category > o.Category {
			return 1
		}
		return -1
	}
	for i := 0; i < len(s.TieBreaks) && i < len(o.TieBreaks); i++ {
		if s.TieBreaks[i] != o.TieBreaks[i] {
			if s.TieBreaks[i] > o.TieBreaks[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Beats returns true if s strictly beats o
func (s HandScore) Beats(o HandScore) bool {
	return s.Compare(o) > 0
}

// Evaluate5 scores exactly 5 cards.
func Evaluate5(cards []deck.Card) (HandScore, error) {
	if len(cards) != 5 {
		return HandScore{}, fmt.Errorf("%w: got %d, need exactly 5", ErrCardCount, len(cards))
	}
	if err := ValidateUnique(cards); err != nil {
		return HandScore{}, err
	}
	return evaluate5(cards), nil
}

// evaluate5 assumes 5 distinct cards
func evaluate5(cards []deck.Card) HandScore {
	var counts [15]int // indexed by rank value 2..14
	flush := true
	for i, c := range cards {
		counts[c.Rank]++
		if i > 0 && c.Suit != cards[0].Suit {
			flush = false
		}
	}

	// Distinct ranks, descending
	ranks := make([]deck.Rank, 0, 5)
	for r := deck.Ace; r >= deck.Two; r-- {
		if counts[r] > 0 {
			ranks = append(ranks, r)
		}
	}

	straightHigh := deck.Rank(0)
	if len(ranks) == 5 {
		switch {
		case ranks[0]-ranks[4] == 4:
			straightHigh = ranks[0]
		case ranks[0] == deck.Ace && ranks[1] == deck.Five && ranks[4] == deck.Two:
			// Wheel: the ace plays low, five is the straight high card
			straightHigh = deck.Five
		}
	}

	if straightHigh != 0 && flush {
		return HandScore{Category: StraightFlush, TieBreaks: []deck.Rank{straightHigh}}
	}

	// Group ranks by multiplicity: count descending, then rank descending
	type group struct {
		rank  deck.Rank
		count int
	}
	groups := make([]group, 0, 5)
	for _, r := range ranks {
		groups = append(groups, group{rank: r, count: counts[r]})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})

	tiebreaks := func() []deck.Rank {
		tb := make([]deck.Rank, len(groups))
		for i, g := range groups {
			tb[i] = g.rank
		}
		return tb
	}

	switch {
	case groups[0].count == 4:
		return HandScore{Category: FourOfAKind, TieBreaks: tiebreaks()}
	case groups[0].count == 3 && groups[1].count == 2:
		return HandScore{Category: FullHouse, TieBreaks: tiebreaks()}
	case flush:
		return HandScore{Category: Flush, TieBreaks: tiebreaks()}
	case straightHigh != 0:
		return HandScore{Category: Straight, TieBreaks: []deck.Rank{straightHigh}}
	case groups[0].count == 3:
		return HandScore{Category: ThreeOfAKind, TieBreaks: tiebreaks()}
	case groups[0].count == 2 && groups[1].count == 2:
		return HandScore{Category: TwoPair, TieBreaks: tiebreaks()}
	case groups[0].count == 2:
		return HandScore{Category: Pair, TieBreaks: tiebreaks()}
	default:
		return HandScore{Category: HighCard, TieBreaks: tiebreaks()}
	}
}

// EvaluateBest scores the strongest 5-card combination from 5 to 7 cards.
// With 7 cards this enumerates all 21 subsets; there is no cheaper exact
// shortcut at this scale.
func EvaluateBest(cards []deck.Card) (HandScore, error) {
	n := len(cards)
	if n < 5 || n > 7 {
		return HandScore{}, fmt.Errorf("%w: got %d", ErrCardCount, n)
	}
	if err := ValidateUnique(cards); err != nil {
		return HandScore{}, err
	}
	return evaluateBest(cards), nil
}

// EvaluateBestUnchecked is EvaluateBest without input validation. The
// caller guarantees 5 to 7 distinct cards; behavior is undefined otherwise.
// Simulation loops that build hands from a deduplicated pool use this to
// skip per-trial validation.
func EvaluateBestUnchecked(cards []deck.Card) HandScore {
	return evaluateBest(cards)
}

// evaluateBest assumes 5-7 distinct cards
func evaluateBest(cards []deck.Card) HandScore {
	n := len(cards)
	if n == 5 {
		return evaluate5(cards)
	}

	var best HandScore
	first := true
	var combo [5]deck.Card
	// Enumerate C(n,5) by choosing the n-5 cards to leave out
	for i := 0; i < n; i++ {
		if n == 6 {
			pick(cards, combo[:], i, -1)
			score := evaluate5(combo[:])
			if first || score.Beats(best) {
				best = score
				first = false
			}
			continue
		}
		for j := i + 1; j < n; j++ {
			pick(cards, combo[:], i, j)
			score := evaluate5(combo[:])
			if first || score.Beats(best) {
				best = score
				first = false
			}
		}
	}
	return best
}

// pick fills dst with every card except the ones at skip1 and skip2
func pick(cards []deck.Card, dst []deck.Card, skip1, skip2 int) {
	k := 0
	for i, c := range cards {
		if i == skip1 || i == skip2 {
			continue
		}
		dst[k] = c
		k++
	}
}

// ValidateUnique returns ErrDuplicateCard if any card appears more than once
func ValidateUnique(cards []deck.Card) error {
	seen := make(map[deck.Card]bool, len(cards))
	for _, c := range cards {
		if seen[c] {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen[c] = true
	}
	return nil
}

// DetermineWinners evaluates every player's best hand over their hole cards
// plus the board and returns the indices of the strongest (more than one on
// a chop) along with each player's score.
func DetermineWinners(holeHands [][]deck.Card, board []deck.Card) ([]int, []HandScore, error) {
	if len(holeHands) == 0 {
		return nil, nil, errors.New("need at least one player")
	}

	all := make([]deck.Card, 0, len(holeHands)*2+len(board))
	for _, hole := range holeHands {
		if len(hole) != 2 {
			return nil, nil, fmt.Errorf("each player needs exactly 2 hole cards, got %d", len(hole))
		}
		all = append(all, hole...)
	}
	all = append(all, board...)
	if err := ValidateUnique(all); err != nil {
		return nil, nil, err
	}

	scores := make([]HandScore, len(holeHands))
	for i, hole := range holeHands {
		hand := make([]deck.Card, 0, len(hole)+len(board))
		hand = append(hand, hole...)
		hand = append(hand, board...)
		score, err := EvaluateBest(hand)
		if err != nil {
			return nil, nil, err
		}
		scores[i] = score
	}

	best := scores[0]
	for _, s := range scores[1:] {
		if s.Beats(best) {
			best = s
		}
	}

	var winners []int
	for i, s := range scores {
		if s.Compare(best) == 0 {
			winners = append(winners, i)
		}
	}
	return winners, scores, nil
}
