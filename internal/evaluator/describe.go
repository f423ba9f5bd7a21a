package evaluator

import (
	"fmt"
	"strings"

	"github.com/lox/holdem-advisor/internal/deck"
)

var rankWords = map[deck.Rank]string{
	deck.Two: "Two", deck.Three: "Three", deck.Four: "Four",
	deck.Five: "Five", deck.Six: "Six", deck.Seven: "Seven",
	deck.Eight: "Eight", deck.Nine: "Nine", deck.Ten: "Ten",
	deck.Jack: "Jack", deck.Queen: "Queen", deck.King: "King",
	deck.Ace: "Ace",
}

var rankPlurals = map[deck.Rank]string{
	deck.Two: "Twos", deck.Three: "Threes", deck.Four: "Fours",
	deck.Five: "Fives", deck.Six: "Sixes", deck.Seven: "Sevens",
	deck.Eight: "Eights", deck.Nine: "Nines", deck.Ten: "Tens",
	deck.Jack: "Jacks", deck.Queen: "Queens", deck.King: "Kings",
	deck.Ace: "Aces",
}

func rankWord(r deck.Rank) string {
	if w, ok := rankWords[r]; ok {
		return w
	}
	return "?"
}

func rankPlural(r deck.Rank) string {
	if w, ok := rankPlurals[r]; ok {
		return w
	}
	return "?"
}

func joinWords(ranks []deck.Rank) string {
	words := make([]string, len(ranks))
	for i, r := range ranks {
		words[i] = rankWord(r)
	}
	return strings.Join(words, ", ")
}

// Describe renders a HandScore as text, e.g.
// "Two pair, Fours and Threes with King kicker".
func (s HandScore) Describe() string {
	tb := s.TieBreaks

	switch s.Category {
	case StraightFlush:
		high := tb[0]
		if high == deck.Ace {
			return "Royal flush"
		}
		if high == deck.Five {
			return "Five-high straight flush"
		}
		return fmt.Sprintf("%s-high straight flush", rankWord(high))

	case FourOfAKind:
		return fmt.Sprintf("Four of a kind, %s with %s kicker",
			rankPlural(tb[0]), rankWord(tb[1]))

	case FullHouse:
		return fmt.Sprintf("Full house, %s over %s",
			rankPlural(tb[0]), rankPlural(tb[1]))

	case Flush:
		return fmt.Sprintf("Flush, %s high (%s)", rankWord(tb[0]), joinWords(tb))

	case Straight:
		high := tb[0]
		if high == deck.Five {
			return "Five-high straight"
		}
		return fmt.Sprintf("%s-high straight", rankWord(high))

	case ThreeOfAKind:
		if len(tb) > 1 {
			return fmt.Sprintf("Three of a kind, %s with %s kickers",
				rankPlural(tb[0]), joinWords(tb[1:]))
		}
		return fmt.Sprintf("Three of a kind, %s", rankPlural(tb[0]))

	case TwoPair:
		return fmt.Sprintf("Two pair, %s and %s with %s kicker",
			rankPlural(tb[0]), rankPlural(tb[1]), rankWord(tb[2]))

	case Pair:
		if len(tb) > 1 {
			return fmt.Sprintf("Pair of %s with %s kickers",
				rankPlural(tb[0]), joinWords(tb[1:]))
		}
		return fmt.Sprintf("Pair of %s", rankPlural(tb[0]))

	case HighCard:
		return fmt.Sprintf("%s-high (%s)", rankWord(tb[0]), joinWords(tb))

	default:
		return fmt.Sprintf("%s %v", s.Category, tb)
	}
}

// DescribeBest evaluates the best hand from 5-7 cards and describes it
func DescribeBest(cards []deck.Card) (string, error) {
	score, err := EvaluateBest(cards)
	if err != nil {
		return "", err
	}
	return score.Describe(), nil
}
