package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// ErrInsufficient is returned when a draw requests more cards than remain
// in the pool.
var ErrInsufficient = errors.New("not enough cards remaining in deck")

// Deck is a pool of cards supporting uniform draws without replacement.
// Known cards (hole cards, board cards) are excluded at construction so a
// simulation trial can never deal a card twice.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a full 52-card deck with explicit RNG
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
	return d
}

// NewExcluding creates a deck of the 52 cards minus the excluded ones.
// Duplicate entries in excluded are tolerated.
func NewExcluding(rng *rand.Rand, excluded ...Card) *Deck {
	seen := make(map[Card]bool, len(excluded))
	for _, c := range excluded {
		seen[c] = true
	}

	d := &Deck{
		cards: make([]Card, 0, 52-len(seen)),
		rng:   rng,
	}
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			card := NewCard(rank, suit)
			if !seen[card] {
				d.cards = append(d.cards, card)
			}
		}
	}
	return d
}

// Draw removes and returns n cards chosen uniformly at random without
// replacement. The only error condition is asking for more cards than
// remain.
func (d *Deck) Draw(n int) ([]Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot draw %d cards", n)
	}
	if n > len(d.cards) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrInsufficient, n, len(d.cards))
	}

	// Partial Fisher-Yates: each selected card swaps to the tail, which is
	// then truncated. Uniform regardless of prior draw history.
	drawn := make([]Card, n)
	for i := 0; i < n; i++ {
		last := len(d.cards) - 1
		j := d.rng.IntN(last + 1)
		d.cards[j], d.cards[last] = d.cards[last], d.cards[j]
		drawn[i] = d.cards[last]
		d.cards = d.cards[:last]
	}
	return drawn, nil
}

// Sample returns n cards chosen uniformly at random without replacement,
// leaving the pool intact. Successive calls are independent draws from the
// same pool, which is what a Monte Carlo trial loop wants: one Deck per
// worker, one Sample per trial.
func (d *Deck) Sample(n int) ([]Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot sample %d cards", n)
	}
	if n > len(d.cards) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrInsufficient, n, len(d.cards))
	}

	// Selected cards swap toward the tail so they cannot be picked twice
	// within one call. The pool keeps its length; order does not matter
	// for uniformity.
	for i := 0; i < n; i++ {
		last := len(d.cards) - 1 - i
		j := d.rng.IntN(last + 1)
		d.cards[j], d.cards[last] = d.cards[last], d.cards[j]
	}
	drawn := make([]Card, n)
	copy(drawn, d.cards[len(d.cards)-n:])
	return drawn, nil
}

// SampleInto is Sample without the allocation; it fills dst and returns it.
func (d *Deck) SampleInto(dst []Card) ([]Card, error) {
	n := len(dst)
	if n > len(d.cards) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrInsufficient, n, len(d.cards))
	}
	for i := 0; i < n; i++ {
		last := len(d.cards) - 1 - i
		j := d.rng.IntN(last + 1)
		d.cards[j], d.cards[last] = d.cards[last], d.cards[j]
	}
	copy(dst, d.cards[len(d.cards)-n:])
	return dst, nil
}

// Remaining returns the number of cards left in the pool
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining pool
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
