package main

import (
	"fmt"
	"strings"

	"github.com/lox/holdem-advisor/internal/deck"
	"github.com/lox/holdem-advisor/internal/evaluator"
)

// EvalCmd evaluates the best 5-card hand from the given cards
type EvalCmd struct {
	Cards string `arg:"" help:"5-7 cards in compact notation, e.g. 'AsKdQh7c2s'"`
}

func (c *EvalCmd) Run(ctx *cmdContext) error {
	cards, err := deck.ParseCards(c.Cards)
	if err != nil {
		return err
	}

	score, err := evaluator.EvaluateBest(cards)
	if err != nil {
		return err
	}

	ranks := make([]string, len(score.TieBreaks))
	for i, r := range score.TieBreaks {
		ranks[i] = r.String()
	}

	fmt.Printf("%s %s\n", headerStyle.Render("cards"), cardStyle.Render(formatCards(cards)))
	fmt.Printf("%s %s\n", headerStyle.Render("hand "), score.Describe())
	fmt.Printf("%s %s [%s]\n", headerStyle.Render("score"),
		score.Category, strings.Join(ranks, " "))
	return nil
}
