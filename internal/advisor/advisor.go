// Package advisor ties the equity simulator and the decision engine into a
// single entry point for the shells: given a hand, a board and the table
// stakes it estimates equity and recommends an action.
package advisor

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-advisor/internal/decision"
	"github.com/lox/holdem-advisor/internal/deck"
	"github.com/lox/holdem-advisor/internal/equity"
	"github.com/lox/holdem-advisor/internal/evaluator"
)

// Request describes one advisory query
type Request struct {
	Hole  []deck.Card
	Board []deck.Card

	Opponents int
	Trials    int
	Seed      int64 // 0 means derive from the clock

	Pot       float64
	Call      float64
	Raise     float64
	FoldProb  float64
	RiskStyle float64
}

// Advice is the structured result handed back to a shell for rendering
type Advice struct {
	HandDesc string // best current hand, empty before the flop
	Equity   equity.Result
	Decision decision.Output
	Seed     int64
	Elapsed  time.Duration
}

// Advisor runs advisory queries
type Advisor struct {
	sim       *equity.Simulator
	logger    *log.Logger
	precision int
}

// New creates an Advisor. precision is the number of decimal places in the
// reported EV/EU figures.
func New(sim *equity.Simulator, logger *log.Logger, precision int) *Advisor {
	return &Advisor{
		sim:       sim,
		logger:    logger.WithPrefix("advisor"),
		precision: precision,
	}
}

// Advise estimates equity for the request and converts it into EV/EU per
// action plus a recommendation
func (a *Advisor) Advise(ctx context.Context, req Request) (*Advice, error) {
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	eq, err := a.sim.Estimate(ctx, req.Hole, req.Board, req.Opponents, req.Trials, seed)
	if err != nil {
		return nil, fmt.Errorf("equity estimate: %w", err)
	}

	out, err := decision.Decide(decision.Input{
		Pot:       req.Pot,
		Call:      req.Call,
		Raise:     req.Raise,
		WinProb:   eq.Win,
		TieProb:   eq.Tie,
		FoldProb:  req.FoldProb,
		RiskStyle: req.RiskStyle,
		Opponents: req.Opponents,
	})
	if err != nil {
		return nil, fmt.Errorf("decision: %w", err)
	}

	advice := &Advice{
		Equity:   eq,
		Decision: out.Rounded(a.precision),
		Seed:     seed,
		Elapsed:  time.Since(start),
	}

	// The best made hand only exists once 5 cards are visible
	if len(req.Hole)+len(req.Board) >= 5 {
		cards := make([]deck.Card, 0, 7)
		cards = append(cards, req.Hole...)
		cards = append(cards, req.Board...)
		desc, err := evaluator.DescribeBest(cards)
		if err != nil {
			return nil, err
		}
		advice.HandDesc = desc
	}

	a.logger.Debug("advice computed",
		"win", eq.Win, "tie", eq.Tie, "trials", eq.Trials,
		"action", advice.Decision.Recommended, "elapsed", advice.Elapsed)

	return advice, nil
}

// Equity runs just the Monte Carlo estimate without a table decision
func (a *Advisor) Equity(ctx context.Context, hole, board []deck.Card, opponents, trials int, seed int64) (equity.Result, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return a.sim.Estimate(ctx, hole, board, opponents, trials, seed)
}
