package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/lox/holdem-advisor/internal/config"
	"github.com/lox/holdem-advisor/internal/deck"
)

// OddsCmd estimates equity against N random opponents
type OddsCmd struct {
	Hole      string `arg:"" help:"Hole cards, e.g. 'AsKd'"`
	Board     string `short:"b" help:"Known community cards (e.g. 'Td7s8h')"`
	Opponents int    `short:"o" help:"Number of opponents (1-9)"`
	Trials    int    `short:"t" help:"Number of Monte Carlo trials"`
	Seed      int64  `help:"Random seed for reproducible results"`
	Timeout   time.Duration `help:"Abort and report partial results after this long" default:"30s"`
}

func (c *OddsCmd) Run(ctx *cmdContext) error {
	hole, err := deck.ParseCards(c.Hole)
	if err != nil {
		return fmt.Errorf("hole: %w", err)
	}

	var board []deck.Card
	if c.Board != "" {
		if board, err = deck.ParseCards(c.Board); err != nil {
			return fmt.Errorf("board: %w", err)
		}
	}

	opponents := simDefault(c.Opponents, func(s config.SimulationConfig) int { return s.Opponents }, ctx.cfg)
	trials := simDefault(c.Trials, func(s config.SimulationConfig) int { return s.Trials }, ctx.cfg)

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	runCtx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	start := time.Now()
	result, err := newSimulator(ctx).Estimate(runCtx, hole, board, opponents, trials, seed)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("%s %s", headerStyle.Render("hand"), cardStyle.Render(formatCards(hole)))
	if len(board) > 0 {
		fmt.Printf("  %s %s", headerStyle.Render("board"), cardStyle.Render(formatCards(board)))
	}
	fmt.Printf("  vs %d random opponent(s)\n\n", opponents)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		headerStyle.Render("win"), headerStyle.Render("tie"), headerStyle.Render("lose"))
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		winStyle.Render(fmt.Sprintf("%.1f%%", result.Win*100)),
		tieStyle.Render(fmt.Sprintf("%.1f%%", result.Tie*100)),
		loseStyle.Render(fmt.Sprintf("%.1f%%", result.Lose*100)))
	w.Flush()

	fmt.Printf("\n%d trials in %v (seed %d)\n", result.Trials, elapsed.Truncate(time.Millisecond), seed)
	if result.Trials < trials {
		fmt.Printf("note: truncated at %d of %d requested trials\n", result.Trials, trials)
	}
	return nil
}
