package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/lox/holdem-advisor/internal/advisor"
	"github.com/lox/holdem-advisor/internal/config"
	"github.com/lox/holdem-advisor/internal/deck"
)

// AdviseCmd recommends an action for a described spot
type AdviseCmd struct {
	Hole      string  `arg:"" help:"Hole cards, e.g. 'AsKd'"`
	Board     string  `short:"b" help:"Known community cards"`
	Pot       float64 `short:"p" required:"" help:"Current pot in chips"`
	Call      float64 `help:"Chips required to call" default:"0"`
	Raise     float64 `help:"Chips committed by raising" default:"0"`
	Opponents int     `short:"o" help:"Number of opponents (1-9)"`
	FoldProb  float64 `help:"Probability opponents fold to a raise (0-1)" default:"-1"`
	Risk      float64 `help:"Risk style: -5 (seeking) to 5 (averse)" default:"-99"`
	Trials    int     `short:"t" help:"Number of Monte Carlo trials"`
	Seed      int64   `help:"Random seed for reproducible results"`
	Timeout   time.Duration `help:"Abort and use partial equity after this long" default:"30s"`
}

func (c *AdviseCmd) Run(ctx *cmdContext) error {
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

	foldProb := c.FoldProb
	if foldProb < 0 {
		foldProb = ctx.cfg.Simulation.FoldProb
	}
	risk := c.Risk
	if risk == -99 {
		risk = ctx.cfg.Simulation.RiskStyle
	}

	adv := advisor.New(newSimulator(ctx), ctx.logger, ctx.cfg.Simulation.Precision)

	runCtx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	advice, err := adv.Advise(runCtx, advisor.Request{
		Hole:      hole,
		Board:     board,
		Opponents: simDefault(c.Opponents, func(s config.SimulationConfig) int { return s.Opponents }, ctx.cfg),
		Trials:    simDefault(c.Trials, func(s config.SimulationConfig) int { return s.Trials }, ctx.cfg),
		Seed:      c.Seed,
		Pot:       c.Pot,
		Call:      c.Call,
		Raise:     c.Raise,
		FoldProb:  foldProb,
		RiskStyle: risk,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s %s", headerStyle.Render("hand"), cardStyle.Render(formatCards(hole)))
	if len(board) > 0 {
		fmt.Printf("  %s %s", headerStyle.Render("board"), cardStyle.Render(formatCards(board)))
	}
	fmt.Println()
	if advice.HandDesc != "" {
		fmt.Printf("%s %s\n", headerStyle.Render("best"), advice.HandDesc)
	}

	eq := advice.Equity
	fmt.Printf("%s %s / %s / %s  (%d trials)\n\n",
		headerStyle.Render("equity"),
		winStyle.Render(fmt.Sprintf("win %.1f%%", eq.Win*100)),
		tieStyle.Render(fmt.Sprintf("tie %.1f%%", eq.Tie*100)),
		loseStyle.Render(fmt.Sprintf("lose %.1f%%", eq.Lose*100)),
		eq.Trials)

	d := advice.Decision
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		headerStyle.Render("action"), headerStyle.Render("ev"), headerStyle.Render("eu"))
	fmt.Fprintf(w, "fold\t%+.*f\t%+.*f\n", ctx.cfg.Simulation.Precision, d.EVFold, ctx.cfg.Simulation.Precision, d.EUFold)
	fmt.Fprintf(w, "call\t%+.*f\t%+.*f\n", ctx.cfg.Simulation.Precision, d.EVCall, ctx.cfg.Simulation.Precision, d.EUCall)
	fmt.Fprintf(w, "raise\t%+.*f\t%+.*f\n", ctx.cfg.Simulation.Precision, d.EVRaise, ctx.cfg.Simulation.Precision, d.EURaise)
	w.Flush()

	fmt.Printf("\n%s %s\n", headerStyle.Render("advice"),
		adviceStyle.Render(strings.ToUpper(d.Recommended.String())))
	return nil
}
