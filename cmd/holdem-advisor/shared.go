package main

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/holdem-advisor/internal/config"
	"github.com/lox/holdem-advisor/internal/deck"
	"github.com/lox/holdem-advisor/internal/equity"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	cardStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	loseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	adviceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("13"))
)

// newSimulator builds an equity simulator from config
func newSimulator(ctx *cmdContext) *equity.Simulator {
	var opts []equity.Option
	opts = append(opts, equity.WithLogger(ctx.logger))
	if w := ctx.cfg.Simulation.Workers; w > 0 {
		opts = append(opts, equity.WithWorkers(w))
	}
	if ms := ctx.cfg.Simulation.BudgetMS; ms > 0 {
		opts = append(opts, equity.WithBudget(time.Duration(ms)*time.Millisecond))
	}
	return equity.New(opts...)
}

// simDefault returns v, or the configured default when v is zero
func simDefault(v int, pick func(config.SimulationConfig) int, cfg *config.Config) int {
	if v != 0 {
		return v
	}
	return pick(cfg.Simulation)
}

func formatCards(cards []deck.Card) string {
	out := ""
	for i, c := range cards {
		if i > 0 {
			out += " "
		}
		out += c.String()
	}
	return out
}
