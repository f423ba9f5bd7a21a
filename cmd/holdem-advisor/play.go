package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/holdem-advisor/internal/advisor"
	"github.com/lox/holdem-advisor/internal/tui"
)

// PlayCmd runs the interactive terminal advisor
type PlayCmd struct{}

func (c *PlayCmd) Run(ctx *cmdContext) error {
	adv := advisor.New(newSimulator(ctx), ctx.logger, ctx.cfg.Simulation.Precision)
	model := tui.New(adv, ctx.logger,
		ctx.cfg.Simulation.Opponents,
		ctx.cfg.Simulation.Trials,
		ctx.cfg.Simulation.RiskStyle)

	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
