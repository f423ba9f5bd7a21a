package main

import (
	"github.com/lox/holdem-advisor/internal/advisor"
	"github.com/lox/holdem-advisor/internal/server"
)

// ServeCmd runs the WebSocket advisory server
type ServeCmd struct {
	Addr string `help:"Listen address (overrides config)"`
}

func (c *ServeCmd) Run(ctx *cmdContext) error {
	addr := c.Addr
	if addr == "" {
		addr = ctx.cfg.ListenAddr()
	}

	adv := advisor.New(newSimulator(ctx), ctx.logger, ctx.cfg.Simulation.Precision)
	handler := server.NewHandler(adv, server.Defaults{
		Trials:    ctx.cfg.Simulation.Trials,
		Opponents: ctx.cfg.Simulation.Opponents,
	}, ctx.logger)

	return server.New(addr, handler, ctx.logger).Start()
}
