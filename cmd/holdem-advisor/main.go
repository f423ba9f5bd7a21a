package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-advisor/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Debug   bool             `help:"Enable debug logging"`
	Config  string           `short:"c" help:"Path to HCL config file" type:"path"`

	Eval   EvalCmd   `cmd:"" help:"Evaluate and describe the best hand from 5-7 cards"`
	Odds   OddsCmd   `cmd:"" help:"Estimate win/tie/lose equity against random opponents"`
	Advise AdviseCmd `cmd:"" help:"Recommend fold/call/raise with EV and EU per action"`
	Serve  ServeCmd  `cmd:"" help:"Run the WebSocket advisory server"`
	Play   PlayCmd   `cmd:"" help:"Interactive terminal advisor"`
}

// cmdContext carries shared dependencies into command Run methods
type cmdContext struct {
	logger *log.Logger
	cfg    *config.Config
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem-advisor"),
		kong.Description("Texas Hold'em equity and decision advisor"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	logger := setupLogger(cli.Debug)

	cfg := config.Default()
	if cli.Config != "" {
		loaded, err := config.Load(cli.Config)
		if err != nil {
			logger.Error("failed to load config", "path", cli.Config, "error", err)
			ctx.Exit(1)
		}
		cfg = loaded
	}

	err := ctx.Run(&cmdContext{logger: logger, cfg: cfg})
	ctx.FatalIfErrorf(err)
}

func setupLogger(debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
