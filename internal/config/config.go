// Package config loads the advisor profile from an HCL file. The profile
// covers simulation defaults and the advisory server settings; every field
// is optional and falls back to a sensible default.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/holdem-advisor/internal/decision"
	"github.com/lox/holdem-advisor/internal/equity"
)

// Config is the complete advisor configuration
type Config struct {
	Simulation SimulationConfig `hcl:"simulation,block"`
	Server     ServerConfig     `hcl:"server,block"`
}

// file mirrors Config with optional blocks, so a profile may omit either
// section entirely
type file struct {
	Simulation *SimulationConfig `hcl:"simulation,block"`
	Server     *ServerConfig     `hcl:"server,block"`
}

// SimulationConfig holds equity and decision defaults
type SimulationConfig struct {
	Trials    int     `hcl:"trials,optional"`
	Opponents int     `hcl:"opponents,optional"`
	RiskStyle float64 `hcl:"risk_style,optional"`
	FoldProb  float64 `hcl:"fold_prob,optional"`
	Precision int     `hcl:"precision,optional"`
	Workers   int     `hcl:"workers,optional"`
	BudgetMS  int     `hcl:"budget_ms,optional"`
}

// ServerConfig holds the advisory server settings
type ServerConfig struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Trials:    20000,
			Opponents: 1,
			RiskStyle: 0,
			FoldProb:  0,
			Precision: 2,
		},
		Server: ServerConfig{
			Address:  "localhost",
			Port:     8080,
			LogLevel: "info",
		},
	}
}

// Load reads configuration from an HCL file, applying defaults for any
// field the file omits
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", filename)
	}

	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	var parsed file
	if diags := gohcl.DecodeBody(f.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file: %s", diags.Error())
	}

	cfg := Default()
	if parsed.Simulation != nil {
		cfg.Simulation = *parsed.Simulation
	}
	if parsed.Server != nil {
		cfg.Server = *parsed.Server
	}

	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults restores defaults for fields zeroed by block decoding
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Simulation.Trials == 0 {
		cfg.Simulation.Trials = def.Simulation.Trials
	}
	if cfg.Simulation.Opponents == 0 {
		cfg.Simulation.Opponents = def.Simulation.Opponents
	}
	if cfg.Simulation.Precision == 0 {
		cfg.Simulation.Precision = def.Simulation.Precision
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = def.Server.Address
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = def.Server.Port
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = def.Server.LogLevel
	}
}

// Validate checks the configuration for out-of-range values
func (c *Config) Validate() error {
	sim := c.Simulation
	if sim.Trials < 1 {
		return fmt.Errorf("simulation trials must be positive, got %d", sim.Trials)
	}
	if sim.Opponents < equity.MinOpponents || sim.Opponents > equity.MaxOpponents {
		return fmt.Errorf("simulation opponents %d outside [%d,%d]",
			sim.Opponents, equity.MinOpponents, equity.MaxOpponents)
	}
	if sim.RiskStyle < decision.MinRiskStyle || sim.RiskStyle > decision.MaxRiskStyle {
		return fmt.Errorf("risk_style %v outside [%v,%v]",
			sim.RiskStyle, decision.MinRiskStyle, decision.MaxRiskStyle)
	}
	if sim.FoldProb < 0 || sim.FoldProb > 1 {
		return fmt.Errorf("fold_prob %v outside [0,1]", sim.FoldProb)
	}
	if sim.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", sim.Workers)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d outside [1,65535]", c.Server.Port)
	}
	return nil
}

// ListenAddr returns the host:port string for the advisory server
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}
