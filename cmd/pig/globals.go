package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/lox/pig/internal/config"
)

// Globals are flags shared by every command
type Globals struct {
	Config  string `type:"path" default:"pig.hcl" help:"HCL config file (missing file means defaults)"`
	Debug   bool   `help:"Enable debug logging"`
	LogFile string `type:"path" help:"Write logs to this file instead of stderr"`
}

// NewLogger builds the root logger. Logs stay at warn level unless --debug so
// they don't interleave with game narration.
func (g *Globals) NewLogger() (*log.Logger, func() error, error) {
	var w io.Writer = os.Stderr
	closer := func() error { return nil }

	if g.LogFile != "" {
		f, err := os.OpenFile(g.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closer = f.Close
	}

	level := log.WarnLevel
	if g.Debug {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "pig",
	})
	return logger, closer, nil
}

// LoadConfig reads the config file
func (g *Globals) LoadConfig(logger *log.Logger) (config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return config.Config{}, err
	}
	logger.Debug("Loaded config",
		"file", g.Config,
		"threshold", cfg.WinThreshold,
		"bust", cfg.BustValue,
		"sides", cfg.DieSides,
		"timeLimit", cfg.TimeLimit,
		"holdAt", cfg.HoldAt)
	return cfg, nil
}
