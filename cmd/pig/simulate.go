package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lox/pig/internal/display"
	"github.com/lox/pig/internal/game"
	"github.com/lox/pig/internal/simulator"
	"github.com/lox/pig/internal/statistics"
)

// SimulateCmd plays computer-only games and reports how they went
type SimulateCmd struct {
	Games       int   `default:"1000" help:"Number of games to play"`
	Players     int   `default:"2" help:"Computer players per game"`
	Seed        int64 `default:"0" help:"Base seed; game i uses seed+i"`
	Concurrency int   `help:"Games played in parallel (defaults to GOMAXPROCS)"`
	HoldAt      int   `help:"Turn total the computer holds at (defaults to the config file, 25)"`
	NoColor     bool  `help:"Disable colored output"`
}

func (c *SimulateCmd) Run(globals *Globals) error {
	logger, closeLog, err := globals.NewLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := globals.LoadConfig(logger)
	if err != nil {
		return err
	}
	if c.HoldAt > 0 {
		cfg.HoldAt = c.HoldAt
	}
	if c.Games < 1 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	sim := simulator.New(simulator.Config{
		Games:       c.Games,
		Seed:        c.Seed,
		Concurrency: c.Concurrency,
		Players:     c.Players,
		Rules:       game.Rules{WinThreshold: cfg.WinThreshold, BustValue: cfg.BustValue},
		DieSides:    cfg.DieSides,
		HoldAt:      cfg.HoldAt,
		Logger:      logger,
	})

	start := time.Now()
	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	console := display.NewConsole(os.Stdout, display.WithColor(!c.NoColor))
	writeReport(os.Stdout, display.NewStyles(console.Renderer()), stats, cfg.HoldAt, time.Since(start))
	return nil
}

func writeReport(w io.Writer, styles display.Styles, stats *statistics.Statistics, holdAt int, elapsed time.Duration) {
	fmt.Fprintln(w, styles.Header.Render(fmt.Sprintf("%d games, hold at %d, %s", stats.Games, holdAt, elapsed.Round(time.Millisecond))))
	fmt.Fprintln(w)

	rows := make([][]string, 0, len(stats.SeatWins)+1)
	for i, wins := range stats.SeatWins {
		rows = append(rows, []string{
			fmt.Sprintf("Seat %d", i+1),
			fmt.Sprintf("%d", wins),
			fmt.Sprintf("%.1f%%", stats.WinRate(i+1)*100),
		})
	}
	rows = append(rows, []string{
		"First mover",
		fmt.Sprintf("%d", stats.FirstMoverWins),
		fmt.Sprintf("%.1f%%", stats.FirstMoverRate()*100),
	})
	fmt.Fprintln(w, display.Table(styles, []string{"", "Wins", "Rate"}, rows, 0))
	fmt.Fprintln(w)

	samples := []struct {
		name   string
		sample *statistics.Sample
	}{
		{"Winning score", &stats.WinningScore},
		{"Margin", &stats.Margin},
		{"Turns", &stats.Turns},
		{"Rolls", &stats.Rolls},
	}
	rows = rows[:0]
	for _, s := range samples {
		lo, hi := s.sample.ConfidenceInterval95()
		rows = append(rows, []string{
			s.name,
			fmt.Sprintf("%.1f", s.sample.Mean()),
			fmt.Sprintf("%.1f", s.sample.StdDev()),
			fmt.Sprintf("%.1f", s.sample.Median()),
			fmt.Sprintf("[%.1f, %.1f]", lo, hi),
		})
	}
	fmt.Fprintln(w, display.Table(styles, []string{"", "Mean", "StdDev", "Median", "95% CI"}, rows, 0))
}
