// Package simulator plays batches of computer-only games to measure the
// strategy and the first-mover advantage.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/pig/internal/dice"
	"github.com/lox/pig/internal/game"
	"github.com/lox/pig/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// Config holds configuration for running simulations
type Config struct {
	Games       int
	Seed        int64 // Game i uses Seed+i
	Concurrency int   // Games played at once; defaults to GOMAXPROCS
	Players     int   // Defaults to 2
	Rules       game.Rules
	DieSides    int
	HoldAt      int
	Logger      *log.Logger
}

// Simulator runs Pig simulations
type Simulator struct {
	config Config
	logger *log.Logger
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Concurrency < 1 {
		config.Concurrency = runtime.GOMAXPROCS(0)
	}
	if config.Players < 1 {
		config.Players = 2
	}
	if config.Rules == (game.Rules{}) {
		config.Rules = game.DefaultRules()
	}
	if config.DieSides < 2 {
		config.DieSides = dice.DefaultSides
	}
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Simulator{
		config: config,
		logger: logger.WithPrefix("simulator"),
	}
}

// Run plays every game and aggregates the results. Results are collected by
// game index, so the statistics do not depend on Concurrency.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	results := make([]statistics.GameResult, s.config.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Concurrency)

	for i := range s.config.Games {
		g.Go(func() error {
			result, err := s.PlayGame(ctx, i)
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i+1, result.Seed, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, result := range results {
		stats.Add(result)
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.logger.Info("Simulation complete",
		"games", stats.Games,
		"firstMoverRate", fmt.Sprintf("%.3f", stats.FirstMoverRate()),
		"meanTurns", fmt.Sprintf("%.1f", stats.Turns.Mean()))
	return stats, nil
}

// PlayGame plays game number index. The starting seat rotates with the index
// to spread the first-mover advantage evenly across seats.
func (s *Simulator) PlayGame(ctx context.Context, index int) (statistics.GameResult, error) {
	seed := s.config.Seed + int64(index)
	result := statistics.GameResult{Seed: seed, Players: s.config.Players}

	players := make([]*game.Player, s.config.Players)
	for i := range players {
		seat := i + 1
		players[i] = game.NewPlayer(seat,
			fmt.Sprintf("Computer [Player %d]", seat),
			game.Computer,
			game.NewComputerAgent(s.config.HoldAt, s.config.Rules.WinThreshold))
	}

	start := index % len(players)
	order := append(append([]*game.Player{}, players[start:]...), players[:start]...)
	rotation, err := game.NewRotation(order...)
	if err != nil {
		return result, err
	}
	result.StartingSeat = rotation.Current().Seat

	die := dice.New(seed, s.config.DieSides)
	engine := game.NewTurnEngine(die, s.config.Rules, nil, quartz.NewReal(), s.logger)
	controller := game.NewController(rotation, engine, game.Unbounded(), s.logger)

	outcome, err := controller.Play(ctx)
	if err != nil {
		return result, err
	}

	result.WinnerSeat = outcome.Winner.Seat
	result.WinningScore = outcome.Winner.Score
	result.Turns = outcome.Turns
	if len(outcome.Standings) > 1 {
		result.Margin = outcome.Winner.Score - outcome.Standings[1].Score
	}
	for _, standing := range outcome.Standings {
		result.Rolls += standing.Rolls
	}
	return result, nil
}
