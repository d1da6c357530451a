package simulator

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/pig/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(games, concurrency int) Config {
	return Config{
		Games:       games,
		Seed:        12345,
		Concurrency: concurrency,
		HoldAt:      25,
		Logger:      log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel}),
	}
}

func TestNew_Defaults(t *testing.T) {
	sim := New(Config{Games: 1})

	assert.Equal(t, 2, sim.config.Players)
	assert.Equal(t, game.DefaultRules(), sim.config.Rules)
	assert.Equal(t, 6, sim.config.DieSides)
	assert.GreaterOrEqual(t, sim.config.Concurrency, 1)
}

func TestSimulator_Run(t *testing.T) {
	stats, err := New(testConfig(200, 4)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 200, stats.Games)
	require.Len(t, stats.SeatWins, 2)
	assert.Equal(t, 200, stats.SeatWins[0]+stats.SeatWins[1])
	assert.GreaterOrEqual(t, stats.WinningScore.Percentile(0), 100.0)
	assert.LessOrEqual(t, stats.WinningScore.Percentile(1), 105.0)
	assert.Greater(t, stats.Turns.Mean(), 2.0)
	assert.Greater(t, stats.Rolls.Mean(), stats.Turns.Mean())
}

func TestSimulator_ResultsIndependentOfConcurrency(t *testing.T) {
	sequential, err := New(testConfig(50, 1)).Run(context.Background())
	require.NoError(t, err)

	parallel, err := New(testConfig(50, 8)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, sequential, parallel)
}

func TestSimulator_PlayGame_Deterministic(t *testing.T) {
	sim := New(testConfig(1, 1))

	first, err := sim.PlayGame(context.Background(), 3)
	require.NoError(t, err)
	second, err := sim.PlayGame(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(12348), first.Seed)
}

func TestSimulator_PlayGame_RotatesStartingSeat(t *testing.T) {
	config := testConfig(1, 1)
	config.Players = 3
	sim := New(config)

	for index, expected := range []int{1, 2, 3, 1} {
		result, err := sim.PlayGame(context.Background(), index)
		require.NoError(t, err)
		assert.Equal(t, expected, result.StartingSeat, "game %d", index)
		assert.Equal(t, 3, result.Players)
		assert.GreaterOrEqual(t, result.Margin, 0)
	}
}

func TestSimulator_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(testConfig(10, 2)).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
