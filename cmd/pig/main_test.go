package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/lox/pig/internal/config"
	"github.com/lox/pig/internal/display"
	"github.com/lox/pig/internal/game"
	"github.com/lox/pig/internal/statistics"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("pig"), kong.Vars{"version": "test"}, kong.Exit(func(int) {}))
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return &cli, ctx
}

func TestPlayIsDefaultCommand(t *testing.T) {
	cli, ctx := parse(t, "--player1", "human", "--player2", "computer", "--timed")
	assert.Equal(t, "play", ctx.Command())
	assert.Equal(t, "human", cli.Play.Player1)
	assert.Equal(t, "computer", cli.Play.Player2)
	assert.True(t, cli.Play.Timed)
	assert.Equal(t, int64(0), cli.Play.Seed)
}

func TestSimulateDefaults(t *testing.T) {
	cli, ctx := parse(t, "simulate")
	assert.Equal(t, "simulate", ctx.Command())
	assert.Equal(t, 1000, cli.Simulate.Games)
	assert.Equal(t, 2, cli.Simulate.Players)
}

func TestPlayRejectsUnknownPlayerType(t *testing.T) {
	cmd := &PlayCmd{Player1: "robot", Player2: "human"}
	err := cmd.Run(&Globals{Config: filepath.Join(t.TempDir(), "missing.hcl")})
	require.Error(t, err)
	assert.ErrorIs(t, err, game.ErrInvalidPlayerType)
	assert.Contains(t, err.Error(), "player1")
}

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pig.log")
	g := &Globals{LogFile: path}

	logger, closeLog, err := g.NewLogger()
	require.NoError(t, err)
	logger.Warn("hello")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

type namePrompter struct {
	*game.ScriptedSource
	names []string
}

func (p *namePrompter) PromptForName(_ context.Context, seat int) (string, error) {
	return p.names[seat-1], nil
}

func TestSeatPlayers(t *testing.T) {
	cmd := &PlayCmd{}
	source := &namePrompter{ScriptedSource: game.NewScriptedSource(), names: []string{"  ", "Bob"}}

	players, err := cmd.seatPlayers(context.Background(),
		[]game.PlayerType{game.Human, game.Computer}, config.Default(), source)
	require.NoError(t, err)
	require.Len(t, players, 2)

	assert.Equal(t, "Player 1", players[0].Name)
	assert.Equal(t, game.Human, players[0].Type)
	assert.Equal(t, "Computer [Player 2]", players[1].Name)
	assert.Equal(t, game.Computer, players[1].Type)
}

func TestWriteReport(t *testing.T) {
	stats := &statistics.Statistics{}
	stats.Add(statistics.GameResult{Players: 2, StartingSeat: 1, WinnerSeat: 1, WinningScore: 102, Margin: 30, Turns: 12, Rolls: 40})
	stats.Add(statistics.GameResult{Players: 2, StartingSeat: 2, WinnerSeat: 1, WinningScore: 100, Margin: 10, Turns: 14, Rolls: 44})

	var buf bytes.Buffer
	styles := display.NewStyles(lipgloss.NewRenderer(&buf, termenv.WithProfile(termenv.Ascii)))
	writeReport(&buf, styles, stats, 25, time.Second)

	out := buf.String()
	assert.Contains(t, out, "2 games, hold at 25")
	assert.Contains(t, out, "Seat 1")
	assert.Contains(t, out, "100.0%")
	assert.Contains(t, out, "First mover")
	assert.Contains(t, out, "Winning score")
	assert.Contains(t, out, "101.0")
}
