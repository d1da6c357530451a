package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/coder/quartz"
	"github.com/lox/pig/internal/config"
	"github.com/lox/pig/internal/dice"
	"github.com/lox/pig/internal/display"
	"github.com/lox/pig/internal/game"
	"github.com/lox/pig/internal/gameid"
	"github.com/lox/pig/internal/history"
	"github.com/lox/pig/internal/spectator"
	"golang.org/x/sync/errgroup"
)

// PlayCmd plays one game in the terminal
type PlayCmd struct {
	Player1   string        `name:"player1" required:"" placeholder:"TYPE" help:"Player 1 type: human or computer"`
	Player2   string        `name:"player2" required:"" placeholder:"TYPE" help:"Player 2 type: human or computer"`
	Timed     bool          `help:"End the game when the time limit runs out; highest score wins"`
	TimeLimit time.Duration `help:"Time limit for timed games (defaults to the config file, 60s)"`
	Seed      int64         `default:"0" help:"Dice seed; equal seeds replay equal games"`
	History   string        `type:"path" help:"Write a JSON record of the game to this file"`
	Spectate  string        `placeholder:"ADDR" help:"Serve a read-only websocket feed of the game on this address, e.g. :8080"`
	TUI       bool          `name:"tui" help:"Prompt with an interactive text input"`
	NoColor   bool          `help:"Disable colored output"`
}

// prompter asks human players for names and actions
type prompter interface {
	game.DecisionSource
	PromptForName(ctx context.Context, seat int) (string, error)
}

func (c *PlayCmd) Run(globals *Globals) error {
	logger, closeLog, err := globals.NewLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	// Player types are checked before anything else is set up
	types := make([]game.PlayerType, 2)
	for i, raw := range []string{c.Player1, c.Player2} {
		pt, err := game.ParsePlayerType(raw)
		if err != nil {
			return fmt.Errorf("player%d: %w", i+1, err)
		}
		types[i] = pt
	}

	cfg, err := globals.LoadConfig(logger)
	if err != nil {
		return err
	}
	if c.TimeLimit > 0 {
		cfg.TimeLimit = c.TimeLimit
	}

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	console := display.NewConsole(os.Stdout, display.WithColor(!c.NoColor))

	var source prompter
	if c.TUI {
		source = display.NewTUIPrompter(os.Stdin, os.Stdout, console.Renderer(), logger)
	} else {
		source = display.NewLinePrompter(os.Stdin, os.Stdout)
	}

	players, err := c.seatPlayers(ctx, types, cfg, source)
	if err != nil {
		return err
	}

	id, err := gameid.New()
	if err != nil {
		return err
	}
	logger = logger.With("game", id)

	bus := game.NewEventBus()
	bus.Subscribe(console)

	var recorder *history.Recorder
	if c.History != "" {
		recorder = history.NewRecorder(id, c.Seed, history.NewFileWriter(c.History))
		bus.Subscribe(recorder)
	}

	var hub *spectator.Hub
	if c.Spectate != "" {
		hub = spectator.NewHub(id, logger)
		bus.Subscribe(hub)
	}

	rotation, err := game.NewRotation(players...)
	if err != nil {
		return err
	}

	die := dice.New(c.Seed, cfg.DieSides)
	rules := game.Rules{WinThreshold: cfg.WinThreshold, BustValue: cfg.BustValue}
	engine := game.NewTurnEngine(die, rules, bus, quartz.NewReal(), logger)

	policy := game.Unbounded()
	if c.Timed {
		policy = game.TimeBoxed(cfg.TimeLimit)
	}
	controller := game.NewController(rotation, engine, policy, logger)

	g, gctx := errgroup.WithContext(ctx)
	spectateCtx, stopSpectating := context.WithCancel(gctx)
	defer stopSpectating()

	if hub != nil {
		g.Go(func() error {
			return hub.Serve(spectateCtx, c.Spectate)
		})
	}

	g.Go(func() error {
		defer stopSpectating()
		_, err := controller.Play(gctx)
		return err
	})

	err = g.Wait()

	if recorder != nil {
		if saveErr := recorder.Save(); saveErr != nil {
			logger.Error("Failed to save game history", "error", saveErr)
		} else {
			fmt.Fprintf(os.Stdout, "\nGame record written to %s\n", c.History)
		}
	}

	return err
}

func (c *PlayCmd) seatPlayers(ctx context.Context, types []game.PlayerType, cfg config.Config, source prompter) ([]*game.Player, error) {
	players := make([]*game.Player, len(types))
	for i, pt := range types {
		seat := i + 1
		switch pt {
		case game.Computer:
			players[i] = game.NewPlayer(seat,
				fmt.Sprintf("Computer [Player %d]", seat),
				game.Computer,
				game.NewComputerAgent(cfg.HoldAt, cfg.WinThreshold))
		default:
			name, err := source.PromptForName(ctx, seat)
			if err != nil {
				return nil, fmt.Errorf("name for player %d: %w", seat, err)
			}
			if strings.TrimSpace(name) == "" {
				name = fmt.Sprintf("Player %d", seat)
			}
			players[i] = game.NewPlayer(seat, name, game.Human, game.NewHumanAgent(source))
		}
	}
	return players, nil
}
