// Package game implements the turn and game state machine for the dice game Pig.
//
// A game is assembled from a Rotation of Players, a TurnEngine that plays one
// player's turn at a time, and a Controller that loops turns until the
// TerminationPolicy says the game is over.
//
// # Basic Usage
//
//	die := dice.New(dice.DefaultSeed, dice.DefaultSides)
//	bus := game.NewEventBus()
//	engine := game.NewTurnEngine(die, game.DefaultRules(), bus, quartz.NewReal(), logger)
//
//	p1 := game.NewPlayer(1, "Alice", game.Human, game.NewHumanAgent(prompter))
//	p2 := game.NewPlayer(2, "Computer [Player 2]", game.Computer, game.NewComputerAgent(25, 100))
//	rotation, _ := game.NewRotation(p1, p2)
//
//	result, err := game.NewController(rotation, engine, game.Unbounded(), logger).Play(ctx)
//
// # Turns
//
// Each decision cycle asks the current player's Agent for an Action. Rolling a
// non-bust value accumulates into the turn score; rolling the bust value
// forfeits it. Holding banks the turn score into the committed score. Invalid
// input is narrated and the same player is asked again without consuming a
// roll. Reaching the win threshold ends the game immediately.
//
// # Narration
//
// Everything the game has to say is published as a GameEvent on an EventBus.
// Events carry PlayerState snapshots, so subscribers may keep them after the
// game moves on.
//
// # Deterministic Testing
//
// The Roller and quartz.Clock are injected, so tests can script rolls and
// drive the clock of a timed game with quartz.NewMock.
package game
