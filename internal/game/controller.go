package game

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
)

// Controller runs a whole game: it hands the current player to the turn
// engine, checks for the end of the game after every turn and advances the
// rotation otherwise.
type Controller struct {
	rotation *Rotation
	engine   *TurnEngine
	policy   TerminationPolicy
	logger   *log.Logger
}

// NewController creates a game controller
func NewController(rotation *Rotation, engine *TurnEngine, policy TerminationPolicy, logger *log.Logger) *Controller {
	return &Controller{
		rotation: rotation,
		engine:   engine,
		policy:   policy,
		logger:   logger.WithPrefix("game"),
	}
}

// Policy returns the controller's termination policy.
func (c *Controller) Policy() TerminationPolicy {
	return c.policy
}

// Play runs the game to completion. Errors come only from decision sources or
// ctx; the game is abandoned and no game_over event is published.
func (c *Controller) Play(ctx context.Context) (*GameResult, error) {
	bus := c.engine.EventBus()
	clock := c.engine.Clock()

	countdown := c.policy.Countdown(clock)
	bus.Publish(NewGameStartEvent(c.snapshots(), c.policy, c.engine.Rules().WinThreshold, clock.Now("game", "event")))
	c.logger.Info("Game started",
		"players", c.rotation.Len(),
		"mode", c.policy,
		"threshold", c.engine.Rules().WinThreshold)

	turns := 0
	for {
		current := c.rotation.Current()
		turn, err := c.engine.PlayTurn(ctx, current, countdown)
		if err != nil {
			return nil, fmt.Errorf("turn %d for %s: %w", turns+1, current.Name, err)
		}
		turns++

		switch turn.Ending {
		case EndingWon:
			return c.finish(current.Snapshot(), EndReasonScore, false, turns), nil
		case EndingTimeExpired:
			return c.finishOnTime(turns), nil
		}

		// A turn that ran past the deadline still counts, but nobody gets another.
		if countdown.Expired() {
			bus.Publish(NewTimeExpiredEvent(current.Snapshot(), 0, clock.Now("game", "event")))
			return c.finishOnTime(turns), nil
		}

		next := c.rotation.Advance()
		c.logger.Debug("Rotation advanced", "next", next.Name, "turns", turns)
	}
}

// finishOnTime picks the highest committed score. Ties go to the lowest seat.
func (c *Controller) finishOnTime(turns int) *GameResult {
	players := c.snapshots()
	best := players[0]
	tied := false
	for _, p := range players[1:] {
		switch {
		case p.Score > best.Score:
			best = p
			tied = false
		case p.Score == best.Score:
			tied = true
		}
	}
	return c.finish(best, EndReasonTime, tied, turns)
}

func (c *Controller) finish(winner PlayerState, reason EndReason, tied bool, turns int) *GameResult {
	result := &GameResult{
		Winner:    winner,
		Reason:    reason,
		Tied:      tied,
		Turns:     turns,
		Standings: Standings(c.snapshots()),
	}

	c.engine.EventBus().Publish(NewGameOverEvent(*result, c.engine.Clock().Now("game", "event")))
	c.logger.Info("Game over",
		"winner", winner.Name,
		"score", winner.Score,
		"reason", reason,
		"tied", tied,
		"turns", turns)
	return result
}

// snapshots returns every player in seat order.
func (c *Controller) snapshots() []PlayerState {
	seating := c.rotation.Seating()
	states := make([]PlayerState, len(seating))
	for i, p := range seating {
		states[i] = p.Snapshot()
	}
	return states
}
