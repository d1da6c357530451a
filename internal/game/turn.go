package game

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Roller produces die faces. *dice.Die satisfies it.
type Roller interface {
	Roll() int
}

// Rules are the scoring constants of a game.
type Rules struct {
	WinThreshold int
	BustValue    int
}

// DefaultRules are first to 100 with a 1 as the bust value.
func DefaultRules() Rules {
	return Rules{WinThreshold: 100, BustValue: 1}
}

// TurnEnding is how a turn finished.
type TurnEnding int

const (
	EndingNone TurnEnding = iota
	EndingBust
	EndingHeld
	EndingWon
	EndingTimeExpired
)

// String returns the string representation of a turn ending
func (e TurnEnding) String() string {
	switch e {
	case EndingBust:
		return "bust"
	case EndingHeld:
		return "held"
	case EndingWon:
		return "won"
	case EndingTimeExpired:
		return "time_expired"
	default:
		return "none"
	}
}

// TurnOutcome describes a single decision cycle.
type TurnOutcome struct {
	Action    Action
	Input     string
	Roll      int // zero unless Action is Roll
	TurnScore int // turn score after the decision
	Banked    int // points committed by this decision
	Ending    TurnEnding
	TurnEnded bool
	GameEnded bool
}

// TurnResult summarises a whole turn.
type TurnResult struct {
	Player    PlayerState
	Ending    TurnEnding
	Decisions int
	Rolls     int
	Banked    int
}

// TurnEngine plays one player's turn at a time.
type TurnEngine struct {
	roller Roller
	rules  Rules
	bus    EventBus
	clock  quartz.Clock
	logger *log.Logger
}

// NewTurnEngine creates a turn engine. A nil bus gets a private one so events
// are always safe to publish.
func NewTurnEngine(roller Roller, rules Rules, bus EventBus, clock quartz.Clock, logger *log.Logger) *TurnEngine {
	if bus == nil {
		bus = NewEventBus()
	}
	return &TurnEngine{
		roller: roller,
		rules:  rules,
		bus:    bus,
		clock:  clock,
		logger: logger.WithPrefix("turn"),
	}
}

// Rules returns the engine's scoring rules.
func (te *TurnEngine) Rules() Rules {
	return te.rules
}

// EventBus returns the bus the engine publishes to.
func (te *TurnEngine) EventBus() EventBus {
	return te.bus
}

// Clock returns the engine's clock.
func (te *TurnEngine) Clock() quartz.Clock {
	return te.clock
}

// PlayTurn loops decisions for player until the turn ends. Before each
// decision of a bounded countdown it checks the clock: an expired clock
// forfeits the turn score and ends the turn, otherwise the time left is
// published.
func (te *TurnEngine) PlayTurn(ctx context.Context, player *Player, countdown Countdown) (TurnResult, error) {
	te.bus.Publish(NewTurnStartEvent(player.Snapshot(), te.now()))
	te.logger.Debug("Turn started", "player", player.Name, "score", player.Score)

	result := TurnResult{}
	for {
		if err := ctx.Err(); err != nil {
			result.Player = player.Snapshot()
			return result, err
		}

		if countdown.Bounded() {
			if countdown.Expired() {
				forfeited := player.TurnScore
				player.ResetTurn()
				te.bus.Publish(NewTimeExpiredEvent(player.Snapshot(), forfeited, te.now()))
				te.logger.Debug("Time expired mid-turn", "player", player.Name, "forfeited", forfeited)

				result.Ending = EndingTimeExpired
				result.Player = player.Snapshot()
				return result, nil
			}
			te.bus.Publish(NewTimeRemainingEvent(player.Snapshot(), countdown.Remaining(), te.now()))
		}

		outcome, err := te.Step(ctx, player)
		if err != nil {
			result.Player = player.Snapshot()
			return result, err
		}

		result.Decisions++
		if outcome.Action == Roll {
			result.Rolls++
		}
		if outcome.TurnEnded {
			result.Ending = outcome.Ending
			result.Banked = outcome.Banked
			result.Player = player.Snapshot()
			te.logger.Debug("Turn ended",
				"player", player.Name,
				"ending", outcome.Ending,
				"banked", outcome.Banked,
				"score", player.Score)
			return result, nil
		}
	}
}

// Step runs one decision cycle for player and applies it.
func (te *TurnEngine) Step(ctx context.Context, player *Player) (TurnOutcome, error) {
	decision, err := player.DecideAction(ctx)
	if err != nil {
		return TurnOutcome{}, fmt.Errorf("decision failed: %w", err)
	}

	te.logger.Debug("Decision",
		"player", player.Name,
		"action", decision.Action,
		"turnScore", player.TurnScore,
		"reasoning", decision.Reasoning)

	outcome := TurnOutcome{Action: decision.Action, Input: decision.Input}

	switch decision.Action {
	case Roll:
		roll := te.roller.Roll()
		player.RecordRoll(roll)
		outcome.Roll = roll

		if roll == te.rules.BustValue {
			lost := player.TurnScore
			player.ResetTurn()
			player.CommitTurn()
			te.bus.Publish(NewBustEvent(player.Snapshot(), roll, lost, te.now()))

			outcome.Ending = EndingBust
			outcome.TurnEnded = true
			break
		}

		player.Accumulate(roll)
		if player.Score+player.TurnScore >= te.rules.WinThreshold {
			outcome.Banked = player.TurnScore
			player.CommitTurn()
			player.ResetTurn()
			te.bus.Publish(NewWinEvent(player.Snapshot(), roll, te.now()))

			outcome.Ending = EndingWon
			outcome.TurnEnded = true
			outcome.GameEnded = true
			break
		}

		te.bus.Publish(NewProgressEvent(player.Snapshot(), roll, te.now()))

	case Hold:
		outcome.Banked = player.TurnScore
		player.CommitTurn()
		player.ResetTurn()
		te.bus.Publish(NewHoldEvent(player.Snapshot(), outcome.Banked, te.now()))

		outcome.Ending = EndingHeld
		outcome.TurnEnded = true

	default:
		te.bus.Publish(NewInvalidActionEvent(player.Snapshot(), decision.Input, te.now()))
	}

	outcome.TurnScore = player.TurnScore
	return outcome, nil
}

func (te *TurnEngine) now() time.Time {
	return te.clock.Now("turn", "event")
}
