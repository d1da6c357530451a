package display

import (
	"fmt"

	"github.com/lox/pig/internal/game"
)

// FormattingOptions controls how events are formatted for different contexts
type FormattingOptions struct {
	ShowTimeRemaining bool // Narrate the countdown before each decision
}

// EventFormatter turns game events into narration lines
type EventFormatter struct {
	opts FormattingOptions
}

// NewEventFormatter creates a new event formatter with the given options
func NewEventFormatter(opts FormattingOptions) *EventFormatter {
	return &EventFormatter{opts: opts}
}

// Format returns the narration for event, or "" for events that are not narrated.
func (ef *EventFormatter) Format(event game.GameEvent) string {
	switch e := event.(type) {
	case game.GameStartEvent:
		return ef.FormatGameStart(e)
	case game.TurnStartEvent:
		return fmt.Sprintf("%s, it's your turn. Your current score is %d", e.Player.Name, e.Player.Score)
	case game.TimeRemainingEvent:
		if !ef.opts.ShowTimeRemaining {
			return ""
		}
		if e.Seconds == 1 {
			return "There is 1 second left in this game."
		}
		return fmt.Sprintf("There are %d seconds left in this game.", e.Seconds)
	case game.ProgressEvent:
		return fmt.Sprintf("Nice %s! You rolled a %d. Your current score for this turn is %d. Your total score is %d",
			e.Player.Name, e.Roll, e.Player.TurnScore, e.Player.Score)
	case game.BustEvent:
		return fmt.Sprintf("Ouch %s, you rolled a %d and lost all points you accumulated during this turn. Your score for this turn is 0. Your total score is %d.",
			e.Player.Name, e.Roll, e.Player.Score)
	case game.HoldEvent:
		return fmt.Sprintf("%s, you held. Your score for this turn is %d. Your total score is %d.",
			e.Player.Name, e.Banked, e.Player.Score)
	case game.WinEvent:
		return fmt.Sprintf("Congratulations %s, you rolled a %d and your total score is %d. You won the game!",
			e.Player.Name, e.Roll, e.Player.Score)
	case game.InvalidActionEvent:
		return "You entered an invalid action."
	case game.TimeExpiredEvent:
		if e.Forfeited > 0 {
			return fmt.Sprintf("Time is up! %s loses the %d points from this turn.", e.Player.Name, e.Forfeited)
		}
		return "Time is up!"
	case game.GameOverEvent:
		return ef.FormatGameOver(e)
	default:
		return ""
	}
}

// FormatGameStart announces the rules of the game
func (ef *EventFormatter) FormatGameStart(e game.GameStartEvent) string {
	if e.TimeLimitSeconds > 0 {
		return fmt.Sprintf("Welcome to Pig! First to %d wins, or the highest score after %d seconds.",
			e.WinThreshold, e.TimeLimitSeconds)
	}
	return fmt.Sprintf("Welcome to Pig! First to %d wins.", e.WinThreshold)
}

// FormatGameOver announces a winner decided by the clock. A game won on score
// was already announced by its win event.
func (ef *EventFormatter) FormatGameOver(e game.GameOverEvent) string {
	result := e.Result
	if result.Reason != game.EndReasonTime {
		return ""
	}
	if result.Tied {
		return fmt.Sprintf("Congratulations %s, you tied for the highest score of %d before time ran out and win on seat order!",
			result.Winner.Name, result.Winner.Score)
	}
	return fmt.Sprintf("Congratulations %s, you had the highest score of %d before time ran out. You won the game!",
		result.Winner.Name, result.Winner.Score)
}
