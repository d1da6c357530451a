package display

import (
	"testing"
	"time"

	"github.com/lox/pig/internal/game"
	"github.com/stretchr/testify/assert"
)

func TestEventFormatter_Format(t *testing.T) {
	now := time.Now()
	ann := game.PlayerState{Seat: 1, Name: "Ann", Score: 30, TurnScore: 9}

	tests := []struct {
		name     string
		opts     FormattingOptions
		event    game.GameEvent
		expected string
	}{
		{
			name:     "turn start",
			event:    game.NewTurnStartEvent(ann, now),
			expected: "Ann, it's your turn. Your current score is 30",
		},
		{
			name:     "progress",
			event:    game.NewProgressEvent(ann, 4, now),
			expected: "Nice Ann! You rolled a 4. Your current score for this turn is 9. Your total score is 30",
		},
		{
			name:     "bust",
			event:    game.NewBustEvent(game.PlayerState{Name: "Ann", Score: 30}, 1, 9, now),
			expected: "Ouch Ann, you rolled a 1 and lost all points you accumulated during this turn. Your score for this turn is 0. Your total score is 30.",
		},
		{
			name:     "hold",
			event:    game.NewHoldEvent(game.PlayerState{Name: "Ann", Score: 39}, 9, now),
			expected: "Ann, you held. Your score for this turn is 9. Your total score is 39.",
		},
		{
			name:     "win",
			event:    game.NewWinEvent(game.PlayerState{Name: "Ann", Score: 101}, 6, now),
			expected: "Congratulations Ann, you rolled a 6 and your total score is 101. You won the game!",
		},
		{
			name:     "invalid",
			event:    game.NewInvalidActionEvent(ann, "x", now),
			expected: "You entered an invalid action.",
		},
		{
			name:     "time remaining shown",
			opts:     FormattingOptions{ShowTimeRemaining: true},
			event:    game.NewTimeRemainingEvent(ann, 42*time.Second, now),
			expected: "There are 42 seconds left in this game.",
		},
		{
			name:     "time remaining hidden",
			event:    game.NewTimeRemainingEvent(ann, 42*time.Second, now),
			expected: "",
		},
		{
			name:     "time expired with forfeit",
			event:    game.NewTimeExpiredEvent(ann, 12, now),
			expected: "Time is up! Ann loses the 12 points from this turn.",
		},
		{
			name:     "time expired between turns",
			event:    game.NewTimeExpiredEvent(ann, 0, now),
			expected: "Time is up!",
		},
		{
			name:     "unbounded start",
			event:    game.NewGameStartEvent(nil, game.Unbounded(), 100, now),
			expected: "Welcome to Pig! First to 100 wins.",
		},
		{
			name:     "timed start",
			event:    game.NewGameStartEvent(nil, game.TimeBoxed(time.Minute), 100, now),
			expected: "Welcome to Pig! First to 100 wins, or the highest score after 60 seconds.",
		},
		{
			name: "game over on time",
			event: game.NewGameOverEvent(game.GameResult{
				Winner: game.PlayerState{Name: "Bob", Score: 44},
				Reason: game.EndReasonTime,
			}, now),
			expected: "Congratulations Bob, you had the highest score of 44 before time ran out. You won the game!",
		},
		{
			name: "game over on score is silent",
			event: game.NewGameOverEvent(game.GameResult{
				Winner: game.PlayerState{Name: "Bob", Score: 100},
				Reason: game.EndReasonScore,
			}, now),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := NewEventFormatter(tt.opts)
			assert.Equal(t, tt.expected, formatter.Format(tt.event))
		})
	}
}

func TestEventFormatter_TiedGameOver(t *testing.T) {
	formatter := NewEventFormatter(FormattingOptions{})
	line := formatter.Format(game.NewGameOverEvent(game.GameResult{
		Winner: game.PlayerState{Name: "Ann", Score: 20},
		Reason: game.EndReasonTime,
		Tied:   true,
	}, time.Now()))

	assert.Contains(t, line, "tied")
	assert.Contains(t, line, "Ann")
}
