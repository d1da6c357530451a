package game

import "context"

// Decision represents a player's decision with reasoning
type Decision struct {
	Action    Action
	Input     string // raw text for human decisions
	Reasoning string // Human-readable explanation
}

// Agent represents any entity (human or computer) that can make decisions for a player.
// Agents receive a snapshot and return a decision; they never mutate game state.
type Agent interface {
	DecideAction(ctx context.Context, state PlayerState) (Decision, error)
}

// DecisionSource supplies raw action text for interactive players.
type DecisionSource interface {
	PromptForAction(ctx context.Context, playerName string) (string, error)
}
