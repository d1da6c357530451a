package game

import (
	"context"
	"fmt"
)

// HumanAgent asks an external DecisionSource for every decision.
type HumanAgent struct {
	source DecisionSource
}

// NewHumanAgent creates a new human agent backed by source
func NewHumanAgent(source DecisionSource) *HumanAgent {
	return &HumanAgent{source: source}
}

// DecideAction prompts for input and parses it. Unrecognised input becomes
// an Invalid decision; input errors are returned so the game can stop.
func (h *HumanAgent) DecideAction(ctx context.Context, state PlayerState) (Decision, error) {
	if h.source == nil {
		return Decision{}, ErrNoDecisionSource
	}

	input, err := h.source.PromptForAction(ctx, state.Name)
	if err != nil {
		return Decision{}, fmt.Errorf("prompt %s: %w", state.Name, err)
	}

	return Decision{
		Action: ParseAction(input),
		Input:  input,
	}, nil
}
