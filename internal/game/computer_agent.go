package game

import (
	"context"
	"fmt"
)

// ComputerAgent decides with a fixed hold target: keep rolling until the turn
// is worth HoldAt points or enough to reach the win threshold.
type ComputerAgent struct {
	HoldAt       int
	WinThreshold int
}

// NewComputerAgent creates a computer strategy
func NewComputerAgent(holdAt, winThreshold int) *ComputerAgent {
	return &ComputerAgent{HoldAt: holdAt, WinThreshold: winThreshold}
}

// Target is the turn score at which the computer holds.
func (c *ComputerAgent) Target(state PlayerState) int {
	return min(c.HoldAt, c.WinThreshold-state.Total())
}

// DecideAction is a pure function of state and never returns Invalid.
func (c *ComputerAgent) DecideAction(_ context.Context, state PlayerState) (Decision, error) {
	target := c.Target(state)
	if state.TurnScore < target {
		return Decision{
			Action:    Roll,
			Reasoning: fmt.Sprintf("turn score %d below target %d", state.TurnScore, target),
		}, nil
	}
	return Decision{
		Action:    Hold,
		Reasoning: fmt.Sprintf("turn score %d reached target %d", state.TurnScore, target),
	}, nil
}
