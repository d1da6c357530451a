package game

import (
	"context"
	"strings"
)

// Player is one participant's identity and running totals.
type Player struct {
	Seat      int
	Name      string
	Type      PlayerType
	Score     int // committed across turns
	TurnScore int // at risk until held or busted
	Rolls     int
	LastRoll  int

	agent Agent
}

// NewPlayer creates a player. The name is trimmed of surrounding whitespace.
func NewPlayer(seat int, name string, playerType PlayerType, agent Agent) *Player {
	return &Player{
		Seat:  seat,
		Name:  strings.TrimSpace(name),
		Type:  playerType,
		agent: agent,
	}
}

// PlayerState is a read-only snapshot of a player used for decisions and events
type PlayerState struct {
	Seat      int        `json:"seat"`
	Name      string     `json:"name"`
	Type      PlayerType `json:"type"`
	Score     int        `json:"score"`
	TurnScore int        `json:"turn_score"`
	Rolls     int        `json:"rolls"`
	LastRoll  int        `json:"last_roll"`
}

// Total is the score the player would have if they held now.
func (s PlayerState) Total() int {
	return s.Score + s.TurnScore
}

// Snapshot copies the player's current state.
func (p *Player) Snapshot() PlayerState {
	return PlayerState{
		Seat:      p.Seat,
		Name:      p.Name,
		Type:      p.Type,
		Score:     p.Score,
		TurnScore: p.TurnScore,
		Rolls:     p.Rolls,
		LastRoll:  p.LastRoll,
	}
}

// DecideAction asks the player's agent what to do next. It never changes the
// player's scores.
func (p *Player) DecideAction(ctx context.Context) (Decision, error) {
	if p.agent == nil {
		return Decision{Action: Invalid, Reasoning: "no agent"}, nil
	}
	return p.agent.DecideAction(ctx, p.Snapshot())
}

// RecordRoll counts a roll and remembers its value.
func (p *Player) RecordRoll(value int) {
	p.Rolls++
	p.LastRoll = value
}

// Accumulate adds a roll to the turn score.
func (p *Player) Accumulate(value int) {
	p.TurnScore += value
}

// ResetTurn clears the turn score.
func (p *Player) ResetTurn() {
	p.TurnScore = 0
}

// CommitTurn banks the turn score. It does not reset it; callers pair it with ResetTurn.
func (p *Player) CommitTurn() {
	p.Score += p.TurnScore
}
