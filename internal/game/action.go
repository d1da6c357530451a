package game

import (
	"fmt"
	"strings"
)

// Action is what a player chose to do with a decision.
type Action int

const (
	Invalid Action = iota
	Roll
	Hold
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case Roll:
		return "roll"
	case Hold:
		return "hold"
	default:
		return "invalid"
	}
}

// ParseAction maps raw player input to an Action. Anything that is not a
// roll or hold command is Invalid.
func ParseAction(input string) Action {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "r", "roll":
		return Roll
	case "h", "hold":
		return Hold
	default:
		return Invalid
	}
}

// PlayerType selects how a player makes decisions.
type PlayerType int

const (
	Human PlayerType = iota
	Computer
)

// String returns the string representation of a player type
func (t PlayerType) String() string {
	switch t {
	case Human:
		return "human"
	case Computer:
		return "computer"
	default:
		return fmt.Sprintf("PlayerType(%d)", int(t))
	}
}

// MarshalText lets player types appear by name in JSON game records.
func (t PlayerType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ParsePlayerType accepts "human" or "computer" in any case.
func ParsePlayerType(s string) (PlayerType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "human":
		return Human, nil
	case "computer":
		return Computer, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPlayerType, s)
	}
}
