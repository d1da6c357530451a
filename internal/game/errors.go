package game

// Error is the error type for game setup and play failures.
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidPlayerType Error = "invalid player type: valid types are computer or human"
	ErrNoPlayers         Error = "a game needs at least one player"
	ErrNoDecisionSource  Error = "human player has no decision source"
)
