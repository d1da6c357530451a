package spectator

import (
	"time"

	"github.com/lox/pig/internal/game"
)

// Message is the JSON frame sent to spectators for every game event
type Message struct {
	Type      game.EventType `json:"type"`
	GameID    string         `json:"game_id"`
	Timestamp time.Time      `json:"timestamp"`
	Data      any            `json:"data"`
}

// NewMessage wraps event for gameID
func NewMessage(gameID string, event game.GameEvent) *Message {
	return &Message{
		Type:      event.EventType(),
		GameID:    gameID,
		Timestamp: event.Timestamp(),
		Data:      event,
	}
}
