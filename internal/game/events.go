package game

import (
	"time"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for game narration
const (
	EventTypeGameStart     EventType = "game_start"
	EventTypeTurnStart     EventType = "turn_start"
	EventTypeTimeRemaining EventType = "time_remaining"
	EventTypeProgress      EventType = "progress"
	EventTypeBust          EventType = "bust"
	EventTypeHold          EventType = "hold"
	EventTypeWin           EventType = "win"
	EventTypeInvalidAction EventType = "invalid_action"
	EventTypeTimeExpired   EventType = "time_expired"
	EventTypeGameOver      EventType = "game_over"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents anything the game narrates
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// GameStartEvent is published once before the first turn
type GameStartEvent struct {
	Players          []PlayerState `json:"players"`
	Mode             string        `json:"mode"`
	WinThreshold     int           `json:"win_threshold"`
	TimeLimitSeconds int           `json:"time_limit_seconds,omitempty"`
	timestamp        time.Time
}

func (e GameStartEvent) EventType() EventType { return EventTypeGameStart }
func (e GameStartEvent) Timestamp() time.Time { return e.timestamp }

// NewGameStartEvent creates a new game start event
func NewGameStartEvent(players []PlayerState, policy TerminationPolicy, winThreshold int, at time.Time) GameStartEvent {
	return GameStartEvent{
		Players:          players,
		Mode:             policy.String(),
		WinThreshold:     winThreshold,
		TimeLimitSeconds: int(policy.TimeLimit / time.Second),
		timestamp:        at,
	}
}

// TurnStartEvent is published when a player's turn begins
type TurnStartEvent struct {
	Player    PlayerState `json:"player"`
	timestamp time.Time
}

func (e TurnStartEvent) EventType() EventType { return EventTypeTurnStart }
func (e TurnStartEvent) Timestamp() time.Time { return e.timestamp }

// NewTurnStartEvent creates a new turn start event
func NewTurnStartEvent(player PlayerState, at time.Time) TurnStartEvent {
	return TurnStartEvent{Player: player, timestamp: at}
}

// TimeRemainingEvent is published before each decision of a timed game
type TimeRemainingEvent struct {
	Player    PlayerState   `json:"player"`
	Remaining time.Duration `json:"-"`
	Seconds   int           `json:"seconds"`
	timestamp time.Time
}

func (e TimeRemainingEvent) EventType() EventType { return EventTypeTimeRemaining }
func (e TimeRemainingEvent) Timestamp() time.Time { return e.timestamp }

// NewTimeRemainingEvent creates a new time remaining event, rounded to whole seconds
func NewTimeRemainingEvent(player PlayerState, remaining time.Duration, at time.Time) TimeRemainingEvent {
	return TimeRemainingEvent{
		Player:    player,
		Remaining: remaining,
		Seconds:   int(remaining.Round(time.Second) / time.Second),
		timestamp: at,
	}
}

// ProgressEvent is published after a scoring roll that did not end the turn
type ProgressEvent struct {
	Player    PlayerState `json:"player"`
	Roll      int         `json:"roll"`
	timestamp time.Time
}

func (e ProgressEvent) EventType() EventType { return EventTypeProgress }
func (e ProgressEvent) Timestamp() time.Time { return e.timestamp }

// NewProgressEvent creates a new progress event
func NewProgressEvent(player PlayerState, roll int, at time.Time) ProgressEvent {
	return ProgressEvent{Player: player, Roll: roll, timestamp: at}
}

// BustEvent is published when a player rolls the bust value
type BustEvent struct {
	Player    PlayerState `json:"player"`
	Roll      int         `json:"roll"`
	Lost      int         `json:"lost"`
	timestamp time.Time
}

func (e BustEvent) EventType() EventType { return EventTypeBust }
func (e BustEvent) Timestamp() time.Time { return e.timestamp }

// NewBustEvent creates a new bust event
func NewBustEvent(player PlayerState, roll, lost int, at time.Time) BustEvent {
	return BustEvent{Player: player, Roll: roll, Lost: lost, timestamp: at}
}

// HoldEvent is published when a player banks their turn score
type HoldEvent struct {
	Player    PlayerState `json:"player"`
	Banked    int         `json:"banked"`
	timestamp time.Time
}

func (e HoldEvent) EventType() EventType { return EventTypeHold }
func (e HoldEvent) Timestamp() time.Time { return e.timestamp }

// NewHoldEvent creates a new hold event
func NewHoldEvent(player PlayerState, banked int, at time.Time) HoldEvent {
	return HoldEvent{Player: player, Banked: banked, timestamp: at}
}

// WinEvent is published when a roll takes a player to the win threshold
type WinEvent struct {
	Player    PlayerState `json:"player"`
	Roll      int         `json:"roll"`
	timestamp time.Time
}

func (e WinEvent) EventType() EventType { return EventTypeWin }
func (e WinEvent) Timestamp() time.Time { return e.timestamp }

// NewWinEvent creates a new win event
func NewWinEvent(player PlayerState, roll int, at time.Time) WinEvent {
	return WinEvent{Player: player, Roll: roll, timestamp: at}
}

// InvalidActionEvent is published when a decision is neither roll nor hold
type InvalidActionEvent struct {
	Player    PlayerState `json:"player"`
	Input     string      `json:"input"`
	timestamp time.Time
}

func (e InvalidActionEvent) EventType() EventType { return EventTypeInvalidAction }
func (e InvalidActionEvent) Timestamp() time.Time { return e.timestamp }

// NewInvalidActionEvent creates a new invalid action event
func NewInvalidActionEvent(player PlayerState, input string, at time.Time) InvalidActionEvent {
	return InvalidActionEvent{Player: player, Input: input, timestamp: at}
}

// TimeExpiredEvent is published when the clock of a timed game runs out
type TimeExpiredEvent struct {
	Player    PlayerState `json:"player"`
	Forfeited int         `json:"forfeited"`
	timestamp time.Time
}

func (e TimeExpiredEvent) EventType() EventType { return EventTypeTimeExpired }
func (e TimeExpiredEvent) Timestamp() time.Time { return e.timestamp }

// NewTimeExpiredEvent creates a new time expired event
func NewTimeExpiredEvent(player PlayerState, forfeited int, at time.Time) TimeExpiredEvent {
	return TimeExpiredEvent{Player: player, Forfeited: forfeited, timestamp: at}
}

// GameOverEvent is published once with the final result
type GameOverEvent struct {
	Result    GameResult `json:"result"`
	timestamp time.Time
}

func (e GameOverEvent) EventType() EventType { return EventTypeGameOver }
func (e GameOverEvent) Timestamp() time.Time { return e.timestamp }

// NewGameOverEvent creates a new game over event
func NewGameOverEvent(result GameResult, at time.Time) GameOverEvent {
	return GameOverEvent{Result: result, timestamp: at}
}

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// SubscriberFunc adapts a function to EventSubscriber. Function values are not
// comparable, so a SubscriberFunc cannot be passed to Unsubscribe.
type SubscriberFunc func(event GameEvent)

// OnEvent calls f(event).
func (f SubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a synchronous in-memory event bus. Subscribers are called
// in subscription order on the publishing goroutine.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
