package game

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// ScriptedRoller returns a fixed sequence of die faces.
type ScriptedRoller struct {
	rolls []int
	next  int
}

// NewScriptedRoller creates a roller that replays rolls in order
func NewScriptedRoller(rolls ...int) *ScriptedRoller {
	return &ScriptedRoller{rolls: rolls}
}

// Roll returns the next scripted face. It panics once the script runs out so a
// test that rolls more than expected fails loudly.
func (r *ScriptedRoller) Roll() int {
	if r.next >= len(r.rolls) {
		panic("scripted roller exhausted")
	}
	roll := r.rolls[r.next]
	r.next++
	return roll
}

// Remaining returns how many scripted rolls are left.
func (r *ScriptedRoller) Remaining() int {
	return len(r.rolls) - r.next
}

// ScriptedSource is a DecisionSource that replays canned input and returns
// io.EOF when it runs out.
type ScriptedSource struct {
	Inputs []string
	// OnPrompt runs before each answer with the zero-based prompt count.
	OnPrompt func(prompt int)

	prompts int
}

// NewScriptedSource creates a decision source that answers with inputs in order
func NewScriptedSource(inputs ...string) *ScriptedSource {
	return &ScriptedSource{Inputs: inputs}
}

// PromptForAction returns the next scripted input
func (s *ScriptedSource) PromptForAction(ctx context.Context, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.OnPrompt != nil {
		s.OnPrompt(s.prompts)
	}
	if s.prompts >= len(s.Inputs) {
		return "", io.EOF
	}
	input := s.Inputs[s.prompts]
	s.prompts++
	return input, nil
}

// Prompts returns how many inputs have been consumed.
func (s *ScriptedSource) Prompts() int {
	return s.prompts
}

// EventRecorder keeps every event it receives.
type EventRecorder struct {
	Events []GameEvent
}

// OnEvent implements EventSubscriber
func (r *EventRecorder) OnEvent(event GameEvent) {
	r.Events = append(r.Events, event)
}

// Types returns the recorded event types in order.
func (r *EventRecorder) Types() []EventType {
	types := make([]EventType, len(r.Events))
	for i, e := range r.Events {
		types[i] = e.EventType()
	}
	return types
}

// EventsOf returns the recorded events of type T in order.
func EventsOf[T GameEvent](r *EventRecorder) []T {
	var matched []T
	for _, e := range r.Events {
		if typed, ok := e.(T); ok {
			matched = append(matched, typed)
		}
	}
	return matched
}

// TestEngineOption configures test engine creation
type TestEngineOption func(*testEngineBuilder)

type testEngineBuilder struct {
	rules  Rules
	clock  quartz.Clock
	logger *log.Logger
}

// WithRules overrides the default rules
func WithRules(rules Rules) TestEngineOption {
	return func(b *testEngineBuilder) { b.rules = rules }
}

// WithClock sets the engine clock, usually a *quartz.Mock
func WithClock(clock quartz.Clock) TestEngineOption {
	return func(b *testEngineBuilder) { b.clock = clock }
}

// WithLogger sets the engine logger
func WithLogger(logger *log.Logger) TestEngineOption {
	return func(b *testEngineBuilder) { b.logger = logger }
}

// NewTestEngine creates a turn engine whose events are captured by the
// returned recorder.
func NewTestEngine(roller Roller, opts ...TestEngineOption) (*TurnEngine, *EventRecorder) {
	builder := &testEngineBuilder{
		rules:  DefaultRules(),
		clock:  quartz.NewReal(),
		logger: log.New(io.Discard),
	}

	for _, opt := range opts {
		opt(builder)
	}

	recorder := &EventRecorder{}
	bus := NewEventBus()
	bus.Subscribe(recorder)

	return NewTurnEngine(roller, builder.rules, bus, builder.clock, builder.logger), recorder
}

// NewTestComputer creates a computer player using the default strategy
func NewTestComputer(seat int, name string) *Player {
	rules := DefaultRules()
	return NewPlayer(seat, name, Computer, NewComputerAgent(25, rules.WinThreshold))
}

// NewTestHuman creates a human player answering from inputs
func NewTestHuman(seat int, name string, inputs ...string) (*Player, *ScriptedSource) {
	source := NewScriptedSource(inputs...)
	return NewPlayer(seat, name, Human, NewHumanAgent(source)), source
}
