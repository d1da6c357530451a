package game

import (
	"time"

	"github.com/coder/quartz"
)

// TerminationPolicy decides when a game can end other than by reaching the
// win threshold. The zero value is Unbounded.
type TerminationPolicy struct {
	TimeLimit time.Duration
}

// Unbounded games end only when someone reaches the win threshold.
func Unbounded() TerminationPolicy {
	return TerminationPolicy{}
}

// TimeBoxed games also end when limit has elapsed; the best committed score wins.
func TimeBoxed(limit time.Duration) TerminationPolicy {
	return TerminationPolicy{TimeLimit: limit}
}

// Timed reports whether the policy has a clock.
func (p TerminationPolicy) Timed() bool {
	return p.TimeLimit > 0
}

// String names the policy for narration and game records.
func (p TerminationPolicy) String() string {
	if p.Timed() {
		return "timed"
	}
	return "unbounded"
}

// Countdown starts the policy's clock. Unbounded policies return a countdown
// that never expires.
func (p TerminationPolicy) Countdown(clock quartz.Clock) Countdown {
	if !p.Timed() {
		return Countdown{}
	}
	return Countdown{
		clock:    clock,
		deadline: clock.Now().Add(p.TimeLimit),
		bounded:  true,
	}
}

// Countdown tracks the deadline of a timed game. It is polled, never preemptive.
type Countdown struct {
	clock    quartz.Clock
	deadline time.Time
	bounded  bool
}

// Bounded reports whether this countdown can expire.
func (c Countdown) Bounded() bool {
	return c.bounded
}

// Deadline returns when the game ends, or the zero time for unbounded games.
func (c Countdown) Deadline() time.Time {
	return c.deadline
}

// Remaining returns the time left, never negative.
func (c Countdown) Remaining() time.Duration {
	if !c.bounded {
		return 0
	}
	remaining := c.clock.Until(c.deadline, "countdown", "remaining")
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Expired reports whether the deadline has been reached.
func (c Countdown) Expired() bool {
	if !c.bounded {
		return false
	}
	return !c.clock.Now("countdown", "expired").Before(c.deadline)
}
