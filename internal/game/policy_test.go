package game

import (
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
)

func TestCountdown_Unbounded(t *testing.T) {
	countdown := Unbounded().Countdown(quartz.NewMock(t))

	assert.False(t, countdown.Bounded())
	assert.False(t, countdown.Expired())
	assert.Zero(t, countdown.Remaining())
	assert.True(t, countdown.Deadline().IsZero())
}

func TestCountdown_TimeBoxed(t *testing.T) {
	ctx := context.Background()
	mockClock := quartz.NewMock(t)
	countdown := TimeBoxed(time.Minute).Countdown(mockClock)

	assert.True(t, countdown.Bounded())
	assert.Equal(t, time.Minute, countdown.Remaining())
	assert.False(t, countdown.Expired())

	mockClock.Advance(59 * time.Second).MustWait(ctx)
	assert.Equal(t, time.Second, countdown.Remaining())
	assert.False(t, countdown.Expired())

	mockClock.Advance(time.Second).MustWait(ctx)
	assert.Zero(t, countdown.Remaining())
	assert.True(t, countdown.Expired())

	mockClock.Advance(time.Hour).MustWait(ctx)
	assert.Zero(t, countdown.Remaining())
}

func TestTerminationPolicy_String(t *testing.T) {
	assert.Equal(t, "unbounded", Unbounded().String())
	assert.Equal(t, "timed", TimeBoxed(time.Second).String())
	assert.False(t, TimeBoxed(0).Timed())
}
