package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncer_LatestTriggerWins(t *testing.T) {
	d := newDebouncer(time.Millisecond)

	first := d.Trigger()
	second := d.Trigger()

	firstMsg, ok := first().(searchDebouncedMsg)
	require.True(t, ok)
	secondMsg, ok := second().(searchDebouncedMsg)
	require.True(t, ok)

	assert.False(t, d.Fired(firstMsg), "superseded tick must be dropped")
	assert.True(t, d.Fired(secondMsg))
}

func TestDebouncer_FlushInvalidatesPendingTicks(t *testing.T) {
	d := newDebouncer(time.Millisecond)

	cmd := d.Trigger()
	d.Flush()

	msg, ok := cmd().(searchDebouncedMsg)
	require.True(t, ok)
	assert.False(t, d.Fired(msg))
}

func TestDebouncer_SingleBurstFires(t *testing.T) {
	d := newDebouncer(time.Millisecond)

	msg, ok := d.Trigger()().(searchDebouncedMsg)
	require.True(t, ok)
	assert.True(t, d.Fired(msg))
}
