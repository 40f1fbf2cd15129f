package sim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/celestial-survivor/shared/kinematics"
	"github.com/automoto/celestial-survivor/shared/leveldata"
)

type endless struct{ in kinematics.Intent }

func (e endless) Next() (kinematics.Intent, bool) { return e.in, true }

func TestLoop_RunsScriptToEnd(t *testing.T) {
	s := newTestSession(t)
	script := Script{Segments: []Segment{{Ticks: 30, Right: true}, {Ticks: 10}}}

	loop := NewLoop(s, NewScriptSource(script), 0)
	res, err := loop.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint64(40), res.Ticks)
	assert.Equal(t, PhasePlaying, res.Phase)
	assert.Equal(t, 1, res.Level)
	assert.Equal(t, 155.0, res.State.Body.X)
	assert.True(t, res.State.Body.Grounded)
}

func TestLoop_StopsOnDeath(t *testing.T) {
	levels := []leveldata.Table{{
		Platforms: []leveldata.Platform{floor()},
		Spikes:    []leveldata.Spike{{X: 0, Y: leveldata.OnFloor, Width: 200, Height: 30}},
	}}
	opts := DefaultOptions()
	opts.MaxHealth = 20
	s, err := NewSession(levels, 1000, 600, opts)
	require.NoError(t, err)

	var got []kinematics.EventKind
	loop := NewLoop(s, endless{}, 0)
	loop.OnEvent(func(_ uint64, ev kinematics.Event) { got = append(got, ev.Kind) })

	res, err := loop.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, PhaseDead, res.Phase)
	assert.True(t, res.State.Dead)
	assert.Equal(t, []kinematics.EventKind{kinematics.EventHazardHit, kinematics.EventDied}, got)
}

func TestLoop_ContextCancel(t *testing.T) {
	s := newTestSession(t)
	loop := NewLoop(s, endless{}, 1000)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	res, err := loop.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Greater(t, res.Ticks, uint64(0))
}

func TestLoop_Stop(t *testing.T) {
	s := newTestSession(t)
	loop := NewLoop(s, endless{}, 500)

	time.AfterFunc(30*time.Millisecond, loop.Stop)
	res, err := loop.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, PhasePlaying, res.Phase)

	loop.Stop()
}
