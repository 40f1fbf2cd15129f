package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/celestial-survivor/shared/kinematics"
	"github.com/automoto/celestial-survivor/shared/leveldata"
)

func floor() leveldata.Platform {
	return leveldata.Platform{X: 0, Y: leveldata.OnFloor, Width: leveldata.FullWidth, Height: 50}
}

func testLevels() []leveldata.Table {
	return []leveldata.Table{
		{
			Name: "one",
			Platforms: []leveldata.Platform{
				floor(),
				{X: 250, Y: leveldata.Num(-180), Width: leveldata.Num(180), Height: 15},
			},
			ShipPart: &leveldata.ShipPart{PlatformIndex: 1},
		},
		{
			Name: "two",
			Platforms: []leveldata.Platform{
				floor(),
				{X: 420, Y: leveldata.Num(-320), Width: leveldata.Num(140), Height: 15},
			},
			ShipPart: &leveldata.ShipPart{PlatformIndex: 1, OffsetX: -8, OffsetY: -6},
			Spikes: []leveldata.Spike{
				{X: 420, Y: leveldata.OnFloor, Width: 40, Height: 30},
			},
		},
	}
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(testLevels(), 1000, 600, DefaultOptions())
	require.NoError(t, err)
	return s
}

// placeOnPickup moves the body onto the current level's ship part.
func placeOnPickup(t *testing.T, s *Session) {
	t.Helper()
	part := s.Geometry().Pickup
	require.NotNil(t, part)
	s.state.Body.X = part.X
	s.state.Body.Y = part.Y
	s.state.Body.VY = 0
}

func TestNewSession(t *testing.T) {
	s := newTestSession(t)

	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Equal(t, 0, s.LevelIndex())
	assert.Equal(t, 2, s.LevelCount())
	assert.Equal(t, 1, s.Generation())

	st := s.State()
	assert.Equal(t, kinematics.Point{X: 20, Y: 460}, st.Spawn)
	assert.Equal(t, 100, st.Health)
	assert.Equal(t, 40.0, st.Body.W)
}

func TestNewSession_Errors(t *testing.T) {
	t.Run("no levels", func(t *testing.T) {
		_, err := NewSession(nil, 1000, 600, DefaultOptions())
		assert.ErrorIs(t, err, ErrNoLevels)
	})

	t.Run("invalid level", func(t *testing.T) {
		levels := testLevels()
		levels[1].ShipPart.PlatformIndex = 9
		_, err := NewSession(levels, 1000, 600, DefaultOptions())
		assert.ErrorContains(t, err, "level 2")
	})
}

func TestSession_PickupAdvancesLevel(t *testing.T) {
	s := newTestSession(t)
	s.state.Health = 60
	placeOnPickup(t, s)

	events := s.Step(kinematics.Intent{})
	require.Equal(t, []kinematics.Event{{Kind: kinematics.EventPickupCollected}}, events)

	assert.Equal(t, 1, s.LevelIndex())
	assert.Equal(t, 2, s.Generation())
	assert.Equal(t, PhasePlaying, s.Phase())

	st := s.State()
	assert.Equal(t, 1, st.ShipParts)
	assert.Equal(t, 60, st.Health)
	assert.False(t, st.PickupCollected)
	assert.Equal(t, st.Spawn.X, st.Body.X)
	assert.Equal(t, st.Spawn.Y, st.Body.Y)
	assert.Equal(t, "two", s.Level().Name)
}

func TestSession_LastPickupCompletes(t *testing.T) {
	s := newTestSession(t)
	placeOnPickup(t, s)
	s.Step(kinematics.Intent{})
	placeOnPickup(t, s)
	s.Step(kinematics.Intent{})

	assert.Equal(t, PhaseComplete, s.Phase())
	assert.Equal(t, 2, s.State().ShipParts)

	tick := s.Tick()
	assert.Nil(t, s.Step(kinematics.Intent{MoveRight: true}))
	assert.Equal(t, tick, s.Tick())
}

func TestSession_DeathAndRespawn(t *testing.T) {
	s := newTestSession(t)
	placeOnPickup(t, s)
	s.Step(kinematics.Intent{})
	require.Equal(t, 1, s.LevelIndex())

	spike := s.Geometry().Hazards[0]
	s.state.Health = 20
	s.state.Body.X = spike.X
	s.state.Body.Y = spike.Y - 10

	events := s.Step(kinematics.Intent{})
	require.Len(t, events, 2)
	assert.Equal(t, kinematics.EventDied, events[1].Kind)
	assert.Equal(t, PhaseDead, s.Phase())

	frozen := s.State()
	assert.Nil(t, s.Step(kinematics.Intent{MoveLeft: true, JumpPressed: true}))
	assert.Equal(t, frozen, s.State())

	require.NoError(t, s.Respawn())
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Equal(t, 0, s.LevelIndex())
	assert.Equal(t, 100, s.State().Health)
	assert.Equal(t, 0, s.State().ShipParts)
	assert.False(t, s.State().Dead)
}

func TestSession_Resize(t *testing.T) {
	s := newTestSession(t)
	for i := 0; i < 10; i++ {
		s.Step(kinematics.Intent{MoveRight: true})
	}
	s.state.Health = 80

	require.NoError(t, s.Resize(800, 500))

	g := s.Geometry()
	assert.Equal(t, 800.0, g.Width)
	assert.Equal(t, 800.0, g.Solids[0].W)
	assert.Equal(t, 450.0, g.Solids[0].Y)
	assert.Equal(t, kinematics.Point{X: 20, Y: 360}, s.State().Spawn)
	assert.Equal(t, 20.0, s.State().Body.X)
	assert.Equal(t, 80, s.State().Health)
	assert.Equal(t, 2, s.Generation())

	w, h := s.Viewport()
	assert.Equal(t, 800.0, w)
	assert.Equal(t, 500.0, h)

	require.NoError(t, s.Resize(800, 500))
	assert.Equal(t, 2, s.Generation(), "same size does not rebuild")
}

func TestSession_Reload(t *testing.T) {
	s := newTestSession(t)
	placeOnPickup(t, s)
	s.Step(kinematics.Intent{})
	require.Equal(t, 1, s.LevelIndex())

	require.NoError(t, s.Reload(testLevels()[:1]))
	assert.Equal(t, 0, s.LevelIndex())
	assert.Equal(t, 1, s.LevelCount())
	assert.Equal(t, 1, s.State().ShipParts)

	err := s.Reload(nil)
	assert.ErrorIs(t, err, ErrNoLevels)
	assert.Equal(t, 1, s.LevelCount())
}

func TestSession_SetTuning(t *testing.T) {
	s := newTestSession(t)
	tuning := kinematics.DefaultTuning()
	tuning.Speed = 10
	s.SetTuning(tuning)

	s.Step(kinematics.Intent{MoveRight: true})
	assert.Equal(t, 30.0, s.State().Body.X)
}
