package systems

import (
	"testing"

	"github.com/automoto/celestial-survivor/archetypes"
	"github.com/automoto/celestial-survivor/components"
	cfg "github.com/automoto/celestial-survivor/config"
	"github.com/automoto/celestial-survivor/shared/kinematics"
	"github.com/automoto/celestial-survivor/shared/leveldata"
	"github.com/automoto/celestial-survivor/sim"
	"github.com/automoto/celestial-survivor/systems/factory"
	"github.com/automoto/celestial-survivor/tags"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

func floorPlatform() leveldata.Platform {
	return leveldata.Platform{X: 0, Y: leveldata.OnFloor, Width: leveldata.FullWidth, Height: 50}
}

func plainLevel() leveldata.Table {
	return leveldata.Table{
		Name: "plain",
		Platforms: []leveldata.Platform{
			floorPlatform(),
			{X: 250, Y: leveldata.Num(-180), Width: leveldata.Num(180), Height: 15},
		},
		ShipPart: &leveldata.ShipPart{PlatformIndex: 1},
	}
}

// spikeLevel puts spikes right under the spawn point.
func spikeLevel() leveldata.Table {
	t := plainLevel()
	t.Name = "spiked"
	t.Spikes = []leveldata.Spike{{X: 0, Y: leveldata.OnFloor, Width: 100, Height: 30}}
	return t
}

// spawnTestPlayer creates the player without sprites so tests never touch
// the GPU.
func spawnTestPlayer(e *ecs.ECS, b kinematics.Body) *donburi.Entry {
	player := archetypes.Player.Spawn(e)
	obj := resolv.NewObject(b.X, b.Y, b.W, b.H, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	sensor := resolv.NewObject(b.X-48, b.Y-48, b.W+96, b.H+96, tags.ResolvSensor)
	sensor.Data = player
	components.Player.SetValue(player, components.PlayerData{Facing: cfg.DirectionRight, Sensor: sensor})
	components.Flash.SetValue(player, components.FlashData{R: 1, G: 1, B: 1})
	return player
}

func newTestWorld(t *testing.T, levels ...leveldata.Table) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	sess, err := sim.NewSession(levels, 1000, 600, sim.DefaultOptions())
	require.NoError(t, err)

	e := ecs.NewECS(donburi.NewWorld())
	entry := factory.CreateSession(e, sess)
	spawnTestPlayer(e, sess.State().Body)
	UpdateLevel(e)
	return e, entry
}

func count(e *ecs.ECS, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(e.World)
}

func press(e *ecs.ECS, actions ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}

func pendingSFX(e *ecs.ECS) []cfg.SoundID {
	return GetOrCreateAudio(e).PendingSFX
}

func TestUpdateLevelBuildsEntities(t *testing.T) {
	e, entry := newTestWorld(t, plainLevel())
	sess := components.Session.Get(entry)

	assert.Equal(t, sess.Generation(), sess.SyncedGeneration)
	assert.Equal(t, 1, count(e, tags.Floor))
	assert.Equal(t, 1, count(e, tags.Platform))
	assert.Equal(t, 1, count(e, tags.ShipPart))
	assert.Equal(t, 0, count(e, tags.Spike))

	level := components.Level.Get(entry)
	assert.Equal(t, "plain", level.Name)
	assert.Equal(t, 550.0, level.FloorTop)

	spaceEntry, ok := components.Space.First(e.World)
	require.True(t, ok)
	// floor, platform, part, player and sensor
	assert.Len(t, components.Space.Get(spaceEntry).Objects(), 5)
}

func TestUpdateLevelRebuildsOnResize(t *testing.T) {
	e, entry := newTestWorld(t, plainLevel())
	sess := components.Session.Get(entry)
	before := sess.Generation()

	SetViewport(e, 1200, 700)
	UpdateLevel(e)

	w, h := sess.Viewport()
	assert.Equal(t, 1200.0, w)
	assert.Equal(t, 700.0, h)
	assert.Greater(t, sess.Generation(), before)
	assert.Equal(t, 1, count(e, tags.Platform))

	floor, ok := tags.Floor.First(e.World)
	require.True(t, ok)
	assert.Equal(t, 1200.0, components.Object.Get(floor).W)
	assert.Equal(t, 650.0, components.Object.Get(floor).Y)
}

func TestUpdatePlayerMirrorsBody(t *testing.T) {
	e, entry := newTestWorld(t, plainLevel())
	sess := components.Session.Get(entry)

	press(e, cfg.ActionMoveLeft)
	UpdatePlayer(e)

	player, ok := tags.Player.First(e.World)
	require.True(t, ok)
	body := sess.State().Body
	obj := components.Object.Get(player)
	assert.Equal(t, body.X, obj.X)
	assert.Equal(t, body.Y, obj.Y)
	assert.Equal(t, 15.5, obj.X)
	assert.Equal(t, cfg.DirectionLeft, components.Player.Get(player).Facing)
	assert.Equal(t, -4.5, components.Physics.Get(player).SpeedX)
	assert.Equal(t, uint64(1), sess.Tick())
}

func TestUpdatePlayerJumpQueuesSound(t *testing.T) {
	e, entry := newTestWorld(t, plainLevel())
	sess := components.Session.Get(entry)

	for i := 0; i < 120 && !sess.State().Body.Grounded; i++ {
		UpdatePlayer(e)
	}
	require.True(t, sess.State().Body.Grounded)

	press(e, cfg.ActionJump)
	UpdatePlayer(e)

	assert.Contains(t, pendingSFX(e), cfg.SoundJump)
	assert.Less(t, sess.State().Body.VY, 0.0)
}

func TestUpdatePlayerHazardFlashesAndHurts(t *testing.T) {
	e, entry := newTestWorld(t, spikeLevel())
	sess := components.Session.Get(entry)
	player, ok := tags.Player.First(e.World)
	require.True(t, ok)

	hit := false
	for i := 0; i < 200 && !hit; i++ {
		UpdatePlayer(e)
		hit = len(sess.Events) > 0
	}
	require.True(t, hit)

	assert.Equal(t, kinematics.EventHazardHit, sess.Events[0].Kind)
	assert.Equal(t, 80, sess.State().Health)
	assert.Equal(t, cfg.HurtFlashTicks, components.Flash.Get(player).Duration)
	assert.Contains(t, pendingSFX(e), cfg.SoundHurt)
}

func TestDeathAndRespawnOnConfirm(t *testing.T) {
	e, entry := newTestWorld(t, spikeLevel())
	sess := components.Session.Get(entry)

	for i := 0; i < 2000 && sess.Phase() == sim.PhasePlaying; i++ {
		UpdatePlayer(e)
	}
	require.Equal(t, sim.PhaseDead, sess.Phase())
	assert.Contains(t, pendingSFX(e), cfg.SoundDeath)

	// Nothing moves while dead
	tick := sess.Tick()
	UpdatePlayer(e)
	assert.Equal(t, tick, sess.Tick())

	press(e)
	UpdateDeath(e)
	assert.Equal(t, sim.PhaseDead, sess.Phase())
	assert.Equal(t, 1, GetOrCreateDeath(e).Timer)

	press(e, cfg.ActionConfirm)
	UpdateDeath(e)
	assert.Equal(t, sim.PhasePlaying, sess.Phase())
	assert.Equal(t, 100, sess.State().Health)
}

func TestUpdateCollisionsFlagsNearbySpikes(t *testing.T) {
	e, _ := newTestWorld(t, spikeLevel())

	UpdateCollisions(e)

	spike, ok := tags.Spike.First(e.World)
	require.True(t, ok)
	assert.True(t, components.Spike.Get(spike).Near)

	part, ok := tags.ShipPart.First(e.World)
	require.True(t, ok)
	assert.False(t, components.ShipPart.Get(part).Near)
}

func TestUpdateObjectsHoversShipPart(t *testing.T) {
	e, _ := newTestWorld(t, plainLevel())
	part, ok := tags.ShipPart.First(e.World)
	require.True(t, ok)
	base := components.ShipPart.Get(part).BaseY

	for i := 0; i < 10; i++ {
		UpdateObjects(e)
	}

	y := components.Object.Get(part).Y
	assert.NotEqual(t, base, y)
	assert.InDelta(t, base, y, cfg.ShipPart.HoverAmplitude)
}

func TestPauseSkipsGameplay(t *testing.T) {
	e, entry := newTestWorld(t, plainLevel())
	sess := components.Session.Get(entry)
	update := WithGameplayChecks(UpdatePlayer)

	press(e, cfg.ActionPause)
	UpdatePause(e)
	require.True(t, GetOrCreatePause(e).IsPaused)

	update(e)
	assert.Equal(t, uint64(0), sess.Tick())

	press(e)
	UpdatePause(e)
	press(e, cfg.ActionPause)
	UpdatePause(e)
	require.False(t, GetOrCreatePause(e).IsPaused)

	update(e)
	assert.Equal(t, uint64(1), sess.Tick())
}

func TestPlayerStateFor(t *testing.T) {
	tests := []struct {
		name    string
		phase   sim.Phase
		physics components.PhysicsData
		flash   components.FlashData
		want    cfg.StateID
	}{
		{"idle", sim.PhasePlaying, components.PhysicsData{OnGround: true}, components.FlashData{}, cfg.Idle},
		{"walk", sim.PhasePlaying, components.PhysicsData{OnGround: true, SpeedX: 4.5}, components.FlashData{}, cfg.Walk},
		{"jump", sim.PhasePlaying, components.PhysicsData{SpeedY: -3}, components.FlashData{}, cfg.Jump},
		{"fall", sim.PhasePlaying, components.PhysicsData{SpeedY: 2}, components.FlashData{}, cfg.Fall},
		{"hurt", sim.PhasePlaying, components.PhysicsData{OnGround: true}, components.FlashData{Duration: 5}, cfg.Hurt},
		{"dead", sim.PhaseDead, components.PhysicsData{OnGround: true}, components.FlashData{Duration: 5}, cfg.Dead},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, playerStateFor(tt.phase, &tt.physics, &tt.flash))
		})
	}
}

func TestFlashAmountBlinks(t *testing.T) {
	assert.Zero(t, flashAmount(&components.FlashData{}))
	assert.NotZero(t, flashAmount(&components.FlashData{Duration: 3}))
	assert.Zero(t, flashAmount(&components.FlashData{Duration: 5}))
}
