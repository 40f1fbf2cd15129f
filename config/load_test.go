package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/celestial-survivor/shared/kinematics"
)

// restoreGlobals resets viper and the package config after the test.
func restoreGlobals(t *testing.T) {
	t.Helper()
	physics, hazard, player, log, debug := Physics, Hazard, Player, Log, Debug
	c := *C
	t.Cleanup(func() {
		viper.Reset()
		Physics, Hazard, Player, Log, Debug = physics, hazard, player, log, debug
		*C = c
	})
}

func TestLoad_Defaults(t *testing.T) {
	restoreGlobals(t)

	require.NoError(t, Load(""))

	assert.Equal(t, kinematics.DefaultTuning(), Tuning())
	assert.Equal(t, 100, Player.MaxHealth)
	assert.Equal(t, "info", Log.Level)
	assert.Equal(t, 60, C.TPS)
}

func TestLoad_WithYAMLFile(t *testing.T) {
	restoreGlobals(t)

	dir := t.TempDir()
	cfg := `
jumpStrength: 18
jumpCut: false
ceiling: overlap
hazardDamage: 25
logLevel: debug
window:
  width: 1280
`
	path := filepath.Join(dir, "celestial.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	require.NoError(t, Load(path))

	tuning := Tuning()
	assert.Equal(t, 18.0, tuning.JumpStrength)
	assert.False(t, tuning.JumpCut)
	assert.Equal(t, kinematics.CeilingOverlap, tuning.Ceiling)
	assert.Equal(t, 25, tuning.HazardDamage)
	assert.Equal(t, 4.5, tuning.Speed)
	assert.Equal(t, "debug", Log.Level)
	assert.Equal(t, 1280, C.Width)
	assert.Equal(t, 640, C.Height)
}

func TestLoad_EnvOverride(t *testing.T) {
	restoreGlobals(t)
	t.Setenv("CELESTIAL_GRAVITYPERTICK", "1.2")
	t.Setenv("CELESTIAL_MAXHEALTH", "60")

	require.NoError(t, Load(""))

	assert.Equal(t, 1.2, Physics.GravityPerTick)
	assert.Equal(t, 60, Player.MaxHealth)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		restoreGlobals(t)
		err := Load("/nonexistent/celestial.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config file")
	})

	t.Run("bad ceiling", func(t *testing.T) {
		restoreGlobals(t)
		t.Setenv("CELESTIAL_CEILING", "sideways")
		assert.ErrorContains(t, Load(""), "invalid ceiling policy")
	})
}
