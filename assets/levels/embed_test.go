package levels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/celestial-survivor/shared/kinematics"
	"github.com/automoto/celestial-survivor/shared/leveldata"
)

func TestLoad(t *testing.T) {
	tables, err := Load()
	require.NoError(t, err)
	require.Len(t, tables, 3)

	assert.Equal(t, "Crash Site", tables[0].Name)
	assert.Equal(t, "Spike Field", tables[1].Name)
	assert.Equal(t, "03-ridge", tables[2].Name)
}

func TestLoad_SpikeFieldMatchesShippedLayout(t *testing.T) {
	tables, err := Load()
	require.NoError(t, err)

	lvl, err := leveldata.Build(tables[1], 1000, 600, 40, 40)
	require.NoError(t, err)

	require.Len(t, lvl.Geometry.Hazards, 3)
	for i, x := range []float64{420, 445, 470} {
		assert.Equal(t, kinematics.Rect{X: x, Y: 520, W: 40, H: 30}, lvl.Geometry.Hazards[i].Rect)
	}
	assert.Equal(t, kinematics.Point{X: 20, Y: 460}, lvl.Spawn)
}

func TestLoad_EveryLevelBuilds(t *testing.T) {
	tables, err := Load()
	require.NoError(t, err)

	for _, tbl := range tables {
		t.Run(tbl.Name, func(t *testing.T) {
			lvl, err := leveldata.Build(tbl, 1024, 640, 40, 40)
			require.NoError(t, err)
			assert.Equal(t, kinematics.FloorFirstSolid, lvl.Geometry.Floor)
			require.NotNil(t, lvl.Geometry.Pickup)
			assert.Less(t, lvl.Geometry.Pickup.Right(), 1024.0+1)
		})
	}
}
