package leveldata

import (
	"errors"
	"fmt"

	"github.com/automoto/celestial-survivor/shared/kinematics"
)

var ErrNoPlatforms = errors.New("level has no platforms")

// Level is a table resolved against a concrete viewport.
type Level struct {
	Name     string
	Geometry kinematics.Geometry
	Spawn    kinematics.Point
	FloorTop float64
}

// Build resolves t for a viewport of vw by vh pixels. partW and partH size the
// ship part. The result must be rebuilt whenever the viewport changes.
func Build(t Table, vw, vh, partW, partH float64) (Level, error) {
	if len(t.Platforms) == 0 {
		return Level{}, fmt.Errorf("build %s: %w", t.Name, ErrNoPlatforms)
	}

	floorH := t.FloorHeight
	if floorH <= 0 {
		floorH = DefaultFloorHeight
	}
	floorTop := vh - floorH

	lvl := Level{Name: t.Name, FloorTop: floorTop}
	geom := kinematics.Geometry{Width: vw}

	for _, p := range t.Platforms {
		r := kinematics.Rect{X: p.X, W: p.Width.Value, H: p.Height}
		if p.Y.Floor {
			r.Y = floorTop
		} else {
			r.Y = vh + p.Y.Value
		}
		if p.Width.Full {
			r.W = vw
		}
		geom.Solids = append(geom.Solids, r)
	}

	first := t.Platforms[0]
	if first.Y.Floor && first.Width.Full && first.X == 0 {
		geom.Floor = kinematics.FloorFirstSolid
	} else {
		geom.Floor = kinematics.FloorLine
		geom.FloorY = floorTop
	}

	for _, s := range t.Spikes {
		r := kinematics.Rect{X: s.X, W: s.Width, H: s.Height}
		if s.Y.Floor {
			r.Y = floorTop - s.Height
		} else {
			r.Y = vh + s.Y.Value
		}
		geom.Hazards = append(geom.Hazards, kinematics.Hazard{Rect: r, Disabled: s.Disabled})
	}

	if sp := t.ShipPart; sp != nil {
		if sp.PlatformIndex < 0 || sp.PlatformIndex >= len(geom.Solids) {
			return Level{}, fmt.Errorf("build %s: ship part platform index %d out of range", t.Name, sp.PlatformIndex)
		}
		plat := geom.Solids[sp.PlatformIndex]
		geom.Pickup = &kinematics.Rect{
			X: plat.X + plat.W/2 + sp.OffsetX - partW/2,
			Y: plat.Y + sp.OffsetY - partH,
			W: partW,
			H: partH,
		}
	}

	spawn := DefaultSpawn
	if t.Spawn != nil {
		spawn = *t.Spawn
	}
	lvl.Spawn = kinematics.Point{X: spawn.X, Y: vh + spawn.Y}
	lvl.Geometry = geom

	return lvl, nil
}
