package factory

import (
	"math"

	"github.com/automoto/celestial-survivor/archetypes"
	"github.com/automoto/celestial-survivor/components"
	cfg "github.com/automoto/celestial-survivor/config"
	"github.com/automoto/celestial-survivor/shared/kinematics"
	"github.com/automoto/celestial-survivor/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateShipPart creates the level's pickup. The hover only moves the
// drawing; collection is decided against the resting rectangle.
func CreateShipPart(ecs *ecs.ECS, r kinematics.Rect) *donburi.Entry {
	part := archetypes.ShipPart.Spawn(ecs)

	obj := newObject(r.X, r.Y, r.W, r.H, tags.ResolvPart)
	obj.Data = part
	components.Object.SetValue(part, components.ObjectData{Object: obj})
	components.ShipPart.SetValue(part, components.ShipPartData{BaseY: r.Y})
	components.Tween.Set(part, NewHoverTween())
	addToSpace(ecs, obj)

	return part
}

// NewHoverTween bobs between -amplitude and +amplitude. Each half lasts
// pi*period ms so the motion matches sin(t/period).
func NewHoverTween() *gween.Sequence {
	amp := float32(cfg.ShipPart.HoverAmplitude)
	half := float32(math.Pi * cfg.ShipPart.HoverPeriodMs)

	tw := gween.NewSequence()
	tw.Add(
		gween.New(-amp, amp, half, ease.InOutSine),
		gween.New(amp, -amp, half, ease.InOutSine),
	)
	tw.SetLoop(-1)
	return tw
}
