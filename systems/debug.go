package systems

import (
	"fmt"

	"github.com/automoto/celestial-survivor/components"
	cfg "github.com/automoto/celestial-survivor/config"
	"github.com/automoto/celestial-survivor/fonts"
	"github.com/automoto/celestial-survivor/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every object in the resolv space and prints the
// player's body state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		if obj.HasTags(tags.ResolvSensor) {
			continue
		}
		c := cfg.UI.DebugColors[debugKind(obj)]
		vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
	}

	sessEntry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	sess := components.Session.Get(sessEntry)
	b := sess.State().Body
	line := fmt.Sprintf("x=%.1f y=%.1f vx=%.2f vy=%.2f grounded=%t tick=%d",
		b.X, b.Y, b.VX, b.VY, b.Grounded, sess.Tick())
	text.Draw(screen, line, fonts.Small.Get(), 10, screen.Bounds().Dy()-10, cfg.UI.TextColor)
}

// debugKind picks the overlay color key for an object.
func debugKind(obj *resolv.Object) string {
	switch {
	case obj.HasTags(tags.ResolvPlayer):
		return "player"
	case obj.HasTags(tags.ResolvFloor):
		return "floor"
	case obj.HasTags(tags.ResolvSpike):
		return "spike"
	case obj.HasTags(tags.ResolvPart):
		return "part"
	default:
		return "platform"
	}
}
