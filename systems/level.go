package systems

import (
	"github.com/automoto/celestial-survivor/components"
	"github.com/automoto/celestial-survivor/systems/factory"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLevel keeps the entities in step with the session. A viewport change
// rebuilds the geometry; any new generation (next level, respawn, reload or
// resize) rebuilds the level entities.
func UpdateLevel(ecs *ecs.ECS) {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	sess := components.Session.Get(entry)
	sess.Frames++
	vp := components.Viewport.Get(entry)

	if w, h := sess.Viewport(); vp.Width > 0 && vp.Height > 0 &&
		(float64(vp.Width) != w || float64(vp.Height) != h) {
		if err := sess.Resize(float64(vp.Width), float64(vp.Height)); err != nil {
			log.Error().Err(err).Int("width", vp.Width).Int("height", vp.Height).Msg("Could not resize level")
			vp.Width, vp.Height = int(w), int(h)
		} else {
			log.Info().Int("width", vp.Width).Int("height", vp.Height).Msg("Viewport resized")
		}
	}

	if sess.Generation() != sess.SyncedGeneration {
		factory.BuildLevel(ecs, entry)
	}
}

// SetViewport records the drawable size; UpdateLevel applies it on the next
// tick.
func SetViewport(ecs *ecs.ECS, width, height int) {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	vp := components.Viewport.Get(entry)
	vp.Width, vp.Height = width, height
}
