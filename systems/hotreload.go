package systems

import (
	"io/fs"

	"github.com/automoto/celestial-survivor/components"
	"github.com/automoto/celestial-survivor/shared/leveldata"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateHotReload creates a system that reloads every level from fsys
// when changed paths arrive on events. A level that fails to load leaves the
// current ones in place.
func NewUpdateHotReload(fsys fs.FS, events <-chan string) ecs.System {
	return func(e *ecs.ECS) {
		changed := drainPaths(events)
		if len(changed) == 0 {
			return
		}

		sessEntry, ok := components.Session.First(e.World)
		if !ok {
			return
		}
		sess := components.Session.Get(sessEntry)

		tables, err := leveldata.LoadAll(fsys, ".")
		if err != nil {
			log.Warn().Err(err).Strs("changed", changed).Msg("Level reload failed, keeping current levels")
			return
		}
		if err := sess.Reload(tables); err != nil {
			log.Warn().Err(err).Strs("changed", changed).Msg("Level reload rejected, keeping current levels")
			return
		}
		log.Info().Strs("changed", changed).Int("levels", len(tables)).Msg("Levels reloaded")
	}
}

// drainPaths takes every path waiting on ch without blocking.
func drainPaths(ch <-chan string) []string {
	var paths []string
	for {
		select {
		case p, ok := <-ch:
			if !ok {
				return paths
			}
			paths = append(paths, p)
		default:
			return paths
		}
	}
}
