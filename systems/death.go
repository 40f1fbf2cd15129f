package systems

import (
	"github.com/automoto/celestial-survivor/archetypes"
	"github.com/automoto/celestial-survivor/components"
	cfg "github.com/automoto/celestial-survivor/config"
	"github.com/automoto/celestial-survivor/fonts"
	"github.com/automoto/celestial-survivor/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// deathFadeTicks is how long the death overlay takes to fade in.
const deathFadeTicks = 30

// UpdateDeath waits on the death screen until the player confirms, then
// restarts from the first level.
func UpdateDeath(e *ecs.ECS) {
	sessEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	sess := components.Session.Get(sessEntry)
	death := GetOrCreateDeath(e)

	if sess.Phase() != sim.PhaseDead {
		death.Timer = 0
		return
	}
	death.Timer++

	if GetAction(getOrCreateInput(e), cfg.ActionConfirm).JustPressed {
		PlaySFX(e, cfg.SoundMenuSelect)
		if err := sess.Respawn(); err != nil {
			log.Error().Err(err).Msg("Could not respawn")
			return
		}
		death.Timer = 0
		log.Info().Msg("Player respawned")
	}
}

// DrawDeath renders the death overlay.
func DrawDeath(e *ecs.ECS, screen *ebiten.Image) {
	sessEntry, ok := components.Session.First(e.World)
	if !ok || components.Session.Get(sessEntry).Phase() != sim.PhaseDead {
		return
	}
	death := GetOrCreateDeath(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	overlay := cfg.Death.OverlayColor
	fade := min(float64(death.Timer)/deathFadeTicks, 1)
	overlay.A = uint8(float64(overlay.A) * fade)
	vector.FillRect(screen, 0, 0, float32(width), float32(height), overlay, false)

	titleFont := fonts.Title.Get()
	title := cfg.Death.Title
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(height/2)-10, cfg.Death.TitleColor)

	hintFont := fonts.HUD.Get()
	hint := getDeathHint(getOrCreateInput(e).LastInputMethod)
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(height/2)+40, cfg.Death.TextColor)
}

func getDeathHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Press Options to restart"
	case components.InputXbox:
		return "Press Start to restart"
	}
	return cfg.Death.Hint
}

// GetOrCreateDeath returns the singleton Death component, creating if needed.
func GetOrCreateDeath(e *ecs.ECS) *components.DeathData {
	entry, ok := components.Death.First(e.World)
	if !ok {
		entry = archetypes.Death.Spawn(e)
	}
	return components.Death.Get(entry)
}
