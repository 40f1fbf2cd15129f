package systems

import (
	"fmt"

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
	"golang.org/x/image/font"
)

// UpdateLevelComplete shows the final overlay once every level's part is
// recovered and starts a new run on confirm.
func UpdateLevelComplete(e *ecs.ECS) {
	sessEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	sess := components.Session.Get(sessEntry)
	levelComplete := GetOrCreateLevelComplete(e)

	levelComplete.IsComplete = sess.Phase() == sim.PhaseComplete
	if !levelComplete.IsComplete {
		levelComplete.Timer = 0
		return
	}
	levelComplete.Timer++

	if GetAction(getOrCreateInput(e), cfg.ActionConfirm).JustPressed {
		PlaySFX(e, cfg.SoundMenuSelect)
		if err := sess.Respawn(); err != nil {
			log.Error().Err(err).Msg("Could not start a new run")
			return
		}
		levelComplete.IsComplete = false
		log.Info().Msg("New run started")
	}
}

// DrawLevelComplete renders the level complete overlay
func DrawLevelComplete(e *ecs.ECS, screen *ebiten.Image) {
	levelComplete := GetOrCreateLevelComplete(e)
	if !levelComplete.IsComplete {
		return
	}
	sessEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	parts := components.Session.Get(sessEntry).State().ShipParts

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.LevelComplete.OverlayColor, false)

	titleFont := fonts.Title.Get()
	title := cfg.LevelComplete.Title
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(height/2)-40, cfg.LevelComplete.TitleColor)

	msgFont := fonts.HUD.Get()
	msg := cfg.LevelComplete.Message
	text.Draw(screen, msg, msgFont, centerTextX(msg, msgFont, width), int(height/2)+10, cfg.LevelComplete.TextColor)
	count := fmt.Sprintf("Ship Parts: %d", parts)
	text.Draw(screen, count, msgFont, centerTextX(count, msgFont, width), int(height/2)+40, cfg.LevelComplete.TextColor)

	hintFont := fonts.Small.Get()
	hint := cfg.LevelComplete.ContinueHint
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(height/2)+80, cfg.LevelComplete.TextColor)
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	textWidth := bounds.Dx()
	return int((screenWidth - float64(textWidth)) / 2)
}

// GetOrCreateLevelComplete returns the singleton LevelComplete component, creating if needed
func GetOrCreateLevelComplete(e *ecs.ECS) *components.LevelCompleteData {
	entry, ok := components.LevelComplete.First(e.World)
	if !ok {
		entry = archetypes.LevelComplete.Spawn(e)
	}
	return components.LevelComplete.Get(entry)
}

// IsLevelComplete checks if the run is complete
func IsLevelComplete(e *ecs.ECS) bool {
	return GetOrCreateLevelComplete(e).IsComplete
}
