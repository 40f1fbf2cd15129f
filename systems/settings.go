package systems

import (
	"github.com/automoto/celestial-survivor/archetypes"
	"github.com/automoto/celestial-survivor/components"
	cfg "github.com/automoto/celestial-survivor/config"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the in-game toggles: F1 for the collision overlay
// and M for sound. Changes are saved immediately.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	changed := false
	if GetAction(input, cfg.ActionDebug).JustPressed {
		settings.Debug = !settings.Debug
		changed = true
		log.Debug().Bool("debug", settings.Debug).Msg("Debug overlay toggled")
	}
	if GetAction(input, cfg.ActionMute).JustPressed {
		settings.Muted = !settings.Muted
		SetMuted(e, settings.Muted)
		changed = true
		log.Debug().Bool("muted", settings.Muted).Msg("Sound toggled")
	}

	if changed {
		SaveCurrentSettings(settings)
	}
}

// SaveCurrentSettings saves the toggles from the Settings component while
// keeping the stored progress.
func SaveCurrentSettings(s *components.SettingsData) {
	updateSettings(func(saved *SavedSettings) {
		saved.SFXVolume = s.SFXVolume
		saved.Muted = s.Muted
		saved.ShowDebug = s.Debug
	})
}

// RecordShipParts keeps the best ship part count across runs.
func RecordShipParts(e *ecs.ECS, parts int) {
	settings := GetOrCreateSettings(e)
	if parts <= settings.BestShipParts {
		return
	}
	settings.BestShipParts = parts
	updateSettings(func(saved *SavedSettings) {
		saved.BestShipParts = max(saved.BestShipParts, parts)
	})
}

// GetOrCreateSettings returns the singleton Settings component, seeding it
// from the saved settings and the debug flags.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		saved := LoadSettings()
		entry = archetypes.Settings.Spawn(e)
		components.Settings.SetValue(entry, components.SettingsData{
			Debug:         saved.ShowDebug || cfg.Debug.ShowSpace,
			Muted:         saved.Muted,
			SFXVolume:     saved.SFXVolume,
			BestShipParts: saved.BestShipParts,
			IntroSeen:     saved.IntroSeen,
		})
	}
	return components.Settings.Get(entry)
}
