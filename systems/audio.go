package systems

import (
	"sync"

	"github.com/automoto/celestial-survivor/archetypes"
	"github.com/automoto/celestial-survivor/assets"
	"github.com/automoto/celestial-survivor/components"
	cfg "github.com/automoto/celestial-survivor/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX synthesizes all sound effects at startup to avoid lag on
// first play.
func PreloadAllSFX() {
	initGlobalAudio()
	globalAudioLoader.PreloadSFX()
}

// UpdateAudio plays the sound effects queued this tick
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalMuted || globalSFXVolume <= 0 {
		return
	}
	initGlobalAudio()

	player, err := globalAudioLoader.LoadSFX(soundID)
	if err != nil {
		log.Debug().Err(err).Int("sound", int(soundID)).Msg("Skipping sound")
		return
	}
	player.SetVolume(globalSFXVolume)
	player.Play()
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	globalSFXVolume = volume
	GetOrCreateAudio(e).SFXVolume = volume
}

// SetMuted silences or restores all sound effects
func SetMuted(e *ecs.ECS, muted bool) {
	globalMuted = muted
	GetOrCreateAudio(e).Muted = muted
}

// ApplySavedSettingsGlobal applies audio settings before any scene exists
func ApplySavedSettingsGlobal(saved SavedSettings) {
	globalSFXVolume = saved.SFXVolume
	globalMuted = saved.Muted
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = archetypes.Audio.Spawn(e)
		components.Audio.SetValue(entry, components.AudioData{
			Context:    globalAudioContext,
			SFXVolume:  globalSFXVolume,
			Muted:      globalMuted,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
