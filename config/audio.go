package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundPickup
	SoundHurt
	SoundDeath
	SoundMenuSelect
	SoundCount
)

// Tone describes a synthesized sound effect: a square wave sliding from
// StartHz to EndHz with a linear fade out.
type Tone struct {
	StartHz    float64
	EndHz      float64
	DurationMs int
	Volume     float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	Tones         map[SoundID]Tone
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
		Tones: map[SoundID]Tone{
			SoundJump:       {StartHz: 330, EndHz: 660, DurationMs: 90, Volume: 0.5},
			SoundPickup:     {StartHz: 660, EndHz: 1320, DurationMs: 220, Volume: 0.6},
			SoundHurt:       {StartHz: 220, EndHz: 110, DurationMs: 160, Volume: 0.7},
			SoundDeath:      {StartHz: 300, EndHz: 60, DurationMs: 600, Volume: 0.8},
			SoundMenuSelect: {StartHz: 520, EndHz: 780, DurationMs: 80, Volume: 0.5},
		},
	}
}
