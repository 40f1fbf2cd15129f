package assets

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/automoto/celestial-survivor/assets/sfx"
	cfg "github.com/automoto/celestial-survivor/config"
)

// AudioLoader synthesizes sound effects once and hands out players over the
// cached PCM.
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders every configured tone so the first play has no lag.
func (l *AudioLoader) PreloadSFX() {
	for id := range cfg.Audio.Tones {
		l.pcm(id)
	}
}

func (l *AudioLoader) pcm(id cfg.SoundID) ([]byte, bool) {
	if cached, ok := l.sfxCache[id]; ok {
		return cached, true
	}
	tone, ok := cfg.Audio.Tones[id]
	if !ok {
		return nil, false
	}
	data := sfx.Square(tone, l.context.SampleRate())
	l.sfxCache[id] = data
	return data, true
}

// LoadSFX returns a new player for the sound each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	data, ok := l.pcm(id)
	if !ok {
		return nil, fmt.Errorf("no tone configured for sound %d", id)
	}
	return l.context.NewPlayerFromBytes(data), nil
}
