// Package sfx synthesizes the game's sound effects as raw PCM so no audio
// files need to ship with the binary.
package sfx

import (
	"encoding/binary"
	"math"

	cfg "github.com/automoto/celestial-survivor/config"
)

// BytesPerFrame is one 16-bit little-endian stereo sample, the format
// ebiten's audio context expects.
const BytesPerFrame = 4

// maxAmplitude leaves headroom so overlapping effects do not clip.
const maxAmplitude = 0.3 * math.MaxInt16

// Frames returns the number of sample frames a tone lasts at sampleRate.
func Frames(t cfg.Tone, sampleRate int) int {
	if t.DurationMs <= 0 || sampleRate <= 0 {
		return 0
	}
	return sampleRate * t.DurationMs / 1000
}

// Square renders t as a square wave sweeping linearly from StartHz to EndHz
// with a linear fade out.
func Square(t cfg.Tone, sampleRate int) []byte {
	n := Frames(t, sampleRate)
	buf := make([]byte, n*BytesPerFrame)
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		hz := t.StartHz + (t.EndHz-t.StartHz)*progress
		phase += hz / float64(sampleRate)
		phase -= math.Floor(phase)

		v := 1.0
		if phase >= 0.5 {
			v = -1.0
		}
		s := int16(v * t.Volume * (1 - progress) * maxAmplitude)

		off := i * BytesPerFrame
		binary.LittleEndian.PutUint16(buf[off:], uint16(s))
		binary.LittleEndian.PutUint16(buf[off+2:], uint16(s))
	}
	return buf
}
