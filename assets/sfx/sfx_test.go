package sfx

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "github.com/automoto/celestial-survivor/config"
)

func sample(buf []byte, frame int) (int16, int16) {
	off := frame * BytesPerFrame
	l := int16(binary.LittleEndian.Uint16(buf[off:]))
	r := int16(binary.LittleEndian.Uint16(buf[off+2:]))
	return l, r
}

func TestSquareLength(t *testing.T) {
	tone := cfg.Tone{StartHz: 440, EndHz: 440, DurationMs: 100, Volume: 1}
	buf := Square(tone, 44100)

	assert.Len(t, buf, 4410*BytesPerFrame)
}

func TestSquareIsStereoAndFadesOut(t *testing.T) {
	tone := cfg.Tone{StartHz: 440, EndHz: 880, DurationMs: 50, Volume: 1}
	buf := Square(tone, 8000)
	n := Frames(tone, 8000)
	require.Equal(t, 400, n)

	first, firstR := sample(buf, 0)
	assert.Equal(t, first, firstR)
	assert.NotZero(t, first)

	last, _ := sample(buf, n-1)
	assert.Less(t, abs(int(last)), abs(int(first)))
}

func TestSquareVolumeScales(t *testing.T) {
	loud := Square(cfg.Tone{StartHz: 200, EndHz: 200, DurationMs: 10, Volume: 1}, 8000)
	quiet := Square(cfg.Tone{StartHz: 200, EndHz: 200, DurationMs: 10, Volume: 0.5}, 8000)

	l, _ := sample(loud, 0)
	q, _ := sample(quiet, 0)
	assert.InDelta(t, float64(l)/2, float64(q), 1)
}

func TestSquareEmptyTone(t *testing.T) {
	assert.Empty(t, Square(cfg.Tone{StartHz: 440, DurationMs: 0, Volume: 1}, 44100))
	assert.Empty(t, Square(cfg.Tone{StartHz: 440, DurationMs: 100, Volume: 1}, 0))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
