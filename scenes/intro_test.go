package scenes

import (
	"image"
	"testing"

	cfg "github.com/automoto/celestial-survivor/config"
	"github.com/stretchr/testify/assert"
)

func testIntroConfig() cfg.IntroConfig {
	return cfg.IntroConfig{
		InitialWaitMs: 100,
		FadeRate:      0.01,
		VisibleMs:     50,
	}
}

func TestStorySequence(t *testing.T) {
	s := newStorySequence([]string{"first", "second"}, testIntroConfig())

	assert.False(t, s.Update(50))
	assert.Equal(t, "", s.Line(), "nothing shows during the initial wait")
	assert.Equal(t, float32(0), s.Alpha())

	assert.False(t, s.Update(100))
	assert.Equal(t, "first", s.Line())
	assert.InDelta(t, 0.5, s.Alpha(), 1e-4)

	assert.False(t, s.Update(100))
	assert.Equal(t, "first", s.Line())
	assert.InDelta(t, 1, s.Alpha(), 1e-4)

	assert.False(t, s.Update(50))
	assert.Equal(t, "first", s.Line())
	assert.InDelta(t, 0.5, s.Alpha(), 1e-4)

	assert.False(t, s.Update(60))
	assert.Equal(t, "second", s.Line())
	assert.InDelta(t, 0.1, s.Alpha(), 1e-4)

	assert.True(t, s.Update(1000))
	assert.Equal(t, "", s.Line())
	assert.Equal(t, float32(0), s.Alpha())
	assert.True(t, s.Update(16), "stays finished")
}

func TestStorySequence_ShippedTiming(t *testing.T) {
	s := newStorySequence(cfg.Intro.Texts, cfg.Intro)

	fadeMs := 1 / cfg.Intro.FadeRate
	perLine := 2*fadeMs + cfg.Intro.VisibleMs
	total := cfg.Intro.InitialWaitMs + perLine*float64(len(cfg.Intro.Texts))

	elapsed := 0.0
	for elapsed+20 < total {
		assert.False(t, s.Update(16), "finished early at %.0fms", elapsed)
		elapsed += 16
	}
	assert.True(t, s.Update(100))
}

func TestSkipHintPos(t *testing.T) {
	tests := []struct {
		name         string
		bounds       image.Rectangle
		w, h, margin int
		wantX, wantY int
	}{
		{"with descent", image.Rect(0, -12, 150, 4), 800, 600, 20, 630, 576},
		{"side bearing", image.Rect(1, -12, 151, 0), 800, 600, 20, 629, 580},
		{"no margin", image.Rect(0, -10, 100, 3), 1200, 700, 0, 1100, 697},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := skipHintPos(tt.bounds, tt.w, tt.h, tt.margin)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)

			drawn := tt.bounds.Add(image.Pt(x, y))
			assert.Equal(t, tt.w-tt.margin, drawn.Max.X, "right edge")
			assert.Equal(t, tt.h-tt.margin, drawn.Max.Y, "bottom edge")
		})
	}
}

func TestIntroSkipHint(t *testing.T) {
	assert.Equal(t, "Press ENTER to skip", cfg.Intro.SkipHint)
	assert.Positive(t, cfg.Intro.HintMargin)
}
