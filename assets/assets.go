package assets

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	cfg "github.com/automoto/celestial-survivor/config"
)

// SpriteLoader draws the game's sprites procedurally and caches them by
// size, so resizes and level reloads reuse the same images.
type SpriteLoader struct {
	cache map[string]*ebiten.Image
}

func NewSpriteLoader() *SpriteLoader {
	return &SpriteLoader{cache: make(map[string]*ebiten.Image)}
}

var spriteLoader = NewSpriteLoader()

// legLift is how far each leg rises per walk frame.
var legLift = [4]float32{0, 4, 0, -4}

func (l *SpriteLoader) cached(key string, w, h int, draw func(img *ebiten.Image)) *ebiten.Image {
	if img, ok := l.cache[key]; ok {
		return img
	}
	img := ebiten.NewImage(w, h)
	draw(img)
	l.cache[key] = img
	return img
}

// PlayerFrame returns one walk frame of the astronaut facing left (-1) or
// right (1). Frame 0 is also the idle pose.
func (l *SpriteLoader) PlayerFrame(w, h int, facing float64, frame int) *ebiten.Image {
	frame %= len(legLift)
	key := fmt.Sprintf("player/%dx%d/%v/%d", w, h, facing, frame)
	return l.cached(key, w, h, func(img *ebiten.Image) {
		fw, fh := float32(w), float32(h)
		suit := cfg.World.PlayerColor
		dark := color.RGBA{R: suit.R / 2, G: suit.G / 2, B: suit.B / 2, A: 255}

		// backpack sits behind the astronaut
		packX := fw * 0.05
		if facing < 0 {
			packX = fw * 0.75
		}
		vector.FillRect(img, packX, fh*0.38, fw*0.2, fh*0.3, dark, false)

		vector.FillRect(img, fw*0.2, 0, fw*0.6, fh*0.4, suit, false)
		visorX := fw*0.3 + float32(facing)*fw*0.08
		vector.FillRect(img, visorX, fh*0.1, fw*0.4, fh*0.18, cfg.World.PlayerVisor, false)
		vector.FillRect(img, fw*0.15, fh*0.4, fw*0.7, fh*0.35, suit, false)

		lift := legLift[frame]
		leftLift, rightLift := max(lift, 0), max(-lift, 0)
		legH := fh * 0.25
		vector.FillRect(img, fw*0.25, fh*0.75, fw*0.18, legH-leftLift, dark, false)
		vector.FillRect(img, fw*0.57, fh*0.75, fw*0.18, legH-rightLift, dark, false)
	})
}

// PlayerFrames returns the full walk cycle for a facing.
func (l *SpriteLoader) PlayerFrames(w, h int, facing float64) []*ebiten.Image {
	frames := make([]*ebiten.Image, len(legLift))
	for i := range frames {
		frames[i] = l.PlayerFrame(w, h, facing, i)
	}
	return frames
}

// ShipPart returns the pickup sprite.
func (l *SpriteLoader) ShipPart(w, h int) *ebiten.Image {
	key := fmt.Sprintf("part/%dx%d", w, h)
	return l.cached(key, w, h, func(img *ebiten.Image) {
		fw, fh := float32(w), float32(h)
		vector.FillRect(img, fw*0.1, fh*0.3, fw*0.8, fh*0.4, cfg.ShipPart.Color, false)
		vector.FillRect(img, fw*0.3, fh*0.1, fw*0.4, fh*0.8, cfg.ShipPart.Color, false)
		vector.FillRect(img, fw*0.4, fh*0.4, fw*0.2, fh*0.2, cfg.ShipPart.GlowColor, false)
		vector.StrokeRect(img, fw*0.1, fh*0.3, fw*0.8, fh*0.4, 1, cfg.Cyan, false)
	})
}

// Spikes returns a row of triangular spikes filling w x h, drawn as stacked
// rows that narrow toward the tips.
func (l *SpriteLoader) Spikes(w, h int) *ebiten.Image {
	key := fmt.Sprintf("spikes/%dx%d", w, h)
	return l.cached(key, w, h, func(img *ebiten.Image) {
		teeth := max(w/h, 1)
		toothW := float32(w) / float32(teeth)
		for t := 0; t < teeth; t++ {
			cx := toothW*float32(t) + toothW/2
			for row := 0; row < h; row++ {
				half := toothW / 2 * float32(row+1) / float32(h)
				vector.FillRect(img, cx-half, float32(row), half*2, 1, cfg.World.SpikeColor, false)
			}
		}
	})
}

func PlayerFrames(w, h int, facing float64) []*ebiten.Image {
	return spriteLoader.PlayerFrames(w, h, facing)
}

func ShipPartImage(w, h int) *ebiten.Image {
	return spriteLoader.ShipPart(w, h)
}

func SpikesImage(w, h int) *ebiten.Image {
	return spriteLoader.Spikes(w, h)
}
