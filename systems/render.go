package systems

import (
	"image/color"
	"math"

	"github.com/automoto/celestial-survivor/assets"
	"github.com/automoto/celestial-survivor/components"
	cfg "github.com/automoto/celestial-survivor/config"
	"github.com/automoto/celestial-survivor/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}
)

// skyBands is how many horizontal strips approximate the sky gradient.
const skyBands = 32

// platformEdgeHeight is the lit strip along the top of each platform.
const platformEdgeHeight = 3

// elapsedMs converts scene frames to milliseconds for the idle animations.
func elapsedMs(ecs *ecs.ECS) float64 {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return 0
	}
	return float64(components.Session.Get(entry).Frames) * 1000 / float64(cfg.C.TPS)
}

// DrawBackground renders the sky gradient and twinkling stars.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())

	bandH := height / skyBands
	for i := 0; i < skyBands; i++ {
		c := lerpColor(cfg.World.SkyTop, cfg.World.SkyBottom, float64(i)/float64(skyBands-1))
		vector.FillRect(screen, 0, float32(i)*bandH, width, bandH+1, c, false)
	}

	t := elapsedMs(ecs)
	tags.Decoration.Each(ecs.World, func(e *donburi.Entry) {
		d := components.Decoration.Get(e)
		if d.Kind != components.DecorationStar {
			return
		}
		twinkle := 0.6 + 0.4*math.Sin(t/500+d.Phase)
		a := uint8(255 * d.Alpha * twinkle)
		size := float32(d.Scale)
		vector.FillRect(screen, float32(d.X)*width, float32(d.Y)*height, size, size, color.RGBA{R: a, G: a, B: a, A: a}, false)
	})
}

// DrawLevel renders the ground, platforms, spikes and the ship part.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	height := float32(screen.Bounds().Dy())

	tags.Floor.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), height-float32(o.Y), cfg.World.GroundColor, false)
	})

	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), cfg.World.PlatformColor, false)
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), platformEdgeHeight, cfg.World.PlatformEdge, false)
	})

	tags.Spike.Each(ecs.World, func(e *donburi.Entry) {
		spike := components.Spike.Get(e)
		if spike.Disabled {
			return
		}
		o := components.Object.Get(e)
		img := assets.SpikesImage(int(o.W), int(o.H))

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(o.X, o.Y)
		if spike.Near {
			drawOp.ColorScale.Scale(1, 0.6, 0.6, 1)
		}
		screen.DrawImage(img, drawOp)
	})

	tags.ShipPart.Each(ecs.World, func(e *donburi.Entry) {
		part := components.ShipPart.Get(e)
		o := components.Object.Get(e)

		glow := cfg.ShipPart.GlowColor
		alpha := 0.4 + 0.6*part.Glow
		pad := float32(6 + 4*part.Glow)
		vector.FillRect(screen, float32(o.X)-pad, float32(o.Y)-pad, float32(o.W)+2*pad, float32(o.H)+2*pad,
			color.RGBA{R: glow.R, G: glow.G, B: glow.B, A: uint8(float64(glow.A) * alpha)}, false)

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(o.X, o.Y)
		screen.DrawImage(assets.ShipPartImage(int(o.W), int(o.H)), drawOp)
	})
}

// DrawPlants renders swaying plants along the top of the ground.
func DrawPlants(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	floorTop := float32(components.Level.Get(entry).FloorTop)
	width := float32(screen.Bounds().Dx())
	t := elapsedMs(ecs)

	tags.Decoration.Each(ecs.World, func(e *donburi.Entry) {
		d := components.Decoration.Get(e)
		if d.Kind != components.DecorationPlant {
			return
		}
		sway := float32(math.Sin(t/cfg.World.PlantSwayMs+d.Phase) * cfg.World.PlantSwayPx)
		x := float32(d.X) * width
		h := float32(24 * d.Scale)

		vector.FillRect(screen, x, floorTop-h, 3, h, cfg.World.PlantColor, false)
		vector.FillRect(screen, x-6+sway, floorTop-h, 8, 4, cfg.World.PlantColor, false)
		vector.FillRect(screen, x+1+sway, floorTop-h*0.6, 8, 4, cfg.World.PlantColor, false)
	})
}

// DrawPlayer renders the astronaut, tinted while the hurt flash is on.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		player := components.Player.Get(e)
		img := components.Animation.Get(e).Image(player.Facing)
		if img == nil {
			vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), cfg.World.PlayerColor, false)
			return
		}

		flash := components.Flash.Get(e)
		amount := flashAmount(flash)
		if amount > 0 && assets.TintShader != nil {
			b := img.Bounds()
			shaderOp.GeoM.Reset()
			shaderOp.GeoM.Translate(o.X, o.Y)
			shaderOp.Images[0] = img
			shaderOp.Uniforms = map[string]any{
				"TintColor": []float32{flash.R, flash.G, flash.B},
				"Amount":    amount,
			}
			screen.DrawRectShader(b.Dx(), b.Dy(), assets.TintShader, shaderOp)
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(o.X, o.Y)
		if amount > 0 {
			drawOp.ColorScale.Scale(flash.R, flash.G, flash.B, 1)
		}
		screen.DrawImage(img, drawOp)
	})
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
