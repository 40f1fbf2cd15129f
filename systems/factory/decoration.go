package factory

import (
	"math/rand"

	"github.com/automoto/celestial-survivor/archetypes"
	"github.com/automoto/celestial-survivor/components"
	cfg "github.com/automoto/celestial-survivor/config"
	"github.com/yohamta/donburi/ecs"
)

// CreateDecorations scatters stars over the sky and plants along the
// ground. Positions are viewport fractions so they survive resizes.
func CreateDecorations(ecs *ecs.ECS, rng *rand.Rand) {
	for i := 0; i < cfg.World.StarCount; i++ {
		e := archetypes.Decoration.Spawn(ecs)
		components.Decoration.SetValue(e, components.DecorationData{
			Kind:  components.DecorationStar,
			X:     rng.Float64(),
			Y:     rng.Float64() * 0.7,
			Scale: 1 + rng.Float64()*1.5,
			Alpha: 0.3 + rng.Float64()*0.7,
			Phase: rng.Float64() * 6.28,
		})
	}
	for i := 0; i < cfg.World.PlantCount; i++ {
		e := archetypes.Decoration.Spawn(ecs)
		components.Decoration.SetValue(e, components.DecorationData{
			Kind:  components.DecorationPlant,
			X:     (float64(i) + 0.2 + rng.Float64()*0.6) / float64(cfg.World.PlantCount),
			Scale: 0.7 + rng.Float64()*0.6,
			Alpha: 1,
			Phase: float64(i),
		})
	}
}
