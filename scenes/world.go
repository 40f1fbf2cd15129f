package scenes

import (
	"fmt"
	"image/color"
	"math/rand"
	"sync"
	"time"

	cfg "github.com/automoto/celestial-survivor/config"
	"github.com/automoto/celestial-survivor/shared/leveldata"
	"github.com/automoto/celestial-survivor/sim"
	"github.com/automoto/celestial-survivor/systems"
	"github.com/automoto/celestial-survivor/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene runs the levels
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levels       LevelSource
	once         sync.Once

	// Window size reported before configure ran.
	width, height int
}

// NewPlatformerScene creates a new platformer scene
func NewPlatformerScene(sc SceneChanger, levels LevelSource) *PlatformerScene {
	return &PlatformerScene{
		sceneChanger: sc,
		levels:       levels,
		width:        cfg.C.Width,
		height:       cfg.C.Height,
	}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// Resize forwards the window size; the level is rebuilt on the next tick.
func (ps *PlatformerScene) Resize(width, height int) {
	ps.width, ps.height = width, height
	if ps.ecs != nil {
		systems.SetViewport(ps.ecs, width, height)
	}
}

func (ps *PlatformerScene) configure() {
	e, err := newPlatformerECS(ps.levels, ps.width, ps.height)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not start the game")
	}
	ps.ecs = e
}

// newPlatformerECS loads the levels, starts a session sized to the window
// and registers every system and renderer.
func newPlatformerECS(levels LevelSource, width, height int) (*ecs.ECS, error) {
	tables, err := leveldata.LoadAll(levels.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("load levels: %w", err)
	}
	sess, err := sim.NewSession(tables, float64(width), float64(height), cfg.SessionOptions())
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.UpdatePause)
	if levels.Changes != nil {
		e.AddSystem(systems.NewUpdateHotReload(levels.FS, levels.Changes))
	}
	e.AddSystem(systems.WithPauseCheck(systems.UpdateLevel))

	// Game systems wrapped with pause and level complete checks
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateStates))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateHUD))

	// Overlays that wait for confirm
	e.AddSystem(systems.UpdateDeath)
	e.AddSystem(systems.UpdateLevelComplete)

	e.AddSystem(systems.UpdateAudio)

	// Add renderers
	e.AddRenderer(cfg.Default, systems.DrawBackground)
	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawPlants)
	e.AddRenderer(cfg.Default, systems.DrawPlayer)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawDeath)
	e.AddRenderer(cfg.Default, systems.DrawLevelComplete)
	e.AddRenderer(cfg.Default, systems.DrawPause)

	factory.CreateSession(e, sess)
	factory.CreateDecorations(e, rand.New(rand.NewSource(time.Now().UnixNano())))
	systems.GetOrCreateSettings(e)

	log.Info().
		Int("levels", len(tables)).
		Int("width", width).
		Int("height", height).
		Bool("hotReload", levels.Changes != nil).
		Msg("Platformer started")
	return e, nil
}
