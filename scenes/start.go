package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/celestial-survivor/config"
	"github.com/automoto/celestial-survivor/systems"
	"github.com/automoto/celestial-survivor/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartScene shows the title and Play button, then fades to black
type StartScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levels       LevelSource
	startUI      *ui.StartUI
	once         sync.Once

	fade      *gween.Tween
	fadeAlpha float32
}

// NewStartScene creates a new start scene
func NewStartScene(sc SceneChanger, levels LevelSource) *StartScene {
	return &StartScene{sceneChanger: sc, levels: levels}
}

func (ss *StartScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()

	if ss.fade == nil {
		ss.startUI.Update()
		if systems.ActionJustPressed(ss.ecs, cfg.ActionConfirm) {
			ss.startUI.Play()
		}
		return
	}

	var done bool
	ss.fadeAlpha, done = ss.fade.Update(1000 / float32(cfg.C.TPS))
	if done {
		ss.sceneChanger.ChangeScene(ss.next())
	}
}

// next skips the story for players who have already seen it.
func (ss *StartScene) next() Scene {
	if systems.GetOrCreateSettings(ss.ecs).IntroSeen {
		return NewPlatformerScene(ss.sceneChanger, ss.levels)
	}
	return NewIntroScene(ss.sceneChanger, ss.levels)
}

func (ss *StartScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)

	if ss.startUI == nil {
		return
	}
	ss.startUI.UI.Draw(screen)

	if ss.fadeAlpha > 0 {
		w := float32(screen.Bounds().Dx())
		h := float32(screen.Bounds().Dy())
		vector.FillRect(screen, 0, 0, w, h, color.RGBA{A: uint8(255 * ss.fadeAlpha)}, false)
	}
}

func (ss *StartScene) configure() {
	ss.ecs = ecs.NewECS(donburi.NewWorld())

	ss.ecs.AddSystem(systems.UpdateInput)
	ss.ecs.AddSystem(systems.UpdateSettings)
	ss.ecs.AddSystem(systems.UpdateAudio)

	settings := systems.GetOrCreateSettings(ss.ecs)
	startUI, err := ui.NewStartUI(settings.BestShipParts, ss.play)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not build start screen")
	}
	ss.startUI = startUI
}

func (ss *StartScene) play() {
	log.Info().Msg("Starting game")
	systems.PlaySFX(ss.ecs, cfg.SoundMenuSelect)
	ss.fade = gween.New(0, 1, cfg.Menu.FadeOutMs, ease.Linear)
}
