package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/automoto/celestial-survivor/assets"
	"github.com/automoto/celestial-survivor/assets/levels"
	"github.com/automoto/celestial-survivor/config"
	"github.com/automoto/celestial-survivor/fonts"
	"github.com/automoto/celestial-survivor/logging"
	"github.com/automoto/celestial-survivor/scenes"
	"github.com/automoto/celestial-survivor/shared/leveldata"
	"github.com/automoto/celestial-survivor/systems"
)

type Game struct {
	scene         scenes.Scene
	width, height int
}

// ChangeScene switches to a new scene and hands it the current window size
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
	if r, ok := scene.(scenes.Resizer); ok && g.width > 0 {
		r.Resize(g.width, g.height)
	}
}

func NewGame(levelSource scenes.LevelSource) *Game {
	g := &Game{}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlatformerScene(g, levelSource)
	} else {
		g.scene = scenes.NewStartScene(g, levelSource)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout draws at the window's size so levels stretch with it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		if r, ok := g.scene.(scenes.Resizer); ok {
			r.Resize(outsideWidth, outsideHeight)
		}
	}
	return outsideWidth, outsideHeight
}

func main() {
	configPath := flag.String("config", "", "Optional config file (YAML or JSON)")
	skipMenu := flag.Bool("skip-menu", false, "Skip the start screen and intro")
	debug := flag.Bool("debug", false, "Show the collision overlay")
	levelsDir := flag.String("levels", "", "Load levels from this directory and reload them on change")
	flag.Parse()

	if err := config.Load(*configPath); err != nil {
		logging.Setup(config.Log.Level)
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	logging.Setup(config.Log.Level)

	config.Debug.SkipMenu = *skipMenu
	config.Debug.ShowSpace = *debug
	if *levelsDir != "" {
		config.Debug.LevelsDir = *levelsDir
	}

	if err := fonts.LoadDefaults(config.Intro.FontSize, config.UI.HUDFontSize); err != nil {
		log.Fatal().Err(err).Msg("Failed to load fonts")
	}
	if err := assets.LoadShaders(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load shaders")
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Warn().Err(err).Msg("Could not initialize persistence")
	}
	systems.ApplySavedSettingsGlobal(systems.LoadSettings())
	systems.PreloadAllSFX()

	levelSource := scenes.LevelSource{FS: levels.LevelsFS}
	if dir := config.Debug.LevelsDir; dir != "" {
		levelSource.FS = os.DirFS(dir)
		watcher, err := leveldata.NewWatcher(dir)
		if err != nil {
			log.Warn().Err(err).Str("dir", dir).Msg("Could not watch levels, hot reload disabled")
		} else {
			defer watcher.Close()
			levelSource.Changes = watcher.Events
			go func() {
				for err := range watcher.Errors {
					log.Warn().Err(err).Msg("Level watcher error")
				}
			}()
			log.Info().Str("dir", dir).Msg("Watching levels")
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(levelSource)); err != nil {
		log.Fatal().Err(err).Msg("Game exited with error")
	}
}
