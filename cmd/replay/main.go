// Command replay runs a scripted input sequence through the simulation
// without opening a window and logs every event.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/automoto/celestial-survivor/assets/levels"
	"github.com/automoto/celestial-survivor/config"
	"github.com/automoto/celestial-survivor/logging"
	"github.com/automoto/celestial-survivor/shared/kinematics"
	"github.com/automoto/celestial-survivor/shared/leveldata"
	"github.com/automoto/celestial-survivor/sim"
)

func main() {
	scriptPath := flag.String("script", "cmd/replay/testdata/first-level.yaml", "Replay script (YAML)")
	configPath := flag.String("config", "", "Optional config file")
	levelsDir := flag.String("levels", "", "Load levels from this directory instead of the embedded set")
	tickRate := flag.Int("tickrate", 0, "Ticks per second (0 = as fast as possible)")
	width := flag.Float64("width", 0, "Viewport width (default from config)")
	height := flag.Float64("height", 0, "Viewport height (default from config)")
	flag.Parse()

	if err := config.Load(*configPath); err != nil {
		logging.Setup(config.Log.Level)
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	logging.Setup(config.Log.Level)

	if *width == 0 {
		*width = float64(config.C.Width)
	}
	if *height == 0 {
		*height = float64(config.C.Height)
	}

	tables, err := loadLevels(*levelsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load levels")
	}

	script, err := sim.LoadScript(*scriptPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load script")
	}

	session, err := sim.NewSession(tables, *width, *height, config.SessionOptions())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start session")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := sim.NewLoop(session, sim.NewScriptSource(script), *tickRate)
	loop.OnEvent(func(tick uint64, ev kinematics.Event) {
		st := session.State()
		log.Info().
			Uint64("tick", tick).
			Str("event", ev.Kind.String()).
			Int("damage", ev.Damage).
			Int("health", st.Health).
			Int("shipParts", st.ShipParts).
			Int("level", session.LevelIndex()+1).
			Msg("Event")
	})

	log.Info().
		Str("script", script.Name).
		Int("ticks", script.Ticks()).
		Int("levels", len(tables)).
		Msg("Starting replay")

	res, err := loop.Run(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Replay interrupted")
	}

	log.Info().
		Uint64("ticks", res.Ticks).
		Str("phase", res.Phase.String()).
		Int("level", res.Level).
		Int("health", res.State.Health).
		Int("shipParts", res.State.ShipParts).
		Float64("x", res.State.Body.X).
		Float64("y", res.State.Body.Y).
		Bool("grounded", res.State.Body.Grounded).
		Msg("Replay finished")
}

func loadLevels(dir string) ([]leveldata.Table, error) {
	if dir == "" {
		return levels.Load()
	}
	return leveldata.LoadAll(os.DirFS(dir), ".")
}
