package scenes

import (
	"image"
	"image/color"
	"sync"

	cfg "github.com/automoto/celestial-survivor/config"
	"github.com/automoto/celestial-survivor/fonts"
	"github.com/automoto/celestial-survivor/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/rs/zerolog/log"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// tweensPerLine is fade in, hold, fade out.
const tweensPerLine = 3

// storySequence fades the intro lines in and out one after another after an
// initial pause.
type storySequence struct {
	lines []string
	seq   *gween.Sequence
	alpha float32
	done  bool
}

func newStorySequence(lines []string, c cfg.IntroConfig) *storySequence {
	fadeMs := float32(1 / c.FadeRate)
	seq := gween.NewSequence(gween.New(0, 0, float32(c.InitialWaitMs), ease.Linear))
	for range lines {
		seq.Add(
			gween.New(0, 1, fadeMs, ease.Linear),
			gween.New(1, 1, float32(c.VisibleMs), ease.Linear),
			gween.New(1, 0, fadeMs, ease.Linear),
		)
	}
	return &storySequence{lines: lines, seq: seq}
}

// Update advances by dtMs and reports whether the last line has faded out.
func (s *storySequence) Update(dtMs float32) bool {
	if s.done {
		return true
	}
	var complete bool
	s.alpha, _, complete = s.seq.Update(dtMs)
	if complete {
		s.done = true
		s.alpha = 0
	}
	return s.done
}

// Line returns the text on screen, empty during the initial pause.
func (s *storySequence) Line() string {
	i := s.seq.Index() - 1
	if s.done || i < 0 {
		return ""
	}
	line := i / tweensPerLine
	if line >= len(s.lines) {
		return ""
	}
	return s.lines[line]
}

func (s *storySequence) Alpha() float32 { return s.alpha }

// IntroScene tells the crash story before the first level
type IntroScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levels       LevelSource
	story        *storySequence
	once         sync.Once
	finished     bool
}

// NewIntroScene creates a new intro scene
func NewIntroScene(sc SceneChanger, levels LevelSource) *IntroScene {
	return &IntroScene{sceneChanger: sc, levels: levels}
}

func (is *IntroScene) Update() {
	is.once.Do(is.configure)
	is.ecs.Update()

	if is.finished {
		return
	}

	done := is.story.Update(1000 / float32(cfg.C.TPS))
	if systems.ActionJustPressed(is.ecs, cfg.ActionConfirm) {
		log.Debug().Msg("Intro skipped")
		done = true
	}
	if done {
		is.finished = true
		systems.MarkIntroSeen()
		is.sceneChanger.ChangeScene(NewPlatformerScene(is.sceneChanger, is.levels))
	}
}

func (is *IntroScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if is.story == nil {
		return
	}

	hintFace := fonts.HUD.Get()
	hint := cfg.Intro.SkipHint
	hx, hy := skipHintPos(text.BoundString(hintFace, hint), screen.Bounds().Dx(), screen.Bounds().Dy(), cfg.Intro.HintMargin)
	text.Draw(screen, hint, hintFace, hx, hy, cfg.Intro.HintColor)

	line := is.story.Line()
	if line == "" {
		return
	}

	c := cfg.Intro.TextColor
	a := is.story.Alpha()
	c.R = uint8(float32(c.R) * a)
	c.G = uint8(float32(c.G) * a)
	c.B = uint8(float32(c.B) * a)
	c.A = uint8(float32(c.A) * a)

	face := fonts.Story.Get()
	bounds := text.BoundString(face, line)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	y := screen.Bounds().Dy() / 2
	text.Draw(screen, line, face, x, y, c)
}

// skipHintPos returns the dot position that puts text with the given bounds
// in the bottom-right corner, margin pixels from both edges.
func skipHintPos(bounds image.Rectangle, screenW, screenH, margin int) (x, y int) {
	return screenW - margin - bounds.Max.X, screenH - margin - bounds.Max.Y
}

func (is *IntroScene) configure() {
	is.ecs = ecs.NewECS(donburi.NewWorld())

	is.ecs.AddSystem(systems.UpdateInput)
	is.ecs.AddSystem(systems.UpdateAudio)

	is.story = newStorySequence(cfg.Intro.Texts, cfg.Intro)
}
