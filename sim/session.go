// Package sim drives the kinematics resolver across ticks: level
// progression, death and respawn, viewport changes and headless replays.
package sim

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/automoto/celestial-survivor/shared/kinematics"
	"github.com/automoto/celestial-survivor/shared/leveldata"
)

// Phase is the session's coarse game state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseDead
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseDead:
		return "dead"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

var ErrNoLevels = errors.New("no levels")

// Options sizes the player and the ship part and carries the tuning.
type Options struct {
	Tuning    kinematics.Tuning
	PlayerW   float64
	PlayerH   float64
	MaxHealth int
	PartW     float64
	PartH     float64
}

// DefaultOptions matches the shipped game.
func DefaultOptions() Options {
	return Options{
		Tuning:    kinematics.DefaultTuning(),
		PlayerW:   40,
		PlayerH:   40,
		MaxHealth: 100,
		PartW:     40,
		PartH:     40,
	}
}

// Session owns the simulation state for one player. It is not safe for
// concurrent use; drivers call it from their tick goroutine.
type Session struct {
	opts   Options
	levels []leveldata.Table

	width, height float64

	index int
	level leveldata.Level
	state kinematics.State
	phase Phase

	// generation changes every time geometry is rebuilt so drivers can
	// refresh anything derived from it.
	generation int
	tick       uint64
}

// NewSession validates every level against the viewport and starts on the
// first one.
func NewSession(levels []leveldata.Table, width, height float64, opts Options) (*Session, error) {
	s := &Session{opts: opts, width: width, height: height}
	if err := s.setLevels(levels); err != nil {
		return nil, err
	}
	if err := s.load(0, false); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) setLevels(levels []leveldata.Table) error {
	if len(levels) == 0 {
		return ErrNoLevels
	}
	for i, t := range levels {
		if _, err := leveldata.Build(t, s.width, s.height, s.opts.PartW, s.opts.PartH); err != nil {
			return fmt.Errorf("level %d: %w", i+1, err)
		}
	}
	s.levels = levels
	return nil
}

// load builds level i for the current viewport and puts the player at its
// spawn. Health and ship parts carry over when keepProgress is set.
func (s *Session) load(i int, keepProgress bool) error {
	lvl, err := leveldata.Build(s.levels[i], s.width, s.height, s.opts.PartW, s.opts.PartH)
	if err != nil {
		return fmt.Errorf("load level %d: %w", i+1, err)
	}

	next := kinematics.NewState(lvl.Spawn, s.opts.PlayerW, s.opts.PlayerH, s.opts.MaxHealth)
	if keepProgress {
		next.Health = s.state.Health
		next.ShipParts = s.state.ShipParts
	}

	s.index = i
	s.level = lvl
	s.state = next
	s.generation++

	log.Debug().
		Int("level", i+1).
		Str("name", lvl.Name).
		Float64("width", s.width).
		Float64("height", s.height).
		Msg("Level loaded")
	return nil
}

// Step advances one tick. Physics only runs while playing; collecting the
// ship part moves on to the next level and dying stops the simulation until
// Respawn.
func (s *Session) Step(in kinematics.Intent) []kinematics.Event {
	if s.phase != PhasePlaying {
		return nil
	}
	s.tick++

	var events []kinematics.Event
	s.state, events = kinematics.Resolve(s.state, in, s.level.Geometry, s.opts.Tuning)

	for _, ev := range events {
		switch ev.Kind {
		case kinematics.EventPickupCollected:
			s.advance()
		case kinematics.EventDied:
			s.phase = PhaseDead
			log.Info().Int("level", s.index+1).Int("shipParts", s.state.ShipParts).Msg("Player died")
		}
	}
	return events
}

func (s *Session) advance() {
	if s.index+1 >= len(s.levels) {
		s.phase = PhaseComplete
		log.Info().Int("shipParts", s.state.ShipParts).Msg("All levels complete")
		return
	}
	if err := s.load(s.index+1, true); err != nil {
		log.Error().Err(err).Msg("Could not advance level")
	}
}

// Respawn restarts from the first level with full health and no parts.
func (s *Session) Respawn() error {
	s.state = kinematics.State{}
	if err := s.load(0, false); err != nil {
		return err
	}
	s.phase = PhasePlaying
	return nil
}

// Resize rebuilds the current level for a new viewport and resets the player
// to its spawn.
func (s *Session) Resize(width, height float64) error {
	if width == s.width && height == s.height {
		return nil
	}
	s.width, s.height = width, height
	return s.load(s.index, true)
}

// Reload swaps the level tables and reloads the current level, clamped to
// the new level count.
func (s *Session) Reload(levels []leveldata.Table) error {
	if err := s.setLevels(levels); err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	i := s.index
	if i >= len(levels) {
		i = len(levels) - 1
	}
	return s.load(i, true)
}

// SetTuning replaces the movement constants from the next tick on.
func (s *Session) SetTuning(t kinematics.Tuning) { s.opts.Tuning = t }

func (s *Session) State() kinematics.State       { return s.state }
func (s *Session) Geometry() kinematics.Geometry { return s.level.Geometry }
func (s *Session) Level() leveldata.Level        { return s.level }
func (s *Session) LevelIndex() int               { return s.index }
func (s *Session) LevelCount() int               { return len(s.levels) }
func (s *Session) Phase() Phase                  { return s.phase }
func (s *Session) Generation() int               { return s.generation }
func (s *Session) Tick() uint64                  { return s.tick }
func (s *Session) Viewport() (float64, float64)  { return s.width, s.height }
