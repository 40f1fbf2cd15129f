package sim

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/automoto/celestial-survivor/shared/kinematics"
)

// IntentSource yields one intent per tick. ok is false once the source is
// exhausted.
type IntentSource interface {
	Next() (in kinematics.Intent, ok bool)
}

// EventHandler observes events as they are produced.
type EventHandler func(tick uint64, ev kinematics.Event)

// Result summarizes a finished run.
type Result struct {
	Ticks uint64
	Phase Phase
	State kinematics.State
	Level int
}

// Loop feeds a session from an intent source at a fixed tick rate. A tick
// rate of zero or less runs as fast as possible.
type Loop struct {
	session  *Session
	source   IntentSource
	tickRate int
	onEvent  EventHandler

	stopChan chan struct{}
	stopOnce sync.Once
}

func NewLoop(session *Session, source IntentSource, tickRate int) *Loop {
	return &Loop{
		session:  session,
		source:   source,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// OnEvent registers h to receive every event.
func (l *Loop) OnEvent(h EventHandler) { l.onEvent = h }

// Run ticks until the source runs out, the session stops playing, Stop is
// called or ctx is done. Only context cancellation is reported as an error.
func (l *Loop) Run(ctx context.Context) (Result, error) {
	var tickC <-chan time.Time
	if l.tickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
		defer ticker.Stop()
		tickC = ticker.C
	}

	log.Debug().Int("tickRate", l.tickRate).Msg("Simulation loop started")

	for {
		if tickC != nil {
			select {
			case <-ctx.Done():
				return l.result(), ctx.Err()
			case <-l.stopChan:
				return l.result(), nil
			case <-tickC:
			}
		} else {
			select {
			case <-ctx.Done():
				return l.result(), ctx.Err()
			case <-l.stopChan:
				return l.result(), nil
			default:
			}
		}

		if !l.tick() {
			log.Debug().Uint64("ticks", l.session.Tick()).Str("phase", l.session.Phase().String()).Msg("Simulation loop stopped")
			return l.result(), nil
		}
	}
}

// Stop ends Run after the current tick. Safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}

func (l *Loop) tick() bool {
	if l.session.Phase() != PhasePlaying {
		return false
	}
	in, ok := l.source.Next()
	if !ok {
		return false
	}
	for _, ev := range l.session.Step(in) {
		if l.onEvent != nil {
			l.onEvent(l.session.Tick(), ev)
		}
	}
	return true
}

func (l *Loop) result() Result {
	return Result{
		Ticks: l.session.Tick(),
		Phase: l.session.Phase(),
		State: l.session.State(),
		Level: l.session.LevelIndex() + 1,
	}
}
