package kinematics

import "math"

// Resolve advances state by one tick. Horizontal motion is resolved first
// against the walls at the current height, then vertical motion at the
// resolved x. Collisions are swept: a surface stops the body when the body's
// leading edge crosses it during the tick, so fast bodies cannot pass
// through thin platforms. The floor also catches a body that is already
// below its top.
//
// The inputs are never modified. A dead state is returned as is.
func Resolve(s State, in Intent, g Geometry, t Tuning) (State, []Event) {
	if s.Dead {
		return s, nil
	}

	b := s.Body
	b.VX = HorizontalVelocity(in, t.Speed)

	if b.Grounded && in.JumpPressed {
		b.VY = -t.JumpStrength
		b.Grounded = false
	}
	if !b.Grounded {
		b.VY += t.Gravity
		if t.JumpCut && !in.JumpHeld && b.VY < -t.AscentCapSpeed {
			b.VY = -t.AscentCapSpeed
		}
	}

	floor, solids := g.Surfaces()
	platforms := newSurfaces(solids)

	b = resolveHorizontal(b, platforms, g.Width, t.Epsilon)
	b = resolveVertical(b, floor, platforms, t)

	s.Body = b

	var events []Event
	box := b.Rect().Shape()

	if g.Pickup != nil && !s.PickupCollected && overlapping(box, g.Pickup.Shape()) {
		s.PickupCollected = true
		s.ShipParts++
		// The driver swaps the level on collection; nothing else this tick.
		return s, append(events, Event{Kind: EventPickupCollected})
	}

	for _, h := range g.Hazards {
		if h.Disabled || !overlapping(box, h.Shape()) {
			continue
		}
		s.Health -= t.HazardDamage
		s.ResetBody()
		events = append(events, Event{Kind: EventHazardHit, Damage: t.HazardDamage})
		break
	}

	if s.Health <= 0 {
		s.Dead = true
		events = append(events, Event{Kind: EventDied})
	}

	return s, events
}

// HorizontalVelocity maps intent to vx. Left wins when both directions are
// held.
func HorizontalVelocity(in Intent, speed float64) float64 {
	switch {
	case in.MoveLeft:
		return -speed
	case in.MoveRight:
		return speed
	default:
		return 0
	}
}

func resolveHorizontal(b Body, walls []surface, width, eps float64) Body {
	vx := b.VX
	nx := b.X + vx

	// Only walls beside the body at its current height block it.
	swept := sweepX(b, vx, eps)
	for _, w := range walls {
		if !overlapping(swept, w.shape) {
			continue
		}
		switch {
		case vx > 0 && b.X+b.W <= w.X+eps && nx+b.W > w.X:
			nx = w.X - b.W
			b.VX = 0
		case vx < 0 && b.X >= w.Right()-eps && nx < w.Right():
			nx = w.Right()
			b.VX = 0
		}
	}

	b.X = clamp(nx, 0, math.Max(0, width-b.W))
	return b
}

func resolveVertical(b Body, floor *Rect, platforms []surface, t Tuning) Body {
	eps := t.Epsilon
	ny := b.Y + b.VY
	prevBottom := b.Y + b.H
	nextBottom := ny + b.H
	swept := sweepY(b, b.VY, eps)
	b.Grounded = false

	// The floor stops anything reaching its top, including a body that is
	// already under it.
	onFloor := floor != nil && nextBottom >= floor.Y-eps && overlapping(swept, below(*floor, nextBottom))

	if b.VY >= 0 {
		top, hit := math.Inf(1), false
		if onFloor {
			top, hit = floor.Y, true
		}
		for _, p := range platforms {
			if p.Y >= top || !overlapping(swept, p.shape) {
				continue
			}
			if prevBottom <= p.Y+eps && nextBottom >= p.Y-eps {
				top, hit = p.Y, true
			}
		}
		if hit {
			return land(b, top)
		}
		b.Y = ny
		return b
	}

	if onFloor {
		return land(b, floor.Y)
	}

	// Rising. The floor never acts as a ceiling.
	prevTop := b.Y
	bottom, hit := math.Inf(-1), false
	for _, p := range platforms {
		if !overlapping(swept, p.shape) {
			continue
		}
		if prevTop >= p.Bottom()-eps && ny <= p.Bottom()+eps && p.Bottom() > bottom {
			bottom, hit = p.Bottom(), true
		}
	}
	if !hit && t.Ceiling == CeilingOverlap {
		next := Rect{X: b.X, Y: ny, W: b.W, H: b.H}.Shape()
		for _, p := range platforms {
			if p.Bottom() > bottom && overlapping(next, p.shape) {
				bottom, hit = p.Bottom(), true
			}
		}
	}
	if hit {
		b.Y = bottom + eps
		b.VY = 0
		return b
	}
	b.Y = ny
	return b
}

func land(b Body, top float64) Body {
	b.Y = top - b.H
	b.VY = 0
	b.Grounded = true
	return b
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
