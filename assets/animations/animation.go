package animations

// Animation cycles frame indices [0, Frames) at a fixed number of ticks per
// frame.
type Animation struct {
	Frames           int
	SpeedInTps       int // how many ticks before next frame
	frameCounter     int
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

func (a *Animation) Update() {
	if a.Frames <= 1 {
		return
	}
	a.frameCounter--
	if a.frameCounter > 0 {
		return
	}
	a.frameCounter = a.SpeedInTps
	a.frame++
	if a.frame >= a.Frames {
		a.Looped = true
		if a.FreezeOnComplete {
			a.frame = a.Frames - 1
		} else {
			a.frame = 0
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = 0
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

func NewAnimation(frames, speed int) *Animation {
	if speed < 1 {
		speed = 1
	}
	return &Animation{
		Frames:       frames,
		SpeedInTps:   speed,
		frameCounter: speed,
	}
}
