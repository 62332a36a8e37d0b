package animations

import "github.com/automoto/doomerang-arena/config"

type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	SpeedInTps       float32 // how many ticks before next frame
	frameCounter     float32
	frame            int
	Looped           bool
	FreezeOnComplete bool           // If true, stay on last frame instead of looping
	Markers          map[int]string // Frame index -> animation event id
}

// NewAnimation builds an animation from a clip definition.
func NewAnimation(def config.AnimationDef) *Animation {
	step := def.Step
	if step <= 0 {
		step = 1
	}
	a := &Animation{
		First:            def.First,
		Last:             def.Last,
		Step:             step,
		SpeedInTps:       def.Speed,
		FreezeOnComplete: def.Hold,
		Markers:          def.Markers,
	}
	a.Restart()
	return a
}

// Update advances the animation by one tick. When the tick moves onto a
// frame carrying a marker, the marker id is returned.
func (a *Animation) Update() (string, bool) {
	a.frameCounter -= 1.0
	if a.frameCounter >= 0.0 {
		return "", false
	}

	a.frameCounter = a.SpeedInTps
	prev := a.frame
	a.frame += a.Step
	if a.frame > a.Last {
		a.Looped = true
		if a.FreezeOnComplete {
			// Stay on last frame
			a.frame = a.Last
		} else {
			// loop back to the beginning
			a.frame = a.First
		}
	}
	if a.frame == prev {
		return "", false
	}
	marker, ok := a.Markers[a.frame]
	return marker, ok
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}
