package actionfx

import (
	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/shared/gamemath"
)

// trampleFX charges with a dust trail following the parent. Completion plays
// the recovery animation; an interrupted trample just stops.
type trampleFX struct {
	Base
	hit bool
}

func (t *trampleFX) Start() bool {
	t.trigger(t.Desc.Anim)
	t.spawnGraphics(true)
	return true
}

func (t *trampleFX) Update() bool {
	if !t.hit && t.execReached() {
		t.hit = true
		if target, ok := t.primaryTarget(); ok && target.HasComponent(components.Object) {
			pos := components.Object.Get(target).Midpoint()
			if gamemath.DistanceSq(t.parentPosition(), pos) <= t.Desc.Range*t.Desc.Range {
				t.hitReact(target)
			}
		}
	}
	return true
}

func (t *trampleFX) End() {
	t.trigger(t.Desc.Anim2)
	t.Cancel()
}

func (t *trampleFX) Cancel() {
	t.releaseAll()
}
