package actionfx

import (
	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/config"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
)

// targetFX shows a reticle over the selected target for as long as the
// selection lasts.
type targetFX struct {
	Base
	target  esync.NetworkId
	reticle donburi.Entity
}

func (t *targetFX) Start() bool {
	id, ok := t.Data.PrimaryTarget()
	spawns := t.spawns()
	if !ok || len(spawns) == 0 {
		return false
	}
	target, ok := t.lookup(id)
	if !ok || !target.HasComponent(components.Object) {
		return false
	}
	t.target = id

	obj := components.Object.Get(target)
	at := components.Vector{X: obj.X + obj.W/2, Y: obj.Y - config.FX.TargetReticleLift}
	t.reticle = t.spawnAt(spawns[0], at, target).Entity()
	return true
}

func (t *targetFX) Update() bool {
	target, ok := t.lookup(t.target)
	if !ok {
		return false
	}
	if _, ok := t.live(t.reticle); !ok {
		return false
	}
	if target.HasComponent(components.Health) && !components.Health.Get(target).Alive() {
		return false
	}
	return true
}

func (t *targetFX) Cancel() {
	t.releaseAll()
}
