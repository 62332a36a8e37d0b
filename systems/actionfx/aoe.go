package actionfx

import "github.com/yohamta/donburi"

// aoeFX places a persistent field at the requested ground point once the
// cast executes. Completing normally leaves a dissipating puff behind;
// cancelling removes the field without it.
type aoeFX struct {
	Base
	field donburi.Entity
}

func (a *aoeFX) Start() bool {
	a.trigger(a.Desc.Anim)
	return true
}

func (a *aoeFX) Update() bool {
	if a.field == donburi.Null && a.execReached() {
		if spawns := a.spawns(); len(spawns) > 0 {
			a.field = a.spawnAt(spawns[0], a.Data.Position, nil).Entity()
		}
	}
	return true
}

func (a *aoeFX) End() {
	if a.field != donburi.Null {
		if spawns := a.spawns(); len(spawns) > 1 {
			a.spawnAt(spawns[1], a.Data.Position, nil)
		}
	}
	a.Cancel()
}

func (a *aoeFX) Cancel() {
	a.releaseAll()
}
