package actionfx

// animationOnlyFX plays an animation (and any parented spawns, such as stun
// stars) for the action's duration. Anim2 is the recovery animation.
type animationOnlyFX struct {
	Base
}

func (a *animationOnlyFX) Start() bool {
	a.trigger(a.Desc.Anim)
	a.spawnGraphics(true)
	return true
}

func (a *animationOnlyFX) Update() bool {
	return true
}

func (a *animationOnlyFX) Cancel() {
	a.trigger(a.Desc.Anim2)
	a.releaseAll()
}
