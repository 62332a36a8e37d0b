package actionfx

import (
	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/systems/factory"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
)

// projectileTargetedFX launches a purely cosmetic projectile at the primary
// target. The first spawn is the projectile, the second the impact.
// Playback completes when the projectile lands.
type projectileTargetedFX struct {
	Base
	projectile donburi.Entity
	launched   bool
	target     esync.NetworkId
}

func (p *projectileTargetedFX) Start() bool {
	p.trigger(p.Desc.Anim)
	return true
}

func (p *projectileTargetedFX) Update() bool {
	if !p.launched {
		if !p.execReached() {
			return true
		}
		return p.launch()
	}

	projectile, ok := p.live(p.projectile)
	if !ok {
		return false
	}
	if !components.FXGraphic.Get(projectile).Landed {
		return true
	}
	p.impact()
	return false
}

func (p *projectileTargetedFX) Cancel() {
	p.releaseAll()
}

func (p *projectileTargetedFX) launch() bool {
	id, hasTarget := p.Data.PrimaryTarget()
	spawns := p.spawns()
	if !hasTarget || len(spawns) == 0 {
		return false
	}
	target, ok := p.lookup(id)
	if !ok || !target.HasComponent(components.Object) {
		// Nothing to fly at; the swing animation alone is the whole show.
		return false
	}
	p.launched = true
	p.target = id
	projectile := p.spawnAt(spawns[0], p.parentPosition(), nil)
	p.projectile = projectile.Entity()
	factory.LaunchFXGraphic(projectile, components.Object.Get(target).Midpoint(), p.Desc.ProjectileSpeed)
	return true
}

func (p *projectileTargetedFX) impact() {
	p.release(p.projectile)
	target, ok := p.lookup(p.target)
	if !ok {
		return
	}
	p.hitReact(target)
	if spawns := p.spawns(); len(spawns) > 1 && target.HasComponent(components.Object) {
		p.spawnAt(spawns[1], components.Object.Get(target).Midpoint(), nil)
	}
}
