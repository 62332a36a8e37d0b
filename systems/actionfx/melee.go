package actionfx

import (
	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/gamemath"
)

// meleeReachPadding forgives targets that stepped just out of range during
// the swing.
const meleeReachPadding = 1.5

// meleeFX swings, then at the impact frame makes the targets react and
// spawns the impact graphics on them.
type meleeFX struct {
	Base
	impacted bool
}

func (m *meleeFX) Start() bool {
	m.trigger(m.Desc.Anim)
	return true
}

func (m *meleeFX) Update() bool {
	if !m.impacted && m.execReached() {
		m.impact()
	}
	return true
}

func (m *meleeFX) OnAnimEvent(id string) {
	if id == config.MarkerImpact && !m.impacted {
		m.impact()
	}
}

func (m *meleeFX) Cancel() {
	m.releaseAll()
}

func (m *meleeFX) impact() {
	m.impacted = true

	reach := m.Desc.Range * meleeReachPadding
	origin := m.parentPosition()
	for _, target := range m.targets() {
		if !target.HasComponent(components.Object) {
			continue
		}
		pos := components.Object.Get(target).Midpoint()
		if gamemath.DistanceSq(origin, pos) > reach*reach {
			continue
		}
		m.hitReact(target)
		for _, prefab := range m.spawns() {
			m.spawnAt(prefab, pos, nil)
		}
	}
}
