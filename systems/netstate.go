package systems

import (
	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/shared/netcomponents"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PublishNetState copies authoritative position and health into the
// replicated components. Runs last, right before the snapshot is taken.
func PublishNetState(e *ecs.ECS) {
	publishNetState(e.World)
}

func publishNetState(w donburi.World) {
	tags.Character.Each(w, func(entry *donburi.Entry) {
		mid := components.Object.Get(entry).Midpoint()
		netcomponents.NetPosition.SetValue(entry, netcomponents.NewNetPosition(mid))

		h := components.Health.Get(entry)
		netcomponents.NetHealth.SetValue(entry, netcomponents.NetHealthData{Current: h.Current, Max: h.Max})

		ch := components.Character.Get(entry)
		netcomponents.NetCharacter.SetValue(entry, netcomponents.NetCharacterData{Class: ch.Class.Type, Direction: ch.Direction})
	})
}
