package systems

import (
	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/shared/netcomponents"
	"github.com/automoto/doomerang-arena/systems/actionfx"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// AttachVisualization lets entry play back the actions it publishes.
func AttachVisualization(w donburi.World, entry *donburi.Entry, log *zap.Logger) {
	env := &actionfx.Env{World: w, Catalog: Catalog, Log: log}
	if !entry.HasComponent(actionfx.Component) {
		entry.AddComponent(actionfx.Component)
	}
	actionfx.Component.Set(entry, actionfx.NewVisualization(entry, env))
}

// UpdateActionFX turns published actions into playback: a new sequence
// cancels the interrupted action and starts the new one, markers collected
// by the animator are forwarded, then every playback advances one tick.
// A catalog or prefab error here is a data defect and panics.
func UpdateActionFX(e *ecs.ECS) {
	updateActionFX(e.World)
}

func updateActionFX(w donburi.World) {
	// Playback spawns graphics, so collect first and mutate after the query.
	var entries []*donburi.Entry
	actionfx.Component.Each(w, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})

	for _, entry := range entries {
		if !entry.Valid() {
			continue
		}
		vis := actionfx.Component.Get(entry)

		if entry.HasComponent(netcomponents.NetActiveAction) {
			net := netcomponents.NetActiveAction.Get(entry)
			if net.Seq != vis.LastSeq {
				vis.LastSeq = net.Seq
				if net.Cancelled {
					vis.CancelAllOfType(net.Interrupted)
				}
				if net.Active {
					vis.PlayAction(net.Request)
				}
			}
			if net.ChargeReleased && vis.ReleasedSeq != net.Seq {
				vis.ReleasedSeq = net.Seq
				vis.OnStoppedChargingUp(net.ChargePercent)
			}
		}

		if entry.HasComponent(components.Animator) {
			anim := components.Animator.Get(entry)
			for _, ev := range anim.Events {
				vis.OnAnimEvent(ev)
			}
			anim.Events = anim.Events[:0]
		}

		vis.Update()
	}
}
