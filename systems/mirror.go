package systems

import (
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/automoto/doomerang-arena/shared/netcomponents"
	"github.com/automoto/doomerang-arena/systems/actionfx"
	"github.com/automoto/doomerang-arena/systems/factory"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// ApplySnapshot mirrors a server snapshot into a client world. Characters
// are created on first sight with playback attached, updated from the
// replicated components, and removed once the server stops sending them.
func ApplySnapshot(w donburi.World, snapshot esync.WorldSnapshot, log *zap.Logger) {
	present := make(map[esync.NetworkId]bool, len(snapshot))
	for _, ent := range snapshot {
		present[ent.Id] = true

		var state []any
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				log.Debug("component skipped", zap.Uint("id", uint(ent.Id)), zap.Error(err))
				continue
			}
			state = append(state, instance)
		}
		applyMirrorState(w, ent.Id, state, log)
	}
	pruneMirrors(w, present)
}

// applyMirrorState updates one mirrored character from decoded components.
func applyMirrorState(w donburi.World, id esync.NetworkId, state []any, log *zap.Logger) {
	entry, ok := mirrorEntry(w, id, state, log)
	if !ok {
		return
	}
	for _, data := range state {
		switch v := data.(type) {
		case netcomponents.NetPositionData:
			netcomponents.NetPosition.SetValue(entry, v)
			interp := components.NetInterp.Get(entry)
			target := v.Vector()
			if !interp.Initialized {
				// First snapshot: place without interpolating
				components.Object.Get(entry).MoveMidpointTo(target)
				interp.Prev, interp.Target, interp.T = target, target, 1
				interp.Initialized = true
				continue
			}
			interp.Prev = components.Object.Get(entry).Midpoint()
			interp.Target = target
			interp.T = 0
		case netcomponents.NetHealthData:
			netcomponents.NetHealth.SetValue(entry, v)
			components.Health.SetValue(entry, components.HealthData{Current: v.Current, Max: v.Max})
		case netcomponents.NetActiveActionData:
			netcomponents.NetActiveAction.SetValue(entry, v)
		case netcomponents.NetCharacterData:
			components.Character.Get(entry).Direction = v.Direction
		}
	}
}

// mirrorEntry finds the mirror of id, creating it when the snapshot says
// what class it is.
func mirrorEntry(w donburi.World, id esync.NetworkId, state []any, log *zap.Logger) (*donburi.Entry, bool) {
	if entity := esync.FindByNetworkId(w, id); w.Valid(entity) {
		return w.Entry(entity), true
	}

	var class *netcomponents.NetCharacterData
	var pos components.Vector
	for _, data := range state {
		switch v := data.(type) {
		case netcomponents.NetCharacterData:
			class = &v
		case netcomponents.NetPositionData:
			pos = v.Vector()
		}
	}
	if class == nil {
		return nil, false
	}
	entry, err := factory.CreateCharacter(w, factory.FixedID(id), class.Class, pos)
	if err != nil {
		log.Warn("mirror not created", zap.Uint("id", uint(id)), zap.Error(err))
		return nil, false
	}
	entry.AddComponent(components.NetInterp)
	AttachVisualization(w, entry, log)
	log.Debug("mirror created", zap.Uint("id", uint(id)), zap.Stringer("class", class.Class))
	return entry, true
}

func pruneMirrors(w donburi.World, present map[esync.NetworkId]bool) {
	var gone []*donburi.Entry
	tags.Character.Each(w, func(entry *donburi.Entry) {
		id := esync.GetNetworkId(entry)
		if id == nil || !present[*id] {
			gone = append(gone, entry)
		}
	})
	for _, entry := range gone {
		if entry.HasComponent(actionfx.Component) {
			actionfx.Component.Get(entry).CancelAll()
		}
		factory.DestroyCharacter(w, entry)
	}
}

// NewNetInterpSystem moves mirrors toward their last snapshot position.
// serverRate is the snapshot rate in ticks per second.
func NewNetInterpSystem(serverRate func() int) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		step := float64(serverRate()) / cfg.TickRate
		components.NetInterp.Each(e.World, func(entry *donburi.Entry) {
			interp := components.NetInterp.Get(entry)
			if !interp.Initialized || interp.T >= 1 {
				return
			}
			interp.T = min(interp.T+step, 1)
			components.Object.Get(entry).MoveMidpointTo(gamemath.Lerp(interp.Prev, interp.Target, interp.T))
		})
	}
}
