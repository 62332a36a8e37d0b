package systems

import (
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/systems/ai"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// liveCatalog reads cfg.Actions on every lookup so a reloaded catalog is
// picked up by states and players created before the reload.
type liveCatalog struct{}

func (liveCatalog) Get(t cfg.ActionType) (*cfg.ActionDescription, bool) {
	return cfg.Actions.Get(t)
}

// Catalog is the action catalog systems hand to the AI and the FX layer.
var Catalog ai.Catalog = liveCatalog{}

// AttachAI gives an NPC its decision states: attack when there is a foe,
// otherwise idle and look around.
func AttachAI(w donburi.World, entry *donburi.Entry, log *zap.Logger) {
	brain := NewBrain(w, entry)
	player := NewActionPlayer(w, entry, Catalog, log)
	ctrl := ai.NewController(
		ai.NewAttackState(brain, player, Catalog, log),
		ai.NewIdleState(brain),
	)
	if !entry.HasComponent(ai.Component) {
		entry.AddComponent(ai.Component)
	}
	ai.Component.Set(entry, ctrl)
}

// UpdateAI runs every NPC's decision state once. Must run before
// UpdateActions so requests issued this tick start this tick.
func UpdateAI(e *ecs.ECS) {
	updateAI(e.World)
}

func updateAI(w donburi.World) {
	ai.Component.Each(w, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Health) && !components.Health.Get(entry).Alive() {
			return
		}
		ai.Component.Get(entry).Update()
	})
}
