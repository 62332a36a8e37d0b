package archetypes

import (
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/netcomponents"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Hero = newArchetype(
		tags.Character,
		tags.Hero,
		components.Character,
		components.Object,
		components.Health,
		components.Animator,
		components.Visibility,
		components.ActionQueue,
		netcomponents.NetActiveAction,
		netcomponents.NetPosition,
		netcomponents.NetHealth,
		netcomponents.NetCharacter,
	)
	Monster = newArchetype(
		tags.Character,
		tags.Monster,
		components.Character,
		components.Object,
		components.Health,
		components.Animator,
		components.Visibility,
		components.ActionQueue,
		netcomponents.NetActiveAction,
		netcomponents.NetPosition,
		netcomponents.NetHealth,
		netcomponents.NetCharacter,
	)
	FXGraphic = newArchetype(
		tags.FXGraphic,
		components.FXGraphic,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

// SpawnInWorld creates the archetype directly in a world, for code that has
// no ECS wrapper (server core, tests).
func (a *archetype) SpawnInWorld(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
