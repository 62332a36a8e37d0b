package factory

import (
	"fmt"

	"github.com/automoto/doomerang-arena/archetypes"
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/netcomponents"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/leap-fish/necs/esync"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// NetworkIDs gives a freshly spawned entity its network identity.
type NetworkIDs interface {
	Assign(w donburi.World, entity *donburi.Entity) error
}

// LocalIDs hands out sequential ids for worlds that are not replicated.
type LocalIDs struct {
	next esync.NetworkId
}

func (l *LocalIDs) Assign(w donburi.World, entity *donburi.Entity) error {
	l.next++
	entry := w.Entry(*entity)
	if !entry.HasComponent(esync.NetworkIdComponent) {
		entry.AddComponent(esync.NetworkIdComponent)
	}
	esync.NetworkIdComponent.SetValue(entry, l.next)
	return nil
}

// CreateCharacter spawns a character of the given class centred at pos.
func CreateCharacter(w donburi.World, ids NetworkIDs, class cfg.CharacterType, pos components.Vector) (*donburi.Entry, error) {
	data, ok := cfg.Classes[class]
	if !ok {
		return nil, fmt.Errorf("no class data for %s", class)
	}

	arch := archetypes.Hero
	if data.Faction == cfg.FactionMonsters {
		arch = archetypes.Monster
	}
	entry := arch.SpawnInWorld(w)

	width, height := float64(data.CollisionWidth), float64(data.CollisionHeight)
	obj := resolv.NewObject(pos.X-width/2, pos.Y-height/2, width, height, tags.ResolvCharacter)
	obj.Data = entry
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	components.Object.Set(entry, &components.ObjectData{Object: obj})

	components.Character.SetValue(entry, components.CharacterData{Class: data, Direction: 1})
	components.Health.SetValue(entry, components.HealthData{Current: data.BaseHP, Max: data.BaseHP})
	components.Visibility.SetValue(entry, components.VisibilityData{Alpha: 1})

	anim := components.AnimatorData{}
	anim.SetTrigger(cfg.IdleAnim)
	components.Animator.SetValue(entry, anim)

	netcomponents.NetPosition.SetValue(entry, netcomponents.NewNetPosition(pos))
	netcomponents.NetHealth.SetValue(entry, netcomponents.NetHealthData{Current: data.BaseHP, Max: data.BaseHP})
	netcomponents.NetCharacter.SetValue(entry, netcomponents.NetCharacterData{Class: class, Direction: 1})

	entity := entry.Entity()
	if err := ids.Assign(w, &entity); err != nil {
		w.Remove(entity)
		return nil, fmt.Errorf("assign network id: %w", err)
	}
	return entry, nil
}

// DestroyCharacter removes a character and its collision object.
func DestroyCharacter(w donburi.World, entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	obj := components.Object.Get(entry)
	if obj.Object != nil && obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	w.Remove(entry.Entity())
}

// FixedID assigns an id chosen elsewhere, such as one read from a server
// snapshot.
type FixedID esync.NetworkId

func (f FixedID) Assign(w donburi.World, entity *donburi.Entity) error {
	entry := w.Entry(*entity)
	if !entry.HasComponent(esync.NetworkIdComponent) {
		entry.AddComponent(esync.NetworkIdComponent)
	}
	esync.NetworkIdComponent.SetValue(entry, esync.NetworkId(f))
	return nil
}
