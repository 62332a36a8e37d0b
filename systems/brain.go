package systems

import (
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/automoto/doomerang-arena/systems/ai"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
)

// character adapts a character to ai.Character. It is keyed by network id
// and resolved on every call, so it never stands for whoever reuses a
// removed character's entry.
type character struct {
	world donburi.World
	id    esync.NetworkId
}

func characterOf(w donburi.World, entry *donburi.Entry) character {
	c := character{world: w}
	if id := esync.GetNetworkId(entry); id != nil {
		c.id = *id
	}
	return c
}

func (c character) NetworkID() esync.NetworkId {
	return c.id
}

// Position is the character's centre, or the zero vector once it is gone.
func (c character) Position() gamemath.Vector {
	entity := esync.FindByNetworkId(c.world, c.id)
	if !c.world.Valid(entity) {
		return gamemath.Vector{}
	}
	entry := c.world.Entry(entity)
	if !entry.HasComponent(components.Object) {
		return gamemath.Vector{}
	}
	return components.Object.Get(entry).Midpoint()
}

// Brain is the AI context of one NPC. Foes spotted by DetectFoes stay hated
// until they die or leave the world.
type Brain struct {
	world donburi.World
	entry *donburi.Entry
	hated []esync.NetworkId
}

func NewBrain(w donburi.World, entry *donburi.Entry) *Brain {
	return &Brain{world: w, entry: entry}
}

func (b *Brain) CharacterData() *cfg.CharacterClass {
	return components.Character.Get(b.entry).Class
}

func (b *Brain) Self() ai.Character {
	return characterOf(b.world, b.entry)
}

// IsAppropriateFoe reports whether c is a live hostile character.
func (b *Brain) IsAppropriateFoe(c ai.Character) bool {
	if c == nil {
		return false
	}
	_, ok := b.resolveFoe(c.NetworkID())
	return ok
}

// HatedEnemies returns the hated characters that are still appropriate
// foes, forgetting the rest.
func (b *Brain) HatedEnemies() []ai.Character {
	kept := b.hated[:0]
	var out []ai.Character
	for _, id := range b.hated {
		if _, ok := b.resolveFoe(id); !ok {
			continue
		}
		kept = append(kept, id)
		out = append(out, character{world: b.world, id: id})
	}
	b.hated = kept
	return out
}

// Hate adds a character to the hate list.
func (b *Brain) Hate(id esync.NetworkId) {
	for _, h := range b.hated {
		if h == id {
			return
		}
	}
	b.hated = append(b.hated, id)
}

// DetectFoes hates every live hostile inside the class detect range.
func (b *Brain) DetectFoes() {
	class := b.CharacterData()
	me := components.Object.Get(b.entry).Midpoint()
	rangeSq := class.DetectRange * class.DetectRange

	tags.Character.Each(b.world, func(other *donburi.Entry) {
		if other.Entity() == b.entry.Entity() || !b.hostile(other) {
			return
		}
		if gamemath.DistanceSq(me, components.Object.Get(other).Midpoint()) > rangeSq {
			return
		}
		if id := esync.GetNetworkId(other); id != nil {
			b.Hate(*id)
		}
	})
}

func (b *Brain) resolveFoe(id esync.NetworkId) (*donburi.Entry, bool) {
	entity := esync.FindByNetworkId(b.world, id)
	if !b.world.Valid(entity) {
		return nil, false
	}
	entry := b.world.Entry(entity)
	if entity == b.entry.Entity() || !b.hostile(entry) {
		return nil, false
	}
	return entry, true
}

// hostile reports whether other is a live character of an opposing faction.
func (b *Brain) hostile(other *donburi.Entry) bool {
	if !other.HasComponent(components.Character) || !other.HasComponent(components.Health) {
		return false
	}
	if !components.Health.Get(other).Alive() {
		return false
	}
	mine := b.CharacterData().Faction
	return mine.Hostile(components.Character.Get(other).Class.Faction)
}
