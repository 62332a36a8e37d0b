// Package actionfx plays back the cosmetic side of actions. One ActionFX
// instance mirrors one in-flight action on one visualized character and is
// driven every tick by that character's Visualization until it finishes.
package actionfx

import (
	"fmt"

	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/messages"
	"github.com/automoto/doomerang-arena/systems/factory"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// State is the lifecycle position of an ActionFX.
type State int

const (
	Constructed State = iota
	Playing
	Ended
)

func (s State) String() string {
	switch s {
	case Constructed:
		return "Constructed"
	case Playing:
		return "Playing"
	case Ended:
		return "Ended"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Catalog is the read-only action lookup playback needs.
type Catalog interface {
	Get(t config.ActionType) (*config.ActionDescription, bool)
}

// Env is what every playback instance shares.
type Env struct {
	World   donburi.World
	Catalog Catalog
	Log     *zap.Logger
}

func (e *Env) logger() *zap.Logger {
	if e == nil || e.Log == nil {
		return zap.NewNop()
	}
	return e.Log
}

// ActionFX is the visual playback of one action.
//
// Start returns false to be dropped immediately without any Update. Update
// returns false once playback is complete. Cancel is called when playback is
// interrupted. Variants that want a different wrap-up on normal completion
// also implement Ender; otherwise completion calls Cancel.
type ActionFX interface {
	Start() bool
	Update() bool
	Cancel()

	// OnAnimEvent receives animation markers from the parent's animator.
	OnAnimEvent(id string)
	// OnStoppedChargingUp is called when a charge is released early.
	OnStoppedChargingUp(finalChargeUpPercentage float64)

	base() *Base
}

// Ender is implemented by variants whose normal completion differs from
// cancellation.
type Ender interface {
	End()
}

// Base carries the state every variant has and the shared helpers for
// spawning graphics and driving animators.
type Base struct {
	Data   messages.ActionRequestData
	Desc   *config.ActionDescription
	Parent *donburi.Entry // borrowed; outlives the instance

	env      *Env
	state    State
	ticks    int
	graphics []donburi.Entity
}

func newBase(data messages.ActionRequestData, desc *config.ActionDescription, parent *donburi.Entry, env *Env) Base {
	return Base{
		Data:   data,
		Desc:   desc,
		Parent: parent,
		env:    env,
		state:  Constructed,
	}
}

func (b *Base) base() *Base { return b }

// State returns the lifecycle state.
func (b *Base) State() State { return b.state }

// Ticks is the number of Update ticks since Start.
func (b *Base) Ticks() int { return b.ticks }

// Graphics returns the owned graphics that still exist.
func (b *Base) Graphics() []*donburi.Entry {
	var out []*donburi.Entry
	for _, g := range b.graphics {
		if entry, ok := b.live(g); ok {
			out = append(out, entry)
		}
	}
	return out
}

func (b *Base) OnAnimEvent(string) {}

func (b *Base) OnStoppedChargingUp(float64) {}

func (b *Base) Cancel() {}

func (b *Base) execReached() bool {
	return b.ticks >= b.Desc.ExecTicks()
}

// parentPosition reads the parent's centre. The parent is never written.
func (b *Base) parentPosition() components.Vector {
	if b.Parent == nil || !b.Parent.Valid() || !b.Parent.HasComponent(components.Object) {
		return components.Vector{}
	}
	return components.Object.Get(b.Parent).Midpoint()
}

// trigger fires an animator trigger on the parent.
func (b *Base) trigger(anim string) {
	triggerOn(b.Parent, anim)
}

func triggerOn(entry *donburi.Entry, anim string) {
	if anim == "" || entry == nil || !entry.Valid() || !entry.HasComponent(components.Animator) {
		return
	}
	components.Animator.Get(entry).SetTrigger(anim)
}

// hitReact plays the action's reaction on a target.
func (b *Base) hitReact(target *donburi.Entry) {
	anim := b.Desc.ReactAnim
	if anim == "" {
		anim = config.HitReact
	}
	triggerOn(target, anim)
}

// primaryTarget resolves the first target id to a live entry.
func (b *Base) primaryTarget() (*donburi.Entry, bool) {
	id, ok := b.Data.PrimaryTarget()
	if !ok {
		return nil, false
	}
	return b.lookup(id)
}

// targets resolves every target id that still exists.
func (b *Base) targets() []*donburi.Entry {
	var out []*donburi.Entry
	for _, id := range b.Data.TargetIDs {
		if e, ok := b.lookup(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// live resolves an entity kept across ticks. A removed entity never resolves,
// even after its slot is reused.
func (b *Base) live(e donburi.Entity) (*donburi.Entry, bool) {
	if b.env == nil || b.env.World == nil || !b.env.World.Valid(e) {
		return nil, false
	}
	return b.env.World.Entry(e), true
}

func (b *Base) lookup(id esync.NetworkId) (*donburi.Entry, bool) {
	if b.env == nil || b.env.World == nil {
		return nil, false
	}
	w := b.env.World
	entity := esync.FindByNetworkId(w, id)
	if !w.Valid(entity) {
		return nil, false
	}
	return w.Entry(entity), true
}

// spawns returns the non-blank spawn prefab names.
func (b *Base) spawns() []string {
	out := make([]string, 0, len(b.Desc.Spawns))
	for _, s := range b.Desc.Spawns {
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// spawnAt instantiates one prefab and takes ownership of it. A prefab
// without the graphic capability is an authoring error and panics.
func (b *Base) spawnAt(prefab string, at components.Vector, parent *donburi.Entry) *donburi.Entry {
	entry, err := factory.SpawnFXGraphic(b.env.World, prefab, at, parent)
	if err != nil {
		panic(fmt.Errorf("action %s spawn: %w", b.Desc.Type, err))
	}
	b.graphics = append(b.graphics, entry.Entity())
	return entry
}

// spawnGraphics instantiates every spawn at the parent's position. When
// parentToSelf is set the graphics follow the parent.
func (b *Base) spawnGraphics(parentToSelf bool) []*donburi.Entry {
	var parent *donburi.Entry
	if parentToSelf {
		parent = b.Parent
	}
	at := b.parentPosition()
	var out []*donburi.Entry
	for _, prefab := range b.spawns() {
		out = append(out, b.spawnAt(prefab, at, parent))
	}
	return out
}

// release hands one owned graphic back.
func (b *Base) release(e donburi.Entity) {
	for i, g := range b.graphics {
		if g == e {
			b.graphics = append(b.graphics[:i], b.graphics[i+1:]...)
			break
		}
	}
	if entry, ok := b.live(e); ok {
		factory.ReleaseFXGraphic(entry)
	}
}

// releaseAll hands every owned graphic back. Safe to call repeatedly.
func (b *Base) releaseAll() {
	for _, g := range b.graphics {
		if entry, ok := b.live(g); ok {
			factory.ReleaseFXGraphic(entry)
		}
	}
	b.graphics = nil
}
