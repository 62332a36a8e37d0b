package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/doomerang-arena/archetypes"
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

var (
	// ErrUnknownPrefab means an action lists a spawn that is not registered.
	ErrUnknownPrefab = errors.New("unknown fx prefab")
	// ErrNotGraphic means a spawn cannot be owned by an FX playback.
	ErrNotGraphic = errors.New("fx prefab is not a special fx graphic")
)

// LookupGraphicPrefab returns the prefab and checks that it carries the
// graphic capability.
func LookupGraphicPrefab(name string) (cfg.FXPrefab, error) {
	prefab, ok := cfg.FX.Prefabs[name]
	if !ok {
		return cfg.FXPrefab{}, fmt.Errorf("%w: %q", ErrUnknownPrefab, name)
	}
	if !prefab.Graphic {
		return cfg.FXPrefab{}, fmt.Errorf("%w: %q", ErrNotGraphic, name)
	}
	return prefab, nil
}

// SpawnFXGraphic creates a graphic centred at the given position. If parent is
// non-nil the graphic follows it, keeping its current offset.
func SpawnFXGraphic(w donburi.World, prefabName string, at components.Vector, parent *donburi.Entry) (*donburi.Entry, error) {
	prefab, err := LookupGraphicPrefab(prefabName)
	if err != nil {
		return nil, err
	}

	entry := archetypes.FXGraphic.SpawnInWorld(w)

	obj := resolv.NewObject(at.X-prefab.W/2, at.Y-prefab.H/2, prefab.W, prefab.H, tags.ResolvFX)
	obj.Data = entry
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	components.Object.Set(entry, &components.ObjectData{Object: obj})

	data := &components.FXGraphicData{
		Prefab: prefab,
		Scale:  1.0,
		Alpha:  1.0,
	}
	if parent != nil && parent.Valid() && parent.HasComponent(components.Object) {
		data.Parent = parent.Entity()
		data.Offset = at.Sub(components.Object.Get(parent).Midpoint())
	}
	components.FXGraphic.Set(entry, data)

	return entry, nil
}

// LaunchFXGraphic flies a graphic from its current position to dest at speed
// pixels per second. The graphic is detached from any parent.
func LaunchFXGraphic(entry *donburi.Entry, dest components.Vector, speed float64) float64 {
	if entry == nil || !entry.Valid() {
		return 0
	}
	g := components.FXGraphic.Get(entry)
	from := components.Object.Get(entry).Midpoint()

	seconds := 0.0
	if speed > 0 {
		seconds = dest.Sub(from).Length() / speed
	}

	g.Parent = donburi.Null
	g.From = from
	g.To = dest
	g.Landed = false
	g.Flight = gween.New(0, 1, float32(seconds), ease.Linear)
	return seconds
}

// ShutdownFXGraphic releases a graphic from its owner. It fades out over the
// prefab's FadeFrames and is then removed by the effects system. Calling it
// twice is harmless.
func ShutdownFXGraphic(entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	g := components.FXGraphic.Get(entry)
	if g.ShuttingDown {
		return
	}
	g.ShuttingDown = true
	g.FadeLeft = g.Prefab.FadeFrames
	g.Parent = donburi.Null
	g.Flight = nil
}

// DestroyFXGraphic removes a graphic and its physics object immediately.
func DestroyFXGraphic(w donburi.World, entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	obj := components.Object.Get(entry)
	if obj != nil && obj.Object != nil && obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	w.Remove(entry.Entity())
}

// ReleaseFXGraphic hands a graphic back from its owner. Timed graphics are
// left to expire on their own; untimed graphics start shutting down.
func ReleaseFXGraphic(entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	g := components.FXGraphic.Get(entry)
	if g.Prefab.LifetimeFrames > 0 && g.Flight == nil {
		g.Parent = donburi.Null
		return
	}
	ShutdownFXGraphic(entry)
}
