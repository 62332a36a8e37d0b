package systems

import (
	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/automoto/doomerang-arena/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes cosmetic state: FX graphics and character fades.
func UpdateEffects(ecs *ecs.ECS) {
	updateEffects(ecs.World)
}

func updateEffects(w donburi.World) {
	updateFXGraphics(w)
	updateVisibility(w)
}

// updateFXGraphics moves graphics with their parent or along their flight,
// then ages them and removes the ones that finished fading.
func updateFXGraphics(w donburi.World) {
	var toDestroy []*donburi.Entry
	dt := float32(1.0 / config.TickRate)

	components.FXGraphic.Each(w, func(e *donburi.Entry) {
		g := components.FXGraphic.Get(e)
		obj := components.Object.Get(e)

		// Follow parent; a parent that went away detaches the graphic
		if g.Parent != donburi.Null {
			if parent, ok := followed(w, g.Parent); ok {
				obj.MoveMidpointTo(components.Object.Get(parent).Midpoint().Add(g.Offset))
			} else {
				g.Parent = donburi.Null
			}
		}

		if g.Flight != nil && !g.Landed {
			t, done := g.Flight.Update(dt)
			obj.MoveMidpointTo(gamemath.Lerp(g.From, g.To, float64(t)))
			if done {
				g.Landed = true
			}
		}

		g.Age++
		if !g.ShuttingDown && g.Prefab.LifetimeFrames > 0 && g.Age >= g.Prefab.LifetimeFrames {
			factory.ShutdownFXGraphic(e)
		}

		if g.ShuttingDown {
			if g.FadeLeft <= 0 {
				toDestroy = append(toDestroy, e)
				return
			}
			g.FadeLeft--
			if g.Prefab.FadeFrames > 0 {
				g.Alpha = float64(g.FadeLeft) / float64(g.Prefab.FadeFrames)
			}
		}
	})

	for _, e := range toDestroy {
		factory.DestroyFXGraphic(w, e)
	}
}

// followed resolves a graphic's parent. A removed parent stays removed even
// once another entity takes its slot.
func followed(w donburi.World, parent donburi.Entity) (*donburi.Entry, bool) {
	if !w.Valid(parent) {
		return nil, false
	}
	entry := w.Entry(parent)
	if !entry.HasComponent(components.Object) {
		return nil, false
	}
	return entry, true
}

// updateVisibility drives character alpha from its fade tween.
func updateVisibility(w donburi.World) {
	dt := float32(1.0 / config.TickRate)
	components.Visibility.Each(w, func(e *donburi.Entry) {
		vis := components.Visibility.Get(e)
		if vis.Fade == nil {
			return
		}
		alpha, done := vis.Fade.Update(dt)
		vis.Alpha = float64(alpha)
		if done {
			vis.Fade = nil
		}
	})
}
