package systems

import (
	"math"

	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/automoto/doomerang-arena/shared/messages"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
)

// MoveHero steps a hero one tick along (x, y), clamped to the screen.
// Components above 1 are normalised; busy or dead heroes stay put.
func MoveHero(hero *donburi.Entry, x, y float64) {
	if !components.Health.Get(hero).Alive() {
		return
	}
	if q := components.ActionQueue.Get(hero); len(q.Queue) > 0 {
		return
	}
	dir := gamemath.Vector{X: x, Y: y}
	if dir.LengthSq() == 0 {
		return
	}
	if dir.LengthSq() > 1 {
		dir = dir.Scale(1 / dir.Length())
	}
	ch := components.Character.Get(hero)
	if dir.X != 0 {
		ch.Direction = math.Copysign(1, dir.X)
	}
	obj := components.Object.Get(hero)
	step := dir.Scale(ch.Class.Speed / cfg.TickRate)
	next := obj.Midpoint().Add(step)
	next.X = min(max(next.X, obj.W/2), float64(cfg.C.Width)-obj.W/2)
	next.Y = min(max(next.Y, obj.H/2), float64(cfg.C.Height)-obj.H/2)
	obj.MoveMidpointTo(next)
}

// HeroRequest aims a skill at the nearest live hostile. Self actions go out
// without a target.
func HeroRequest(w donburi.World, hero *donburi.Entry, skill cfg.ActionType) (messages.ActionRequestData, bool) {
	desc, ok := Catalog.Get(skill)
	if !ok {
		return messages.ActionRequestData{}, false
	}
	req := messages.ActionRequestData{
		ActionType: skill,
		Amount:     desc.Amount,
		Direction:  components.Character.Get(hero).Direction,
		Position:   components.Object.Get(hero).Midpoint(),
	}

	brain := NewBrain(w, hero)
	brain.DetectFoes()
	me := components.Object.Get(hero).Midpoint()
	best := -1.0
	for _, foe := range brain.HatedEnemies() {
		d := gamemath.DistanceSq(me, foe.Position())
		if best < 0 || d < best {
			best = d
			req.TargetIDs = []esync.NetworkId{foe.NetworkID()}
			req.Position = foe.Position()
		}
	}
	return req, true
}
