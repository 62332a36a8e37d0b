package systems

import (
	"math"
	"testing"

	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/systems/factory"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

func TestTimedGraphicFadesThenDisappears(t *testing.T) {
	a := newTestArena(t)
	g, err := factory.SpawnFXGraphic(a.world, "impact_spark", components.Vector{X: 50, Y: 50}, nil)
	if err != nil {
		t.Fatal(err)
	}
	prefab := cfg.FX.Prefabs["impact_spark"]
	alive := prefab.LifetimeFrames + prefab.FadeFrames - 1

	for range alive {
		updateFXGraphics(a.world)
	}
	if !g.Valid() {
		t.Fatalf("graphic removed before its fade finished")
	}
	data := components.FXGraphic.Get(g)
	if !data.ShuttingDown || data.Alpha != 0 {
		t.Errorf("ShuttingDown %v alpha %v, want faded out", data.ShuttingDown, data.Alpha)
	}

	updateFXGraphics(a.world)
	if g.Valid() {
		t.Error("graphic still present after fading out")
	}
}

func TestGraphicFollowsParent(t *testing.T) {
	a := newTestArena(t)
	tank := a.spawn(cfg.CharacterTank, 100, 100)
	g, err := factory.SpawnFXGraphic(a.world, "shield_bubble", components.Vector{X: 100, Y: 90}, tank)
	if err != nil {
		t.Fatal(err)
	}

	components.Object.Get(tank).MoveMidpointTo(components.Vector{X: 200, Y: 150})
	updateFXGraphics(a.world)

	got := components.Object.Get(g).Midpoint()
	if got.X != 200 || got.Y != 140 {
		t.Errorf("graphic at %v, want (200, 140)", got)
	}

	a.world.Remove(tank.Entity())
	// The freed slot goes to the next character spawned.
	a.spawn(cfg.CharacterMage, 400, 300)
	updateFXGraphics(a.world)
	if components.FXGraphic.Get(g).Parent != donburi.Null {
		t.Error("graphic still attached to a removed parent")
	}
	if got := components.Object.Get(g).Midpoint(); got.X != 200 || got.Y != 140 {
		t.Errorf("detached graphic moved to %v", got)
	}
}

func TestLaunchedGraphicLands(t *testing.T) {
	a := newTestArena(t)
	g, err := factory.SpawnFXGraphic(a.world, "arrow", components.Vector{X: 0, Y: 100}, nil)
	if err != nil {
		t.Fatal(err)
	}
	seconds := factory.LaunchFXGraphic(g, components.Vector{X: 60, Y: 100}, 60)
	if seconds != 1 {
		t.Fatalf("flight time = %v, want 1s", seconds)
	}

	updateFXGraphics(a.world)
	if components.FXGraphic.Get(g).Landed {
		t.Fatal("landed after one tick")
	}
	for range cfg.TickRate + 1 {
		updateFXGraphics(a.world)
	}
	data := components.FXGraphic.Get(g)
	if !data.Landed {
		t.Fatal("not landed after the flight time")
	}
	if got := components.Object.Get(g).Midpoint(); math.Abs(got.X-60) > 1e-6 {
		t.Errorf("landed at %v, want x=60", got)
	}
}

func TestVisibilityFade(t *testing.T) {
	a := newTestArena(t)
	rogue := a.spawn(cfg.CharacterRogue, 100, 100)
	vis := components.Visibility.Get(rogue)
	vis.Fade = gween.New(1, 0.2, 0.5, ease.Linear)

	updateVisibility(a.world)
	if vis.Alpha >= 1 || vis.Alpha <= 0.2 {
		t.Fatalf("alpha %v after one tick, want between", vis.Alpha)
	}
	for range cfg.TickRate {
		updateVisibility(a.world)
	}
	if vis.Fade != nil {
		t.Error("fade tween kept after finishing")
	}
	if math.Abs(vis.Alpha-0.2) > 1e-6 {
		t.Errorf("alpha = %v, want 0.2", vis.Alpha)
	}
}
