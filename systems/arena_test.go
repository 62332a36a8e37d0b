package systems

import (
	"testing"

	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/automoto/doomerang-arena/systems/actionfx"
	"github.com/automoto/doomerang-arena/systems/ai"
	"github.com/automoto/doomerang-arena/systems/factory"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

func TestPopulateArena(t *testing.T) {
	w := donburi.NewWorld()
	spawned, err := PopulateArena(w, &factory.LocalIDs{}, zap.NewNop(), true)
	if err != nil {
		t.Fatal(err)
	}
	if len(spawned) != len(cfg.Arena.Spawns) {
		t.Fatalf("spawned %d, want %d", len(spawned), len(cfg.Arena.Spawns))
	}
	if _, ok := components.Space.First(w); !ok {
		t.Error("no collision space")
	}
	for _, entry := range spawned {
		class := components.Character.Get(entry).Class
		if got := entry.HasComponent(ai.Component); got != class.IsNPC {
			t.Errorf("%s: has AI %v, want %v", class.Type, got, class.IsNPC)
		}
		if !entry.HasComponent(actionfx.Component) {
			t.Errorf("%s: not visualized", class.Type)
		}
	}
}

func TestImpHuntsHero(t *testing.T) {
	a := newTestArena(t)
	imp, err := SpawnCharacter(a.world, a.ids, cfg.CharacterImp, 100, 100, zap.NewNop(), true)
	if err != nil {
		t.Fatal(err)
	}
	tank, err := SpawnCharacter(a.world, a.ids, cfg.CharacterTank, 250, 100, zap.NewNop(), true)
	if err != nil {
		t.Fatal(err)
	}
	start := health(tank)

	// Detect on the first tick, then chase.
	a.tick(2)
	info, busy := a.player(imp).GetActiveActionInfo()
	if !busy || info.ActionType != cfg.ActionGeneralChase {
		t.Fatalf("active = %v, %v; want a chase", info.ActionType, busy)
	}
	if !info.Targets(networkID(t, tank)) {
		t.Error("chase does not target the tank")
	}

	a.tick(300)

	if got := health(tank); got >= start {
		t.Fatalf("tank untouched after 300 ticks: health %d", got)
	}
	me := components.Object.Get(imp).Midpoint()
	foe := components.Object.Get(tank).Midpoint()
	reach := cfg.Actions.MustGet(cfg.ActionImpBaseAttack).Range
	if d := gamemath.DistanceSq(me, foe); d > reach*reach {
		t.Errorf("imp ended at distance² %.1f, outside its reach", d)
	}
}

func TestImpGoesIdleWhenFoeDies(t *testing.T) {
	a := newTestArena(t)
	imp, err := SpawnCharacter(a.world, a.ids, cfg.CharacterImp, 100, 100, zap.NewNop(), false)
	if err != nil {
		t.Fatal(err)
	}
	tank := a.spawn(cfg.CharacterTank, 120, 100)

	a.tick(2)
	ctrl := ai.Component.Get(imp)
	if _, ok := ctrl.Current().(*ai.AttackState); !ok {
		t.Fatalf("state = %T, want attacking", ctrl.Current())
	}

	components.Health.Get(tank).Current = 0
	a.tick(2)
	if _, ok := ctrl.Current().(*ai.IdleState); !ok {
		t.Errorf("state = %T, want idle", ctrl.Current())
	}
	if _, busy := a.player(imp).GetActiveActionInfo(); busy {
		t.Error("imp still acting on a dead foe")
	}
}

func TestImpForgetsRemovedFoe(t *testing.T) {
	a := newTestArena(t)
	imp, err := SpawnCharacter(a.world, a.ids, cfg.CharacterImp, 20, 20, zap.NewNop(), false)
	if err != nil {
		t.Fatal(err)
	}
	tank := a.spawn(cfg.CharacterTank, 60, 20)
	tankID := networkID(t, tank)

	a.tick(2)
	attack, ok := ai.Component.Get(imp).Current().(*ai.AttackState)
	if !ok || attack.Foe() == nil || attack.Foe().NetworkID() != tankID {
		t.Fatalf("imp is not attacking the tank")
	}

	factory.DestroyCharacter(a.world, tank)
	// Takes over the tank's slot, far outside the imp's detect range.
	mage := a.spawn(cfg.CharacterMage, 600, 330)
	mageID := networkID(t, mage)

	a.tick(1)
	if foe := attack.Foe(); foe != nil {
		t.Fatalf("foe = %d after the tank left, want none", foe.NetworkID())
	}
	if info, busy := a.player(imp).GetActiveActionInfo(); busy {
		t.Fatalf("imp still acting (%v) after its foe left", info.ActionType)
	}

	a.tick(2)
	if _, ok := ai.Component.Get(imp).Current().(*ai.IdleState); !ok {
		t.Errorf("state = %T, want idle", ai.Component.Get(imp).Current())
	}
	if info, busy := a.player(imp).GetActiveActionInfo(); busy && info.Targets(mageID) {
		t.Error("imp went after a character it never detected")
	}
}

func TestMoveHero(t *testing.T) {
	a := newTestArena(t)
	tank := a.spawn(cfg.CharacterTank, 100, 100)
	speed := cfg.Classes[cfg.CharacterTank].Speed / cfg.TickRate

	MoveHero(tank, -3, 0)
	got := components.Object.Get(tank).Midpoint()
	if got.X != 100-speed || got.Y != 100 {
		t.Errorf("moved to %v, want one normalised step left", got)
	}
	if components.Character.Get(tank).Direction != -1 {
		t.Error("hero not facing left")
	}

	corner := a.spawn(cfg.CharacterMage, 0, 0)
	MoveHero(corner, -1, -1)
	obj := components.Object.Get(corner)
	if p := obj.Midpoint(); p.X < obj.W/2 || p.Y < obj.H/2 {
		t.Errorf("hero left the screen: %v", p)
	}

	components.Health.Get(tank).Current = 0
	before := components.Object.Get(tank).Midpoint()
	MoveHero(tank, 1, 0)
	if after := components.Object.Get(tank).Midpoint(); after != before {
		t.Error("dead hero moved")
	}
}
