package systems

import (
	"testing"

	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/automoto/doomerang-arena/shared/messages"
	"github.com/leap-fish/necs/esync"
	"go.uber.org/zap"
)

func attackOn(t cfg.ActionType, amount float64, target esync.NetworkId, queue bool) *messages.ActionRequestData {
	return &messages.ActionRequestData{
		ActionType:  t,
		Amount:      amount,
		ShouldQueue: queue,
		TargetIDs:   []esync.NetworkId{target},
	}
}

func TestPlayActionStartsHeadAndPublishes(t *testing.T) {
	a := newTestArena(t)
	imp := a.spawn(cfg.CharacterImp, 100, 100)
	tank := a.spawn(cfg.CharacterTank, 110, 100)
	p := a.player(imp)

	p.PlayAction(attackOn(cfg.ActionImpBaseAttack, 5, networkID(t, tank), false))

	info, ok := p.GetActiveActionInfo()
	if !ok || info.ActionType != cfg.ActionImpBaseAttack {
		t.Fatalf("active = %v, %v; want ImpBaseAttack", info.ActionType, ok)
	}
	net := netAction(imp)
	if net.Seq != 1 || !net.Active || net.Cancelled {
		t.Errorf("net = %+v, want Seq 1 active not cancelled", *net)
	}
}

func TestQueuedActionWaitsForHead(t *testing.T) {
	a := newTestArena(t)
	imp := a.spawn(cfg.CharacterImp, 100, 100)
	tank := a.spawn(cfg.CharacterTank, 110, 100)
	p := a.player(imp)
	id := networkID(t, tank)

	p.PlayAction(attackOn(cfg.ActionImpBaseAttack, 5, id, false))
	p.PlayAction(attackOn(cfg.ActionImpBaseAttack, 5, id, true))

	if got := len(components.ActionQueue.Get(imp).Queue); got != 2 {
		t.Fatalf("queue length = %d, want 2", got)
	}
	if got := netAction(imp).Seq; got != 1 {
		t.Errorf("Seq = %d, queued action must not publish", got)
	}
}

func TestNonQueuedSupersedes(t *testing.T) {
	a := newTestArena(t)
	imp := a.spawn(cfg.CharacterImp, 100, 100)
	tank := a.spawn(cfg.CharacterTank, 110, 100)
	p := a.player(imp)
	id := networkID(t, tank)

	p.PlayAction(&messages.ActionRequestData{ActionType: cfg.ActionGeneralChase, Amount: 30, TargetIDs: []esync.NetworkId{id}})
	p.PlayAction(attackOn(cfg.ActionImpBaseAttack, 5, id, true))
	p.PlayAction(attackOn(cfg.ActionImpBaseAttack, 5, id, false))

	q := components.ActionQueue.Get(imp)
	if len(q.Queue) != 1 || q.Queue[0].ActionType != cfg.ActionImpBaseAttack {
		t.Fatalf("queue = %+v, want only the new attack", q.Queue)
	}
	net := netAction(imp)
	// start chase, clear, start attack
	if net.Seq != 3 || !net.Active || !net.Cancelled {
		t.Errorf("net = %+v, want Seq 3 active and cancelled", *net)
	}
	if net.Interrupted != cfg.ActionGeneralChase {
		t.Errorf("interrupted %s, want the chase", net.Interrupted)
	}

	// Observers never saw the attack, so the chase stays the interrupted one.
	p.ClearActions()
	if net.Interrupted != cfg.ActionGeneralChase {
		t.Errorf("second clear reported %s, want the chase", net.Interrupted)
	}

	a.tick(1)
	if q.Interrupted {
		t.Error("Interrupted must reset after the executor tick")
	}
	p.PlayAction(attackOn(cfg.ActionImpBaseAttack, 5, id, false))
	if net.Cancelled || net.Interrupted != cfg.ActionNone {
		t.Errorf("net = %+v, want a clean start", *net)
	}
}

func TestClearActions(t *testing.T) {
	a := newTestArena(t)
	imp := a.spawn(cfg.CharacterImp, 100, 100)
	tank := a.spawn(cfg.CharacterTank, 110, 100)
	p := a.player(imp)

	p.ClearActions()
	if got := netAction(imp).Seq; got != 0 {
		t.Errorf("clearing an empty queue published Seq %d", got)
	}

	p.PlayAction(attackOn(cfg.ActionImpBaseAttack, 5, networkID(t, tank), false))
	p.ClearActions()

	if _, ok := p.GetActiveActionInfo(); ok {
		t.Error("still busy after ClearActions")
	}
	net := netAction(imp)
	if net.Seq != 2 || net.Active || !net.Cancelled {
		t.Errorf("net = %+v, want Seq 2 inactive cancelled", *net)
	}
	if net.Interrupted != cfg.ActionImpBaseAttack {
		t.Errorf("interrupted %s, want the attack", net.Interrupted)
	}
}

func TestMeleeDamagesAtExecTime(t *testing.T) {
	a := newTestArena(t)
	imp := a.spawn(cfg.CharacterImp, 100, 100)
	tank := a.spawn(cfg.CharacterTank, 110, 100)
	p := a.player(imp)
	desc := cfg.Actions.MustGet(cfg.ActionImpBaseAttack)
	start := health(tank)

	p.PlayAction(attackOn(cfg.ActionImpBaseAttack, 5, networkID(t, tank), false))

	for range desc.ExecTicks() - 1 {
		advanceActions(a.world, Catalog)
	}
	if got := health(tank); got != start {
		t.Fatalf("damage applied early: health %d", got)
	}
	advanceActions(a.world, Catalog)
	if got := health(tank); got != start-5 {
		t.Fatalf("health = %d, want %d", got, start-5)
	}

	for range desc.DurationTicks() - desc.ExecTicks() {
		advanceActions(a.world, Catalog)
	}
	if _, ok := p.GetActiveActionInfo(); ok {
		t.Fatal("action still active after its duration")
	}
	net := netAction(imp)
	if net.Active || net.Cancelled {
		t.Errorf("net = %+v, want completed", *net)
	}
	if got := health(tank); got != start-5 {
		t.Errorf("damage applied twice: health %d", got)
	}
}

func TestQueuedActionStartsAfterCompletion(t *testing.T) {
	a := newTestArena(t)
	imp := a.spawn(cfg.CharacterImp, 100, 100)
	tank := a.spawn(cfg.CharacterTank, 110, 100)
	p := a.player(imp)
	id := networkID(t, tank)
	desc := cfg.Actions.MustGet(cfg.ActionImpBaseAttack)

	p.PlayAction(attackOn(cfg.ActionImpBaseAttack, 5, id, false))
	p.PlayAction(attackOn(cfg.ActionImpBaseAttack, 7, id, true))

	for range desc.DurationTicks() {
		advanceActions(a.world, Catalog)
	}
	info, ok := p.GetActiveActionInfo()
	if !ok || info.Amount != 7 {
		t.Fatalf("active = %+v, %v; want the queued attack", info, ok)
	}
	net := netAction(imp)
	if net.Seq != 2 || !net.Active || net.Cancelled {
		t.Errorf("net = %+v, want Seq 2 active not cancelled", *net)
	}
}

func TestChaseStopsInsideRange(t *testing.T) {
	a := newTestArena(t)
	imp := a.spawn(cfg.CharacterImp, 100, 100)
	tank := a.spawn(cfg.CharacterTank, 200, 100)
	p := a.player(imp)

	p.PlayAction(&messages.ActionRequestData{
		ActionType: cfg.ActionGeneralChase,
		Amount:     30,
		TargetIDs:  []esync.NetworkId{networkID(t, tank)},
	})

	ticks := 0
	for ; ticks < 200; ticks++ {
		if _, busy := p.GetActiveActionInfo(); !busy {
			break
		}
		advanceActions(a.world, Catalog)
	}
	// Imp speed is one pixel per tick.
	if ticks < 65 || ticks > 75 {
		t.Errorf("chase took %d ticks, want about 70", ticks)
	}
	me := components.Object.Get(imp).Midpoint()
	foe := components.Object.Get(tank).Midpoint()
	if d := gamemath.DistanceSq(me, foe); d > 30*30 || d < 28*28 {
		t.Errorf("stopped at distance² %.1f, want just inside 30", d)
	}
	if got := components.Character.Get(imp).Direction; got != 1 {
		t.Errorf("Direction = %v, want facing right", got)
	}
}

func TestChaseEndsWhenTargetGone(t *testing.T) {
	a := newTestArena(t)
	imp := a.spawn(cfg.CharacterImp, 100, 100)
	tank := a.spawn(cfg.CharacterTank, 300, 100)
	p := a.player(imp)

	p.PlayAction(&messages.ActionRequestData{
		ActionType: cfg.ActionGeneralChase,
		Amount:     30,
		TargetIDs:  []esync.NetworkId{networkID(t, tank)},
	})
	advanceActions(a.world, Catalog)
	components.Health.Get(tank).Current = 0
	advanceActions(a.world, Catalog)

	if _, busy := p.GetActiveActionInfo(); busy {
		t.Error("chase kept running after the target died")
	}
}

func TestDeadCharacterQueueIsCleared(t *testing.T) {
	a := newTestArena(t)
	imp := a.spawn(cfg.CharacterImp, 100, 100)
	tank := a.spawn(cfg.CharacterTank, 110, 100)
	p := a.player(imp)

	p.PlayAction(attackOn(cfg.ActionImpBaseAttack, 5, networkID(t, tank), false))
	components.Health.Get(imp).Current = 0
	advanceActions(a.world, Catalog)

	if _, busy := p.GetActiveActionInfo(); busy {
		t.Error("dead character still acting")
	}
	if net := netAction(imp); !net.Cancelled || net.Active {
		t.Errorf("net = %+v, want cancelled", *net)
	}
}

func TestMissingCatalogEntryDropsAction(t *testing.T) {
	a := newTestArena(t)
	imp := a.spawn(cfg.CharacterImp, 100, 100)
	tank := a.spawn(cfg.CharacterTank, 110, 100)
	empty := cfg.NewActionCatalog()
	p := NewActionPlayer(a.world, imp, empty, zap.NewNop())

	p.PlayAction(attackOn(cfg.ActionImpBaseAttack, 5, networkID(t, tank), false))
	advanceActions(a.world, empty)

	if _, busy := p.GetActiveActionInfo(); busy {
		t.Error("unknown action stalled the queue")
	}
}

func TestReleaseChargeScalesDamage(t *testing.T) {
	a := newTestArena(t)
	archer := a.spawn(cfg.CharacterArcher, 100, 100)
	imp := a.spawn(cfg.CharacterImp, 200, 100)
	p := a.player(archer)
	start := health(imp)

	p.PlayAction(attackOn(cfg.ActionArcherVolley, 18, networkID(t, imp), false))
	advanceActions(a.world, Catalog)
	p.ReleaseCharge(0.5)

	if got := health(imp); got != start-9 {
		t.Fatalf("health = %d, want %d", got, start-9)
	}
	net := netAction(archer)
	if !net.ChargeReleased || net.ChargePercent != 0.5 {
		t.Errorf("net = %+v, want released at 0.5", *net)
	}

	p.ReleaseCharge(1)
	desc := cfg.Actions.MustGet(cfg.ActionArcherVolley)
	for range desc.ExecTicks() {
		advanceActions(a.world, Catalog)
	}
	if got := health(imp); got != start-9 {
		t.Errorf("charge hit twice: health %d", got)
	}
}

func TestReleaseChargeClampsAndIgnoresOtherLogic(t *testing.T) {
	a := newTestArena(t)
	tank := a.spawn(cfg.CharacterTank, 100, 100)
	imp := a.spawn(cfg.CharacterImp, 110, 100)
	p := a.player(tank)

	p.PlayAction(attackOn(cfg.ActionTankBaseAttack, 12, networkID(t, imp), false))
	p.ReleaseCharge(0.5)
	if netAction(tank).ChargeReleased {
		t.Fatal("melee attack accepted a charge release")
	}

	p.PlayAction(&messages.ActionRequestData{ActionType: cfg.ActionShieldUp})
	p.ReleaseCharge(3)
	net := netAction(tank)
	if !net.ChargeReleased || net.ChargePercent != 1 {
		t.Errorf("net = %+v, want released at 1", *net)
	}
}
