package ai

import (
	"errors"
	"testing"

	"github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/automoto/doomerang-arena/shared/messages"
	"github.com/leap-fish/necs/esync"
)

type fakeCharacter struct {
	id  esync.NetworkId
	pos gamemath.Vector
}

func (c *fakeCharacter) NetworkID() esync.NetworkId { return c.id }
func (c *fakeCharacter) Position() gamemath.Vector  { return c.pos }

type fakeBrain struct {
	class    *config.CharacterClass
	self     *fakeCharacter
	enemies  []Character
	detected []Character
}

func (b *fakeBrain) CharacterData() *config.CharacterClass { return b.class }
func (b *fakeBrain) Self() Character                       { return b.self }
func (b *fakeBrain) HatedEnemies() []Character             { return b.enemies }
func (b *fakeBrain) DetectFoes()                           { b.enemies = append(b.enemies, b.detected...) }

func (b *fakeBrain) IsAppropriateFoe(c Character) bool {
	if c == nil {
		return false
	}
	for _, e := range b.enemies {
		if e == c {
			return true
		}
	}
	return false
}

type playCall struct {
	clear   bool
	request messages.ActionRequestData
}

type fakePlayer struct {
	calls  []playCall
	active *messages.ActionRequestData
}

func (p *fakePlayer) PlayAction(data *messages.ActionRequestData) {
	p.calls = append(p.calls, playCall{request: *data})
}

func (p *fakePlayer) ClearActions() {
	p.calls = append(p.calls, playCall{clear: true})
}

func (p *fakePlayer) GetActiveActionInfo() (messages.ActionRequestData, bool) {
	if p.active == nil {
		return messages.ActionRequestData{}, false
	}
	return *p.active, true
}

func (p *fakePlayer) requests() []messages.ActionRequestData {
	var out []messages.ActionRequestData
	for _, c := range p.calls {
		if !c.clear {
			out = append(out, c.request)
		}
	}
	return out
}

func (p *fakePlayer) clears() int {
	n := 0
	for _, c := range p.calls {
		if c.clear {
			n++
		}
	}
	return n
}

// testCatalog has a melee attack with range 5, a follow-up and a tertiary.
func testCatalog() *config.ActionCatalog {
	return config.NewActionCatalog(
		config.ActionDescription{Type: config.ActionImpBaseAttack, Logic: config.LogicMelee, Range: 5, Amount: 7},
		config.ActionDescription{Type: config.ActionImpBossBaseAttack, Logic: config.LogicMelee, Range: 5, Amount: 20},
		config.ActionDescription{Type: config.ActionImpBossSecondSwing, Logic: config.LogicMelee, Range: 5, Amount: 14},
		config.ActionDescription{Type: config.ActionImpBossTrample, Logic: config.LogicTrample, Range: 50, Amount: 25},
		config.ActionDescription{Type: config.ActionGeneralChase, Logic: config.LogicChase},
	)
}

func impClass() *config.CharacterClass {
	return &config.CharacterClass{Type: config.CharacterImp, Faction: config.FactionMonsters, Skill1: config.ActionImpBaseAttack}
}

func bossClass() *config.CharacterClass {
	return &config.CharacterClass{
		Type: config.CharacterImpBoss, Faction: config.FactionMonsters,
		Skill1: config.ActionImpBossBaseAttack, Skill2: config.ActionImpBossSecondSwing, Skill3: config.ActionImpBossTrample,
	}
}

func newAttack(class *config.CharacterClass, enemies ...Character) (*AttackState, *fakeBrain, *fakePlayer) {
	brain := &fakeBrain{class: class, self: &fakeCharacter{id: 1}, enemies: enemies}
	player := &fakePlayer{}
	s := NewAttackState(brain, player, testCatalog(), nil)
	s.Tuning = &config.AIConfigData{DualStrikeArchetypes: map[config.CharacterType]bool{config.CharacterImpBoss: true}}
	s.Initialize()
	return s, brain, player
}

func TestAttackOutOfRangeChasesThenAttacks(t *testing.T) {
	foe := &fakeCharacter{id: 7, pos: gamemath.Vector{X: 10}}
	s, _, player := newAttack(impClass(), foe)

	s.Update()

	got := player.requests()
	if len(got) != 2 {
		t.Fatalf("expected chase and attack, got %+v", got)
	}
	chase, attack := got[0], got[1]
	if chase.ActionType != config.ActionGeneralChase || chase.Amount != 5 || chase.ShouldQueue {
		t.Errorf("expected unqueued chase with stopping distance 5, got %+v", chase)
	}
	if attack.ActionType != config.ActionImpBaseAttack || !attack.ShouldQueue || attack.Amount != 7 {
		t.Errorf("expected queued attack for 7, got %+v", attack)
	}
	for _, r := range got {
		if !r.Targets(7) || len(r.TargetIDs) != 1 {
			t.Errorf("request %s should target foe 7 only, got %v", r.ActionType, r.TargetIDs)
		}
	}
}

func TestAttackInRangeAttacksOnly(t *testing.T) {
	foe := &fakeCharacter{id: 7, pos: gamemath.Vector{X: 3}}
	s, _, player := newAttack(impClass(), foe)

	s.Update()

	got := player.requests()
	if len(got) != 1 {
		t.Fatalf("expected exactly one request, got %+v", got)
	}
	if got[0].ActionType != config.ActionImpBaseAttack || got[0].ShouldQueue || !got[0].Targets(7) {
		t.Errorf("expected unqueued attack on 7, got %+v", got[0])
	}
}

func TestAttackRangeBoundaryIsStrict(t *testing.T) {
	cases := []struct {
		name   string
		x      float64
		attack bool
	}{
		{"inside", 4.999, true},
		{"exactly_at_range", 5, false},
		{"outside", 5.001, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			foe := &fakeCharacter{id: 7, pos: gamemath.Vector{X: c.x}}
			s, _, player := newAttack(impClass(), foe)
			s.Update()
			first := player.requests()[0]
			if got := first.ActionType != config.ActionGeneralChase; got != c.attack {
				t.Fatalf("expected attack=%v, first request was %s", c.attack, first.ActionType)
			}
		})
	}
}

func TestNoCandidates(t *testing.T) {
	s, _, player := newAttack(impClass())

	if s.IsEligible() {
		t.Fatalf("should not be eligible without hostiles")
	}
	s.Update()
	if len(player.requests()) != 0 {
		t.Fatalf("expected no requests, got %+v", player.requests())
	}
}

func TestIsEligibleHasNoSideEffects(t *testing.T) {
	foe := &fakeCharacter{id: 7, pos: gamemath.Vector{X: 3}}
	s, _, player := newAttack(impClass(), foe)

	for i := 0; i < 3; i++ {
		if !s.IsEligible() {
			t.Fatalf("should be eligible with a hostile around")
		}
	}
	if s.Foe() != nil || len(player.calls) != 0 {
		t.Fatalf("IsEligible changed state: foe=%v calls=%d", s.Foe(), len(player.calls))
	}
}

func TestChoosesNearestFoe(t *testing.T) {
	far := &fakeCharacter{id: 2, pos: gamemath.Vector{X: 30, Y: 30}}
	near := &fakeCharacter{id: 3, pos: gamemath.Vector{X: -4, Y: 2}}
	mid := &fakeCharacter{id: 4, pos: gamemath.Vector{X: 0, Y: 10}}
	s, _, _ := newAttack(impClass(), far, near, mid)

	s.Update()
	if s.Foe() != near {
		t.Fatalf("expected nearest foe 3, got %v", s.Foe().NetworkID())
	}
}

func TestEquidistantFoesFirstWins(t *testing.T) {
	a := &fakeCharacter{id: 2, pos: gamemath.Vector{X: 8}}
	b := &fakeCharacter{id: 3, pos: gamemath.Vector{X: -8}}
	c := &fakeCharacter{id: 4, pos: gamemath.Vector{Y: 8}}

	for i := 0; i < 5; i++ {
		s, _, _ := newAttack(impClass(), a, b, c)
		s.Update()
		if s.Foe() != a {
			t.Fatalf("run %d: expected first equidistant foe, got %v", i, s.Foe().NetworkID())
		}
	}
}

func TestReselectClearsBeforeIssuing(t *testing.T) {
	first := &fakeCharacter{id: 2, pos: gamemath.Vector{X: 3}}
	second := &fakeCharacter{id: 3, pos: gamemath.Vector{X: 20}}
	s, brain, player := newAttack(impClass(), first, second)

	s.Update()
	if len(player.calls) == 0 || !player.calls[0].clear {
		t.Fatalf("first pick should clear before issuing, calls %+v", player.calls)
	}

	// The foe dies; the next pick must clear again before the new plan.
	brain.enemies = []Character{second}
	player.calls = nil
	s.Update()

	if s.Foe() != second {
		t.Fatalf("expected re-pick of foe 3")
	}
	if len(player.calls) != 3 || !player.calls[0].clear {
		t.Fatalf("expected clear, chase, attack; got %+v", player.calls)
	}
}

func TestKeepsFoeWithoutClearing(t *testing.T) {
	foe := &fakeCharacter{id: 7, pos: gamemath.Vector{X: 3}}
	s, _, player := newAttack(impClass(), foe)

	s.Update()
	s.Update()
	if player.clears() != 1 {
		t.Fatalf("an appropriate foe should not be re-picked, %d clears", player.clears())
	}
}

func TestAlreadyBusyIssuesNothing(t *testing.T) {
	cases := []struct {
		name   string
		active config.ActionType
		target esync.NetworkId
		idle   bool
	}{
		{"chasing_foe", config.ActionGeneralChase, 7, true},
		{"attacking_foe", config.ActionImpBossBaseAttack, 7, true},
		{"second_swing_on_foe", config.ActionImpBossSecondSwing, 7, true},
		{"chasing_someone_else", config.ActionGeneralChase, 9, false},
		{"stunned", config.ActionStun, 7, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			foe := &fakeCharacter{id: 7, pos: gamemath.Vector{X: 3}}
			s, _, player := newAttack(bossClass(), foe)
			s.Update()

			player.calls = nil
			player.active = &messages.ActionRequestData{ActionType: c.active, TargetIDs: []esync.NetworkId{c.target}}
			s.Update()

			if got := len(player.requests()) == 0; got != c.idle {
				t.Fatalf("expected idle=%v, got requests %+v", c.idle, player.requests())
			}
		})
	}
}

func TestDualStrikeQueuesSecondSwing(t *testing.T) {
	for _, tc := range []struct {
		name string
		x    float64
		want []config.ActionType
	}{
		{"in_range", 3, []config.ActionType{config.ActionImpBossBaseAttack, config.ActionImpBossSecondSwing}},
		{"out_of_range", 10, []config.ActionType{config.ActionGeneralChase, config.ActionImpBossBaseAttack, config.ActionImpBossSecondSwing}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			foe := &fakeCharacter{id: 7, pos: gamemath.Vector{X: tc.x}}
			s, _, player := newAttack(bossClass(), foe)
			s.Update()

			got := player.requests()
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %+v", tc.want, got)
			}
			for i, want := range tc.want {
				if got[i].ActionType != want {
					t.Errorf("request %d: expected %s, got %s", i, want, got[i].ActionType)
				}
			}
			extra := got[len(got)-1]
			if !extra.ShouldQueue || extra.Amount != 14 || !extra.Targets(7) {
				t.Errorf("second swing should be queued on the foe with its own amount, got %+v", extra)
			}
		})
	}
}

func TestDualStrikeWithoutSecondSkill(t *testing.T) {
	class := bossClass()
	class.Skill2 = config.ActionNone
	class.Skill3 = config.ActionNone
	foe := &fakeCharacter{id: 7, pos: gamemath.Vector{X: 3}}
	s, _, player := newAttack(class, foe)

	s.Update()
	if n := len(player.requests()); n != 1 {
		t.Fatalf("expected only the attack, got %d requests", n)
	}
}

func TestNonDualStrikeIgnoresSecondSkill(t *testing.T) {
	class := impClass()
	class.Skill2 = config.ActionImpBossSecondSwing
	foe := &fakeCharacter{id: 7, pos: gamemath.Vector{X: 3}}
	s, _, player := newAttack(class, foe)

	s.Update()
	if n := len(player.requests()); n != 1 {
		t.Fatalf("expected only the attack, got %d requests", n)
	}
}

func TestChainTertiary(t *testing.T) {
	foe := &fakeCharacter{id: 7, pos: gamemath.Vector{X: 3}}
	s, _, player := newAttack(bossClass(), foe)
	s.Tuning.ChainTertiary = true

	s.Update()
	got := player.requests()
	if len(got) != 3 || got[2].ActionType != config.ActionImpBossTrample || !got[2].ShouldQueue || got[2].Amount != 25 {
		t.Fatalf("expected trample chained after the second swing, got %+v", got)
	}
}

func TestInitializeResolvesAttacks(t *testing.T) {
	s, _, _ := newAttack(bossClass())
	want := []config.ActionType{config.ActionImpBossBaseAttack, config.ActionImpBossSecondSwing, config.ActionImpBossTrample}
	got := s.AvailableAttacks()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	imp, _, _ := newAttack(impClass())
	if got := imp.AvailableAttacks(); len(got) != 1 || got[0] != config.ActionImpBaseAttack {
		t.Fatalf("imp should only have its base attack, got %v", got)
	}
}

func TestInitializeForgetsFoe(t *testing.T) {
	foe := &fakeCharacter{id: 7, pos: gamemath.Vector{X: 3}}
	s, _, _ := newAttack(impClass(), foe)
	s.Update()
	s.Initialize()
	if s.Foe() != nil {
		t.Fatalf("Initialize should clear the current foe")
	}
}

func TestMissingCatalogEntryPanics(t *testing.T) {
	for _, tc := range []struct {
		name  string
		class *config.CharacterClass
	}{
		{"primary", &config.CharacterClass{Type: config.CharacterTank, Skill1: config.ActionTankBaseAttack}},
		{"second_swing", &config.CharacterClass{Type: config.CharacterImpBoss, Skill1: config.ActionImpBossBaseAttack, Skill2: config.ActionMageFireball}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			foe := &fakeCharacter{id: 7, pos: gamemath.Vector{X: 3}}
			s, _, _ := newAttack(tc.class, foe)

			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, config.ErrUnknownAction) {
					t.Fatalf("expected ErrUnknownAction panic, got %v", r)
				}
			}()
			s.Update()
		})
	}
}

func TestControllerSwitchesStates(t *testing.T) {
	foe := &fakeCharacter{id: 7, pos: gamemath.Vector{X: 3}}
	brain := &fakeBrain{class: impClass(), self: &fakeCharacter{id: 1}, detected: []Character{foe}}
	player := &fakePlayer{}
	attack := NewAttackState(brain, player, testCatalog(), nil)
	idle := NewIdleState(brain)
	c := NewController(attack, idle)

	c.Update()
	if c.Current() != State(idle) {
		t.Fatalf("expected idle with nothing hated")
	}
	if len(brain.enemies) != 1 {
		t.Fatalf("idle should have detected the foe")
	}

	c.Update()
	if c.Current() != State(attack) {
		t.Fatalf("expected attack once a foe is hated")
	}
	if len(player.requests()) != 1 {
		t.Fatalf("attack should run on the switching tick, got %+v", player.requests())
	}

	brain.enemies = nil
	brain.detected = nil
	c.Update() // attack still holds its old foe; it drops it this tick
	c.Update()
	if c.Current() != State(idle) {
		t.Fatalf("expected idle after the foe is gone, got %T", c.Current())
	}
}
