package ai

import (
	"fmt"
	"math"
	"slices"

	"github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/automoto/doomerang-arena/shared/messages"
	"github.com/leap-fish/necs/esync"
	"go.uber.org/zap"
)

// AttackState picks the nearest foe and either attacks it or chases it
// with the attack queued behind the chase.
type AttackState struct {
	brain   Brain
	player  ActionPlayer
	catalog Catalog
	log     *zap.Logger

	// Tuning defaults to config.AI.
	Tuning *config.AIConfigData

	foe       Character
	curAttack config.ActionType
	available []config.ActionType
}

// NewAttackState creates the attack state for the NPC behind brain.
func NewAttackState(brain Brain, player ActionPlayer, catalog Catalog, log *zap.Logger) *AttackState {
	if log == nil {
		log = zap.NewNop()
	}
	return &AttackState{
		brain:   brain,
		player:  player,
		catalog: catalog,
		log:     log,
		Tuning:  &config.AI,
	}
}

// Foe returns the current target, or nil.
func (s *AttackState) Foe() Character {
	return s.foe
}

// AvailableAttacks returns the skills this state treats as attacks.
func (s *AttackState) AvailableAttacks() []config.ActionType {
	return s.available
}

func (s *AttackState) IsEligible() bool {
	return s.foe != nil || s.chooseFoe() != nil
}

func (s *AttackState) Initialize() {
	data := s.brain.CharacterData()
	s.curAttack = data.Skill1
	s.available = []config.ActionType{data.Skill1}
	if data.Skill2 != config.ActionNone {
		s.available = append(s.available, data.Skill2)
	}
	if data.Skill3 != config.ActionNone {
		s.available = append(s.available, data.Skill3)
	}
	s.foe = nil
}

func (s *AttackState) Update() {
	if !s.brain.IsAppropriateFoe(s.foe) {
		s.foe = s.chooseFoe()
		// New target, new plan.
		s.player.ClearActions()
		if s.foe != nil {
			s.log.Debug("foe selected",
				zap.Stringer("npc", s.brain.CharacterData().Type),
				zap.Uint("foe", uint(s.foe.NetworkID())))
		}
	}
	if s.foe == nil {
		return
	}

	if s.busyWithFoe() {
		return
	}

	attack := s.describe(s.curAttack)
	foeID := s.foe.NetworkID()
	distSq := gamemath.DistanceSq(s.brain.Self().Position(), s.foe.Position())

	if distSq < attack.Range*attack.Range {
		s.player.PlayAction(&messages.ActionRequestData{
			ActionType:  s.curAttack,
			Amount:      attack.Amount,
			ShouldQueue: false,
			TargetIDs:   []esync.NetworkId{foeID},
		})
	} else {
		s.player.PlayAction(&messages.ActionRequestData{
			ActionType:  config.ActionGeneralChase,
			Amount:      attack.Range,
			ShouldQueue: false,
			TargetIDs:   []esync.NetworkId{foeID},
		})
		s.player.PlayAction(&messages.ActionRequestData{
			ActionType:  s.curAttack,
			Amount:      attack.Amount,
			ShouldQueue: true,
			TargetIDs:   []esync.NetworkId{foeID},
		})
	}

	if s.Tuning != nil && s.Tuning.IsDualStrike(s.brain.CharacterData().Type) {
		s.addExtraAttacks(foeID)
	}
}

// busyWithFoe reports whether the active action is already a chase or an
// attack against the current foe.
func (s *AttackState) busyWithFoe() bool {
	info, ok := s.player.GetActiveActionInfo()
	if !ok || !info.Targets(s.foe.NetworkID()) {
		return false
	}
	return info.ActionType == config.ActionGeneralChase || slices.Contains(s.available, info.ActionType)
}

// addExtraAttacks queues the Skill2 follow-up swing, and Skill3 after it
// when chaining is enabled.
func (s *AttackState) addExtraAttacks(foeID esync.NetworkId) {
	data := s.brain.CharacterData()
	extra := []config.ActionType{data.Skill2}
	if s.Tuning.ChainTertiary {
		extra = append(extra, data.Skill3)
	}
	for _, t := range extra {
		if t == config.ActionNone {
			continue
		}
		desc := s.describe(t)
		s.log.Debug("queueing extra attack", zap.Stringer("npc", data.Type), zap.Stringer("action", t))
		s.player.PlayAction(&messages.ActionRequestData{
			ActionType:  t,
			Amount:      desc.Amount,
			ShouldQueue: true,
			TargetIDs:   []esync.NetworkId{foeID},
		})
	}
}

// chooseFoe returns the hated enemy closest to us, or nil. The first of
// several equally close enemies wins.
func (s *AttackState) chooseFoe() Character {
	me := s.brain.Self().Position()
	closest := math.MaxFloat64
	var foe Character
	for _, c := range s.brain.HatedEnemies() {
		if d := gamemath.DistanceSq(me, c.Position()); d < closest {
			closest = d
			foe = c
		}
	}
	return foe
}

// describe looks up an action this NPC is configured with. A missing entry
// means the class data and the catalog disagree.
func (s *AttackState) describe(t config.ActionType) *config.ActionDescription {
	desc, ok := s.catalog.Get(t)
	if !ok {
		panic(fmt.Errorf("%w: %s tried to play %s", config.ErrUnknownAction, s.brain.CharacterData().Type, t))
	}
	return desc
}
