package config

import (
	"errors"
	"fmt"
)

// ErrUnknownAction is returned when an ActionType has no catalog entry.
var ErrUnknownAction = errors.New("action not in catalog")

// ActionType identifies a catalog action
type ActionType int

const (
	ActionNone ActionType = iota
	ActionTankBaseAttack
	ActionArcherBaseAttack
	ActionMageBaseAttack
	ActionRogueBaseAttack
	ActionImpBaseAttack
	ActionImpBossBaseAttack
	ActionImpBossTrample
	ActionImpBossSecondSwing
	ActionGeneralChase
	ActionStun
	ActionShieldUp
	ActionArcherVolley
	ActionMageFireball
	ActionRogueStealth
	ActionTargetSelect
	ActionCount // Must be last
)

var actionTypeNames = map[ActionType]string{
	ActionNone:               "None",
	ActionTankBaseAttack:     "TankBaseAttack",
	ActionArcherBaseAttack:   "ArcherBaseAttack",
	ActionMageBaseAttack:     "MageBaseAttack",
	ActionRogueBaseAttack:    "RogueBaseAttack",
	ActionImpBaseAttack:      "ImpBaseAttack",
	ActionImpBossBaseAttack:  "ImpBossBaseAttack",
	ActionImpBossTrample:     "ImpBossTrample",
	ActionImpBossSecondSwing: "ImpBossSecondSwing",
	ActionGeneralChase:       "GeneralChase",
	ActionStun:               "Stun",
	ActionShieldUp:           "ShieldUp",
	ActionArcherVolley:       "ArcherVolley",
	ActionMageFireball:       "MageFireball",
	ActionRogueStealth:       "RogueStealth",
	ActionTargetSelect:       "TargetSelect",
}

func (t ActionType) String() string {
	if name, ok := actionTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ActionType(%d)", int(t))
}

// ParseActionType is the inverse of String; used by the YAML catalog.
func ParseActionType(name string) (ActionType, error) {
	for t, n := range actionTypeNames {
		if n == name {
			return t, nil
		}
	}
	return ActionNone, fmt.Errorf("%w: unknown action type %q", ErrUnknownAction, name)
}

// ActionLogic is the behaviour kind of an action. Every value has exactly one
// visual playback variant in systems/actionfx.
type ActionLogic int

const (
	LogicMelee ActionLogic = iota
	LogicRangedFXTargeted
	LogicTrample
	LogicAoE
	LogicStunned
	LogicTarget
	LogicChargedShield
	LogicChargedLaunchProjectile
	LogicStealthMode
	LogicChase
	LogicCount // Must be last
)

var actionLogicNames = map[ActionLogic]string{
	LogicMelee:                   "Melee",
	LogicRangedFXTargeted:        "RangedFXTargeted",
	LogicTrample:                 "Trample",
	LogicAoE:                     "AoE",
	LogicStunned:                 "Stunned",
	LogicTarget:                  "Target",
	LogicChargedShield:           "ChargedShield",
	LogicChargedLaunchProjectile: "ChargedLaunchProjectile",
	LogicStealthMode:             "StealthMode",
	LogicChase:                   "Chase",
}

func (l ActionLogic) String() string {
	if name, ok := actionLogicNames[l]; ok {
		return name
	}
	return fmt.Sprintf("ActionLogic(%d)", int(l))
}

// ParseActionLogic is the inverse of String.
func ParseActionLogic(name string) (ActionLogic, error) {
	for l, n := range actionLogicNames {
		if n == name {
			return l, nil
		}
	}
	return LogicCount, fmt.Errorf("unknown action logic %q", name)
}

// Damaging reports whether the executor applies Amount as damage to the
// primary target when the action executes.
func (l ActionLogic) Damaging() bool {
	switch l {
	case LogicMelee, LogicRangedFXTargeted, LogicTrample, LogicAoE, LogicChargedLaunchProjectile:
		return true
	}
	return false
}

// ActionDescription is the static data for one action
type ActionDescription struct {
	Type  ActionType
	Name  string
	Logic ActionLogic

	// Gameplay
	Range           float64 // Pixels; chase stops inside this distance
	Amount          float64 // Damage, heal or speed depending on Logic
	ExecTimeSeconds float64 // Time from start until the action takes effect
	DurationSeconds float64 // 0 = not expirable, the playback decides when to stop

	// Cosmetics
	Anim            string   // Animator trigger fired on start
	Anim2           string   // Secondary trigger (end, release or recovery)
	ReactAnim       string   // Trigger fired on targets when hit
	Spawns          []string // FX prefab names; blank entries are skipped
	ProjectileSpeed float64  // Pixels per second for projectile graphics
}

// ExecTicks converts ExecTimeSeconds to simulation ticks.
func (d *ActionDescription) ExecTicks() int {
	return SecondsToTicks(d.ExecTimeSeconds)
}

// DurationTicks converts DurationSeconds to simulation ticks.
func (d *ActionDescription) DurationTicks() int {
	return SecondsToTicks(d.DurationSeconds)
}

// ActionCatalog maps action types to their descriptions
type ActionCatalog struct {
	actions map[ActionType]*ActionDescription
}

// NewActionCatalog builds a catalog from descriptions. Later duplicates win.
func NewActionCatalog(descs ...ActionDescription) *ActionCatalog {
	c := &ActionCatalog{actions: make(map[ActionType]*ActionDescription, len(descs))}
	for i := range descs {
		d := descs[i]
		c.actions[d.Type] = &d
	}
	return c
}

// Get returns the description for t, or false if it is absent.
func (c *ActionCatalog) Get(t ActionType) (*ActionDescription, bool) {
	if c == nil {
		return nil, false
	}
	d, ok := c.actions[t]
	return d, ok
}

// MustGet is Get for callers that treat a missing entry as a configuration
// error.
func (c *ActionCatalog) MustGet(t ActionType) *ActionDescription {
	d, ok := c.Get(t)
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrUnknownAction, t))
	}
	return d
}

// Each visits every description in ActionType order.
func (c *ActionCatalog) Each(fn func(*ActionDescription)) {
	if c == nil {
		return
	}
	for t := ActionNone; t < ActionCount; t++ {
		if d, ok := c.actions[t]; ok {
			fn(d)
		}
	}
}

// Count returns the number of loaded actions.
func (c *ActionCatalog) Count() int {
	if c == nil {
		return 0
	}
	return len(c.actions)
}

// Actions is the built-in catalog. LoadCatalog replaces it from YAML.
var Actions *ActionCatalog

func init() {
	Actions = NewActionCatalog(
		ActionDescription{
			Type: ActionTankBaseAttack, Name: "Hammer Swing", Logic: LogicMelee,
			Range: 40, Amount: 12, ExecTimeSeconds: 0.3, DurationSeconds: 0.6,
			Anim: "Attack1", ReactAnim: HitReact, Spawns: []string{"impact_spark"},
		},
		ActionDescription{
			Type: ActionArcherBaseAttack, Name: "Arrow", Logic: LogicRangedFXTargeted,
			Range: 220, Amount: 8, ExecTimeSeconds: 0.25, DurationSeconds: 0,
			Anim: "Attack1", ReactAnim: HitReact, Spawns: []string{"arrow", "impact_spark"},
			ProjectileSpeed: 480,
		},
		ActionDescription{
			Type: ActionMageBaseAttack, Name: "Magic Bolt", Logic: LogicRangedFXTargeted,
			Range: 180, Amount: 10, ExecTimeSeconds: 0.35, DurationSeconds: 0,
			Anim: "Attack1", ReactAnim: HitReact, Spawns: []string{"bolt", "impact_spark"},
			ProjectileSpeed: 360,
		},
		ActionDescription{
			Type: ActionRogueBaseAttack, Name: "Dagger", Logic: LogicMelee,
			Range: 32, Amount: 9, ExecTimeSeconds: 0.15, DurationSeconds: 0.4,
			Anim: "Attack1", ReactAnim: HitReact, Spawns: []string{"", "slash"},
		},
		ActionDescription{
			Type: ActionImpBaseAttack, Name: "Claw", Logic: LogicMelee,
			Range: 30, Amount: 5, ExecTimeSeconds: 0.25, DurationSeconds: 0.5,
			Anim: "Attack1", ReactAnim: HitReact,
		},
		ActionDescription{
			Type: ActionImpBossBaseAttack, Name: "Hammer Slam", Logic: LogicMelee,
			Range: 56, Amount: 20, ExecTimeSeconds: 0.5, DurationSeconds: 1.0,
			Anim: "Attack1", ReactAnim: HitReact, Spawns: []string{"impact_spark"},
		},
		ActionDescription{
			Type: ActionImpBossSecondSwing, Name: "Backhand", Logic: LogicMelee,
			Range: 56, Amount: 14, ExecTimeSeconds: 0.35, DurationSeconds: 0.8,
			Anim: "Attack2", ReactAnim: HitReact, Spawns: []string{"impact_spark"},
		},
		ActionDescription{
			Type: ActionImpBossTrample, Name: "Trample", Logic: LogicTrample,
			Range: 200, Amount: 25, ExecTimeSeconds: 0.4, DurationSeconds: 1.2,
			Anim: "Trample", Anim2: "TrampleEnd", ReactAnim: HitReact, Spawns: []string{"dust_trail"},
		},
		ActionDescription{
			Type: ActionGeneralChase, Name: "Chase", Logic: LogicChase,
			Range: 0, Amount: 0,
		},
		ActionDescription{
			Type: ActionStun, Name: "Stunned", Logic: LogicStunned,
			DurationSeconds: 2.0, Anim: "Stunned", Anim2: "StunEnd", Spawns: []string{"stun_stars"},
		},
		ActionDescription{
			Type: ActionShieldUp, Name: "Shield Up", Logic: LogicChargedShield,
			ExecTimeSeconds: 1.0, DurationSeconds: 4.0,
			Anim: "ChargeShield", Anim2: "ShieldRelease", ReactAnim: Stagger,
			Spawns: []string{"charge_glow", "shield_bubble"},
		},
		ActionDescription{
			Type: ActionArcherVolley, Name: "Volley", Logic: LogicChargedLaunchProjectile,
			Range: 260, Amount: 18, ExecTimeSeconds: 1.2, DurationSeconds: 2.0,
			Anim: "ChargeBow", Anim2: "ReleaseBow", ReactAnim: Stagger,
			Spawns: []string{"charge_glow", "launch_flash"},
		},
		ActionDescription{
			Type: ActionMageFireball, Name: "Fire Field", Logic: LogicAoE,
			Range: 160, Amount: 15, ExecTimeSeconds: 0.5, DurationSeconds: 3.0,
			Anim: "Cast", Spawns: []string{"fire_field", "smoke_puff"},
		},
		ActionDescription{
			Type: ActionRogueStealth, Name: "Stealth", Logic: LogicStealthMode,
			ExecTimeSeconds: 0.5, DurationSeconds: 6.0,
			Anim: "Stealth", Anim2: "Unstealth", Spawns: []string{"smoke_puff"},
		},
		ActionDescription{
			Type: ActionTargetSelect, Name: "Target", Logic: LogicTarget,
			Spawns: []string{"target_reticle"},
		},
	)
}
