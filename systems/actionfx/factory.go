package actionfx

import (
	"errors"
	"fmt"

	"github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/messages"
	"github.com/automoto/doomerang-arena/systems/factory"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// ErrUnknownLogic means an action's logic has no playback variant. The
// catalog and the variant set are out of step.
var ErrUnknownLogic = errors.New("no fx variant for action logic")

// construct maps a logic kind to its variant.
func construct(logic config.ActionLogic, base Base) (ActionFX, bool) {
	switch logic {
	case config.LogicMelee:
		return &meleeFX{Base: base}, true
	case config.LogicRangedFXTargeted:
		return &projectileTargetedFX{Base: base}, true
	case config.LogicTrample:
		return &trampleFX{Base: base}, true
	case config.LogicAoE:
		return &aoeFX{Base: base}, true
	case config.LogicStunned:
		return &animationOnlyFX{Base: base}, true
	case config.LogicTarget:
		return &targetFX{Base: base}, true
	case config.LogicChargedShield:
		return &chargedShieldFX{Base: base}, true
	case config.LogicChargedLaunchProjectile:
		return &chargedLaunchFX{Base: base}, true
	case config.LogicStealthMode:
		return &stealthFX{Base: base}, true
	case config.LogicChase:
		return &chaseFX{Base: base}, true
	default:
		return nil, false
	}
}

// New builds the playback variant for a request. The variant depends only
// on the logic of the requested action. A missing catalog entry, an unmapped
// logic or a spawn without the graphic capability are configuration errors.
func New(data messages.ActionRequestData, parent *donburi.Entry, env *Env) (ActionFX, error) {
	if env == nil || env.Catalog == nil {
		return nil, errors.New("actionfx: nil catalog")
	}
	desc, ok := env.Catalog.Get(data.ActionType)
	if !ok {
		return nil, fmt.Errorf("%w: %s", config.ErrUnknownAction, data.ActionType)
	}
	if err := validateDescription(desc); err != nil {
		return nil, err
	}

	fx, ok := construct(desc.Logic, newBase(data, desc, parent, env))
	if !ok {
		return nil, fmt.Errorf("%w: %s (action %s)", ErrUnknownLogic, desc.Logic, desc.Type)
	}
	env.logger().Debug("fx constructed",
		zap.Stringer("action", desc.Type),
		zap.Stringer("logic", desc.Logic))
	return fx, nil
}

// MustNew is New for callers that treat configuration errors as fatal.
func MustNew(data messages.ActionRequestData, parent *donburi.Entry, env *Env) ActionFX {
	fx, err := New(data, parent, env)
	if err != nil {
		panic(err)
	}
	return fx
}

// Validate checks a whole catalog against the variant set and the prefab
// registry, so a process can refuse to start on inconsistent data.
func Validate(catalog interface {
	Each(func(*config.ActionDescription))
}) error {
	var errs []error
	catalog.Each(func(desc *config.ActionDescription) {
		if err := validateDescription(desc); err != nil {
			errs = append(errs, err)
		}
	})
	return errors.Join(errs...)
}

func validateDescription(desc *config.ActionDescription) error {
	if _, ok := construct(desc.Logic, Base{}); !ok {
		return fmt.Errorf("%w: %s (action %s)", ErrUnknownLogic, desc.Logic, desc.Type)
	}
	for _, prefab := range desc.Spawns {
		if prefab == "" {
			continue
		}
		if _, err := factory.LookupGraphicPrefab(prefab); err != nil {
			return fmt.Errorf("action %s: %w", desc.Type, err)
		}
	}
	return nil
}
