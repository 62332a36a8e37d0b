package systems

import (
	"fmt"

	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// PopulateArena creates the collision space and the configured spawns.
// NPCs get their AI. With visualize set every character also plays back its
// actions.
func PopulateArena(w donburi.World, ids factory.NetworkIDs, log *zap.Logger, visualize bool) ([]*donburi.Entry, error) {
	if _, ok := components.Space.First(w); !ok {
		factory.CreateSpace(w)
	}

	var spawned []*donburi.Entry
	for _, s := range cfg.Arena.Spawns {
		entry, err := SpawnCharacter(w, ids, s.Class, s.X, s.Y, log, visualize)
		if err != nil {
			return spawned, fmt.Errorf("spawn %s: %w", s.Class, err)
		}
		spawned = append(spawned, entry)
	}
	return spawned, nil
}

// SpawnCharacter creates one character and wires its AI and playback.
func SpawnCharacter(w donburi.World, ids factory.NetworkIDs, class cfg.CharacterType, x, y float64, log *zap.Logger, visualize bool) (*donburi.Entry, error) {
	entry, err := factory.CreateCharacter(w, ids, class, components.Vector{X: x, Y: y})
	if err != nil {
		return nil, err
	}
	if cfg.Classes[class].IsNPC {
		AttachAI(w, entry, log)
	}
	if visualize {
		AttachVisualization(w, entry, log)
	}
	log.Debug("character spawned", zap.Stringer("class", class), zap.Float64("x", x), zap.Float64("y", y))
	return entry, nil
}

// WithPauseCheck skips a system while the viewer is paused.
func WithPauseCheck(fn func(*ecs.ECS)) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		if Viewer.Paused {
			return
		}
		fn(e)
	}
}
