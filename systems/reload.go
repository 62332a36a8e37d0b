package systems

import (
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/systems/actionfx"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// NewDataReloadSystem applies edits to the game data file between ticks.
// Data that fails to load or validate is logged and the old data kept.
func NewDataReloadSystem(watcher *cfg.Watcher, path string, log *zap.Logger) func(*ecs.ECS) {
	return func(_ *ecs.ECS) {
		for {
			select {
			case name, ok := <-watcher.Events:
				if !ok {
					return
				}
				log.Info("game data changed", zap.String("file", name))
				if err := ReloadGameData(path); err != nil {
					log.Error("game data reload rejected", zap.Error(err))
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn("game data watcher", zap.Error(err))
			default:
				return
			}
		}
	}
}

// ReloadGameData loads, validates and applies a game data file.
func ReloadGameData(path string) error {
	data, err := cfg.LoadGameData(path)
	if err != nil {
		return err
	}
	if err := actionfx.Validate(data.Actions); err != nil {
		return err
	}
	data.Apply()
	return nil
}
