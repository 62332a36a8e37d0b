package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/systems"
	"github.com/automoto/doomerang-arena/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// ArenaScene runs the whole arena locally: AI, action execution and the
// action playback on the same world.
type ArenaScene struct {
	ecs      *ecs.ECS
	log      *zap.Logger
	watcher  *cfg.Watcher
	dataPath string
	once     sync.Once
}

// NewArenaScene creates the arena. If watcher is non-nil, edits to dataPath
// are applied while running.
func NewArenaScene(log *zap.Logger, watcher *cfg.Watcher, dataPath string) *ArenaScene {
	return &ArenaScene{log: log, watcher: watcher, dataPath: dataPath}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	if as.watcher != nil {
		ecs.AddSystem(systems.NewDataReloadSystem(as.watcher, as.dataPath, as.log))
	}

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.NewViewerControlsSystem(as.log))

	// Decisions before execution, execution before playback
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateAI))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateActions))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateAnimators))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateActionFX))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))

	ecs.AddRenderer(cfg.Default, systems.DrawCharacters)
	ecs.AddRenderer(cfg.Default, systems.DrawFXGraphics)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	as.ecs = ecs

	if _, err := systems.PopulateArena(ecs.World, &factory.LocalIDs{}, as.log, true); err != nil {
		as.log.Fatal("arena setup failed", zap.Error(err))
	}
}
