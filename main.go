package main

import (
	"log"

	"github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/fonts"
	"github.com/automoto/doomerang-arena/network"
	"github.com/automoto/doomerang-arena/scenes"
	"github.com/automoto/doomerang-arena/shared/messages"
	"github.com/automoto/doomerang-arena/shared/protocol"
	"github.com/automoto/doomerang-arena/systems"
	"github.com/automoto/doomerang-arena/systems/actionfx"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("Failed to read environment: %v", err)
	}
	logger, err := env.NewLogger()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if env.GameDataPath != "" {
		if err := systems.ReloadGameData(env.GameDataPath); err != nil {
			logger.Fatal("game data rejected", zap.String("path", env.GameDataPath), zap.Error(err))
		}
	}
	if err := actionfx.Validate(config.Actions); err != nil {
		logger.Fatal("action catalog does not match the fx variants", zap.Error(err))
	}

	var watcher *config.Watcher
	if env.WatchData && env.GameDataPath != "" {
		watcher, err = config.NewWatcher(env.GameDataPath)
		if err != nil {
			logger.Warn("game data watch disabled", zap.Error(err))
		} else {
			defer watcher.Close()
		}
	}

	fonts.Load()
	if err := systems.InitPersistence(logger); err == nil {
		systems.LoadViewerSettings(logger)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Doomerang Arena")
	ebiten.SetTPS(config.TickRate)
	ebiten.SetFullscreen(systems.Viewer.Fullscreen)

	game := &Game{scene: scenes.NewArenaScene(logger, watcher, env.GameDataPath)}
	if env.ConnectAddress != "" {
		game.scene = connect(env, logger)
	}
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}

// connect joins a remote arena. The server replicates at env.TickRate.
func connect(env config.ServerEnv, logger *zap.Logger) Scene {
	if err := protocol.RegisterComponents(); err != nil {
		logger.Fatal("failed to register components", zap.Error(err))
	}
	class := config.CharacterCount
	if env.Class != "" {
		c, err := config.ParseCharacterType(env.Class)
		if err != nil {
			logger.Fatal("bad ARENA_CLASS", zap.Error(err))
		}
		class = c
	}

	client := network.NewClient(logger)
	client.Connect(env.ConnectAddress, messages.JoinRequest{
		Version:    env.Version,
		PlayerName: env.PlayerName,
		Class:      env.Class,
	})
	return scenes.NewNetworkedScene(logger, client, class, env.TickRate)
}
