package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/server/core"
	"github.com/automoto/doomerang-arena/shared/protocol"
	"github.com/automoto/doomerang-arena/systems"
	"github.com/automoto/doomerang-arena/systems/actionfx"
	"go.uber.org/zap"
)

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
	if env.TickRate != config.TickRate {
		logger.Warn("tick rate differs from the simulation rate; timings will scale",
			zap.Int("tick_rate", env.TickRate), zap.Int("simulation_rate", config.TickRate))
	}

	if err := protocol.RegisterComponents(); err != nil {
		logger.Fatal("failed to register components", zap.Error(err))
	}

	opts := core.Options{
		Name:     env.Name,
		Version:  env.Version,
		TickRate: env.TickRate,
		DataPath: env.GameDataPath,
	}
	if env.WatchData && env.GameDataPath != "" {
		watcher, err := config.NewWatcher(env.GameDataPath)
		if err != nil {
			logger.Warn("game data watch disabled", zap.Error(err))
		} else {
			defer watcher.Close()
			opts.Watcher = watcher
		}
	}

	server, err := core.NewServer(opts, logger)
	if err != nil {
		logger.Fatal("server setup failed", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("shutting down server")
		server.Stop()
		_ = logger.Sync()
		os.Exit(0)
	}()

	logger.Info("starting arena server",
		zap.String("name", env.Name),
		zap.Uint("port", env.Port),
		zap.Int("tick_rate", env.TickRate),
		zap.String("version", env.Version))
	if err := server.Start(env.Port); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
