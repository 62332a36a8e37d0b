package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ServerEnv holds process settings read from the environment.
type ServerEnv struct {
	Name         string `env:"ARENA_SERVER_NAME" envDefault:"Arena"`
	Port         uint   `env:"ARENA_PORT" envDefault:"7373"`
	Version      string `env:"ARENA_CLIENT_VERSION"` // Required client version; empty accepts any
	TickRate     int    `env:"ARENA_TICK_RATE" envDefault:"60"`
	GameDataPath string `env:"ARENA_GAME_DATA"`
	WatchData    bool   `env:"ARENA_WATCH_DATA" envDefault:"false"`
	LogLevel     string `env:"ARENA_LOG_LEVEL" envDefault:"info"`
	Development  bool   `env:"ARENA_DEV" envDefault:"false"`

	// Viewer only. With ConnectAddress set the viewer mirrors that server
	// instead of running the arena locally; an empty Class spectates.
	ConnectAddress string `env:"ARENA_CONNECT"`
	PlayerName     string `env:"ARENA_PLAYER" envDefault:"player"`
	Class          string `env:"ARENA_CLASS"`
}

// LoadEnv parses ServerEnv from the process environment.
func LoadEnv() (ServerEnv, error) {
	cfg, err := env.ParseAs[ServerEnv]()
	if err != nil {
		return ServerEnv{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.TickRate <= 0 {
		return ServerEnv{}, fmt.Errorf("ARENA_TICK_RATE must be positive, got %d", cfg.TickRate)
	}
	return cfg, nil
}

// NewLogger builds the process logger for these settings.
func (s ServerEnv) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	if s.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
