package config

import "testing"

func TestLoadEnvDefaults(t *testing.T) {
	env, err := LoadEnv()
	if err != nil {
		t.Fatal(err)
	}
	if env.Port != 7373 || env.TickRate != 60 || env.LogLevel != "info" {
		t.Errorf("defaults = %+v", env)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ARENA_PORT", "9000")
	t.Setenv("ARENA_GAME_DATA", "/tmp/data.yaml")
	t.Setenv("ARENA_WATCH_DATA", "true")

	env, err := LoadEnv()
	if err != nil {
		t.Fatal(err)
	}
	if env.Port != 9000 || env.GameDataPath != "/tmp/data.yaml" || !env.WatchData {
		t.Errorf("env = %+v", env)
	}
}

func TestLoadEnvRejects(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"zero tick rate", "ARENA_TICK_RATE", "0"},
		{"bad port", "ARENA_PORT", "seven"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := LoadEnv(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	if _, err := (ServerEnv{LogLevel: "debug", Development: true}).NewLogger(); err != nil {
		t.Fatal(err)
	}
	if _, err := (ServerEnv{LogLevel: "loud"}).NewLogger(); err == nil {
		t.Error("expected an error for an unknown level")
	}
}
