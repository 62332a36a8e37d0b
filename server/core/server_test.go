package core

import (
	"testing"

	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/leap-fish/necs/router"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

func TestOwnsSkill(t *testing.T) {
	tank := cfg.Classes[cfg.CharacterTank]
	tests := []struct {
		name   string
		action cfg.ActionType
		want   bool
	}{
		{"base attack", tank.Skill1, true},
		{"second skill", tank.Skill2, true},
		{"other class skill", cfg.ActionArcherVolley, false},
		{"none", cfg.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ownsSkill(tank, tt.action); got != tt.want {
				t.Errorf("ownsSkill(%s) = %v, want %v", tt.action, got, tt.want)
			}
		})
	}
}

func TestProcessCommandsRunsInOrder(t *testing.T) {
	s := &Server{commands: make(chan func(), commandBuffer)}
	var got []int
	for i := range 3 {
		s.commands <- func() { got = append(got, i) }
	}
	s.ProcessCommands()

	if len(got) != 3 || got[0] != 0 || got[2] != 2 {
		t.Errorf("ran %v, want [0 1 2]", got)
	}
	s.ProcessCommands()
	if len(got) != 3 {
		t.Error("commands ran twice")
	}
}

func TestDisconnectForgetsClient(t *testing.T) {
	s := &Server{
		world:          donburi.NewWorld(),
		log:            zap.NewNop(),
		clientEntities: make(map[*router.NetworkClient]donburi.Entity),
	}
	gone, staying := &router.NetworkClient{}, &router.NetworkClient{}
	s.clientEntities[gone] = donburi.Null
	s.clientEntities[staying] = donburi.Null

	s.onDisconnect(gone, nil)

	if got := s.PlayerCount(); got != 1 {
		t.Errorf("PlayerCount = %d, want 1", got)
	}
	if _, ok := s.clientEntities[staying]; !ok {
		t.Error("disconnect dropped the wrong client")
	}
}
