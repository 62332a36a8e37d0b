package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/network"
	"github.com/automoto/doomerang-arena/shared/messages"
	"github.com/automoto/doomerang-arena/systems"
	"github.com/automoto/doomerang-arena/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// NetworkedScene mirrors a remote arena and plays back its actions. With a
// class chosen the local player also steers a hero on the server.
type NetworkedScene struct {
	ecs       *ecs.ECS
	log       *zap.Logger
	netClient *network.Client
	class     cfg.CharacterType
	playing   bool
	tickRate  int
	once      sync.Once
	// charge counts ticks each skill key has been held.
	charge [cfg.InputCount]int
}

// NewNetworkedScene watches the server the client connects to. class is
// CharacterCount for spectators.
func NewNetworkedScene(log *zap.Logger, client *network.Client, class cfg.CharacterType, serverTickRate int) *NetworkedScene {
	return &NetworkedScene{
		log:       log,
		netClient: client,
		class:     class,
		playing:   class != cfg.CharacterCount,
		tickRate:  serverTickRate,
	}
}

func (ns *NetworkedScene) Update() {
	ns.once.Do(ns.configure)

	if state := ns.netClient.State(); state == network.StateError {
		ns.log.Fatal("connection lost", zap.Error(ns.netClient.LastError()))
	}

	if snap := ns.netClient.LatestSnapshot(); snap != nil {
		systems.ApplySnapshot(ns.ecs.World, *snap, ns.log)
	}

	ns.ecs.Update()
}

func (ns *NetworkedScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ns.ecs == nil {
		return
	}
	ns.ecs.Draw(screen)
}

func (ns *NetworkedScene) configure() {
	ns.ecs = ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(ns.ecs.World)

	ns.ecs.AddSystem(systems.UpdateInput)
	if ns.playing {
		ns.ecs.AddSystem(ns.sendInput)
	}
	ns.ecs.AddSystem(systems.NewNetInterpSystem(func() int { return ns.tickRate }))
	ns.ecs.AddSystem(systems.UpdateAnimators)
	ns.ecs.AddSystem(systems.UpdateActionFX)
	ns.ecs.AddSystem(systems.UpdateEffects)

	ns.ecs.AddRenderer(cfg.Default, systems.DrawCharacters)
	ns.ecs.AddRenderer(cfg.Default, systems.DrawFXGraphics)
}

// sendInput forwards the local player's keys to the server. Targets are
// left for the server to pick.
func (ns *NetworkedScene) sendInput(e *ecs.ECS) {
	input, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	in := components.Input.Get(input)
	class := cfg.Classes[ns.class]

	skills := []struct {
		id    cfg.InputID
		skill cfg.ActionType
	}{
		{cfg.InputSkill1, class.Skill1},
		{cfg.InputSkill2, class.Skill2},
		{cfg.InputSkill3, class.Skill3},
	}
	for _, s := range skills {
		if s.skill == cfg.ActionNone {
			continue
		}
		state := systems.GetAction(in, s.id)
		if state.Pressed {
			ns.charge[s.id]++
		}
		if state.JustPressed {
			ns.charge[s.id] = 0
			ns.send(messages.ActionRequestData{ActionType: s.skill})
		}
		if state.JustReleased {
			if desc, ok := systems.Catalog.Get(s.skill); ok && desc.ExecTicks() > 0 {
				pct := min(float64(ns.charge[s.id])/float64(desc.ExecTicks()), 1)
				ns.send(messages.ChargeReleasedEvent{ChargePercent: pct})
			}
		}
	}

	var move messages.MoveInput
	if in.Current[cfg.InputMoveLeft] {
		move.X--
	}
	if in.Current[cfg.InputMoveRight] {
		move.X++
	}
	if in.Current[cfg.InputMoveUp] {
		move.Y--
	}
	if in.Current[cfg.InputMoveDown] {
		move.Y++
	}
	if move.X != 0 || move.Y != 0 {
		ns.send(move)
	}
}

func (ns *NetworkedScene) send(msg any) {
	if err := ns.netClient.SendMessage(msg); err != nil {
		ns.log.Debug("message not sent", zap.Error(err))
	}
}
