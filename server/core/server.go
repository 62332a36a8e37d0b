package core

import (
	"fmt"
	"sync"

	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/messages"
	"github.com/automoto/doomerang-arena/shared/netcomponents"
	"github.com/automoto/doomerang-arena/systems"
	"github.com/automoto/doomerang-arena/systems/factory"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// commandBuffer bounds how many client messages may wait for the next tick.
const commandBuffer = 256

// Options configures a Server.
type Options struct {
	Name     string
	Version  string // Required client version; empty accepts any
	TickRate int
	// Watcher, when set, reloads DataPath between ticks.
	Watcher  *cfg.Watcher
	DataPath string
}

// Server runs the authoritative arena and replicates it to clients.
type Server struct {
	opts      Options
	world     donburi.World
	ecs       *ecs.ECS
	loop      *GameLoop
	transport *transports.WsServerTransport
	log       *zap.Logger

	// Router callbacks run on transport goroutines; world mutations are
	// handed to the tick through this channel.
	commands chan func()

	// Track which network client owns which hero
	clientEntities map[*router.NetworkClient]donburi.Entity
	mu             sync.RWMutex
}

// syncedIDs marks spawned characters for replication. necs assigns the id.
type syncedIDs struct{}

func (syncedIDs) Assign(w donburi.World, entity *donburi.Entity) error {
	return srvsync.NetworkSync(w, entity,
		srvsync.WithInterp(netcomponents.NetPosition),
		netcomponents.NetHealth,
		netcomponents.NetActiveAction,
		netcomponents.NetCharacter,
	)
}

// NewServer creates the world, populates the arena and registers the
// message handlers.
func NewServer(opts Options, log *zap.Logger) (*Server, error) {
	world := donburi.NewWorld()
	log = log.With(zap.String("server", opts.Name))

	s := &Server{
		opts:           opts,
		world:          world,
		ecs:            ecs.NewECS(world),
		log:            log,
		commands:       make(chan func(), commandBuffer),
		clientEntities: make(map[*router.NetworkClient]donburi.Entity),
	}
	s.loop = NewGameLoop(s, opts.TickRate, log)

	srvsync.UseEsync(world)

	if opts.Watcher != nil {
		s.ecs.AddSystem(systems.NewDataReloadSystem(opts.Watcher, opts.DataPath, log))
	}
	s.ecs.AddSystem(systems.UpdateAI)
	s.ecs.AddSystem(systems.UpdateActions)
	s.ecs.AddSystem(systems.UpdateAnimators)
	s.ecs.AddSystem(systems.PublishNetState)

	if _, err := systems.PopulateArena(world, syncedIDs{}, log, false); err != nil {
		return nil, fmt.Errorf("populate arena: %w", err)
	}

	s.setupRouterCallbacks()
	return s, nil
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
}

// ProcessCommands runs every queued client command. Called by the loop
// before the systems.
func (s *Server) ProcessCommands() {
	for {
		select {
		case cmd := <-s.commands:
			cmd()
		default:
			return
		}
	}
}

func (s *Server) enqueue(client *router.NetworkClient, cmd func()) {
	select {
	case s.commands <- cmd:
	default:
		s.log.Warn("command dropped, tick backlog full", zap.String("client", client.Id()))
	}
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		s.log.Info("client connected", zap.String("client", client.Id()))
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.enqueue(client, func() { s.onDisconnect(client, err) })
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.enqueue(client, func() { s.onJoin(client, req) })
	})

	router.On(func(client *router.NetworkClient, req messages.ActionRequestData) {
		s.enqueue(client, func() { s.onActionRequest(client, req) })
	})

	router.On(func(client *router.NetworkClient, ev messages.ChargeReleasedEvent) {
		s.enqueue(client, func() { s.onChargeReleased(client, ev) })
	})

	router.On(func(client *router.NetworkClient, input messages.MoveInput) {
		s.enqueue(client, func() { s.onMoveInput(client, input) })
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		s.log.Warn("client error", zap.String("client", client.Id()), zap.Error(err))
	})
}

func (s *Server) onJoin(client *router.NetworkClient, req messages.JoinRequest) {
	log := s.log.With(zap.String("client", client.Id()), zap.String("player", req.PlayerName))
	if s.opts.Version != "" && req.Version != s.opts.Version {
		log.Info("join rejected: version mismatch", zap.String("version", req.Version))
		return
	}
	if _, ok := s.hero(client); ok {
		log.Info("join ignored: already has a hero")
		return
	}
	class, err := cfg.ParseCharacterType(req.Class)
	if err != nil {
		log.Info("join rejected", zap.Error(err))
		return
	}
	if data, ok := cfg.Classes[class]; !ok || data.IsNPC {
		log.Info("join rejected: not a playable class", zap.Stringer("class", class))
		return
	}

	spawn := cfg.Arena.HeroSpawn
	entry, err := systems.SpawnCharacter(s.world, syncedIDs{}, class, spawn.X, spawn.Y, s.log, false)
	if err != nil {
		log.Error("hero spawn failed", zap.Error(err))
		return
	}

	s.mu.Lock()
	s.clientEntities[client] = entry.Entity()
	s.mu.Unlock()

	log.Info("hero spawned", zap.Stringer("class", class), zap.Int("players", s.PlayerCount()))
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	if err != nil {
		s.log.Info("client disconnected", zap.String("client", client.Id()), zap.Error(err))
	} else {
		s.log.Info("client disconnected", zap.String("client", client.Id()))
	}

	entry, ok := s.hero(client)
	s.mu.Lock()
	delete(s.clientEntities, client)
	s.mu.Unlock()

	if ok {
		factory.DestroyCharacter(s.world, entry)
		s.log.Info("hero removed", zap.String("client", client.Id()), zap.Int("players", s.PlayerCount()))
	}
}

func (s *Server) onActionRequest(client *router.NetworkClient, req messages.ActionRequestData) {
	entry, ok := s.hero(client)
	if !ok {
		return
	}
	class := components.Character.Get(entry).Class
	if !ownsSkill(class, req.ActionType) {
		s.log.Info("action rejected: not a skill of the hero",
			zap.String("client", client.Id()), zap.Stringer("action", req.ActionType))
		return
	}
	if _, ok := cfg.Actions.Get(req.ActionType); !ok {
		s.log.Warn("action rejected: not in catalog", zap.Stringer("action", req.ActionType))
		return
	}
	if len(req.TargetIDs) == 0 {
		// Clients do not know the world ids; aim for them.
		aimed, _ := systems.HeroRequest(s.world, entry, req.ActionType)
		aimed.ShouldQueue = req.ShouldQueue
		req = aimed
	}
	systems.NewActionPlayer(s.world, entry, systems.Catalog, s.log).PlayAction(&req)
}

func (s *Server) onChargeReleased(client *router.NetworkClient, ev messages.ChargeReleasedEvent) {
	entry, ok := s.hero(client)
	if !ok {
		return
	}
	systems.NewActionPlayer(s.world, entry, systems.Catalog, s.log).ReleaseCharge(ev.ChargePercent)
}

func (s *Server) onMoveInput(client *router.NetworkClient, input messages.MoveInput) {
	entry, ok := s.hero(client)
	if !ok {
		return
	}
	systems.MoveHero(entry, input.X, input.Y)
}

// hero resolves the client's living hero entry.
func (s *Server) hero(client *router.NetworkClient) (*donburi.Entry, bool) {
	s.mu.RLock()
	entity, exists := s.clientEntities[client]
	s.mu.RUnlock()

	if !exists || !s.world.Valid(entity) {
		return nil, false
	}
	return s.world.Entry(entity), true
}

func ownsSkill(class *cfg.CharacterClass, t cfg.ActionType) bool {
	return t != cfg.ActionNone && (t == class.Skill1 || t == class.Skill2 || t == class.Skill3)
}

// World returns the ECS world
func (s *Server) World() donburi.World {
	return s.world
}

// PlayerCount returns the number of connected players
func (s *Server) PlayerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clientEntities)
}
