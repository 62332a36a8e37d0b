package systems

import (
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/automoto/doomerang-arena/shared/messages"
	"github.com/automoto/doomerang-arena/shared/netcomponents"
	"github.com/automoto/doomerang-arena/systems/ai"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// ActionPlayer is the action executor of one character. Queue[0] of the
// character's ActionQueue is the active action.
type ActionPlayer struct {
	world   donburi.World
	entry   *donburi.Entry
	catalog ai.Catalog
	log     *zap.Logger
}

// NewActionPlayer wraps the action queue of entry.
func NewActionPlayer(w donburi.World, entry *donburi.Entry, catalog ai.Catalog, log *zap.Logger) *ActionPlayer {
	if log == nil {
		log = zap.NewNop()
	}
	return &ActionPlayer{world: w, entry: entry, catalog: catalog, log: log}
}

// PlayAction queues a request. A request that should not queue supersedes
// everything the character was doing.
func (p *ActionPlayer) PlayAction(data *messages.ActionRequestData) {
	if data == nil || !p.entry.Valid() {
		return
	}
	q := components.ActionQueue.Get(p.entry)
	if !data.ShouldQueue && len(q.Queue) > 0 {
		p.ClearActions()
	}
	q.Queue = append(q.Queue, *data)
	if len(q.Queue) == 1 {
		startAction(p.entry, q)
	}
}

// ClearActions drops the active and all queued actions.
func (p *ActionPlayer) ClearActions() {
	if !p.entry.Valid() {
		return
	}
	q := components.ActionQueue.Get(p.entry)
	if len(q.Queue) == 0 {
		return
	}
	p.log.Debug("actions cleared", zap.Int("dropped", len(q.Queue)))
	net := netcomponents.NetActiveAction.Get(p.entry)
	// Observers last saw the head from before the first clear this tick.
	if !q.Interrupted {
		net.Interrupted = q.Queue[0].ActionType
	}

	clear(q.Queue)
	q.Queue = q.Queue[:0]
	q.Ticks, q.Started, q.Executed = 0, false, false
	q.Interrupted = true

	net.Seq++
	net.Active = false
	net.Cancelled = true
	net.Request = messages.ActionRequestData{}
	net.ChargeReleased = false
}

// GetActiveActionInfo returns the active request, if any.
func (p *ActionPlayer) GetActiveActionInfo() (messages.ActionRequestData, bool) {
	if !p.entry.Valid() {
		return messages.ActionRequestData{}, false
	}
	q := components.ActionQueue.Get(p.entry)
	if len(q.Queue) == 0 {
		return messages.ActionRequestData{}, false
	}
	return q.Queue[0], true
}

// ReleaseCharge lets go of an active charged action early. The charge
// takes effect now and the playback is told how full it was.
func (p *ActionPlayer) ReleaseCharge(pct float64) {
	if !p.entry.Valid() {
		return
	}
	q := components.ActionQueue.Get(p.entry)
	if len(q.Queue) == 0 || q.Executed {
		return
	}
	desc, ok := p.catalog.Get(q.Queue[0].ActionType)
	if !ok || (desc.Logic != cfg.LogicChargedShield && desc.Logic != cfg.LogicChargedLaunchProjectile) {
		return
	}
	pct = min(max(pct, 0), 1)
	q.Executed = true
	if desc.Logic.Damaging() {
		req := q.Queue[0]
		req.Amount *= pct
		applyDamage(p.world, p.entry, &req)
	}

	net := netcomponents.NetActiveAction.Get(p.entry)
	net.ChargeReleased = true
	net.ChargePercent = pct
}

// startAction publishes the head of the queue as the active action.
func startAction(entry *donburi.Entry, q *components.ActionQueueData) {
	q.Ticks, q.Started, q.Executed = 0, true, false

	net := netcomponents.NetActiveAction.Get(entry)
	net.Seq++
	net.Active = true
	net.Cancelled = q.Interrupted
	if !q.Interrupted {
		net.Interrupted = cfg.ActionNone
	}
	net.Request = q.Queue[0]
	net.ChargeReleased = false
	net.ChargePercent = 0
}

// UpdateActions advances the active action of every character by one tick.
func UpdateActions(e *ecs.ECS) {
	advanceActions(e.World, cfg.Actions)
}

func advanceActions(w donburi.World, catalog ai.Catalog) {
	components.ActionQueue.Each(w, func(entry *donburi.Entry) {
		q := components.ActionQueue.Get(entry)
		if entry.HasComponent(components.Health) && !components.Health.Get(entry).Alive() {
			if len(q.Queue) > 0 {
				NewActionPlayer(w, entry, catalog, nil).ClearActions()
			}
			q.Interrupted = false
			return
		}
		if len(q.Queue) > 0 {
			advanceHead(w, entry, q, catalog)
		}
		q.Interrupted = false
	})
}

func advanceHead(w donburi.World, entry *donburi.Entry, q *components.ActionQueueData, catalog ai.Catalog) {
	req := &q.Queue[0]
	desc, ok := catalog.Get(req.ActionType)
	if !ok {
		// Requests are validated where they enter the server; drop anything
		// that slipped through rather than stalling the queue.
		finishAction(entry, q)
		return
	}

	q.Ticks++
	var done bool
	if desc.Logic == cfg.LogicChase {
		done = chaseStep(w, entry, req)
	} else {
		if !q.Executed && q.Ticks >= desc.ExecTicks() {
			q.Executed = true
			if desc.Logic.Damaging() {
				applyDamage(w, entry, req)
			}
		}
		done = q.Executed && q.Ticks >= max(desc.DurationTicks(), desc.ExecTicks())
	}
	if done {
		finishAction(entry, q)
	}
}

// finishAction pops the head and starts the next queued action, if any.
func finishAction(entry *donburi.Entry, q *components.ActionQueueData) {
	clear(q.Queue[:1])
	q.Queue = q.Queue[1:]
	if len(q.Queue) > 0 {
		startAction(entry, q)
		return
	}
	q.Ticks, q.Started, q.Executed = 0, false, false

	net := netcomponents.NetActiveAction.Get(entry)
	net.Seq++
	net.Active = false
	net.Cancelled = false
	net.Interrupted = cfg.ActionNone
	net.Request = messages.ActionRequestData{}
	net.ChargeReleased = false
}

// chaseStep moves entry toward the primary target at its class speed and
// reports whether the chase is over. Amount is the stopping distance.
func chaseStep(w donburi.World, entry *donburi.Entry, req *messages.ActionRequestData) bool {
	target, ok := lookupCharacter(w, req)
	if !ok {
		return true
	}
	obj := components.Object.Get(entry)
	from := obj.Midpoint()
	to := components.Object.Get(target).Midpoint()
	if gamemath.DistanceSq(from, to) <= req.Amount*req.Amount {
		return true
	}

	speed := 0.0
	if entry.HasComponent(components.Character) {
		ch := components.Character.Get(entry)
		speed = ch.Class.Speed
		if to.X < from.X {
			ch.Direction = -1
		} else if to.X > from.X {
			ch.Direction = 1
		}
	}
	next, _ := gamemath.MoveToward(from, to, speed/cfg.TickRate)
	obj.MoveMidpointTo(next)
	return gamemath.DistanceSq(next, to) <= req.Amount*req.Amount
}

// applyDamage hits the primary target with the request's amount.
func applyDamage(w donburi.World, entry *donburi.Entry, req *messages.ActionRequestData) {
	target, ok := lookupCharacter(w, req)
	if !ok || !target.HasComponent(components.Health) {
		return
	}
	health := components.Health.Get(target)
	if !health.Alive() {
		return
	}
	health.Current -= int(req.Amount)
	if health.Current < 0 {
		health.Current = 0
	}
}

// lookupCharacter resolves the primary target of req to a live entry.
func lookupCharacter(w donburi.World, req *messages.ActionRequestData) (*donburi.Entry, bool) {
	id, ok := req.PrimaryTarget()
	if !ok {
		return nil, false
	}
	entity := esync.FindByNetworkId(w, id)
	if !w.Valid(entity) {
		return nil, false
	}
	target := w.Entry(entity)
	if !target.HasComponent(components.Object) {
		return nil, false
	}
	if target.HasComponent(components.Health) && !components.Health.Get(target).Alive() {
		return nil, false
	}
	return target, true
}
