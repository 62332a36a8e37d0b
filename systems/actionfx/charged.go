package actionfx

import (
	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// charge tracks a charge-up from 0 to 1 over the action's exec time.
type charge struct {
	meter    *gween.Tween
	percent  float64
	released bool
}

func newCharge(desc *config.ActionDescription) charge {
	return charge{meter: gween.New(0, 1, float32(desc.ExecTimeSeconds), ease.Linear)}
}

// advance moves the meter one tick and reports whether it just filled up.
func (c *charge) advance() bool {
	if c.released {
		return false
	}
	current, finished := c.meter.Update(1.0 / config.TickRate)
	c.percent = float64(current)
	return finished
}

// chargedShieldFX glows while charging, then raises a shield whose size
// follows how much charge was built up. Interrupting the charge staggers.
type chargedShieldFX struct {
	Base
	charge
	glow   donburi.Entity
	shield donburi.Entity
}

func (s *chargedShieldFX) Start() bool {
	s.charge = newCharge(s.Desc)
	s.trigger(s.Desc.Anim)
	if spawns := s.spawns(); len(spawns) > 0 {
		s.glow = s.spawnAt(spawns[0], s.parentPosition(), s.Parent).Entity()
	}
	return true
}

func (s *chargedShieldFX) Update() bool {
	if s.advance() {
		s.releaseCharge(1.0)
	}
	return true
}

func (s *chargedShieldFX) OnStoppedChargingUp(pct float64) {
	s.releaseCharge(pct)
}

func (s *chargedShieldFX) releaseCharge(pct float64) {
	if s.released {
		return
	}
	s.released = true
	s.percent = clamp01(pct)

	if s.glow != donburi.Null {
		s.release(s.glow)
		s.glow = donburi.Null
	}
	s.trigger(s.Desc.Anim2)
	if spawns := s.spawns(); len(spawns) > 1 {
		shield := s.spawnAt(spawns[1], s.parentPosition(), s.Parent)
		s.shield = shield.Entity()
		minScale := config.FX.ShieldMinScale
		components.FXGraphic.Get(shield).Scale = minScale + (1-minScale)*s.percent
	}
}

func (s *chargedShieldFX) End() {
	s.releaseAll()
}

func (s *chargedShieldFX) Cancel() {
	if !s.released {
		s.trigger(s.Desc.ReactAnim)
	}
	s.releaseAll()
}

// chargedLaunchFX charges a shot. Releasing plays the release animation and
// the launch flash appears on the launch marker; a normal completion that
// never saw the marker still shows the flash. Cancelling before release
// staggers instead.
type chargedLaunchFX struct {
	Base
	charge
	glow     donburi.Entity
	launched bool
}

func (l *chargedLaunchFX) Start() bool {
	l.charge = newCharge(l.Desc)
	l.trigger(l.Desc.Anim)
	if spawns := l.spawns(); len(spawns) > 0 {
		l.glow = l.spawnAt(spawns[0], l.parentPosition(), l.Parent).Entity()
	}
	return true
}

func (l *chargedLaunchFX) Update() bool {
	if l.advance() {
		l.releaseCharge(1.0)
	}
	return true
}

func (l *chargedLaunchFX) OnStoppedChargingUp(pct float64) {
	l.releaseCharge(pct)
}

func (l *chargedLaunchFX) OnAnimEvent(id string) {
	if id == config.MarkerLaunch && l.released {
		l.launch()
	}
}

func (l *chargedLaunchFX) releaseCharge(pct float64) {
	if l.released {
		return
	}
	l.released = true
	l.percent = clamp01(pct)
	if l.glow != donburi.Null {
		l.release(l.glow)
		l.glow = donburi.Null
	}
	l.trigger(l.Desc.Anim2)
}

func (l *chargedLaunchFX) launch() {
	if l.launched {
		return
	}
	l.launched = true
	if spawns := l.spawns(); len(spawns) > 1 {
		l.spawnAt(spawns[1], l.parentPosition(), nil)
	}
}

func (l *chargedLaunchFX) End() {
	if l.released {
		l.launch()
	}
	l.releaseAll()
}

func (l *chargedLaunchFX) Cancel() {
	if !l.released {
		l.trigger(l.Desc.ReactAnim)
	}
	l.releaseAll()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
