package actionfx

import (
	"github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/messages"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// Visualization owns the playing FX of one character. It is the only caller
// of the ActionFX lifecycle methods, which is how an instance is guaranteed
// never to be updated after it ended and never to see two terminal calls.
type Visualization struct {
	parent  *donburi.Entry
	env     *Env
	playing []ActionFX
	// LastSeq is the NetActiveAction sequence already played.
	LastSeq uint32
	// ReleasedSeq is the last sequence whose charge release was forwarded.
	ReleasedSeq uint32
}

// NewVisualization creates the playback owner for parent.
func NewVisualization(parent *donburi.Entry, env *Env) *Visualization {
	return &Visualization{parent: parent, env: env}
}

// Component stores a character's Visualization.
var Component = donburi.NewComponentType[Visualization]()

// PlayAction builds and starts the playback for a request. It returns the
// instance if it is now playing, or nil if Start vetoed it. Requests only
// reach playback after the catalog was validated, so a configuration error
// here panics.
func (v *Visualization) PlayAction(data messages.ActionRequestData) ActionFX {
	fx := MustNew(data, v.parent, v.env)
	b := fx.base()
	if !fx.Start() {
		b.state = Ended
		b.releaseAll()
		return nil
	}
	b.state = Playing
	v.playing = append(v.playing, fx)
	return fx
}

// Update advances every playing instance once. An instance that returns
// false, or whose action duration has elapsed, is ended and dropped.
func (v *Visualization) Update() {
	if len(v.playing) == 0 {
		return
	}
	kept := v.playing[:0]
	for _, fx := range v.playing {
		b := fx.base()
		if b.state != Playing {
			continue
		}
		b.ticks++
		keepGoing := fx.Update()
		expired := b.Desc.DurationSeconds > 0 && b.ticks >= b.Desc.DurationTicks()
		if !keepGoing || expired {
			v.end(fx)
			continue
		}
		kept = append(kept, fx)
	}
	clear(v.playing[len(kept):])
	v.playing = kept
}

// CancelAll interrupts everything that is playing.
func (v *Visualization) CancelAll() {
	for _, fx := range v.playing {
		v.cancel(fx)
	}
	clear(v.playing)
	v.playing = v.playing[:0]
}

// CancelAllOfType interrupts every instance playing the given action.
func (v *Visualization) CancelAllOfType(t config.ActionType) {
	kept := v.playing[:0]
	for _, fx := range v.playing {
		if fx.base().Data.ActionType == t {
			v.cancel(fx)
			continue
		}
		kept = append(kept, fx)
	}
	clear(v.playing[len(kept):])
	v.playing = kept
}

// OnAnimEvent forwards an animation marker to every playing instance.
func (v *Visualization) OnAnimEvent(id string) {
	for _, fx := range v.playing {
		if fx.base().state == Playing {
			fx.OnAnimEvent(id)
		}
	}
}

// OnStoppedChargingUp forwards an early charge release to every playing
// instance.
func (v *Visualization) OnStoppedChargingUp(finalChargeUpPercentage float64) {
	for _, fx := range v.playing {
		if fx.base().state == Playing {
			fx.OnStoppedChargingUp(finalChargeUpPercentage)
		}
	}
}

// Playing returns the instances currently playing.
func (v *Visualization) Playing() []ActionFX {
	return v.playing
}

func (v *Visualization) end(fx ActionFX) {
	b := fx.base()
	if b.state == Ended {
		return
	}
	b.state = Ended
	if e, ok := fx.(Ender); ok {
		e.End()
	} else {
		fx.Cancel()
	}
	b.releaseAll()
	v.env.logger().Debug("fx ended", zap.Stringer("action", b.Desc.Type), zap.Int("ticks", b.ticks))
}

func (v *Visualization) cancel(fx ActionFX) {
	b := fx.base()
	if b.state == Ended {
		return
	}
	b.state = Ended
	fx.Cancel()
	b.releaseAll()
	v.env.logger().Debug("fx cancelled", zap.Stringer("action", b.Desc.Type), zap.Int("ticks", b.ticks))
}
