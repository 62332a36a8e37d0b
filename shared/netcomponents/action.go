package netcomponents

import (
	"github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/messages"
	"github.com/yohamta/donburi"
)

// NetActiveActionData mirrors the action an actor is executing. Seq increases
// every time a new action starts or the queue is cleared, so observers can
// tell a repeated action from a stale snapshot.
type NetActiveActionData struct {
	Seq       uint32
	Active    bool // false after the queue was cleared or drained
	Cancelled bool // the previous action was interrupted rather than completed
	// Interrupted is the action Cancelled refers to.
	Interrupted config.ActionType
	Request     messages.ActionRequestData

	// ChargeReleased is set once a charged action was let go early.
	ChargeReleased bool
	ChargePercent  float64
}

var NetActiveAction = donburi.NewComponentType[NetActiveActionData]()
