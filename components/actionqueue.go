package components

import (
	"github.com/automoto/doomerang-arena/shared/messages"
	"github.com/yohamta/donburi"
)

// ActionQueueData is the authoritative per-actor action queue. Queue[0] is
// the active action.
type ActionQueueData struct {
	Queue    []messages.ActionRequestData
	Ticks    int  // Ticks the active action has been running
	Started  bool // Active action has been published
	Executed bool // Active action has applied its effect
	// Interrupted is set when the queue was cleared this tick, so the next
	// published action tells observers to cancel what they were showing.
	Interrupted bool
}

var ActionQueue = donburi.NewComponentType[ActionQueueData]()
