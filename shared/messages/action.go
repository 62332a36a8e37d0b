package messages

import (
	"github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/leap-fish/necs/esync"
)

// ActionRequestData asks an actor to perform an action. It is produced by
// AI and player input and consumed by the action executor; clients receive
// it again through NetActiveAction to drive the matching playback.
type ActionRequestData struct {
	ActionType config.ActionType
	// Amount is damage, heal or speed depending on the action's logic. For
	// a chase it is the stopping distance.
	Amount float64
	// ShouldQueue appends after current work; false supersedes it.
	ShouldQueue bool
	// TargetIDs may be empty for self and area actions. The first entry is
	// the primary target.
	TargetIDs []esync.NetworkId
	Position  gamemath.Vector // Ground point for area actions
	Direction float64         // -1 left, 1 right
}

// PrimaryTarget returns the first target id, if any.
func (r *ActionRequestData) PrimaryTarget() (esync.NetworkId, bool) {
	if r == nil || len(r.TargetIDs) == 0 {
		return 0, false
	}
	return r.TargetIDs[0], true
}

// Targets reports whether id is the primary target of the request.
func (r *ActionRequestData) Targets(id esync.NetworkId) bool {
	primary, ok := r.PrimaryTarget()
	return ok && primary == id
}

// ChargeReleasedEvent is sent when a player lets go of a charged action
// before it finished charging.
type ChargeReleasedEvent struct {
	OwnerNetworkID uint
	ChargePercent  float64 // 0.0 to 1.0
}
