// Package ai holds the server-side decision states of NPC characters. A
// Controller owns an ordered list of states and runs the first eligible one
// once per tick; states talk to the world only through a Brain and an
// ActionPlayer.
package ai

import (
	"github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/automoto/doomerang-arena/shared/messages"
	"github.com/leap-fish/necs/esync"
)

// State is one decision mode of an NPC.
type State interface {
	// IsEligible reports whether the state can run now. It must not change
	// any state.
	IsEligible() bool
	// Initialize is called when the controller switches to the state.
	Initialize()
	// Update runs once per tick while the state is active.
	Update()
}

// Character is what decision logic may know about another character.
type Character interface {
	NetworkID() esync.NetworkId
	Position() gamemath.Vector
}

// Brain is the AI context of one NPC. It owns the hate list and decides who
// is a valid foe; states only read from it.
type Brain interface {
	CharacterData() *config.CharacterClass
	Self() Character
	IsAppropriateFoe(c Character) bool
	HatedEnemies() []Character
}

// ActionPlayer executes action requests for one character.
type ActionPlayer interface {
	PlayAction(data *messages.ActionRequestData)
	ClearActions()
	GetActiveActionInfo() (messages.ActionRequestData, bool)
}

// Catalog is the read-only action lookup decisions need.
type Catalog interface {
	Get(t config.ActionType) (*config.ActionDescription, bool)
}
