package components

import (
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of a control
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// controls. JustPressed/JustReleased are computed on demand.
type InputData struct {
	Current  [cfg.InputCount]bool
	Previous [cfg.InputCount]bool
}

var Input = donburi.NewComponentType[InputData]()
