package components

import "github.com/yohamta/donburi"

// NetInterpData smooths a mirrored character between server snapshots.
type NetInterpData struct {
	Prev, Target Vector
	T            float64
	Initialized  bool
}

var NetInterp = donburi.NewComponentType[NetInterpData]()
