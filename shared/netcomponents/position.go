package netcomponents

import (
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/yohamta/donburi"
)

// NetPositionData is a character's replicated centre point. Viewers move
// their mirror toward it over the following ticks.
type NetPositionData struct {
	X, Y float64
}

// NewNetPosition converts a world position for replication.
func NewNetPosition(v gamemath.Vector) NetPositionData {
	return NetPositionData{X: v.X, Y: v.Y}
}

// Vector returns the position in world coordinates.
func (p NetPositionData) Vector() gamemath.Vector {
	return gamemath.Vector{X: p.X, Y: p.Y}
}

var NetPosition = donburi.NewComponentType[NetPositionData]()

// LerpNetPosition is the snapshot interpolation necs applies between two
// replicated positions.
func LerpNetPosition(from, to NetPositionData, t float64) *NetPositionData {
	p := NewNetPosition(gamemath.Lerp(from.Vector(), to.Vector(), t))
	return &p
}
