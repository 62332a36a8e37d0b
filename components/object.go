package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Midpoint is the centre of the object's bounds.
func (o *ObjectData) Midpoint() Vector {
	return Vector{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

// MoveMidpointTo places the object so its centre is at p.
func (o *ObjectData) MoveMidpointTo(p Vector) {
	o.X = p.X - o.W/2
	o.Y = p.Y - o.H/2
	if o.Space != nil {
		o.Update()
	}
}

var Object = donburi.NewComponentType[ObjectData]()
