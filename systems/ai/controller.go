package ai

import "github.com/yohamta/donburi"

// Controller runs the first eligible state of an NPC. States are listed in
// priority order.
type Controller struct {
	states  []State
	current State
}

func NewController(states ...State) *Controller {
	return &Controller{states: states}
}

// Component stores an NPC's Controller.
var Component = donburi.NewComponentType[Controller]()

// Current returns the active state, or nil.
func (c *Controller) Current() State {
	return c.current
}

// Update picks the best eligible state, initializing it on a switch, then
// runs it once.
func (c *Controller) Update() {
	best := c.bestEligible()
	if best == nil {
		c.current = nil
		return
	}
	if best != c.current {
		best.Initialize()
		c.current = best
	}
	c.current.Update()
}

func (c *Controller) bestEligible() State {
	for _, s := range c.states {
		if s.IsEligible() {
			return s
		}
	}
	return nil
}
