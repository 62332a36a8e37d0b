package actionfx

// chaseFX has nothing to show; the movement itself is the feedback.
type chaseFX struct {
	Base
}

func (c *chaseFX) Start() bool {
	return false
}

func (c *chaseFX) Update() bool {
	return false
}
