package ai

// FoeDetector is a Brain that can look around for new hostiles.
type FoeDetector interface {
	Brain
	DetectFoes()
}

// IdleState waits for hostiles to come close. It is eligible while the hate
// list is empty.
type IdleState struct {
	brain FoeDetector
}

func NewIdleState(brain FoeDetector) *IdleState {
	return &IdleState{brain: brain}
}

func (s *IdleState) IsEligible() bool {
	return len(s.brain.HatedEnemies()) == 0
}

func (s *IdleState) Initialize() {}

func (s *IdleState) Update() {
	s.brain.DetectFoes()
}
