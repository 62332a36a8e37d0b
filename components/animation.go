package components

import (
	"github.com/automoto/doomerang-arena/assets/animations"
	"github.com/automoto/doomerang-arena/config"
	"github.com/yohamta/donburi"
)

// maxTriggerHistory bounds AnimatorData.Triggers.
const maxTriggerHistory = 16

type AnimatorData struct {
	Clip             string
	CurrentAnimation *animations.Animation
	// Triggers holds the most recent trigger names, oldest first.
	Triggers []string
	// Events collects markers fired this tick; drained by the FX driver.
	Events []string
}

// SetTrigger starts the clip named by trigger. Unknown triggers are recorded
// but leave the current clip playing.
func (a *AnimatorData) SetTrigger(trigger string) {
	if trigger == "" {
		return
	}
	a.Triggers = append(a.Triggers, trigger)
	if len(a.Triggers) > maxTriggerHistory {
		a.Triggers = a.Triggers[len(a.Triggers)-maxTriggerHistory:]
	}

	def, ok := config.CharacterAnimations[trigger]
	if !ok {
		return
	}
	a.Clip = trigger
	a.CurrentAnimation = animations.NewAnimation(def)
}

// LastTrigger returns the most recent trigger, or "".
func (a *AnimatorData) LastTrigger() string {
	if len(a.Triggers) == 0 {
		return ""
	}
	return a.Triggers[len(a.Triggers)-1]
}

var Animator = donburi.NewComponentType[AnimatorData]()
