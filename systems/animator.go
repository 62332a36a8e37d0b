package systems

import (
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimators advances every animator clip and records the markers it
// passes this tick. Clips that finish return to idle unless they hold.
func UpdateAnimators(e *ecs.ECS) {
	updateAnimators(e.World)
}

func updateAnimators(w donburi.World) {
	components.Animator.Each(w, func(entry *donburi.Entry) {
		anim := components.Animator.Get(entry)
		anim.Events = anim.Events[:0]
		clip := anim.CurrentAnimation
		if clip == nil {
			return
		}
		if marker, ok := clip.Update(); ok {
			anim.Events = append(anim.Events, marker)
		}
		if clip.Looped && !clip.FreezeOnComplete && anim.Clip != cfg.IdleAnim {
			anim.SetTrigger(cfg.IdleAnim)
		}
	})
}
