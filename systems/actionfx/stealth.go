package actionfx

import (
	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// stealthFX fades the parent out behind a smoke puff once the action
// executes, and fades it back in when the stealth ends either way.
type stealthFX struct {
	Base
	hidden bool
}

func (s *stealthFX) Start() bool {
	s.trigger(s.Desc.Anim)
	return true
}

func (s *stealthFX) Update() bool {
	if !s.hidden && s.execReached() {
		s.hidden = true
		for _, prefab := range s.spawns() {
			s.spawnAt(prefab, s.parentPosition(), nil)
		}
		s.fadeTo(config.FX.StealthAlpha)
	}
	return true
}

func (s *stealthFX) Cancel() {
	if s.hidden {
		s.fadeTo(1.0)
		s.trigger(s.Desc.Anim2)
	}
	s.releaseAll()
}

func (s *stealthFX) fadeTo(alpha float64) {
	if s.Parent == nil || !s.Parent.Valid() || !s.Parent.HasComponent(components.Visibility) {
		return
	}
	vis := components.Visibility.Get(s.Parent)
	vis.Fade = gween.New(float32(vis.Alpha), float32(alpha), float32(config.FX.StealthFadeSeconds), ease.OutQuad)
}
