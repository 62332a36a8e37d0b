package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/fonts"
	"github.com/automoto/doomerang-arena/systems/actionfx"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	deadColor   = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	barBack     = color.RGBA{R: 40, G: 0, B: 0, A: 255}
	rangeColor  = color.RGBA{R: 255, G: 255, B: 255, A: 40}
	labelOffset = 14.0
)

// DrawCharacters renders every character as a tinted box with its health
// bar and current clip.
func DrawCharacters(ecs *ecs.ECS, screen *ebiten.Image) {
	showRanges := Viewer.ShowRanges
	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		ch := components.Character.Get(e)
		health := components.Health.Get(e)

		alpha := 1.0
		if e.HasComponent(components.Visibility) {
			alpha = components.Visibility.Get(e).Alpha
		}
		body := ch.Class.Color
		if !health.Alive() {
			body = deadColor
		}
		vector.DrawFilledRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), fade(body, alpha), false)

		if showRanges && health.Alive() {
			mid := o.Midpoint()
			if desc, ok := cfg.Actions.Get(ch.Class.Skill1); ok && desc.Range > 0 {
				vector.StrokeCircle(screen, float32(mid.X), float32(mid.Y), float32(desc.Range), 1, rangeColor, false)
			}
		}

		// Health bar
		if health.Max > 0 {
			pct := float32(health.Current) / float32(health.Max)
			vector.DrawFilledRect(screen, float32(o.X), float32(o.Y-4), float32(o.W), 2, barBack, false)
			vector.DrawFilledRect(screen, float32(o.X), float32(o.Y-4), float32(o.W)*pct, 2, cfg.BrightGreen, false)
		}

		if e.HasComponent(components.Animator) {
			anim := components.Animator.Get(e)
			label := anim.Clip
			if e.HasComponent(actionfx.Component) {
				if n := len(actionfx.Component.Get(e).Playing()); n > 0 {
					label = fmt.Sprintf("%s (%d fx)", label, n)
				}
			}
			drawLabel(screen, label, o.X, o.Y-labelOffset, cfg.White)
		}
	})
}

// DrawFXGraphics renders spawned graphics on top of characters.
func DrawFXGraphics(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.FXGraphic.Each(ecs.World, func(e *donburi.Entry) {
		g := components.FXGraphic.Get(e)
		mid := components.Object.Get(e).Midpoint()
		w := g.Prefab.W * g.Scale
		h := g.Prefab.H * g.Scale
		vector.DrawFilledRect(screen, float32(mid.X-w/2), float32(mid.Y-h/2), float32(w), float32(h), fade(g.Prefab.Color, g.Alpha), false)
	})
}

// DrawHUD prints the controls and the selected hero.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	msg := "1/2/3 skills  TAB next hero  R ranges  P pause"
	if Viewer.Paused {
		msg += "  [paused]"
	}
	drawLabel(screen, msg, 4, 4, cfg.Gray)
	if hero, ok := selectedHero(ecs.World); ok {
		ch := components.Character.Get(hero)
		o := components.Object.Get(hero)
		vector.StrokeRect(screen, float32(o.X-2), float32(o.Y-2), float32(o.W+4), float32(o.H+4), 1, cfg.Yellow, false)
		drawLabel(screen, "controlling "+ch.Class.Type.String(), 4, 18, cfg.Yellow)
	}
}

func drawLabel(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, fonts.Label.Get(), op)
}

// fade scales a colour by alpha, premultiplied.
func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
