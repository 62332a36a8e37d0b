package systems

import (
	"slices"

	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// ViewerSettings are the arena viewer toggles. Paused is not saved.
type ViewerSettings struct {
	ShowRanges bool `json:"showRanges"`
	Fullscreen bool `json:"fullscreen"`
	Paused     bool `json:"-"`
}

// Viewer holds the current viewer toggles.
var Viewer ViewerSettings

// selectedID is the hero the keyboard drives.
var selectedID esync.NetworkId

// NewViewerControlsSystem returns the system that lets the local user drive
// one hero and flip viewer toggles. F toggles fullscreen.
func NewViewerControlsSystem(log *zap.Logger) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		w := e.World
		input := getOrCreateInput(w)

		if GetAction(input, cfg.InputToggleRanges).JustPressed {
			Viewer.ShowRanges = !Viewer.ShowRanges
			SaveViewerSettings(log)
		}
		if GetAction(input, cfg.InputPause).JustPressed {
			Viewer.Paused = !Viewer.Paused
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyF) {
			Viewer.Fullscreen = !Viewer.Fullscreen
			ebiten.SetFullscreen(Viewer.Fullscreen)
			SaveViewerSettings(log)
		}

		hero, ok := selectedHero(w)
		if !ok || GetAction(input, cfg.InputNextHero).JustPressed {
			selectNextHero(w)
			return
		}
		if Viewer.Paused {
			return
		}
		driveHero(w, hero, input, log)
	}
}

func driveHero(w donburi.World, hero *donburi.Entry, input *components.InputData, log *zap.Logger) {
	ch := components.Character.Get(hero)
	player := NewActionPlayer(w, hero, Catalog, log)

	skills := []struct {
		id    cfg.InputID
		skill cfg.ActionType
	}{
		{cfg.InputSkill1, ch.Class.Skill1},
		{cfg.InputSkill2, ch.Class.Skill2},
		{cfg.InputSkill3, ch.Class.Skill3},
	}
	for _, s := range skills {
		if s.skill == cfg.ActionNone {
			continue
		}
		state := GetAction(input, s.id)
		if state.JustPressed {
			if req, ok := HeroRequest(w, hero, s.skill); ok {
				player.PlayAction(&req)
			}
		}
		if state.JustReleased {
			releaseCharge(hero, player, s.skill)
		}
	}

	if _, busy := player.GetActiveActionInfo(); busy {
		return
	}
	var x, y float64
	if input.Current[cfg.InputMoveLeft] {
		x--
	}
	if input.Current[cfg.InputMoveRight] {
		x++
	}
	if input.Current[cfg.InputMoveUp] {
		y--
	}
	if input.Current[cfg.InputMoveDown] {
		y++
	}
	MoveHero(hero, x, y)
}

// releaseCharge lets go of a held skill, reporting how far it had charged.
func releaseCharge(hero *donburi.Entry, player *ActionPlayer, skill cfg.ActionType) {
	active, ok := player.GetActiveActionInfo()
	if !ok || active.ActionType != skill {
		return
	}
	desc, ok := Catalog.Get(skill)
	if !ok || desc.ExecTicks() == 0 {
		return
	}
	q := components.ActionQueue.Get(hero)
	player.ReleaseCharge(float64(q.Ticks) / float64(desc.ExecTicks()))
}

func selectedHero(w donburi.World) (*donburi.Entry, bool) {
	if selectedID == 0 {
		return nil, false
	}
	entity := esync.FindByNetworkId(w, selectedID)
	if !w.Valid(entity) {
		return nil, false
	}
	entry := w.Entry(entity)
	if !components.Health.Get(entry).Alive() {
		return nil, false
	}
	return entry, true
}

// selectNextHero moves the selection to the next live hero by network id.
func selectNextHero(w donburi.World) {
	var ids []esync.NetworkId
	tags.Hero.Each(w, func(e *donburi.Entry) {
		if !components.Health.Get(e).Alive() {
			return
		}
		if id := esync.GetNetworkId(e); id != nil {
			ids = append(ids, *id)
		}
	})
	if len(ids) == 0 {
		selectedID = 0
		return
	}
	slices.Sort(ids)
	for _, id := range ids {
		if id > selectedID {
			selectedID = id
			return
		}
	}
	selectedID = ids[0]
}
