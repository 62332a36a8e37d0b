package components

import (
	"github.com/automoto/doomerang-arena/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FXGraphicData is a spawned cosmetic object. Its owner (an FX playback
// instance) decides when it shuts down; the effects system removes it once
// the fade-out finishes.
type FXGraphicData struct {
	Prefab config.FXPrefab

	// Parent, unless donburi.Null, is followed at Offset. A parent that is
	// removed detaches the graphic.
	Parent donburi.Entity
	Offset Vector

	Scale float64
	Alpha float64

	// Flight moves the graphic from From to To while non-nil.
	From, To Vector
	Flight   *gween.Tween
	Landed   bool

	Age          int
	ShuttingDown bool
	FadeLeft     int
}

var FXGraphic = donburi.NewComponentType[FXGraphicData]()
