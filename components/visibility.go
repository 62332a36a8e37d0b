package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// VisibilityData is the cosmetic opacity of a character. It never affects
// gameplay.
type VisibilityData struct {
	Alpha float64
	Fade  *gween.Tween // Drives Alpha while non-nil
}

var Visibility = donburi.NewComponentType[VisibilityData]()
