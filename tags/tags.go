package tags

import "github.com/yohamta/donburi"

var (
	Character = donburi.NewTag().SetName("Character")
	Hero      = donburi.NewTag().SetName("Hero")
	Monster   = donburi.NewTag().SetName("Monster")
	FXGraphic = donburi.NewTag().SetName("FXGraphic")
)

// Resolv tags for the arena space
const (
	ResolvCharacter = "character"
	ResolvFX        = "fx"
)
