package netcomponents

import (
	"github.com/automoto/doomerang-arena/config"
	"github.com/yohamta/donburi"
)

// NetCharacterData tells clients what a replicated entity is.
type NetCharacterData struct {
	Class     config.CharacterType
	Direction float64
}

var NetCharacter = donburi.NewComponentType[NetCharacterData]()
