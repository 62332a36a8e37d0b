package components

import (
	"github.com/automoto/doomerang-arena/config"
	"github.com/yohamta/donburi"
)

type CharacterData struct {
	Class     *config.CharacterClass // Cached reference to class configuration
	Direction float64                // -1 left, 1 right
}

var Character = donburi.NewComponentType[CharacterData]()
