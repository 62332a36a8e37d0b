package factory

import (
	"github.com/automoto/doomerang-arena/archetypes"
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace adds the arena collision space sized to the screen.
func CreateSpace(w donburi.World) *donburi.Entry {
	space := archetypes.Space.SpawnInWorld(w)
	cell := cfg.Arena.CellSize
	spaceData := resolv.NewSpace(cfg.C.Width, cfg.C.Height, cell, cell)
	components.Space.Set(space, spaceData)
	return space
}
