package config

import (
	"image/color"
	"math"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer used by the arena.
const Default ecs.LayerID = 0

// TickRate is the fixed simulation rate shared by server and client.
const TickRate = 60

// Animator triggers shared by several actions
const (
	HitReact = "HitReact1"
	Stagger  = "Stagger"
)

// SecondsToTicks rounds a duration in seconds up to whole ticks.
func SecondsToTicks(seconds float64) int {
	if seconds <= 0 {
		return 0
	}
	return int(math.Ceil(seconds * TickRate))
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// ArenaSpawn places one character when the arena scene starts.
type ArenaSpawn struct {
	Class CharacterType
	X, Y  float64
}

// ArenaConfig describes the demo arena.
type ArenaConfig struct {
	CellSize int
	Spawns   []ArenaSpawn
	// HeroSpawn is where heroes joining a server appear.
	HeroSpawn struct{ X, Y float64 }
}

// Global configuration instances
var C *Config
var Arena ArenaConfig

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow      = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange      = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red         = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BrightGreen = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightGreen  = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue        = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple      = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightRed    = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Magenta     = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Gray        = color.RGBA{R: 140, G: 140, B: 140, A: 255}
	LightBlue   = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Arena = ArenaConfig{
		CellSize: 16,
		Spawns: []ArenaSpawn{
			{Class: CharacterTank, X: 120, Y: 180},
			{Class: CharacterArcher, X: 80, Y: 120},
			{Class: CharacterMage, X: 80, Y: 240},
			{Class: CharacterRogue, X: 140, Y: 280},
			{Class: CharacterImp, X: 460, Y: 100},
			{Class: CharacterImp, X: 500, Y: 260},
			{Class: CharacterImpBoss, X: 560, Y: 180},
		},
	}
	Arena.HeroSpawn.X, Arena.HeroSpawn.Y = 100, 180
}
