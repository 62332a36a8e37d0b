package config

import "image/color"

// FXPrefab describes a cosmetic object an action can spawn.
type FXPrefab struct {
	Name string
	// Graphic marks the prefab as a special FX graphic: it can be owned by a
	// playback instance, parented to an actor and shut down on demand.
	// Spawning a prefab without it is an authoring error.
	Graphic bool

	W, H  float64
	Color color.RGBA

	LifetimeFrames int // 0 = lives until shut down
	FadeFrames     int // Frames spent fading out after shutdown
}

// FXConfigData holds visual playback tuning
type FXConfigData struct {
	Prefabs map[string]FXPrefab

	StealthAlpha       float64 // Actor alpha while stealthed
	StealthFadeSeconds float64
	ShieldMinScale     float64 // Shield size at zero charge
	TargetReticleLift  float64 // Pixels above the target's head
}

// FX holds visual playback configuration
var FX FXConfigData

func init() {
	FX = FXConfigData{
		Prefabs: map[string]FXPrefab{
			"impact_spark":   {Name: "impact_spark", Graphic: true, W: 10, H: 10, Color: Yellow, LifetimeFrames: 12, FadeFrames: 6},
			"slash":          {Name: "slash", Graphic: true, W: 18, H: 4, Color: White, LifetimeFrames: 8, FadeFrames: 4},
			"arrow":          {Name: "arrow", Graphic: true, W: 10, H: 2, Color: White, FadeFrames: 2},
			"bolt":           {Name: "bolt", Graphic: true, W: 6, H: 6, Color: LightBlue, FadeFrames: 4},
			"dust_trail":     {Name: "dust_trail", Graphic: true, W: 28, H: 8, Color: Gray, FadeFrames: 20},
			"stun_stars":     {Name: "stun_stars", Graphic: true, W: 14, H: 6, Color: Yellow, FadeFrames: 6},
			"charge_glow":    {Name: "charge_glow", Graphic: true, W: 24, H: 24, Color: Orange, FadeFrames: 8},
			"shield_bubble":  {Name: "shield_bubble", Graphic: true, W: 36, H: 36, Color: LightBlue, FadeFrames: 12},
			"launch_flash":   {Name: "launch_flash", Graphic: true, W: 16, H: 16, Color: White, LifetimeFrames: 10, FadeFrames: 4},
			"fire_field":     {Name: "fire_field", Graphic: true, W: 64, H: 64, Color: Orange, FadeFrames: 10},
			"smoke_puff":     {Name: "smoke_puff", Graphic: true, W: 40, H: 40, Color: Gray, LifetimeFrames: 30, FadeFrames: 20},
			"target_reticle": {Name: "target_reticle", Graphic: true, W: 8, H: 8, Color: Red, FadeFrames: 4},
			// Decal is sound/decal data only and cannot be owned by an FX instance.
			"hit_decal": {Name: "hit_decal", Graphic: false, W: 8, H: 8, Color: Red},
		},
		StealthAlpha:       0.3,
		StealthFadeSeconds: 0.4,
		ShieldMinScale:     0.4,
		TargetReticleLift:  10,
	}
}
