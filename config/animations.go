package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32
	// Markers fire an animation event when the clip reaches the frame.
	Markers map[int]string
	// Hold stays on the last frame instead of returning to idle.
	Hold bool
}

// IdleAnim is what an animator falls back to when a clip finishes.
const IdleAnim = "Idle"

// Animation marker ids forwarded to playing FX.
const (
	MarkerImpact      = "Impact"
	MarkerLaunch      = "Launch"
	MarkerFootstep    = "Footstep"
	MarkerChargeReady = "ChargeReady"
)

// CharacterAnimations maps an animator trigger to its clip. Every character
// shares the same clip set; the viewer only renders the clip name and frame.
var CharacterAnimations = map[string]AnimationDef{
	IdleAnim:        {First: 0, Last: 5, Step: 1, Speed: 6},
	"Attack1":       {First: 0, Last: 7, Step: 1, Speed: 3, Markers: map[int]string{4: MarkerImpact}},
	"Attack2":       {First: 0, Last: 6, Step: 1, Speed: 3, Markers: map[int]string{3: MarkerImpact}},
	"Trample":       {First: 0, Last: 9, Step: 1, Speed: 4, Markers: map[int]string{2: MarkerFootstep, 6: MarkerFootstep}},
	"TrampleEnd":    {First: 0, Last: 3, Step: 1, Speed: 4},
	"Cast":          {First: 0, Last: 7, Step: 1, Speed: 4, Markers: map[int]string{5: MarkerLaunch}},
	"ChargeShield":  {First: 0, Last: 9, Step: 1, Speed: 6, Markers: map[int]string{9: MarkerChargeReady}, Hold: true},
	"ShieldRelease": {First: 0, Last: 3, Step: 1, Speed: 4, Hold: true},
	"ChargeBow":     {First: 0, Last: 11, Step: 1, Speed: 6, Markers: map[int]string{11: MarkerChargeReady}, Hold: true},
	"ReleaseBow":    {First: 0, Last: 4, Step: 1, Speed: 3, Markers: map[int]string{1: MarkerLaunch}},
	"Stealth":       {First: 0, Last: 5, Step: 1, Speed: 5},
	"Unstealth":     {First: 0, Last: 5, Step: 1, Speed: 5},
	"Stunned":       {First: 0, Last: 6, Step: 1, Speed: 5, Hold: true},
	"StunEnd":       {First: 0, Last: 3, Step: 1, Speed: 5},
	HitReact:        {First: 0, Last: 2, Step: 1, Speed: 5},
	Stagger:         {First: 0, Last: 4, Step: 1, Speed: 5},
}
