package config

import "github.com/hajimehoshi/ebiten/v2"

// InputID represents a logical viewer control
type InputID int

const (
	InputNone InputID = iota
	InputMoveLeft
	InputMoveRight
	InputMoveUp
	InputMoveDown
	InputSkill1
	InputSkill2
	InputSkill3
	InputNextHero
	InputToggleRanges
	InputPause
	InputCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for a control
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[InputID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[InputID]InputBinding{
			InputMoveLeft: {
				Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
			},
			InputMoveRight: {
				Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
			},
			InputMoveUp: {
				Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
			},
			InputMoveDown: {
				Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
			},
			InputSkill1: {
				Keys: []ebiten.Key{ebiten.Key1, ebiten.KeyZ},
				// X / Square button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
			},
			InputSkill2: {
				Keys: []ebiten.Key{ebiten.Key2, ebiten.KeyX},
				// Y / Triangle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
			},
			InputSkill3: {
				Keys: []ebiten.Key{ebiten.Key3, ebiten.KeyC},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
			},
			InputNextHero: {
				Keys:                   []ebiten.Key{ebiten.KeyTab},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight},
			},
			InputToggleRanges: {
				Keys:                   []ebiten.Key{ebiten.KeyR},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
			},
			InputPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
			},
		},
	}
}
