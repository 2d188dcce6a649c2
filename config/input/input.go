// Package input maps logical actions to keyboard keys and gamepad buttons.
package input

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionJump
	ActionQuit
	ActionDebug
	ActionAutoplay
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Config holds all input mappings
type Config struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input Config

func init() {
	Input = Config{
		Bindings: map[ActionID]InputBinding{
			ActionJump: {
				Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyUp, ebiten.KeyW},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
			ActionAutoplay: {
				Keys: []ebiten.Key{ebiten.KeyF4},
				// Y / Triangle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
		},
	}
}
