package components

import "github.com/yohamta/donburi"

// SettingsData holds host toggles that outlive a single frame.
type SettingsData struct {
	Debug    bool // draw the collision space
	Autoplay bool // autopilot presses jump
	Quit     bool // the scene should terminate the game
}

var Settings = donburi.NewComponentType[SettingsData]()
