package components

import (
	"github.com/automoto/jump/sim"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GameOverData drives the death overlay
type GameOverData struct {
	Fade  *gween.Tween // overlay opacity from 0 to 1
	Alpha float32
	Stats sim.Stats
}

// GameOver is the component type for the death overlay
var GameOver = donburi.NewComponentType[GameOverData]()
