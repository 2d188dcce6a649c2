package components

import (
	"github.com/automoto/jump/bot"
	"github.com/automoto/jump/sim"
	"github.com/yohamta/donburi"
)

// SessionData wraps the running simulation and the per-frame inputs the host feeds it.
type SessionData struct {
	Sim *sim.Simulation
	Bot *bot.Bot
	Dt  float64 // seconds per tick, 1/TPS

	// Reused every frame by the renderers
	Shapes []sim.Shape
}

var Session = donburi.NewComponentType[SessionData]()
