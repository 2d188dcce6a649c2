package tags

import (
	"github.com/automoto/jump/sim"
	"github.com/yohamta/donburi"
)

var (
	Session  = donburi.NewTag().SetName("Session")
	GameOver = donburi.NewTag().SetName("GameOver")
)

// Resolv tags for the collision space
const (
	ResolvPlayer   = sim.TagPlayer
	ResolvObstacle = sim.TagObstacle
)
