package sim

import (
	"github.com/automoto/jump/config"
	"github.com/automoto/jump/shared/gamemath"
)

// Player is the jumping entity. While Jumping is false, V is 0 and Y is the ground level.
type Player struct {
	Body
	V       float64 // px/s, positive is up
	Jumping bool

	ground    float64
	jumpSpeed float64
}

// NewPlayer creates a grounded player at the configured start position.
func NewPlayer(cfg config.GameConfig) *Player {
	return &Player{
		Body:      newBody(cfg.PlayerStartX, cfg.HeightLevel, cfg.PlayerWidth, cfg.PlayerHeight, TagPlayer),
		ground:    cfg.HeightLevel,
		jumpSpeed: cfg.PlayerJumpSpeed,
	}
}

// StartJump launches the player if it is on the ground. Airborne players are unaffected.
func (p *Player) StartJump() {
	if p.Jumping {
		return
	}
	p.Jumping = true
	p.V = p.jumpSpeed
}

// PhysicsStep integrates one tick of free flight. Grounded players do not move.
func (p *Player) PhysicsStep(dt, gravity float64) {
	if !p.Jumping {
		return
	}

	var landed bool
	p.Y, p.V = gamemath.StepEuler(p.Y, p.V, gravity, dt)
	if p.Y, landed = gamemath.ClampMin(p.Y, p.ground); landed {
		p.V = 0
		p.Jumping = false
	}
	p.Update()
}
