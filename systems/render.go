package systems

import (
	"image/color"

	"github.com/automoto/jump/components"
	cfg "github.com/automoto/jump/config"
	"github.com/automoto/jump/shared/gamemath"
	"github.com/automoto/jump/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawWorld renders the ground line and every live entity as a filled rectangle.
// The simulation measures y upward from the bottom; the screen measures it downward.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	session := components.Session.Get(entry)
	game := session.Sim.Config()
	height := float64(screen.Bounds().Dy())

	// Ground surface under the player's feet
	ground := gamemath.NewRect(0, game.HeightLevel-1, float64(screen.Bounds().Dx()), 1).FlipY(height)
	fillRect(screen, ground, cfg.Render.GroundColor)

	session.Shapes = session.Sim.AppendSnapshot(session.Shapes[:0])
	for _, shape := range session.Shapes {
		fillRect(screen, shape.Rect.FlipY(height), roleColor(shape.Role))
	}
}

func roleColor(role sim.Role) color.RGBA {
	if role == sim.RolePlayer {
		return cfg.Render.PlayerColor
	}
	return cfg.Render.ObstacleColor
}

func fillRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}
