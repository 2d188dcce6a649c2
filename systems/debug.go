package systems

import (
	"image/color"

	"github.com/automoto/jump/components"
	"github.com/automoto/jump/shared/gamemath"
	"github.com/automoto/jump/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every object registered in the collision space.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	space := components.Session.Get(entry).Sim.Space()
	height := float64(screen.Bounds().Dy())

	for _, obj := range space.Objects() {
		r := gamemath.NewRect(obj.X, obj.Y, obj.W, obj.H).FlipY(height)

		// Determine color based on tags
		c := color.RGBA{G: 255, B: 255, A: 255} // Cyan default
		if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{B: 255, A: 255} // Blue
		} else if obj.HasTags(tags.ResolvObstacle) {
			c = color.RGBA{R: 255, G: 255, A: 255} // Yellow
		}

		x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}
}
