package systems

import (
	"fmt"

	"github.com/automoto/jump/components"
	cfg "github.com/automoto/jump/config"
	"github.com/automoto/jump/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const hudLineHeight = 18

// DrawHUD renders survival time and cleared obstacles in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	stats := components.Session.Get(entry).Sim.Stats()
	face := fonts.Regular.Get()

	x := int(cfg.Render.HUDMargin)
	y := int(cfg.Render.HUDMargin) + hudLineHeight
	text.Draw(screen, fmt.Sprintf("Time %.1fs", stats.Elapsed), face, x, y, cfg.Render.HUDTextColor)
	text.Draw(screen, fmt.Sprintf("Cleared %d", stats.Cleared), face, x, y+hudLineHeight, cfg.Render.HUDTextColor)

	if GetOrCreateSettings(ecs).Autoplay {
		text.Draw(screen, "AUTOPILOT", face, x, y+2*hudLineHeight, cfg.Render.HUDTextColor)
	}
}
