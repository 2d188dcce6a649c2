package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/jump/archetypes"
	"github.com/automoto/jump/components"
	cfg "github.com/automoto/jump/config"
	"github.com/automoto/jump/config/input"
	"github.com/automoto/jump/fonts"
	"github.com/automoto/jump/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// CreateGameOver raises the death overlay for a finished session.
func CreateGameOver(ecs *ecs.ECS, stats sim.Stats) {
	if _, ok := components.GameOver.First(ecs.World); ok {
		return
	}
	entry := archetypes.GameOver.Spawn(ecs)
	components.GameOver.SetValue(entry, components.GameOverData{
		Fade:  gween.New(0, 1, cfg.GameOver.FadeSeconds, ease.OutQuad),
		Stats: stats,
	})
}

// UpdateGameOver fades the overlay in and quits once the player confirms.
func UpdateGameOver(ecs *ecs.ECS) {
	entry, ok := components.GameOver.First(ecs.World)
	if !ok {
		return
	}
	gameOver := components.GameOver.Get(entry)

	alpha, finished := gameOver.Fade.Update(float32(1 / float64(ebiten.TPS())))
	gameOver.Alpha = alpha
	if !finished {
		return
	}

	if GetAction(getOrCreateInput(ecs), input.ActionJump).JustPressed {
		GetOrCreateSettings(ecs).Quit = true
	}
}

// DrawGameOver renders the death overlay
func DrawGameOver(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.GameOver.First(ecs.World)
	if !ok {
		return
	}
	gameOver := components.GameOver.Get(entry)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height),
		fade(cfg.GameOver.OverlayColor, gameOver.Alpha), false)

	titleFont := fonts.Title.Get()
	titleWidth := text.BoundString(titleFont, cfg.GameOver.Title).Dx()
	text.Draw(screen, cfg.GameOver.Title, titleFont, int((width-float64(titleWidth))/2),
		int(cfg.GameOver.TitleY), fade(cfg.GameOver.TitleColor, gameOver.Alpha))

	face := fonts.Regular.Get()
	stats := fmt.Sprintf("Survived %.1fs, cleared %d", gameOver.Stats.Elapsed, gameOver.Stats.Cleared)
	drawCentered(screen, stats, face, width, cfg.GameOver.StatsY, fade(cfg.GameOver.TextColor, gameOver.Alpha))
	drawCentered(screen, cfg.GameOver.Hint, face, width, cfg.GameOver.HintY, fade(cfg.GameOver.TextColor, gameOver.Alpha))
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, width, y float64, c color.Color) {
	w := text.BoundString(face, s).Dx()
	text.Draw(screen, s, face, int((width-float64(w))/2), int(y), c)
}

// fade scales a premultiplied color by alpha in [0, 1].
func fade(c color.RGBA, alpha float32) color.RGBA {
	scale := func(v uint8) uint8 { return uint8(float32(v) * alpha) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}
