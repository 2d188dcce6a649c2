package scenes

import (
	"sync"

	"github.com/automoto/jump/archetypes"
	cfg "github.com/automoto/jump/config"
	"github.com/automoto/jump/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// JumpScene runs a single session of the jump game until the player quits.
type JumpScene struct {
	ecs        *ecs.ECS
	game       cfg.GameConfig
	difficulty cfg.BotDifficulty
	once       sync.Once
}

// NewJumpScene creates a scene for a session with the given constants and autopilot tuning
func NewJumpScene(game cfg.GameConfig, difficulty cfg.BotDifficulty) *JumpScene {
	return &JumpScene{game: game, difficulty: difficulty}
}

// Update advances the scene by one frame. It returns ebiten.Termination once the player asked to leave.
func (js *JumpScene) Update() error {
	js.once.Do(js.configure)
	js.ecs.Update()

	if systems.QuitRequested(js.ecs) {
		return ebiten.Termination
	}
	return nil
}

func (js *JumpScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Render.BackgroundColor)

	if js.ecs == nil {
		return
	}
	js.ecs.Draw(screen)
}

func (js *JumpScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input first, everything after reads this frame's actions
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateSession)
	ecs.AddSystem(systems.UpdateGameOver)

	ecs.AddRenderer(archetypes.Layer, systems.DrawWorld)
	ecs.AddRenderer(archetypes.Layer, systems.DrawHUD)
	ecs.AddRenderer(archetypes.Layer, systems.DrawDebug)
	ecs.AddRenderer(archetypes.Layer, systems.DrawGameOver)

	js.ecs = ecs

	systems.GetOrCreateSettings(js.ecs)
	systems.CreateSession(js.ecs, js.game, js.difficulty)
}
