package systems

import (
	"log"

	"github.com/automoto/jump/archetypes"
	"github.com/automoto/jump/bot"
	"github.com/automoto/jump/components"
	cfg "github.com/automoto/jump/config"
	"github.com/automoto/jump/config/input"
	"github.com/automoto/jump/sim"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the session entity for a fresh simulation.
func CreateSession(ecs *ecs.ECS, game cfg.GameConfig, difficulty cfg.BotDifficulty) *donburi.Entry {
	entry := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(entry, components.SessionData{
		Sim: sim.New(game),
		Bot: bot.New(difficulty),
		Dt:  1 / float64(game.FramerateLimit),
	})
	return entry
}

// UpdateSession forwards this frame's jump edge to the simulation and advances it by one
// fixed tick. On death it logs the outcome and raises the game over overlay.
func UpdateSession(ecs *ecs.ECS) {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	session := components.Session.Get(entry)
	if !session.Sim.Alive() {
		return
	}

	settings := GetOrCreateSettings(ecs)
	in := getOrCreateInput(ecs)

	jump := GetAction(in, input.ActionJump).JustPressed
	if settings.Autoplay && session.Bot.Decide(session.Sim) {
		jump = true
	}
	if jump {
		session.Sim.StartJump()
	}

	if session.Sim.Tick(session.Dt) {
		return
	}

	stats := session.Sim.Stats()
	log.Println("You died!")
	log.Printf("Survived %.2fs (%d ticks), cleared %d obstacles", stats.Elapsed, stats.Ticks, stats.Cleared)
	CreateGameOver(ecs, stats)
}
