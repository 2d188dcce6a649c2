package systems

import (
	"image/color"
	"testing"

	"github.com/automoto/jump/components"
	cfg "github.com/automoto/jump/config"
	"github.com/automoto/jump/config/input"
	"github.com/automoto/jump/sim"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func TestUpdateSessionTicksAndSpawns(t *testing.T) {
	e := newTestECS()
	entry := CreateSession(e, cfg.DefaultGame(), cfg.BotDifficultyNormal)
	session := components.Session.Get(entry)

	UpdateSession(e)

	if got := session.Sim.Stats().Ticks; got != 1 {
		t.Fatalf("ticks = %d, want 1", got)
	}
	if got := len(session.Sim.Obstacles()); got != 1 {
		t.Fatalf("obstacles = %d, want 1", got)
	}
	if session.Dt != 1.0/60 {
		t.Fatalf("dt = %v, want 1/60", session.Dt)
	}
}

func TestUpdateSessionJumpsOnPressEdgeOnly(t *testing.T) {
	e := newTestECS()
	session := components.Session.Get(CreateSession(e, cfg.DefaultGame(), cfg.BotDifficultyNormal))
	in := getOrCreateInput(e)

	in.Current[input.ActionJump] = true
	UpdateSession(e)
	if session.Sim.Grounded() {
		t.Fatal("press edge did not start a jump")
	}

	// Holding the key keeps Current set; the edge is gone.
	in.Previous = in.Current
	for !session.Sim.Grounded() {
		UpdateSession(e)
	}
	UpdateSession(e)
	if !session.Sim.Grounded() {
		t.Fatal("held key triggered another jump")
	}
}

func TestUpdateSessionAutoplay(t *testing.T) {
	e := newTestECS()
	session := components.Session.Get(CreateSession(e, cfg.DefaultGame(), cfg.BotDifficultyHard))
	GetOrCreateSettings(e).Autoplay = true

	for i := 0; i < 600; i++ {
		UpdateSession(e)
	}
	if !session.Sim.Alive() {
		t.Fatalf("autoplay died after %d ticks", session.Sim.Stats().Ticks)
	}
}

func TestDeathRaisesGameOver(t *testing.T) {
	e := newTestECS()
	game := cfg.DefaultGame()
	entry := sessionWith(e, sim.NewWithObstacles(game, sim.NewObstacle(410, game.HeightLevel, 10, 10)))

	UpdateSession(e)

	if components.Session.Get(entry).Sim.Alive() {
		t.Fatal("expected death")
	}
	goEntry, ok := components.GameOver.First(e.World)
	if !ok {
		t.Fatal("no game over overlay after death")
	}
	if got := components.GameOver.Get(goEntry).Stats.Ticks; got != 1 {
		t.Fatalf("game over stats ticks = %d, want 1", got)
	}

	// Further frames neither tick nor duplicate the overlay.
	UpdateSession(e)
	count := 0
	components.GameOver.Each(e.World, func(*donburi.Entry) { count++ })
	if count != 1 {
		t.Fatalf("game over overlays = %d, want 1", count)
	}
}

func TestGameOverQuitsAfterFade(t *testing.T) {
	e := newTestECS()
	CreateGameOver(e, sim.Stats{})
	in := getOrCreateInput(e)
	in.Current[input.ActionJump] = true

	UpdateGameOver(e)
	if QuitRequested(e) {
		t.Fatal("quit before the overlay finished fading in")
	}

	in.Previous = in.Current
	for i := 0; i < 120; i++ {
		UpdateGameOver(e)
	}
	if QuitRequested(e) {
		t.Fatal("held key quit without a new press")
	}
	in.Previous = [input.ActionCount]bool{}
	UpdateGameOver(e)
	if !QuitRequested(e) {
		t.Fatal("jump after the fade did not quit")
	}
}

func TestSettingsToggles(t *testing.T) {
	e := newTestECS()
	CreateSession(e, cfg.DefaultGame(), cfg.BotDifficultyNormal)
	in := getOrCreateInput(e)

	in.Current[input.ActionDebug] = true
	in.Current[input.ActionAutoplay] = true
	UpdateSettings(e)

	s := GetOrCreateSettings(e)
	if !s.Debug || !s.Autoplay || s.Quit {
		t.Fatalf("settings = %+v, want debug and autoplay on", *s)
	}

	in.Previous = in.Current
	in.Current = [input.ActionCount]bool{}
	in.Current[input.ActionQuit] = true
	UpdateSettings(e)
	if !QuitRequested(e) {
		t.Fatal("quit action not honoured")
	}
}

func TestFade(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 0, A: 200}
	if got := fade(c, 0.5); got != (color.RGBA{R: 100, G: 50, B: 0, A: 100}) {
		t.Fatalf("fade = %+v", got)
	}
	if got := fade(c, 0); got != (color.RGBA{}) {
		t.Fatalf("fade to zero = %+v", got)
	}
}

func TestRoleColor(t *testing.T) {
	if roleColor(sim.RolePlayer) != cfg.Render.PlayerColor {
		t.Error("player drawn in the wrong color")
	}
	if roleColor(sim.RoleObstacle) != cfg.Render.ObstacleColor {
		t.Error("obstacle drawn in the wrong color")
	}
}

func sessionWith(e *ecs.ECS, s *sim.Simulation) *donburi.Entry {
	entry := CreateSession(e, s.Config(), cfg.BotDifficultyNormal)
	components.Session.Get(entry).Sim = s
	return entry
}
