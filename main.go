package main

import (
	"errors"
	"flag"
	"log"

	_ "github.com/ebitengine/hideconsole"

	"github.com/automoto/jump/config"
	"github.com/automoto/jump/fonts"
	"github.com/automoto/jump/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(difficulty config.BotDifficulty) *Game {
	return &Game{
		scene: scenes.NewJumpScene(config.Game, difficulty),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps the logical screen at the configured window size; ebiten scales it to the window.
func (g *Game) Layout(width, height int) (int, int) {
	return config.Game.WindowWidth, config.Game.WindowHeight
}

func main() {
	debug := flag.Bool("debug", false, "Outline collision space objects")
	autoplay := flag.Bool("autoplay", false, "Start with the autopilot jumping")
	botName := flag.String("bot", "normal", "Autopilot difficulty: easy, normal, hard")
	fps := flag.Int("fps", config.Game.FramerateLimit, "Ticks per second")
	gravity := flag.Float64("gravity", config.Game.Gravity, "Gravity in px/s/s (negative)")
	jumpSpeed := flag.Float64("jump-speed", config.Game.PlayerJumpSpeed, "Initial jump velocity in px/s")
	obstacleSpeed := flag.Float64("obstacle-speed", config.Game.ObstacleSpeed, "Obstacle velocity in px/s (negative)")
	spacing := flag.Float64("spacing", config.Game.SpawnSpacing, "Distance in px between spawned obstacles")
	flag.Parse()

	difficulty, ok := config.ParseBotDifficulty(*botName)
	if !ok {
		log.Fatalf("Unknown bot difficulty %q", *botName)
	}

	config.Debug.ShowSpace = *debug
	config.Debug.Autoplay = *autoplay
	config.Game.FramerateLimit = *fps
	config.Game.Gravity = *gravity
	config.Game.PlayerJumpSpeed = *jumpSpeed
	config.Game.ObstacleSpeed = *obstacleSpeed
	config.Game.SpawnSpacing = *spacing

	if err := config.Game.Validate(); err != nil {
		log.Fatalf("Refusing to start: %v", err)
	}
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.Game.WindowWidth, config.Game.WindowHeight)
	ebiten.SetWindowTitle("Jump!")
	ebiten.SetTPS(config.Game.FramerateLimit)

	if err := ebiten.RunGame(NewGame(difficulty)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
