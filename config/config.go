package config

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidConfig is wrapped by every GameConfig validation failure.
var ErrInvalidConfig = errors.New("invalid game config")

// GameConfig holds the constants of one session. Set once at session start, never mutated.
type GameConfig struct {
	// Ground
	HeightLevel float64 // px, y of the ground baseline measured upward

	// Player
	PlayerStartX    float64 // px
	PlayerWidth     float64 // px
	PlayerHeight    float64 // px
	PlayerJumpSpeed float64 // px/s, initial upward velocity of a jump

	// Obstacles
	ObstacleSpeed  float64 // px/s, negative (leftward)
	ObstacleWidth  float64 // px
	ObstacleHeight float64 // px
	SpawnSpacing   float64 // px of travel before the next obstacle spawns

	// Physics
	Gravity float64 // px/s/s, negative (downward)

	// Window
	WindowWidth    int // px
	WindowHeight   int // px
	FramerateLimit int // Hz
}

// DefaultGame returns the stock session constants.
func DefaultGame() GameConfig {
	return GameConfig{
		HeightLevel:     200,
		PlayerStartX:    400,
		PlayerWidth:     20,
		PlayerHeight:    30,
		PlayerJumpSpeed: 450,
		ObstacleSpeed:   -250,
		ObstacleWidth:   10,
		ObstacleHeight:  10,
		SpawnSpacing:    300,
		Gravity:         -1500,
		WindowWidth:     800,
		WindowHeight:    600,
		FramerateLimit:  60,
	}
}

// JumpApex returns the highest y the bottom of the player reaches during a jump.
func (c GameConfig) JumpApex() float64 {
	return c.HeightLevel + c.PlayerJumpSpeed*c.PlayerJumpSpeed/(-2*c.Gravity)
}

// Validate reports whether the host can run a session with these constants.
func (c GameConfig) Validate() error {
	switch {
	case c.PlayerWidth <= 0 || c.PlayerHeight <= 0:
		return fmt.Errorf("%w: player size %gx%g must be positive", ErrInvalidConfig, c.PlayerWidth, c.PlayerHeight)
	case c.ObstacleWidth <= 0 || c.ObstacleHeight <= 0:
		return fmt.Errorf("%w: obstacle size %gx%g must be positive", ErrInvalidConfig, c.ObstacleWidth, c.ObstacleHeight)
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return fmt.Errorf("%w: window %dx%d must be positive", ErrInvalidConfig, c.WindowWidth, c.WindowHeight)
	case c.FramerateLimit <= 0:
		return fmt.Errorf("%w: framerate limit %d must be positive", ErrInvalidConfig, c.FramerateLimit)
	case c.ObstacleSpeed >= 0:
		return fmt.Errorf("%w: obstacle speed %g must be negative", ErrInvalidConfig, c.ObstacleSpeed)
	case c.Gravity >= 0:
		return fmt.Errorf("%w: gravity %g must be negative", ErrInvalidConfig, c.Gravity)
	case c.PlayerJumpSpeed <= 0:
		return fmt.Errorf("%w: jump speed %g must be positive", ErrInvalidConfig, c.PlayerJumpSpeed)
	case c.SpawnSpacing <= 0:
		return fmt.Errorf("%w: spawn spacing %g must be positive", ErrInvalidConfig, c.SpawnSpacing)
	case c.HeightLevel < 0:
		return fmt.Errorf("%w: height level %g must not be negative", ErrInvalidConfig, c.HeightLevel)
	case c.PlayerStartX < 0 || c.PlayerStartX+c.PlayerWidth > float64(c.WindowWidth):
		return fmt.Errorf("%w: player at x=%g does not fit a %dpx wide window", ErrInvalidConfig, c.PlayerStartX, c.WindowWidth)
	case c.JumpApex()+c.PlayerHeight > float64(c.WindowHeight):
		return fmt.Errorf("%w: jump apex %g plus player height exceeds window height %d",
			ErrInvalidConfig, c.JumpApex(), c.WindowHeight)
	}
	return nil
}

// RenderConfig contains colors used by the renderers
type RenderConfig struct {
	BackgroundColor color.RGBA
	GroundColor     color.RGBA
	PlayerColor     color.RGBA
	ObstacleColor   color.RGBA
	HUDTextColor    color.RGBA
	HUDMargin       float64
}

// GameOverConfig contains death overlay configuration values
type GameOverConfig struct {
	OverlayColor color.RGBA // alpha is scaled by the fade
	TitleColor   color.RGBA
	TextColor    color.RGBA
	TitleY       float64
	StatsY       float64
	HintY        float64
	Title        string
	Hint         string
	FadeSeconds  float32
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowSpace bool // Outline every object in the collision space
	Autoplay  bool // Let the autopilot trigger jumps
}

// Global configuration instances
var Game GameConfig
var Render RenderConfig
var GameOver GameOverConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	Game = DefaultGame()

	Render = RenderConfig{
		BackgroundColor: Black,
		GroundColor:     Grey,
		PlayerColor:     Green,
		ObstacleColor:   Red,
		HUDTextColor:    White,
		HUDMargin:       10,
	}

	GameOver = GameOverConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   LightRed,
		TextColor:    White,
		TitleY:       240,
		StatsY:       290,
		HintY:        330,
		Title:        "YOU DIED",
		Hint:         "Press ESC or SPACE to exit",
		FadeSeconds:  0.75,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowSpace: false,
		Autoplay:  false,
	}
}
