// Package bot drives a session without a human: it watches the space in front of the
// player and triggers a jump once an obstacle gets close enough.
package bot

import (
	cfg "github.com/automoto/jump/config"
	"github.com/automoto/jump/sim"
)

// View is what the autopilot needs to see of a session.
type View interface {
	Grounded() bool
	ObstacleAhead(distance float64) *sim.Obstacle
}

// Bot decides, one tick at a time, whether to trigger a jump.
type Bot struct {
	tuning  cfg.BotDifficultyConfig
	pending int // ticks left before the planned jump, -1 when nothing is planned
}

// New creates an autopilot tuned for the given difficulty. Unknown difficulties fall
// back to normal.
func New(difficulty cfg.BotDifficulty) *Bot {
	tuning, ok := cfg.Bot.Difficulties[difficulty]
	if !ok {
		tuning = cfg.Bot.Difficulties[cfg.BotDifficultyNormal]
	}
	return NewWithTuning(tuning)
}

// NewWithTuning creates an autopilot with explicit tuning values.
func NewWithTuning(tuning cfg.BotDifficultyConfig) *Bot {
	return &Bot{tuning: tuning, pending: -1}
}

// Decide reports whether a jump should be triggered before the next tick.
func (b *Bot) Decide(v View) bool {
	if !v.Grounded() {
		b.pending = -1
		return false
	}

	if b.pending < 0 {
		if v.ObstacleAhead(b.tuning.TriggerDistance) == nil {
			return false
		}
		b.pending = b.tuning.ReactionDelay
	}

	if b.pending > 0 {
		b.pending--
		return false
	}
	b.pending = -1
	return true
}

// Reset forgets any planned jump.
func (b *Bot) Reset() {
	b.pending = -1
}
