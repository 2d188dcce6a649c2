package headless

import (
	"github.com/automoto/jump/bot"
	"github.com/automoto/jump/sim"
)

// JumpSource decides whether a jump trigger is delivered before a tick. Ticks count from 1.
type JumpSource interface {
	ShouldJump(tick int, s *sim.Simulation) bool
}

// JumpSourceFunc adapts a function to JumpSource.
type JumpSourceFunc func(tick int, s *sim.Simulation) bool

func (f JumpSourceFunc) ShouldJump(tick int, s *sim.Simulation) bool {
	return f(tick, s)
}

// Never delivers no jump at all.
func Never() JumpSource {
	return JumpSourceFunc(func(int, *sim.Simulation) bool { return false })
}

// Autopilot lets a bot decide.
func Autopilot(b *bot.Bot) JumpSource {
	return JumpSourceFunc(func(_ int, s *sim.Simulation) bool { return b.Decide(s) })
}

// Schedule triggers a jump before each of the given ticks.
func Schedule(ticks ...int) JumpSource {
	at := make(map[int]struct{}, len(ticks))
	for _, t := range ticks {
		at[t] = struct{}{}
	}
	return JumpSourceFunc(func(tick int, _ *sim.Simulation) bool {
		_, ok := at[tick]
		return ok
	})
}
