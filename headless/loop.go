// Package headless runs a Simulation without a window, either as fast as possible with a
// fixed time step or paced by a wall-clock ticker.
package headless

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/automoto/jump/sim"
)

// Result is the outcome of a run.
type Result struct {
	Alive bool
	Stats sim.Stats
}

// Loop feeds a fixed dt of 1/tickRate and the jump triggers of a JumpSource into a session.
type Loop struct {
	sim      *sim.Simulation
	jumps    JumpSource
	tickRate int
	dt       float64
	tick     int
	onTick   func(tick int, s *sim.Simulation)
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewLoop(s *sim.Simulation, jumps JumpSource, tickRate int) *Loop {
	if jumps == nil {
		jumps = Never()
	}
	return &Loop{
		sim:      s,
		jumps:    jumps,
		tickRate: tickRate,
		dt:       1 / float64(tickRate),
		stopChan: make(chan struct{}),
	}
}

// OnTick registers a callback invoked after every tick the player survives.
func (l *Loop) OnTick(fn func(tick int, s *sim.Simulation)) {
	l.onTick = fn
}

// Step delivers the pending jump trigger, advances one tick and reports whether the
// player is alive.
func (l *Loop) Step() bool {
	l.tick++
	if l.jumps.ShouldJump(l.tick, l.sim) {
		l.sim.StartJump()
	}
	if !l.sim.Tick(l.dt) {
		return false
	}
	if l.onTick != nil {
		l.onTick(l.tick, l.sim)
	}
	return true
}

// RunFixed steps until the player dies or maxTicks ticks have passed, without sleeping.
func (l *Loop) RunFixed(maxTicks int) Result {
	for i := 0; i < maxTicks; i++ {
		if !l.Step() {
			break
		}
	}
	return l.result()
}

// Run steps once per ticker period until the player dies, ctx is done or Stop is called.
func (l *Loop) Run(ctx context.Context) Result {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", l.tickRate)

	for {
		select {
		case <-ctx.Done():
			log.Println("Game loop cancelled")
			return l.result()
		case <-l.stopChan:
			log.Println("Game loop stopped")
			return l.result()
		case <-ticker.C:
			if !l.Step() {
				return l.result()
			}
		}
	}
}

// Stop ends a running Run. It is safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}

func (l *Loop) result() Result {
	return Result{Alive: l.sim.Alive(), Stats: l.sim.Stats()}
}
