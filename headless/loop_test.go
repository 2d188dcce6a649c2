package headless

import (
	"context"
	"testing"
	"time"

	"github.com/automoto/jump/bot"
	"github.com/automoto/jump/config"
	"github.com/automoto/jump/sim"
)

func TestRunFixedStandingStillDies(t *testing.T) {
	l := NewLoop(sim.New(config.DefaultGame()), Never(), 60)

	res := l.RunFixed(10_000)
	if res.Alive {
		t.Fatal("player survived without jumping")
	}
	// First obstacle spawns on tick 1 and needs 380 px at 250 px/s to reach the player.
	if res.Stats.Ticks < 90 || res.Stats.Ticks > 95 {
		t.Fatalf("died on tick %d, want about 93", res.Stats.Ticks)
	}
}

func TestRunFixedAutopilotSurvives(t *testing.T) {
	l := NewLoop(sim.New(config.DefaultGame()), Autopilot(bot.New(config.BotDifficultyHard)), 60)

	res := l.RunFixed(3600)
	if !res.Alive {
		t.Fatalf("autopilot died after %d ticks", res.Stats.Ticks)
	}
	if res.Stats.Ticks != 3600 {
		t.Fatalf("ran %d ticks, want 3600", res.Stats.Ticks)
	}
	if res.Stats.Cleared < 10 {
		t.Fatalf("cleared %d obstacles in a minute, want at least 10", res.Stats.Cleared)
	}
}

func TestScheduleJumpsOnGivenTicks(t *testing.T) {
	s := sim.New(config.DefaultGame())
	l := NewLoop(s, Schedule(3), 60)

	var airborneAt []int
	l.OnTick(func(tick int, s *sim.Simulation) {
		if !s.Grounded() {
			airborneAt = append(airborneAt, tick)
		}
	})
	l.RunFixed(5)

	if len(airborneAt) == 0 || airborneAt[0] != 3 {
		t.Fatalf("airborne on ticks %v, want first on tick 3", airborneAt)
	}
}

func TestNilJumpSourceMeansNever(t *testing.T) {
	l := NewLoop(sim.New(config.DefaultGame()), nil, 60)
	l.RunFixed(10)
	if !l.sim.Grounded() {
		t.Fatal("player jumped without a jump source")
	}
}

func TestRunStopsOnDeath(t *testing.T) {
	cfg := config.DefaultGame()
	s := sim.NewWithObstacles(cfg, sim.NewObstacle(410, cfg.HeightLevel, 10, 10))
	l := NewLoop(s, Never(), 1000)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res := l.Run(ctx)
	if res.Alive || res.Stats.Ticks != 1 {
		t.Fatalf("Run = %+v, want death on tick 1", res)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	l := NewLoop(sim.New(config.DefaultGame()), Never(), 1000)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := l.Run(ctx)
	if !res.Alive {
		t.Fatal("cancelled run reported death")
	}
}

func TestRunStopsOnStop(t *testing.T) {
	l := NewLoop(sim.New(config.DefaultGame()), Never(), 1000)
	l.Stop()
	l.Stop()

	res := l.Run(context.Background())
	if !res.Alive {
		t.Fatal("stopped run reported death")
	}
}
