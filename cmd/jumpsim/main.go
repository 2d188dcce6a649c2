package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/automoto/jump/bot"
	"github.com/automoto/jump/config"
	"github.com/automoto/jump/headless"
	"github.com/automoto/jump/sim"
)

func main() {
	game := config.DefaultGame()

	ticks := flag.Int("ticks", 3600, "Maximum number of ticks in fixed-step mode")
	realtime := flag.Bool("realtime", false, "Pace ticks with a wall-clock ticker")
	difficulty := flag.String("bot", "normal", "Autopilot difficulty: easy, normal, hard or none")
	jumpAt := flag.String("jump-at", "", "Comma-separated ticks to jump on (replaces the autopilot)")
	trace := flag.Bool("trace", false, "Log the player position on every tick")
	flag.IntVar(&game.FramerateLimit, "tickrate", game.FramerateLimit, "Ticks per second (dt = 1/tickrate)")
	flag.Float64Var(&game.Gravity, "gravity", game.Gravity, "Gravitational acceleration [px/s/s]")
	flag.Float64Var(&game.PlayerJumpSpeed, "jump-speed", game.PlayerJumpSpeed, "Jump initial velocity [px/s]")
	flag.Float64Var(&game.ObstacleSpeed, "obstacle-speed", game.ObstacleSpeed, "Obstacle speed [px/s]")
	flag.Float64Var(&game.SpawnSpacing, "spacing", game.SpawnSpacing, "Obstacle spawn spacing [px]")
	flag.Parse()

	if err := game.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	jumps, err := jumpSource(*jumpAt, *difficulty)
	if err != nil {
		log.Fatalf("Invalid jump source: %v", err)
	}

	loop := headless.NewLoop(sim.New(game), jumps, game.FramerateLimit)
	if *trace {
		loop.OnTick(func(tick int, s *sim.Simulation) {
			p := s.Player()
			log.Printf("tick %d: y=%.3f v=%.3f jumping=%v obstacles=%d", tick, p.Y, p.V, p.Jumping, len(s.Obstacles()))
		})
	}

	var res headless.Result
	if *realtime {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		res = loop.Run(ctx)
	} else {
		res = loop.RunFixed(*ticks)
	}

	report(res)
}

func jumpSource(jumpAt, difficulty string) (headless.JumpSource, error) {
	if jumpAt != "" {
		ticks, err := parseTicks(jumpAt)
		if err != nil {
			return nil, err
		}
		return headless.Schedule(ticks...), nil
	}
	if difficulty == "none" {
		return headless.Never(), nil
	}
	d, ok := config.ParseBotDifficulty(difficulty)
	if !ok {
		return nil, fmt.Errorf("unknown bot difficulty %q", difficulty)
	}
	return headless.Autopilot(bot.New(d)), nil
}

func parseTicks(list string) ([]int, error) {
	var ticks []int
	for _, field := range strings.Split(list, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("parse tick %q: %w", field, err)
		}
		ticks = append(ticks, n)
	}
	return ticks, nil
}

func report(res headless.Result) {
	st := res.Stats
	if !res.Alive {
		log.Println("You died!")
	}
	log.Printf("ticks=%d elapsed=%.2fs spawned=%d cleared=%d alive=%v",
		st.Ticks, st.Elapsed, st.Spawned, st.Cleared, res.Alive)
}
