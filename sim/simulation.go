package sim

import (
	"math"

	"github.com/automoto/jump/config"
	"github.com/solarlune/resolv"
)

// Stats counts what happened during a session.
type Stats struct {
	Ticks   int
	Elapsed float64 // simulated seconds
	Spawned int
	Cleared int // obstacles that left the screen on the left
}

// Simulation owns the player and the obstacle queue and advances them tick by tick.
// It is not safe for concurrent use.
type Simulation struct {
	cfg       config.GameConfig
	space     *resolv.Space
	player    *Player
	obstacles []*Obstacle // front is the oldest, leftmost obstacle
	lookahead *resolv.Object
	alive     bool
	stats     Stats
}

// New creates a session with a grounded player and no obstacles.
func New(cfg config.GameConfig) *Simulation {
	return NewWithObstacles(cfg)
}

// NewWithObstacles creates a session whose queue starts with the given obstacles,
// front to back.
func NewWithObstacles(cfg config.GameConfig, obstacles ...*Obstacle) *Simulation {
	s := &Simulation{
		cfg:    cfg,
		space:  newSpace(cfg),
		player: NewPlayer(cfg),
		alive:  true,
	}
	s.space.Add(s.player.Object)

	// Never added to the space, so it only queries and is never found itself.
	s.lookahead = resolv.NewObject(0, 0, 1, 1)
	s.lookahead.Space = s.space
	for _, o := range obstacles {
		s.push(o)
	}
	return s
}

// newSpace covers the window plus the spawn column just past its right edge.
func newSpace(cfg config.GameConfig) *resolv.Space {
	width := cfg.WindowWidth + int(math.Ceil(cfg.ObstacleWidth)) + spaceCellSize
	return resolv.NewSpace(width, cfg.WindowHeight, spaceCellSize, spaceCellSize)
}

// Tick advances the session by dt seconds and reports whether the player is still alive.
// Once a collision has happened every further call returns false without changing state.
func (s *Simulation) Tick(dt float64) bool {
	if !s.alive {
		return false
	}
	s.stats.Ticks++
	s.stats.Elapsed += dt

	s.player.PhysicsStep(dt, s.cfg.Gravity)

	for _, o := range s.obstacles {
		o.Advance(dt, s.cfg.ObstacleSpeed)
		if s.hits(o) {
			s.alive = false
			return false
		}
	}

	s.despawn()
	s.spawn()
	return true
}

// StartJump forwards a jump trigger to the player.
func (s *Simulation) StartJump() {
	s.player.StartJump()
}

// hits tests the exact rectangles. The space is cell-granular and only serves lookahead
// queries, so it is not consulted here.
func (s *Simulation) hits(o *Obstacle) bool {
	return o.Rect().Intersects(s.player.Rect())
}

func (s *Simulation) despawn() {
	for len(s.obstacles) > 0 && s.obstacles[0].X < 0 {
		s.space.Remove(s.obstacles[0].Object)
		s.obstacles[0] = nil
		s.obstacles = s.obstacles[1:]
		s.stats.Cleared++
	}
}

// spawn appends at most one obstacle at the right edge of the window.
func (s *Simulation) spawn() {
	edge := float64(s.cfg.WindowWidth)
	if n := len(s.obstacles); n > 0 && s.obstacles[n-1].X >= edge-s.cfg.SpawnSpacing {
		return
	}
	s.push(NewObstacle(edge, s.cfg.HeightLevel, s.cfg.ObstacleWidth, s.cfg.ObstacleHeight))
	s.stats.Spawned++
}

func (s *Simulation) push(o *Obstacle) {
	s.space.Add(o.Object)
	s.obstacles = append(s.obstacles, o)
}

// ObstacleAhead returns the nearest obstacle in the player's rows whose left edge is
// between 0 and distance px (inclusive) in front of the player's right edge, or nil.
func (s *Simulation) ObstacleAhead(distance float64) *Obstacle {
	if distance < 0 {
		return nil
	}

	// The probe spans [front, front+distance]. resolv maps a box to cells up to X+W-1,
	// so one extra pixel keeps an obstacle exactly distance away inside the query.
	front := s.player.Rect().Right()
	s.lookahead.X = front
	s.lookahead.Y = s.player.Y
	s.lookahead.W = distance + 1
	s.lookahead.H = s.player.H

	check := s.lookahead.Check(0, 0, TagObstacle)
	if check == nil {
		return nil
	}

	var nearest *Obstacle
	for _, obj := range check.ObjectsByTags(TagObstacle) {
		o, ok := obj.Data.(*Obstacle)
		if !ok {
			continue
		}
		gap := o.X - front
		if gap < 0 || gap > distance {
			continue
		}
		if nearest == nil || o.X < nearest.X {
			nearest = o
		}
	}
	return nearest
}

// Alive reports whether no collision has happened yet.
func (s *Simulation) Alive() bool {
	return s.alive
}

// Grounded reports whether the player stands on the ground level.
func (s *Simulation) Grounded() bool {
	return !s.player.Jumping
}

// Player returns the session's player. Callers must not mutate it.
func (s *Simulation) Player() *Player {
	return s.player
}

// Obstacles returns the obstacle queue front to back. Callers must not mutate it.
func (s *Simulation) Obstacles() []*Obstacle {
	return s.obstacles
}

// Space returns the collision space holding the player and every live obstacle.
func (s *Simulation) Space() *resolv.Space {
	return s.space
}

// Config returns the constants the session was created with.
func (s *Simulation) Config() config.GameConfig {
	return s.cfg
}

// Stats returns the session counters.
func (s *Simulation) Stats() Stats {
	return s.stats
}
