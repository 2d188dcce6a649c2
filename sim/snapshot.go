package sim

import "github.com/automoto/jump/shared/gamemath"

// Role tells a renderer what an entity is.
type Role int

const (
	RolePlayer Role = iota
	RoleObstacle
)

func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleObstacle:
		return "obstacle"
	}
	return "unknown"
}

// Shape is the read-only geometry of one live entity.
type Shape struct {
	Role Role
	Rect gamemath.Rect
}

// Snapshot returns the player followed by the obstacles front to back.
func (s *Simulation) Snapshot() []Shape {
	return s.AppendSnapshot(make([]Shape, 0, 1+len(s.obstacles)))
}

// AppendSnapshot appends the Snapshot shapes to dst, so callers can reuse a buffer each frame.
func (s *Simulation) AppendSnapshot(dst []Shape) []Shape {
	dst = append(dst, Shape{Role: RolePlayer, Rect: s.player.Rect()})
	for _, o := range s.obstacles {
		dst = append(dst, Shape{Role: RoleObstacle, Rect: o.Rect()})
	}
	return dst
}
