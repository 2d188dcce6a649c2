// Package sim is the simulation core of the jump game: a player that jumps over a rolling
// queue of obstacles until one of them hits it. It has no graphics dependency; positions
// use y measured upward from the bottom of the play field.
package sim

import (
	"github.com/automoto/jump/shared/gamemath"
	"github.com/solarlune/resolv"
)

// Resolv tags for the collision space
const (
	TagPlayer   = "player"
	TagObstacle = "obstacle"
)

// spaceCellSize is the resolv cell size in pixels.
const spaceCellSize = 16

// Body is the geometry shared by every entity: position and size held by a resolv object.
type Body struct {
	*resolv.Object
}

func newBody(x, y, w, h float64, tags ...string) Body {
	return Body{Object: resolv.NewObject(x, y, w, h, tags...)}
}

// Rect returns the current bounding rectangle.
func (b Body) Rect() gamemath.Rect {
	return gamemath.NewRect(b.X, b.Y, b.W, b.H)
}
