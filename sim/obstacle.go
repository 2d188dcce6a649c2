package sim

// Obstacle moves left at the simulation-wide obstacle speed. Its size never changes.
type Obstacle struct {
	Body
}

// NewObstacle creates an obstacle with its lower-left corner at x, y.
func NewObstacle(x, y, w, h float64) *Obstacle {
	o := &Obstacle{Body: newBody(x, y, w, h, TagObstacle)}
	o.Data = o
	return o
}

// Advance moves the obstacle horizontally by speed*dt.
func (o *Obstacle) Advance(dt, speed float64) {
	o.X += speed * dt
	o.Update()
}
