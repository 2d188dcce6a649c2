package gamemath

// StepEuler advances a position by the current velocity, then the velocity by the
// acceleration. Position uses the pre-update velocity, so jump arcs depend on this order.
func StepEuler(pos, vel, accel, dt float64) (float64, float64) {
	pos += vel * dt
	vel += accel * dt
	return pos, vel
}

// ClampMin returns value, or floor if value is at or below it. The bool reports a clamp.
func ClampMin(value, floor float64) (float64, bool) {
	if value <= floor {
		return floor, true
	}
	return value, false
}
