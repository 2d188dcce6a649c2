package gamemath

import "testing"

func TestRectIntersects(t *testing.T) {
	player := NewRect(400, 200, 20, 30)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap by one unit on both axes", NewRect(419, 229, 10, 10), true},
		{"fully inside", NewRect(405, 205, 5, 5), true},
		{"same rect", player, true},
		{"shares right edge", NewRect(420, 200, 10, 10), false},
		{"shares left edge", NewRect(390, 200, 10, 10), false},
		{"sits on top edge", NewRect(405, 230, 10, 10), false},
		{"touches top right corner", NewRect(420, 230, 10, 10), false},
		{"touches bottom left corner", NewRect(390, 190, 10, 10), false},
		{"far left", NewRect(0, 200, 10, 10), false},
		{"overlaps x only", NewRect(405, 300, 10, 10), false},
		{"overlaps y only", NewRect(500, 205, 10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := player.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Intersects(player); got != tt.want {
				t.Errorf("reverse Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestRectFlipY(t *testing.T) {
	r := NewRect(400, 200, 20, 30).FlipY(600)
	if r.X != 400 || r.Y != 370 || r.W != 20 || r.H != 30 {
		t.Fatalf("FlipY = %+v, want {400 370 20 30}", r)
	}
}

func TestStepEulerOrder(t *testing.T) {
	// Position must move by the velocity before gravity is applied.
	pos, vel := StepEuler(200, 450, -1500, 0.125)
	if pos != 256.25 {
		t.Errorf("pos = %v, want 256.25", pos)
	}
	if vel != 262.5 {
		t.Errorf("vel = %v, want 262.5", vel)
	}
}

func TestClampMin(t *testing.T) {
	tests := []struct {
		value, floor float64
		want         float64
		clamped      bool
	}{
		{210, 200, 210, false},
		{200, 200, 200, true},
		{185.5, 200, 200, true},
	}
	for _, tt := range tests {
		got, clamped := ClampMin(tt.value, tt.floor)
		if got != tt.want || clamped != tt.clamped {
			t.Errorf("ClampMin(%v, %v) = %v, %v; want %v, %v", tt.value, tt.floor, got, clamped, tt.want, tt.clamped)
		}
	}
}
