package core

import "testing"

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b RectF
		want bool
	}{
		{"overlapping", NewRectF(0, 0, 10, 10), NewRectF(5, 5, 10, 10), true},
		{"touching edges", NewRectF(0, 0, 10, 10), NewRectF(10, 0, 10, 10), false},
		{"separate", NewRectF(0, 0, 5, 5), NewRectF(20, 20, 5, 5), false},
		{"contained", NewRectF(0, 0, 20, 20), NewRectF(5, 5, 2, 2), true},
		{"above", NewRectF(0, 10, 10, 5), NewRectF(0, 0, 10, 10), false},
		{"partial vertical", NewRectF(0, 0, 10, 10), NewRectF(2, 8, 4, 10), true},
		{"zero width", NewRectF(0, 0, 0, 10), NewRectF(0, 0, 10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Intersection is symmetric
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestRectFInset(t *testing.T) {
	r := NewRectF(100, 50, 60, 45)
	got := r.Inset(12)

	if got.X != 112 || got.Y != 62 {
		t.Errorf("Inset origin = (%v, %v), want (112, 62)", got.X, got.Y)
	}
	if got.W != 36 || got.H != 21 {
		t.Errorf("Inset size = (%v, %v), want (36, 21)", got.W, got.H)
	}
}

func TestRectFInsetCollapses(t *testing.T) {
	// Shrinking past the rectangle's own size yields an empty box that
	// intersects nothing, including itself.
	r := NewRectF(0, 0, 10, 10).Inset(8)
	if r.W != 0 || r.H != 0 {
		t.Errorf("over-inset rect should collapse, got %v", r)
	}
	if r.Intersects(NewRectF(-100, -100, 200, 200)) {
		t.Error("collapsed rect should not intersect anything")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5,0,10) = %d, want 5", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3,0,10) = %d, want 0", got)
	}
	if got := Clamp(99, 0, 10); got != 10 {
		t.Errorf("Clamp(99,0,10) = %d, want 10", got)
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(0.05, -0.4, 1.0); got != 0.05 {
		t.Errorf("ClampF(0.05,-0.4,1.0) = %v, want 0.05", got)
	}
	if got := ClampF(-2.0, -0.4, 1.0); got != -0.4 {
		t.Errorf("ClampF(-2.0,-0.4,1.0) = %v, want -0.4", got)
	}
	if got := ClampF(3.5, -0.4, 1.0); got != 1.0 {
		t.Errorf("ClampF(3.5,-0.4,1.0) = %v, want 1.0", got)
	}
}
