package gamemath

import "testing"

func TestDecelerate(t *testing.T) {
	tests := []struct {
		name    string
		speed   float64
		want    float64
		epsilon float64
	}{
		{name: "positive", speed: 3, want: 2.8, epsilon: 0.4},
		{name: "negative", speed: -3, want: -2.8, epsilon: 0.4},
		{name: "snaps below epsilon", speed: 0.5, want: 0, epsilon: 0.4},
		{name: "snaps negative below epsilon", speed: -0.55, want: 0, epsilon: 0.4},
		{name: "zero stays zero", speed: 0, want: 0, epsilon: 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decelerate(tt.speed, 0.2, tt.epsilon)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Fatalf("Decelerate(%v) = %v, want %v", tt.speed, got, tt.want)
			}
		})
	}
}

func TestDecelerateReachesZero(t *testing.T) {
	speed := 3.0
	for i := 0; i < 100 && speed != 0; i++ {
		speed = Decelerate(speed, 0.2, 0.4)
	}
	if speed != 0 {
		t.Fatalf("speed did not settle, got %v", speed)
	}
}

func TestClampSpeed(t *testing.T) {
	tests := []struct {
		in, max, want float64
	}{
		{5, 3, 3},
		{-5, 3, -3},
		{1.5, 3, 1.5},
	}
	for _, tt := range tests {
		if got := ClampSpeed(tt.in, tt.max); got != tt.want {
			t.Errorf("ClampSpeed(%v, %v) = %v, want %v", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestFollowConverges(t *testing.T) {
	pos := 0.0
	for i := 0; i < 200; i++ {
		pos = Follow(pos, 100, 0.1)
	}
	if pos < 99.9 || pos > 100 {
		t.Fatalf("Follow did not converge: %v", pos)
	}
	if got := Follow(0, 100, 0.1); got != 10 {
		t.Fatalf("first step = %v, want 10", got)
	}
}

func TestClampCenter(t *testing.T) {
	tests := []struct {
		name                     string
		center, view, level, want float64
	}{
		{name: "inside", center: 200, view: 300, level: 800, want: 200},
		{name: "left edge", center: 10, view: 300, level: 800, want: 150},
		{name: "right edge", center: 790, view: 300, level: 800, want: 650},
		{name: "narrow level", center: 10, view: 300, level: 200, want: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampCenter(tt.center, tt.view, tt.level); got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScrollAndParallax(t *testing.T) {
	if got := ScrollOffset(160.7, 300); got != 10 {
		t.Fatalf("ScrollOffset = %v, want 10", got)
	}
	if got := Parallax(120, 40, 0.25); got != 110 {
		t.Fatalf("Parallax far = %v, want 110", got)
	}
	if got := Parallax(30, 40, 0.5); got != 10 {
		t.Fatalf("Parallax near = %v, want 10", got)
	}
}

func TestParallaxPosFollowsBothAxes(t *testing.T) {
	tests := []struct {
		name             string
		scrollX, scrollY float64
		factor           float64
		wantX, wantY     float64
	}{
		{name: "no scroll", factor: 0.5, wantX: 130, wantY: 90},
		{name: "far layer", scrollX: 40, scrollY: 20, factor: 0.25, wantX: 120, wantY: 85},
		{name: "near layer", scrollX: 40, scrollY: 20, factor: 0.5, wantX: 110, wantY: 80},
		{name: "vertical only", scrollY: -40, factor: 0.5, wantX: 130, wantY: 110},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := ParallaxPos(130, 90, tt.scrollX, tt.scrollY, tt.factor)
			if x != tt.wantX || y != tt.wantY {
				t.Fatalf("ParallaxPos = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestNextStep(t *testing.T) {
	steps := []float64{0, 0.25, 0.5, 0.75, 1}
	tests := []struct {
		current, want float64
	}{
		{0, 0.25},
		{0.5, 0.75},
		{1, 0},
		{0.3, 0.5},
		{7, 0},
	}
	for _, tt := range tests {
		if got := NextStep(steps, tt.current); got != tt.want {
			t.Errorf("NextStep(%v) = %v, want %v", tt.current, got, tt.want)
		}
	}
	if got := NextStep(nil, 3); got != 3 {
		t.Errorf("NextStep(nil) = %v, want 3", got)
	}
}
