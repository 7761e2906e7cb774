package vmath

import (
	"math"
	"testing"
)

func TestV2NormalizeZero(t *testing.T) {
	n, ok := V2Normalize(Vec2{})
	if ok {
		t.Error("Expected ok=false for zero vector")
	}
	if n != (Vec2{}) {
		t.Errorf("Expected zero result, got %+v", n)
	}
}

func TestV2NormalizeUnit(t *testing.T) {
	tests := []Vec2{{3, 4}, {-5, 0}, {0, 0.001}, {1e6, -1e6}}
	for _, v := range tests {
		n, ok := V2Normalize(v)
		if !ok {
			t.Fatalf("Expected ok for %+v", v)
		}
		if math.Abs(V2Mag(n)-1) > 1e-9 {
			t.Errorf("Normalize(%+v) magnitude = %f, want 1", v, V2Mag(n))
		}
	}
}

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlap", NewRect(5, 5, 10, 10), true},
		{"contained", NewRect(2, 2, 2, 2), true},
		{"touching right edge", NewRect(10, 0, 5, 5), false},
		{"touching bottom edge", NewRect(0, 10, 5, 5), false},
		{"disjoint", NewRect(20, 20, 5, 5), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Intersects(tc.b); got != tc.want {
				t.Errorf("Intersects = %v, want %v", got, tc.want)
			}
			if got := tc.b.Intersects(a); got != tc.want {
				t.Errorf("Intersects is not symmetric")
			}
		})
	}
}

func TestRectClampInside(t *testing.T) {
	bounds := NewRect(0, 0, 100, 50)
	r := NewRect(95, -3, 10, 10).ClampInside(bounds)
	if r.X != 90 || r.Y != 0 {
		t.Errorf("Expected (90,0), got (%v,%v)", r.X, r.Y)
	}
	if r.W != 10 || r.H != 10 {
		t.Error("ClampInside must not resize")
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatal("Same seed produced different sequences")
		}
	}
}

func TestFastRandRanges(t *testing.T) {
	r := NewFastRand(0)
	for i := 0; i < 1000; i++ {
		if v := r.IntRange(3, 8); v < 3 || v > 8 {
			t.Fatalf("IntRange out of bounds: %d", v)
		}
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64 out of bounds: %f", f)
		}
		if f := r.FloatRange(-5, 5); f < -5 || f >= 5 {
			t.Fatalf("FloatRange out of bounds: %f", f)
		}
	}
	if r.Intn(0) != 0 {
		t.Error("Intn(0) should return 0")
	}
}
