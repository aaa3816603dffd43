package math

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 0}
	l := v.Normalize().Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}

	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero vector normalized to %v, want zero", got)
	}
}

func TestVec3Distance(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want float32
	}{
		{"identical", Vec3{1, 2, 3}, Vec3{1, 2, 3}, 0},
		{"pythagorean", Vec3{0, 0, 0}, Vec3{3, 4, 0}, 5},
		{"reversed", Vec3{3, 4, 0}, Vec3{0, 0, 0}, 5},
		{"negative axis", Vec3{0, 0, -2}, Vec3{0, 0, 2}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Distance(tt.b); got != tt.want {
				t.Errorf("Distance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec3DistanceTinyDifference(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{1e-30, 0, 0}

	if d := a.Distance(b); d <= 0 {
		t.Errorf("expected positive distance for distinct points, got %v", d)
	}
	if !a.ApproxEqual(b) {
		t.Error("expected tolerance-equal points")
	}
}

func TestVec3DistanceFarApart(t *testing.T) {
	a := Vec3{-3e38, 0, 0}
	b := Vec3{3e38, 0, 0}

	d := a.Distance(b)
	if math32.IsInf(d, 0) {
		t.Fatalf("expected finite distance, got %v", d)
	}
	if d != math32.MaxFloat32 {
		t.Errorf("expected clamp to MaxFloat32, got %v", d)
	}
}

func TestNarrow(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float32
	}{
		{"fits", 1.5, 1.5},
		{"too large", 1e39, math32.MaxFloat32},
		{"too small", -1e39, -math32.MaxFloat32},
		{"infinity", math.Inf(1), math32.MaxFloat32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Narrow(tt.in); got != tt.want {
				t.Errorf("Narrow(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if got := Narrow(math.NaN()); !math32.IsNaN(got) {
		t.Errorf("Narrow(NaN) = %v, want NaN", got)
	}
}

func TestApproxEqualBoundary(t *testing.T) {
	origin := Vec3{}
	justInside := math32.Nextafter(Epsilon, 0)

	tests := []struct {
		name string
		b    Vec3
		want bool
	}{
		{"same point", Vec3{}, true},
		{"exactly epsilon on X", Vec3{Epsilon, 0, 0}, false},
		{"exactly epsilon on Y", Vec3{0, Epsilon, 0}, false},
		{"exactly minus epsilon on Z", Vec3{0, 0, -Epsilon}, false},
		{"just inside on X", Vec3{justInside, 0, 0}, true},
		{"just inside on all axes", Vec3{justInside, -justInside, justInside}, true},
		{"half epsilon", Vec3{Epsilon / 2, 0, 0}, true},
		{"far away", Vec3{1, 1, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApproxEqual(origin, tt.b); got != tt.want {
				t.Errorf("ApproxEqual(origin, %v) = %v, want %v", tt.b, got, tt.want)
			}
			// both argument orders must agree
			if got := tt.b.ApproxEqual(origin); got != tt.want {
				t.Errorf("ApproxEqual(%v, origin) = %v, want %v", tt.b, got, tt.want)
			}
		})
	}
}

func TestVec3MinMax(t *testing.T) {
	a := Vec3{1, -2, 3}
	b := Vec3{-1, 2, 0}

	if got, want := a.Min(b), (Vec3{-1, -2, 0}); got != want {
		t.Errorf("Min() = %v, want %v", got, want)
	}
	if got, want := a.Max(b), (Vec3{1, 2, 3}); got != want {
		t.Errorf("Max() = %v, want %v", got, want)
	}
}
