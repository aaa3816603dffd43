package math

// Epsilon is the per-coordinate tolerance for vertex equality.
const Epsilon float32 = 1e-4

// ApproxEqual reports whether a and b lie strictly within Epsilon of each
// other on every axis. A difference of exactly Epsilon is not equal.
func ApproxEqual(a, b Vec3) bool {
	return within(a.X-b.X) && within(a.Y-b.Y) && within(a.Z-b.Z)
}

// ApproxEqual is the method form of the package-level ApproxEqual.
func (v Vec3) ApproxEqual(other Vec3) bool {
	return ApproxEqual(v, other)
}

func within(d float32) bool {
	return -Epsilon < d && d < Epsilon
}
