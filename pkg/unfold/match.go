package unfold

import "github.com/Faultbox/meshfold/pkg/math"

// EdgesMatch reports whether the edge of a formed by vertex slots i and j
// coincides with any edge of b, in either direction. Only that one edge of
// a is tested.
func EdgesMatch(a, b Triangle, i, j int) bool {
	u, v := a.Vertices[i], a.Vertices[j]
	p := b.Vertices

	return sameSegment(u, v, p[0], p[1]) ||
		sameSegment(u, v, p[1], p[2]) ||
		sameSegment(u, v, p[0], p[2])
}

// MatchEdge is EdgesMatch with the edge given as an Edge.
func MatchEdge(a, b Triangle, e Edge) bool {
	return EdgesMatch(a, b, e.I, e.J)
}

func sameSegment(u, v, p, q math.Vec3) bool {
	return (math.ApproxEqual(u, p) && math.ApproxEqual(v, q)) ||
		(math.ApproxEqual(u, q) && math.ApproxEqual(v, p))
}
