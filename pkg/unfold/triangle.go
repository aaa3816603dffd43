package unfold

import (
	stdmath "math"

	"github.com/Faultbox/meshfold/pkg/formats"
	"github.com/Faultbox/meshfold/pkg/math"
)

// Edge selects two vertex slots of a triangle.
type Edge struct {
	I, J int
}

// LocalEdges lists a triangle's edges in scan order. The position of an
// edge in this list is its local edge number in AdjacencyEvent.
var LocalEdges = [3]Edge{{0, 1}, {0, 2}, {1, 2}}

// Triangle is one face of the input mesh. Vertex order is preserved.
type Triangle struct {
	Normal   math.Vec3    // As supplied; may be zero
	Vertices [3]math.Vec3 // p0, p1, p2
	Attr     uint16       // Opaque per-face tag, carried through
}

// NewTriangle builds a triangle with a zero normal.
func NewTriangle(p0, p1, p2 math.Vec3) Triangle {
	return Triangle{Vertices: [3]math.Vec3{p0, p1, p2}}
}

// Endpoints returns the two vertices of local edge e.
func (t Triangle) Endpoints(e Edge) (math.Vec3, math.Vec3) {
	return t.Vertices[e.I], t.Vertices[e.J]
}

// FaceNormal returns the supplied normal, or one derived from the winding
// order when the supplied normal is zero.
func (t Triangle) FaceNormal() math.Vec3 {
	if !t.Normal.IsZero() {
		return t.Normal
	}
	return t.cross().Normalize()
}

// EdgeLengths returns the lengths of (p0,p1), (p1,p2) and (p2,p0).
func (t Triangle) EdgeLengths() [3]float32 {
	p := t.Vertices
	return [3]float32{
		p[0].Distance(p[1]),
		p[1].Distance(p[2]),
		p[2].Distance(p[0]),
	}
}

// Area returns the surface area of the triangle. The cross product is
// taken in float64, so large finite triangles clamp instead of reaching +Inf.
func (t Triangle) Area() float32 {
	p := t.Vertices
	ux, uy, uz := sub64(p[1], p[0])
	vx, vy, vz := sub64(p[2], p[0])

	cx := uy*vz - uz*vy
	cy := uz*vx - ux*vz
	cz := ux*vy - uy*vx
	return math.Narrow(stdmath.Sqrt(cx*cx+cy*cy+cz*cz) / 2)
}

func sub64(a, b math.Vec3) (x, y, z float64) {
	return float64(a.X) - float64(b.X), float64(a.Y) - float64(b.Y), float64(a.Z) - float64(b.Z)
}

func (t Triangle) cross() math.Vec3 {
	p := t.Vertices
	return p[1].Sub(p[0]).Cross(p[2].Sub(p[0]))
}

// FromSTL converts parsed STL faces to triangles, keeping index order.
func FromSTL(stl *formats.STL) []Triangle {
	tris := make([]Triangle, len(stl.Faces))
	for i, f := range stl.Faces {
		tris[i] = Triangle{
			Normal: toVec3(f.Normal),
			Vertices: [3]math.Vec3{
				toVec3(f.Vertices[0]),
				toVec3(f.Vertices[1]),
				toVec3(f.Vertices[2]),
			},
			Attr: f.Attr,
		}
	}
	return tris
}

func toVec3(v [3]float32) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}
