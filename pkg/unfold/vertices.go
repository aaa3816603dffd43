package unfold

import (
	"errors"

	"github.com/Faultbox/meshfold/pkg/math"
)

// ErrPolygonFull is returned when appending past a polygon's capacity.
var ErrPolygonFull = errors.New("unfold: polygon capacity exceeded")

// Polygon is an ordered list of indices into a shared vertex list.
type Polygon struct {
	Points   []int
	capacity int
}

// NewPolygon returns an empty polygon holding at most capacity points.
// A capacity of zero or less means no limit.
func NewPolygon(capacity int) Polygon {
	p := Polygon{capacity: capacity}
	if capacity > 0 {
		p.Points = make([]int, 0, capacity)
	}
	return p
}

// Append adds a vertex index, failing with ErrPolygonFull when at capacity.
func (p *Polygon) Append(idx int) error {
	if p.capacity > 0 && len(p.Points) >= p.capacity {
		return ErrPolygonFull
	}
	p.Points = append(p.Points, idx)
	return nil
}

// Len returns the number of points.
func (p Polygon) Len() int {
	return len(p.Points)
}

// IndexedMesh is a triangle list rewritten over deduplicated vertices.
type IndexedMesh struct {
	Vertices []math.Vec3
	Polygons []Polygon // One per input triangle, same order
}

// IndexVertices merges tolerance-equal vertices. Each corner maps to the
// first earlier vertex it is ApproxEqual to, so results depend on input
// order when points lie within tolerance of several others.
func IndexVertices(tris []Triangle) *IndexedMesh {
	m := &IndexedMesh{
		Polygons: make([]Polygon, len(tris)),
	}

	for i, t := range tris {
		poly := NewPolygon(len(t.Vertices))
		for _, v := range t.Vertices {
			// cannot fail: capacity equals the corner count
			_ = poly.Append(m.vertexIndex(v))
		}
		m.Polygons[i] = poly
	}

	return m
}

func (m *IndexedMesh) vertexIndex(v math.Vec3) int {
	for j, u := range m.Vertices {
		if math.ApproxEqual(u, v) {
			return j
		}
	}
	m.Vertices = append(m.Vertices, v)
	return len(m.Vertices) - 1
}
